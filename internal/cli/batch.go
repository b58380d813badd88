// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chembal/balance"
	"github.com/katalvlaran/chembal/parse"
	"github.com/katalvlaran/chembal/term"
)

func newBatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Balance one equation per line of FILE (\"-\" for stdin)",
		Long: `batch balances every non-blank line of FILE that does not start with '#'.
Equations are balanced concurrently (--workers) and reported in input order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			return a.batch(cmd, r)
		},
	}
}

type batchLine struct {
	no   int
	text string
	eq   *term.ChemEq
	err  error
}

func (a *app) batch(cmd *cobra.Command, r io.Reader) error {
	w := cmd.OutOrStdout()
	log := a.log.With(slog.String("run_id", uuid.NewString()))

	var lines []*batchLine
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		bl := &batchLine{no: no, text: text}
		bl.eq, bl.err = parse.Equation(text)
		lines = append(lines, bl)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	var eqs []*term.ChemEq
	for _, bl := range lines {
		if bl.err == nil {
			eqs = append(eqs, bl.eq)
		}
	}
	log.Info("batch parsed", slog.Int("lines", len(lines)), slog.Int("equations", len(eqs)))

	results, err := balance.BalanceAll(cmd.Context(), eqs, a.balanceOptions(log)...)
	if err != nil {
		return err
	}

	failed := 0
	k := 0
	for _, bl := range lines {
		fmt.Fprintf(w, "# %d: %s\n", bl.no, bl.text)
		if bl.err != nil {
			failed++
			fmt.Fprintln(w, "error:", bl.err)
			continue
		}
		if err := a.report(w, bl.eq, results[k]); err != nil {
			return err
		}
		k++
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed to parse", failed, len(lines))
	}

	return nil
}
