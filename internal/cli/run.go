// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/chembal/balance"
	"github.com/katalvlaran/chembal/format"
	"github.com/katalvlaran/chembal/matrix"
	"github.com/katalvlaran/chembal/parse"
	"github.com/katalvlaran/chembal/term"
)

// balanceLine parses, balances and reports one equation.
func (a *app) balanceLine(w io.Writer, line string) error {
	log := a.log.With(slog.String("run_id", uuid.NewString()))

	eq, err := parse.Equation(line)
	if err != nil {
		log.Debug("parse failed", slog.String("input", line), slog.Any("error", err))

		return err
	}
	if a.cfg.Output.Steps {
		fmt.Fprintf(w, "input: %s\n", format.Equation(eq))
	}

	res, err := balance.Balance(eq, a.balanceOptions(log)...)
	if err != nil {
		return err
	}

	return a.report(w, eq, res)
}

// report prints the outcome of one balancing run. eq must be the equation
// res was computed from.
func (a *app) report(w io.Writer, eq *term.ChemEq, res *balance.Result) error {
	if a.cfg.Output.Steps {
		fmt.Fprintf(w, "matrix:\n%s", format.Matrix(res.Matrix, res.Symbols))
		fmt.Fprintf(w, "reduced (rank %d):\n%s", res.Rank, format.Matrix(res.Reduced, nil))
	}

	fopts := a.formatOptions()
	switch res.Solution.Kind {
	case matrix.SolutionNone:
		fmt.Fprintln(w, "no solution")
	case matrix.SolutionUnique:
		fmt.Fprintln(w, format.Equation(eq, fopts...))
		if res.IllCoefficients {
			fmt.Fprintln(w, "warning: non-positive coefficient, check which side each term belongs to")
		}
	case matrix.SolutionInfinite:
		fmt.Fprintf(w, "infinitely many solutions: any combination of %d independent solutions, one basis:\n",
			res.Solution.Dimension())
		for _, v := range res.Solution.Basis {
			c := eq.Clone()
			if _, err := c.SetCoefficients(v); err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s\n", format.Equation(c, fopts...))
		}
	}

	return nil
}
