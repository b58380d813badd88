// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chembal/balance"
	"github.com/katalvlaran/chembal/config"
	"github.com/katalvlaran/chembal/format"
	"github.com/katalvlaran/chembal/internal/logger"
	"github.com/katalvlaran/chembal/matrix"
)

// app is the state shared by every command once flags are parsed.
type app struct {
	cfgPath string
	cfg     *config.Config
	log     *slog.Logger
}

// NewRootCommand builds the chembal command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "chembal [flags] [EQUATION]",
		Short: "Balance chemical equations with exact integer arithmetic",
		Long: `chembal balances chemical equations such as "Fe + O2 -> Fe2O3".

Without an argument it reads equations from standard input, one per line.
Charges are written as (n+) or (n-), free electrons as e(-), hydrates
with '·', '.' or '*', and the arrow as '->', '=' or '→'.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.repl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			}

			return a.balanceLine(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (yaml, toml or json)")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	pf.String("log-format", config.DefaultLogFormat, "log format: text or json")
	pf.Bool("color", false, "colour coefficients")
	pf.Bool("unit", false, "print coefficients of 1")
	pf.Bool("steps", false, "print the conservation matrix and its reduced form")
	pf.String("pivot", config.DefaultPivot, "pivot strategy: least-abs or first-nonzero")
	pf.Int("workers", config.DefaultWorkers, "concurrent equations in batch mode")

	root.AddCommand(newBatchCommand(a))

	return root
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)

		return 1
	}

	return 0
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.Log)
	a.log.Debug("configuration loaded",
		slog.String("pivot", cfg.Engine.Pivot),
		slog.Int("workers", cfg.Engine.Workers))

	return nil
}

// balanceOptions translates the engine configuration.
func (a *app) balanceOptions(log *slog.Logger) []balance.Option {
	opts := []balance.Option{
		balance.WithLogger(log),
		balance.WithWorkers(a.cfg.Engine.Workers),
	}
	if p, ok := matrix.ParsePivotStrategy(a.cfg.Engine.Pivot); ok {
		opts = append(opts, balance.WithPivot(p))
	}

	return opts
}

// formatOptions translates the output configuration.
func (a *app) formatOptions() []format.Option {
	var opts []format.Option
	if a.cfg.Output.UnitCoefficients {
		opts = append(opts, format.WithUnitCoefficients())
	}
	if a.cfg.Output.Color {
		opts = append(opts, format.WithColor())
	}

	return opts
}
