// SPDX-License-Identifier: MIT

package balance

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chembal/matrix"
	"github.com/katalvlaran/chembal/term"
)

// Result carries every intermediate product of one balancing run.
type Result struct {
	// Symbols labels the rows of Matrix and Reduced.
	Symbols []string
	// Matrix is the conservation matrix as built, before reduction.
	Matrix *matrix.Dense
	// Reduced is the row-echelon form produced by matrix.RowReduce.
	Reduced *matrix.Dense
	// Rank is the number of independent conservation constraints.
	Rank int
	// Solution is the classified null space.
	Solution matrix.Solution
	// IllCoefficients is true when a unique solution assigned a value <= 0.
	IllCoefficients bool
}

// Balance builds, reduces and solves eq, and for a unique solution writes
// the coefficients back onto eq's top-level multipliers.
//
// Implementation:
//   - Stage 1: BuildMatrix (validates eq).
//   - Stage 2: RowReduce a clone; the original stays on Result.Matrix.
//   - Stage 3: Solve, then re-check every vector against Result.Matrix.
//   - Stage 4: SetCoefficients for SolutionUnique only.
//
// Errors (wrapped as "balance: <stage>: ..."):
//   - structural: term.ErrEmptyEquation, term.ErrInvalidSplit, term.ErrEmptyGroup,
//     term.ErrNilTerm, matrix.ErrInvalidDimensions.
//   - arithmetic: matrix.ErrOverflow.
//   - ErrNotConserved when verification fails.
//
// SolutionNone and ill coefficients are outcomes, not errors.
func Balance(eq *term.ChemEq, opts ...Option) (*Result, error) {
	return balance(eq, gatherOptions(opts...))
}

func balance(eq *term.ChemEq, o options) (*Result, error) {
	if eq == nil {
		return nil, ErrNilEquation
	}
	log := o.logger

	built, symbols, err := BuildMatrix(eq)
	if err != nil {
		return nil, stageErrorf(stageBuild, err)
	}
	log.Debug("conservation matrix built",
		slog.Int("rows", built.Rows()),
		slog.Int("cols", built.Cols()),
		slog.Any("symbols", symbols))

	reduced := built.CloneDense()
	rank, err := matrix.RowReduce(reduced, o.matrix...)
	if err != nil {
		return nil, stageErrorf(stageReduce, err)
	}
	log.Debug("matrix reduced", slog.Int("rank", rank))

	sol, err := matrix.Solve(reduced, rank, o.matrix...)
	if err != nil {
		return nil, stageErrorf(stageSolve, err)
	}
	for k, v := range sol.Basis {
		ok, err := matrix.IsNullVector(built, v)
		if err != nil {
			return nil, stageErrorf(stageVerify, err)
		}
		if !ok {
			return nil, stageErrorf(stageVerify, fmt.Errorf("vector %d %v: %w", k, v, ErrNotConserved))
		}
	}
	log.Debug("null space solved",
		slog.String("kind", sol.Kind.String()),
		slog.Int("dimension", sol.Dimension()))

	res := &Result{
		Symbols:  symbols,
		Matrix:   built,
		Reduced:  reduced,
		Rank:     rank,
		Solution: sol,
	}

	if sol.Kind == matrix.SolutionUnique {
		ill, err := eq.SetCoefficients(sol.Vector())
		if err != nil {
			return nil, stageErrorf(stageAssign, err)
		}
		res.IllCoefficients = ill
		if ill {
			log.Warn("non-positive coefficient assigned", slog.Any("coefficients", sol.Vector()))
		}
	}

	return res, nil
}

// BalanceAll balances independent equations concurrently.
//
// Implementation:
//   - errgroup with SetLimit(workers); each goroutine owns its equation and
//     its matrices, results are stored by index so order is preserved.
//   - The first error cancels the group context; pending runs are skipped.
//
// Errors:
//   - the first run error, wrapped with the equation index.
//   - ctx.Err() when ctx is cancelled before all runs start.
func BalanceAll(ctx context.Context, eqs []*term.ChemEq, opts ...Option) ([]*Result, error) {
	o := gatherOptions(opts...)
	results := make([]*Result, len(eqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, eq := range eqs {
		if gctx.Err() != nil {
			break
		}
		i, eq := i, eq
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := balance(eq, o)
			if err != nil {
				return fmt.Errorf("equation %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
