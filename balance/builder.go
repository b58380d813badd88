// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"

	"github.com/katalvlaran/chembal/internal/intmath"
	"github.com/katalvlaran/chembal/matrix"
	"github.com/katalvlaran/chembal/term"
)

// BuildMatrix assembles the conservation matrix of eq.
//
// Implementation:
//   - Stage 1: eq.Validate (structural contract).
//   - Stage 2: tally every top-level term; symbols within a term are visited
//     in sorted order, rows are created on first encounter.
//   - Stage 3: entries are +count for reactants and −count for products, so
//     a correct coefficient vector zeroes every row.
//
// Returns:
//   - *matrix.Dense: rows = distinct symbols, cols = top-level terms.
//   - []string: the symbol of each row (term.ChargeSymbol for charge).
//
// Errors:
//   - term.ErrEmptyEquation, term.ErrInvalidSplit, term.ErrEmptyGroup, term.ErrNilTerm.
//   - matrix.ErrInvalidDimensions when no symbol occurs at all.
//   - term.ErrOverflow while collapsing or negating.
//
// Complexity:
//   - Time O(nodes + symbols·terms), Space O(symbols·terms).
func BuildMatrix(eq *term.ChemEq) (*matrix.Dense, []string, error) {
	if err := eq.Validate(); err != nil {
		return nil, nil, err
	}

	cols := len(eq.Terms)
	rowOf := make(map[string]int)
	var symbols []string
	var rows [][]int64

	for j, g := range eq.Terms {
		tally, err := g.Tally()
		if err != nil {
			return nil, nil, fmt.Errorf("term %d: %w", j, err)
		}
		for _, sym := range tally.Symbols() {
			n := tally[sym]
			if !eq.IsLeft(j) {
				if n, err = intmath.Neg(n); err != nil {
					return nil, nil, fmt.Errorf("term %d: %w", j, err)
				}
			}
			i, ok := rowOf[sym]
			if !ok {
				i = len(rows)
				rowOf[sym] = i
				symbols = append(symbols, sym)
				rows = append(rows, make([]int64, cols))
			}
			rows[i][j] = n
		}
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no symbols: %w", matrix.ErrInvalidDimensions)
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, err
	}

	return m, symbols, nil
}
