// SPDX-License-Identifier: MIT
// Package matrix: fraction-free Gaussian elimination.
//
// Purpose:
//   - Bring an integer matrix to row-echelon form in place without ever
//     dividing an entry, and report its rank.
//
// Notes:
//   - Elimination rule: with g = gcd(|pivot|, |cur|),
//     row ← row·(pivot/g) − pivotRow·(cur/g). The pivot column entry cancels
//     exactly and every other entry stays an integer.
//   - Row order of the input only affects intermediate growth, never the rank.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/chembal/internal/intmath"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opRowReduce = "RowReduce"
	opRank      = "Rank"
	opSolve     = "Solve"
	opNormalize = "Normalize"
	opMulVec    = "MulVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RowReduce transforms m to row-echelon form in place and returns its rank.
//
// Implementation:
//   - Stage 1: validate m is non-nil and non-empty; resolve options.
//   - Stage 2: with cursors (row, col) starting at 0, pick a pivot among rows
//     ≥ row in column col. An all-zero column advances col only.
//   - Stage 3: swap the pivot row up and eliminate every lower row with a
//     nonzero entry in col using the gcd cross-multiplication rule.
//   - Stage 4: unless WithoutContentReduction, divide each eliminated row by
//     the gcd of its entries (exact; bounds intermediate growth).
//   - Stage 5: advance both cursors; stop when either is exhausted.
//
// Returns:
//   - rank: number of pivots found (= final row cursor).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (precondition violations).
//   - ErrOverflow when an intermediate product leaves int64; m is then left
//     partially reduced and must be discarded.
//
// Determinism:
//   - Fixed scan order; ties in PivotLeastAbs resolve to the topmost row.
//
// Complexity:
//   - Time O(rows·cols·min(rows,cols)), Space O(1) extra.
func RowReduce(m *Dense, opts ...Option) (int, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return 0, matrixErrorf(opRowReduce, err)
	}
	o := gatherOptions(opts...)

	rowN, colN := m.r, m.c
	rowI, colI := 0, 0
	for rowI < rowN && colI < colN {
		pivotI, err := findPivotRow(m, rowI, colI, o.pivot)
		if err != nil {
			return 0, matrixErrorf(opRowReduce, err)
		}
		if pivotI < 0 {
			// No pivot in this column: its constraint depends on earlier ones.
			colI++
			continue
		}

		_ = m.SwapRows(rowI, pivotI) // indices are in range by construction
		pivotRow := m.row(rowI)
		pivot := pivotRow[colI]

		for i := rowI + 1; i < rowN; i++ {
			cur := m.row(i)
			if cur[colI] == 0 {
				continue
			}
			curM, pivotM, err := intmath.CrossFactors(cur[colI], pivot)
			if err != nil {
				return 0, matrixErrorf(opRowReduce, err)
			}
			if err = rowMulSub(cur, curM, pivotRow, pivotM); err != nil {
				return 0, matrixErrorf(opRowReduce, fmt.Errorf("row %d: %w", i, err))
			}
			if o.content {
				if err = divideByContent(cur); err != nil {
					return 0, matrixErrorf(opRowReduce, err)
				}
			}
		}

		rowI++
		colI++
	}

	return rowI, nil
}

// Rank returns the rank of m without modifying it.
// Complexity: O(rows·cols) copy + RowReduce.
func Rank(m Matrix, opts ...Option) (int, error) {
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	rank, err := RowReduce(d, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return rank, nil
}

// toDense returns a private *Dense copy of any Matrix implementation.
func toDense(m Matrix) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.CloneDense(), nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// findPivotRow returns the pivot row for column col among rows ≥ from,
// or -1 when every such entry is zero.
func findPivotRow(m *Dense, from, col int, strategy PivotStrategy) (int, error) {
	best := -1
	var bestAbs int64
	for i := from; i < m.r; i++ {
		v := m.data[i*m.c+col]
		if v == 0 {
			continue
		}
		if strategy == PivotFirstNonZero {
			return i, nil
		}
		a, err := intmath.Abs(v)
		if err != nil {
			return -1, err
		}
		if best < 0 || a < bestAbs {
			best, bestAbs = i, a
		}
	}

	return best, nil
}

// rowMulSub computes dest ← dest·destM − src·srcM element-wise with overflow checks.
func rowMulSub(dest []int64, destM int64, src []int64, srcM int64) error {
	for j := range dest {
		v, err := intmath.MulSub(dest[j], destM, src[j], srcM)
		if err != nil {
			return err
		}
		dest[j] = v
	}

	return nil
}

// divideByContent divides v by the gcd of its entries when that gcd exceeds 1.
func divideByContent(v []int64) error {
	g, err := intmath.GCDSlice(v)
	if err != nil {
		return err
	}
	if g > 1 {
		for j := range v {
			v[j] /= g
		}
	}

	return nil
}
