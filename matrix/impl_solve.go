// SPDX-License-Identifier: MIT
// Package matrix: null-space solving over the integers.
//
// Purpose:
//   - Classify the solution space of a row-reduced conservation matrix and
//     return exact, minimal integer vectors.
//
// Notes:
//   - The unique path back-substitutes with the free variable fixed at 1 and
//     rescales already determined entries by the same gcd cross-multiplication
//     used in elimination, so the vector never leaves the integers.
//   - The infinite path augments the pivot rows with an identity block and
//     eliminates by columns; the identity block's trailing columns then hold a
//     null-space basis. The augmented matrix is freshly allocated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/chembal/internal/intmath"
)

// Solve classifies and computes the null space of a row-reduced matrix.
//
// Implementation:
//   - Stage 1: validate m is non-empty and 0 ≤ rank ≤ min(rows, cols).
//   - Stage 2: n = cols − rank; 0 → SolutionNone, 1 → unique back
//     substitution, otherwise a basis of n vectors.
//   - Stage 3: every returned vector is passed through Normalize.
//
// Inputs:
//   - m: the matrix AFTER RowReduce (rows beyond rank are ignored).
//   - rank: the value RowReduce returned.
//   - opts: pivot strategy for the column elimination of the infinite path.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrRankOutOfRange (preconditions).
//   - ErrNoPivot when a row within rank has no usable pivot (m was not reduced).
//   - ErrOverflow on int64 overflow.
//
// Complexity:
//   - Unique: O(rank·cols). Infinite: O(rank·cols·(rank+cols)), Space O((rank+cols)·cols).
func Solve(m *Dense, rank int, opts ...Option) (Solution, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return Solution{}, matrixErrorf(opSolve, err)
	}
	if err := ValidateRank(m, rank); err != nil {
		return Solution{}, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	switch m.c - rank {
	case 0:
		return Solution{Kind: SolutionNone}, nil
	case 1:
		v, err := solveUnique(m, rank, o.content)
		if err != nil {
			return Solution{}, matrixErrorf(opSolve, err)
		}

		return Solution{Kind: SolutionUnique, Basis: [][]int64{v}}, nil
	default:
		basis, err := solveInfinite(m, rank, o)
		if err != nil {
			return Solution{}, matrixErrorf(opSolve, err)
		}

		return Solution{Kind: SolutionInfinite, Basis: basis}, nil
	}
}

// pivotColumns returns the leading nonzero column of each of the first rank
// rows and checks that they strictly increase (echelon shape).
func pivotColumns(m *Dense, rank int) ([]int, error) {
	cols := make([]int, rank)
	prev := -1
	for i := 0; i < rank; i++ {
		p := -1
		for j, v := range m.row(i) {
			if v != 0 {
				p = j
				break
			}
		}
		if p <= prev {
			return nil, fmt.Errorf("row %d: %w", i, ErrNoPivot)
		}
		cols[i], prev = p, p
	}

	return cols, nil
}

// solveUnique back-substitutes a one-dimensional null space.
func solveUnique(m *Dense, rank int, content bool) ([]int64, error) {
	pivots, err := pivotColumns(m, rank)
	if err != nil {
		return nil, err
	}

	sol := make([]int64, m.c)
	// The single non-pivot column carries the free variable, fixed at 1.
	isPivot := make([]bool, m.c)
	for _, p := range pivots {
		isPivot[p] = true
	}
	for j, pv := range isPivot {
		if !pv {
			sol[j] = 1
			break
		}
	}

	for i := rank - 1; i >= 0; i-- {
		row := m.row(i)
		p := pivots[i]

		var sum int64
		for j := p + 1; j < m.c; j++ {
			if row[j] == 0 || sol[j] == 0 {
				continue
			}
			t, err := intmath.Mul(row[j], sol[j])
			if err != nil {
				return nil, err
			}
			if sum, err = intmath.Add(sum, t); err != nil {
				return nil, err
			}
		}

		// row[p]·x + sum·scale = 0 with scale = row[p]/g and x = −sum/g.
		scale, x, err := intmath.CrossFactors(sum, row[p])
		if err != nil {
			return nil, err
		}
		if x, err = intmath.Neg(x); err != nil {
			return nil, err
		}
		if x < 0 {
			x, scale = -x, -scale
		}
		if scale != 1 {
			for j := range sol {
				if sol[j], err = intmath.Mul(sol[j], scale); err != nil {
					return nil, err
				}
			}
		}
		sol[p] = x
		if content {
			if err = divideByContent(sol); err != nil {
				return nil, err
			}
		}
	}

	if err := Normalize(sol); err != nil {
		return nil, err
	}

	return sol, nil
}

// solveInfinite returns cols−rank independent null-space vectors.
func solveInfinite(m *Dense, rank int, o Options) ([][]int64, error) {
	c := m.c
	nullity := c - rank

	// [ pivot rows ]  rank × c
	// [ identity   ]  c × c
	aug := &Dense{r: rank + c, c: c, data: make([]int64, (rank+c)*c)}
	copy(aug.data[:rank*c], m.data[:rank*c])
	for k := 0; k < c; k++ {
		aug.data[(rank+k)*c+k] = 1
	}

	if err := colReduceUpper(aug, rank, o); err != nil {
		return nil, err
	}

	// Columns rank..c−1 of the upper block are now zero, so the matching
	// columns of the identity block span the null space.
	basis := make([][]int64, nullity)
	for k := 0; k < nullity; k++ {
		v := make([]int64, c)
		for t := 0; t < c; t++ {
			v[t] = aug.data[(rank+t)*c+rank+k]
		}
		if err := Normalize(v); err != nil {
			return nil, err
		}
		basis[k] = v
	}

	return basis, nil
}

// colReduceUpper eliminates by columns, restricted to the first upper rows:
// after step i every column j > i holds zero in row i.
func colReduceUpper(m *Dense, upper int, o Options) error {
	for i := 0; i < upper; i++ {
		row := m.row(i)

		pivotJ := -1
		var bestAbs int64
		for j := i; j < m.c; j++ {
			if row[j] == 0 {
				continue
			}
			if o.pivot == PivotFirstNonZero {
				pivotJ = j
				break
			}
			a, err := intmath.Abs(row[j])
			if err != nil {
				return err
			}
			if pivotJ < 0 || a < bestAbs {
				pivotJ, bestAbs = j, a
			}
		}
		if pivotJ < 0 {
			return fmt.Errorf("row %d: %w", i, ErrNoPivot)
		}

		_ = m.SwapCols(i, pivotJ)
		pivot := row[i]

		for j := i + 1; j < m.c; j++ {
			cur := row[j]
			if cur == 0 {
				continue
			}
			curM, pivotM, err := intmath.CrossFactors(cur, pivot)
			if err != nil {
				return err
			}
			if err = colMulSub(m, j, curM, i, pivotM); err != nil {
				return fmt.Errorf("column %d: %w", j, err)
			}
			if o.content {
				if err = divideColByContent(m, j); err != nil {
					return fmt.Errorf("column %d: %w", j, err)
				}
			}
		}
	}

	return nil
}

// colMulSub computes col[dest] ← col[dest]·destM − col[src]·srcM over all rows.
func colMulSub(m *Dense, dest int, destM int64, src int, srcM int64) error {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		v, err := intmath.MulSub(m.data[base+dest], destM, m.data[base+src], srcM)
		if err != nil {
			return err
		}
		m.data[base+dest] = v
	}

	return nil
}

// divideColByContent divides column j by the gcd of its entries when that gcd exceeds 1.
func divideColByContent(m *Dense, j int) error {
	var g int64
	var err error
	for i := 0; i < m.r && g != 1; i++ {
		if g, err = intmath.GCD(g, m.data[i*m.c+j]); err != nil {
			return err
		}
	}
	if g > 1 {
		for i := 0; i < m.r; i++ {
			m.data[i*m.c+j] /= g
		}
	}

	return nil
}
