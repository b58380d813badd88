// SPDX-License-Identifier: MIT
// Package matrix: vector kernels used around the solver.
//
// Purpose:
//   - Normalize: canonical sign and minimal magnitude for solution vectors.
//   - MulVec: exact matrix-vector product used to verify conservation.

package matrix

import "github.com/katalvlaran/chembal/internal/intmath"

// Normalize rewrites v in place into canonical form.
//
// Implementation:
//   - Stage 1: if the majority of nonzero entries are negative, negate every
//     entry; on a tie, negate when the first nonzero entry is negative.
//   - Stage 2: divide every entry by the gcd of all entries.
//
// Behavior highlights:
//   - Idempotent: normalising a normalised vector changes nothing.
//   - An all-zero (or empty) vector is left untouched.
//
// Errors:
//   - ErrOverflow when v contains math.MinInt64 and must be negated.
//
// Complexity:
//   - Time O(n log M), Space O(1).
func Normalize(v []int64) error {
	var pos, neg, first int
	for _, x := range v {
		switch {
		case x > 0:
			pos++
			if first == 0 {
				first = 1
			}
		case x < 0:
			neg++
			if first == 0 {
				first = -1
			}
		}
	}
	if pos+neg == 0 {
		return nil
	}

	if neg > pos || (neg == pos && first < 0) {
		for i, x := range v {
			nx, err := intmath.Neg(x)
			if err != nil {
				return matrixErrorf(opNormalize, err)
			}
			v[i] = nx
		}
	}

	g, err := intmath.GCDSlice(v)
	if err != nil {
		return matrixErrorf(opNormalize, err)
	}
	if g > 1 {
		for i := range v {
			v[i] /= g
		}
	}

	return nil
}

// MulVec returns the exact product m·v.
//
// Errors:
//   - ErrNilMatrix / ErrInvalidDimensions for an unusable m.
//   - ErrDimensionMismatch when len(v) != m.Cols().
//   - ErrOverflow on int64 overflow.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MulVec(m Matrix, v []int64) ([]int64, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	out := make([]int64, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		var sum int64
		for j := 0; j < m.Cols(); j++ {
			a, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMulVec, err)
			}
			t, err := intmath.Mul(a, v[j])
			if err != nil {
				return nil, matrixErrorf(opMulVec, err)
			}
			if sum, err = intmath.Add(sum, t); err != nil {
				return nil, matrixErrorf(opMulVec, err)
			}
		}
		out[i] = sum
	}

	return out, nil
}

// IsNullVector reports whether m·v is the zero vector.
func IsNullVector(m Matrix, v []int64) (bool, error) {
	prod, err := MulVec(m, v)
	if err != nil {
		return false, err
	}
	for _, x := range prod {
		if x != 0 {
			return false, nil
		}
	}

	return true, nil
}
