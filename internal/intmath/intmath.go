// SPDX-License-Identifier: MIT

// Package intmath provides overflow-checked int64 arithmetic shared by the
// term collapser and the fraction-free matrix kernels.
//
// Purpose:
//   - Never wrap silently: every helper reports ErrOverflow instead.
//   - Keep gcd and the cross-multiplication factor pair in one place so row
//     and column elimination use exactly the same rule.
//
// Complexity quicksheet:
//   - Add/Sub/Mul/Neg/Abs: O(1); GCD: O(log min(|a|,|b|)); GCDSlice: O(n log M).
package intmath

import (
	"errors"
	"math"
)

// ErrOverflow is returned when an int64 operation would leave the representable range.
var ErrOverflow = errors.New("intmath: arithmetic overflow")

// Add returns a+b or ErrOverflow.
func Add(a, b int64) (int64, error) {
	s := a + b
	// Overflow happened iff both operands share a sign that the sum does not.
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, ErrOverflow
	}

	return s, nil
}

// Sub returns a-b or ErrOverflow.
func Sub(a, b int64) (int64, error) {
	d := a - b
	if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
		return 0, ErrOverflow
	}

	return d, nil
}

// Mul returns a*b or ErrOverflow.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// MinInt64 * -1 is the one case the division check below cannot see.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	p := a * b
	if p/b != a {
		return 0, ErrOverflow
	}

	return p, nil
}

// Neg returns -a or ErrOverflow for math.MinInt64.
func Neg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, ErrOverflow
	}

	return -a, nil
}

// Abs returns |a| or ErrOverflow for math.MinInt64.
func Abs(a int64) (int64, error) {
	if a < 0 {
		return Neg(a)
	}

	return a, nil
}

// MulSub returns a*x - b*y, checking every intermediate step.
// It is the kernel of fraction-free elimination.
func MulSub(a, x, b, y int64) (int64, error) {
	ax, err := Mul(a, x)
	if err != nil {
		return 0, err
	}
	by, err := Mul(b, y)
	if err != nil {
		return 0, err
	}

	return Sub(ax, by)
}

// GCD returns the non-negative greatest common divisor of |a| and |b|.
// GCD(0, 0) is 0. Inputs equal to math.MinInt64 report ErrOverflow.
func GCD(a, b int64) (int64, error) {
	var err error
	if a, err = Abs(a); err != nil {
		return 0, err
	}
	if b, err = Abs(b); err != nil {
		return 0, err
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a, nil
}

// GCDSlice folds GCD over xs. An empty or all-zero slice yields 0.
func GCDSlice(xs []int64) (int64, error) {
	var g int64
	var err error
	for _, x := range xs {
		if g, err = GCD(g, x); err != nil {
			return 0, err
		}
		if g == 1 {
			break // cannot shrink further
		}
	}

	return g, nil
}

// CrossFactors returns (b/g, a/g) with g = gcd(a, b).
//
// Scaling a value equal to a by b/g and subtracting a value equal to b
// scaled by a/g cancels both exactly: a*(b/g) - b*(a/g) == 0. This is the
// least-common-multiple combination used by row and column elimination.
// Both a and b zero is a caller error and yields (0, 0).
func CrossFactors(a, b int64) (aFactor, bFactor int64, err error) {
	g, err := GCD(a, b)
	if err != nil {
		return 0, 0, err
	}
	if g == 0 {
		return 0, 0, nil
	}

	return b / g, a / g, nil
}
