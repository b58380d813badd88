// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the reducer and solver.
//   • Provide an independent rank oracle over the rationals (math/big.Rat).

package matrix_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/chembal/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense builds a *Dense from literal rows or fails the test.
func MustDense(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// ratRank computes the rank of rows over the rationals with plain Gaussian
// elimination on big.Rat; it shares no code with the engine under test.
func ratRank(rows [][]int64) int {
	if len(rows) == 0 {
		return 0
	}
	r, c := len(rows), len(rows[0])
	a := make([][]*big.Rat, r)
	for i := range rows {
		a[i] = make([]*big.Rat, c)
		for j := range rows[i] {
			a[i][j] = new(big.Rat).SetInt64(rows[i][j])
		}
	}

	rank := 0
	for col := 0; col < c && rank < r; col++ {
		p := -1
		for i := rank; i < r; i++ {
			if a[i][col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		a[rank], a[p] = a[p], a[rank]
		for i := rank + 1; i < r; i++ {
			if a[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(a[i][col], a[rank][col])
			for j := col; j < c; j++ {
				a[i][j].Sub(a[i][j], new(big.Rat).Mul(f, a[rank][j]))
			}
		}
		rank++
	}

	return rank
}

// randomRows returns an r×c matrix with entries in [-span, span], biased to zero.
func randomRows(rng *rand.Rand, r, c int, span int64) [][]int64 {
	out := make([][]int64, r)
	for i := range out {
		out[i] = make([]int64, c)
		for j := range out[i] {
			if rng.Intn(3) == 0 {
				continue // keep the matrix sparse, like real conservation matrices
			}
			out[i][j] = rng.Int63n(2*span+1) - span
		}
	}

	return out
}

// permuted returns rows reordered by perm.
func permuted(rows [][]int64, perm []int) [][]int64 {
	out := make([][]int64, len(rows))
	for i, p := range perm {
		out[i] = append([]int64(nil), rows[p]...)
	}

	return out
}

// requireNull asserts m·v = 0.
func requireNull(t *testing.T, m matrix.Matrix, v []int64) {
	t.Helper()
	ok, err := matrix.IsNullVector(m, v)
	require.NoError(t, err)
	require.True(t, ok, "vector %v does not conserve every row", v)
}
