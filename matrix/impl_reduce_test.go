package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/chembal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRowReduceEchelon verifies the pivot structure and rank on a hand-checked case.
func TestRowReduceEchelon(t *testing.T) {
	// H2 + O2 -> H2O with an extra dependent row (2·H).
	m := MustDense(t, [][]int64{
		{2, 0, -2},
		{0, 2, -1},
		{4, 0, -4},
	})

	rank, err := matrix.RowReduce(m)
	require.NoError(t, err)
	require.Equal(t, 2, rank)

	// Row beyond rank is all zero; entries below each pivot are zero.
	require.Equal(t, []int64{0, 0, 0}, m.Row(2))
	v, _ := m.At(1, 0)
	require.Zero(t, v)
}

// TestRowReduceSkipsZeroColumn checks that a zero column advances only the column cursor.
func TestRowReduceSkipsZeroColumn(t *testing.T) {
	m := MustDense(t, [][]int64{
		{0, 3, 1},
		{0, 6, 5},
	})
	rank, err := matrix.RowReduce(m)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.Equal(t, []int64{0, 3, 1}, m.Row(0))
	require.Equal(t, []int64{0, 0, 1}, m.Row(1))

	// The textbook rule keeps the unreduced row.
	m = MustDense(t, [][]int64{
		{0, 3, 1},
		{0, 6, 5},
	})
	_, err = matrix.RowReduce(m, matrix.WithoutContentReduction())
	require.NoError(t, err)
	require.Equal(t, []int64{0, 0, 3}, m.Row(1))
}

// TestRowReduceLeastAbsPivot checks the least-|value| pivot is swapped to the top.
func TestRowReduceLeastAbsPivot(t *testing.T) {
	m := MustDense(t, [][]int64{
		{6, 1},
		{-2, 1},
		{4, 1},
	})
	rank, err := matrix.RowReduce(m)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.Equal(t, []int64{-2, 1}, m.Row(0))
}

// TestRowReduceErrors covers precondition violations and overflow.
func TestRowReduceErrors(t *testing.T) {
	_, err := matrix.RowReduce(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m := MustDense(t, [][]int64{
		{math.MaxInt64 - 1, 1},
		{math.MaxInt64 - 2, 3},
	})
	_, err = matrix.RowReduce(m)
	require.ErrorIs(t, err, matrix.ErrOverflow)
}

// TestRankMatchesRationalOracle compares against big.Rat elimination on random matrices.
func TestRankMatchesRationalOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 300; iter++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(7)
		rows := randomRows(rng, r, c, 4)

		for _, p := range []matrix.PivotStrategy{matrix.PivotLeastAbs, matrix.PivotFirstNonZero} {
			rank, err := matrix.Rank(MustDense(t, rows), matrix.WithPivot(p))
			require.NoError(t, err)
			require.Equal(t, ratRank(rows), rank, "rows=%v pivot=%s", rows, p)
		}
	}
}

// TestRankPermutationInvariant checks rank does not depend on row order.
func TestRankPermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 100; iter++ {
		r, c := 2+rng.Intn(5), 2+rng.Intn(6)
		rows := randomRows(rng, r, c, 5)
		want, err := matrix.Rank(MustDense(t, rows))
		require.NoError(t, err)

		got, err := matrix.Rank(MustDense(t, permuted(rows, rng.Perm(r))))
		require.NoError(t, err)
		assert.Equal(t, want, got, "rows=%v", rows)
	}
}

// TestRankLeavesInputUntouched ensures Rank works on a copy.
func TestRankLeavesInputUntouched(t *testing.T) {
	m := MustDense(t, [][]int64{{0, 1}, {1, 0}})
	before := m.CloneDense()
	rank, err := matrix.Rank(m)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.True(t, m.Equal(before))
}

// TestWithPivotPanicsOnUnknown checks programmer errors panic.
func TestWithPivotPanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { matrix.WithPivot(matrix.PivotStrategy(99)) })

	p, ok := matrix.ParsePivotStrategy("first-nonzero")
	require.True(t, ok)
	require.Equal(t, matrix.PivotFirstNonZero, p)
	_, ok = matrix.ParsePivotStrategy("largest")
	require.False(t, ok)
	require.Equal(t, matrix.PivotFirstNonZero, matrix.NewOptions(matrix.WithPivot(p)).Pivot())
}
