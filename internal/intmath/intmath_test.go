package intmath_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/chembal/internal/intmath"
	"github.com/stretchr/testify/require"
)

// TestAddSubOverflow checks both the happy path and the boundaries of Add/Sub.
func TestAddSubOverflow(t *testing.T) {
	s, err := intmath.Add(2, 3)
	require.NoError(t, err)
	require.Equal(t, int64(5), s)

	_, err = intmath.Add(math.MaxInt64, 1)
	require.ErrorIs(t, err, intmath.ErrOverflow)

	_, err = intmath.Add(math.MinInt64, -1)
	require.ErrorIs(t, err, intmath.ErrOverflow)

	d, err := intmath.Sub(-4, 6)
	require.NoError(t, err)
	require.Equal(t, int64(-10), d)

	_, err = intmath.Sub(math.MinInt64, 1)
	require.ErrorIs(t, err, intmath.ErrOverflow)

	_, err = intmath.Sub(math.MaxInt64, -1)
	require.ErrorIs(t, err, intmath.ErrOverflow)
}

// TestMulOverflow covers sign combinations and the MinInt64 * -1 corner.
func TestMulOverflow(t *testing.T) {
	cases := []struct {
		a, b int64
		want int64
		ok   bool
	}{
		{3, 4, 12, true},
		{-3, 4, -12, true},
		{-3, -4, 12, true},
		{0, math.MinInt64, 0, true},
		{math.MaxInt64, 1, math.MaxInt64, true},
		{math.MaxInt64, 2, 0, false},
		{math.MinInt64, -1, 0, false},
		{-1, math.MinInt64, 0, false},
		{1 << 32, 1 << 32, 0, false},
	}
	for _, tc := range cases {
		got, err := intmath.Mul(tc.a, tc.b)
		if !tc.ok {
			require.ErrorIs(t, err, intmath.ErrOverflow, "Mul(%d,%d)", tc.a, tc.b)
			continue
		}
		require.NoError(t, err, "Mul(%d,%d)", tc.a, tc.b)
		require.Equal(t, tc.want, got, "Mul(%d,%d)", tc.a, tc.b)
	}
}

// TestGCD verifies sign handling, zero handling and slice folding.
func TestGCD(t *testing.T) {
	g, err := intmath.GCD(-12, 18)
	require.NoError(t, err)
	require.Equal(t, int64(6), g)

	g, err = intmath.GCD(0, -7)
	require.NoError(t, err)
	require.Equal(t, int64(7), g)

	g, err = intmath.GCD(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), g)

	_, err = intmath.GCD(math.MinInt64, 2)
	require.ErrorIs(t, err, intmath.ErrOverflow)

	g, err = intmath.GCDSlice([]int64{0, 4, -6, 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), g)

	g, err = intmath.GCDSlice(nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), g)
}

// TestCrossFactorsCancel ensures a*(b/g) - b*(a/g) is always zero.
func TestCrossFactorsCancel(t *testing.T) {
	pairs := [][2]int64{{4, 6}, {-3, 9}, {7, -5}, {-8, -12}, {1, 1}}
	for _, p := range pairs {
		af, bf, err := intmath.CrossFactors(p[0], p[1])
		require.NoError(t, err)
		v, err := intmath.MulSub(p[0], af, p[1], bf)
		require.NoError(t, err)
		require.Zero(t, v, "pair %v", p)
	}
}
