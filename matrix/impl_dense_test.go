// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/chembal/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1)                          // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	var nilDense *matrix.Dense
	_, err = nilDense.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, -7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(-7), v)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, [][]int64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3)) // modify the clone only

	orig, _ := m.At(0, 0)
	cv, _ := clone.At(0, 0)
	require.Equal(t, int64(1), orig) // original unchanged
	require.Equal(t, int64(3), cv)   // clone reflects new value
	require.False(t, m.Equal(clone.(*matrix.Dense)))
}

// TestSwapRowsCols checks in-place swaps and their bounds checks.
func TestSwapRowsCols(t *testing.T) {
	m := MustDense(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, m.SwapRows(0, 1))
	require.Equal(t, [][]int64{{4, 5, 6}, {1, 2, 3}}, m.RawRows())

	require.NoError(t, m.SwapCols(0, 2))
	require.Equal(t, [][]int64{{6, 5, 4}, {3, 2, 1}}, m.RawRows())

	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(-1, 0), matrix.ErrOutOfRange)
	require.Nil(t, m.Row(5))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustDense(t, [][]int64{{1, -2}, {3, 0}})
	require.Equal(t, "[1, -2]\n[3, 0]\n", m.String())
}
