// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the solver.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of int64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v int64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// SolutionKind classifies the null space of a conservation matrix.
type SolutionKind int

const (
	// SolutionNone: only the all-zero vector conserves every row.
	SolutionNone SolutionKind = iota

	// SolutionUnique: a one-dimensional null space; one minimal positive-majority vector.
	SolutionUnique

	// SolutionInfinite: a null space of dimension ≥ 2, returned as a basis.
	SolutionInfinite
)

// String implements fmt.Stringer.
func (k SolutionKind) String() string {
	switch k {
	case SolutionNone:
		return "none"
	case SolutionUnique:
		return "unique"
	case SolutionInfinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// Solution is the outcome of Solve.
//
//   - Kind == SolutionNone:     Basis is empty.
//   - Kind == SolutionUnique:   Basis holds exactly one vector.
//   - Kind == SolutionInfinite: Basis holds cols-rank vectors, each a valid
//     (not necessarily all-positive) coefficient assignment.
type Solution struct {
	Kind  SolutionKind
	Basis [][]int64
}

// Vector returns the unique solution vector, or nil for other kinds.
func (s Solution) Vector() []int64 {
	if s.Kind != SolutionUnique || len(s.Basis) == 0 {
		return nil
	}

	return s.Basis[0]
}

// Dimension returns the number of basis vectors (0 for SolutionNone).
func (s Solution) Dimension() int { return len(s.Basis) }
