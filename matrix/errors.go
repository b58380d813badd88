// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/chembal/internal/intmath"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Facades wrap
// with fmt.Errorf("<Op>: %w", ErrX); callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that a matrix has zero rows or zero columns where the solver needs both.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the column count, or ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRankOutOfRange indicates a rank outside [0, min(rows, cols)] was passed to Solve.
	ErrRankOutOfRange = errors.New("matrix: rank out of range")

	// ErrNoPivot indicates a pivot row without any nonzero entry where the
	// echelon structure guarantees one (the matrix was not produced by RowReduce).
	ErrNoPivot = errors.New("matrix: missing pivot")
)

// ErrOverflow signals that an exact int64 computation would overflow.
// It is the same sentinel as intmath.ErrOverflow and term.ErrOverflow.
var ErrOverflow = intmath.ErrOverflow
