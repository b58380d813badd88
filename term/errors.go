// SPDX-License-Identifier: MIT
// Package term: sentinel error set.
// Every message is prefixed with "term: ..." and callers match via errors.Is.

package term

import (
	"errors"

	"github.com/katalvlaran/chembal/internal/intmath"
)

var (
	// ErrEmptyEquation is returned when a ChemEq holds no terms at all.
	ErrEmptyEquation = errors.New("term: equation has no terms")

	// ErrInvalidSplit indicates LeftLen violates 1 <= LeftLen < len(Terms).
	ErrInvalidSplit = errors.New("term: invalid left/right split")

	// ErrNilTerm indicates a nil top-level group or nil member was found.
	ErrNilTerm = errors.New("term: nil term")

	// ErrEmptyGroup indicates a Group without members.
	ErrEmptyGroup = errors.New("term: empty group")

	// ErrLengthMismatch is returned when a coefficient vector does not have
	// one entry per top-level term.
	ErrLengthMismatch = errors.New("term: coefficient count does not match term count")
)

// ErrOverflow aliases the shared arithmetic sentinel so errors.Is works
// regardless of which package detected the overflow.
var ErrOverflow = intmath.ErrOverflow
