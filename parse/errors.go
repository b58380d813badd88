// SPDX-License-Identifier: MIT
// Package parse: error types.

package parse

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel every parse failure unwraps to.
var ErrSyntax = errors.New("parse: syntax error")

// Error locates a syntax error within the input.
type Error struct {
	Pos int    // rune offset into the input
	Msg string // human-readable reason
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("parse: %s at position %d", e.Msg, e.Pos)
}

// Unwrap exposes ErrSyntax to errors.Is.
func (e *Error) Unwrap() error { return ErrSyntax }
