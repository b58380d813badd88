// SPDX-License-Identifier: MIT

package term

import "fmt"

// SetCoefficients writes coefs onto the top-level multipliers in column order
// and reports whether any written value is non-positive.
//
// A non-positive coefficient still satisfies conservation but is chemically
// meaningless; it is surfaced as illCoef=true, not as an error.
//
// Errors:
//   - ErrLengthMismatch when len(coefs) != len(eq.Terms); nothing is written.
//   - ErrNilTerm when a top-level group is nil; nothing is written.
//
// Complexity: O(len(coefs)).
func (eq *ChemEq) SetCoefficients(coefs []int64) (illCoef bool, err error) {
	if eq == nil {
		return false, ErrEmptyEquation
	}
	if len(coefs) != len(eq.Terms) {
		return false, fmt.Errorf("%w: %d coefficients for %d terms", ErrLengthMismatch, len(coefs), len(eq.Terms))
	}
	for i, g := range eq.Terms {
		if g == nil {
			return false, fmt.Errorf("term %d: %w", i, ErrNilTerm)
		}
	}

	for i, g := range eq.Terms {
		g.Multiplier = coefs[i]
		if coefs[i] <= 0 {
			illCoef = true
		}
	}

	return illCoef, nil
}
