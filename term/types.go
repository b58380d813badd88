// SPDX-License-Identifier: MIT

// Package term: domain types of the structure tree.
// This file contains ONLY the Term variants and the ChemEq container;
// collapsing and coefficient assignment live in dedicated files.

package term

import "fmt"

// ChargeSymbol is the pseudo-element under which net electric charge is
// tallied. It is lower-case so that it can never collide with a real element
// symbol, all of which start with an upper-case letter.
const ChargeSymbol = "c"

// Term is a node of the chemical structure tree.
// The set of implementations is closed: Element, Electron and *Group.
type Term interface {
	isTerm()
}

// Element is Count atoms of the element Symbol within its parent group.
type Element struct {
	Symbol string // case-sensitive, first letter upper-case
	Count  int64  // atoms within the immediate parent (1 when omitted in text)
}

// Electron is a bare electron. It contributes no element; its charge is
// expressed through the enclosing Group's Charge.
type Electron struct{}

// Group is a bracketed or top-level cluster of sub-terms.
// Multiplier scales every contained count; Charge is the net charge attached
// to this group (0 when none was written).
type Group struct {
	Members    []Term // exclusively owned, ordered
	Multiplier int64
	Charge     int64
}

func (Element) isTerm()  {}
func (Electron) isTerm() {}
func (*Group) isTerm()   {}

// Compile-time conformance.
var (
	_ Term = Element{}
	_ Term = Electron{}
	_ Term = (*Group)(nil)
)

// Molecule builds a neutral top-level Group with multiplier 1.
func Molecule(members ...Term) *Group {
	return &Group{Members: members, Multiplier: 1}
}

// Ion builds a charged top-level Group with multiplier 1.
func Ion(charge int64, members ...Term) *Group {
	return &Group{Members: members, Multiplier: 1, Charge: charge}
}

// FreeElectron builds the top-level term for e⁻: one Electron with charge -1.
func FreeElectron() *Group {
	return Ion(-1, Electron{})
}

// ChemEq is a chemical equation: Terms[:LeftLen] are reactants and
// Terms[LeftLen:] are products.
//
// Invariant: 1 <= LeftLen < len(Terms). Enforced by Validate.
type ChemEq struct {
	Terms   []*Group
	LeftLen int
}

// Validate checks the structural contract the balancing engine relies on.
//
// Errors (checked in this order):
//   - ErrEmptyEquation when there are no terms.
//   - ErrInvalidSplit when LeftLen is outside [1, len(Terms)).
//   - ErrNilTerm / ErrEmptyGroup for malformed trees, wrapped with the term index.
//
// Complexity: O(total nodes).
func (eq *ChemEq) Validate() error {
	if eq == nil || len(eq.Terms) == 0 {
		return ErrEmptyEquation
	}
	if eq.LeftLen < 1 || eq.LeftLen >= len(eq.Terms) {
		return fmt.Errorf("%w: left=%d terms=%d", ErrInvalidSplit, eq.LeftLen, len(eq.Terms))
	}
	for i, g := range eq.Terms {
		if err := validateGroup(g); err != nil {
			return fmt.Errorf("term %d: %w", i, err)
		}
	}

	return nil
}

// validateGroup walks a group recursively.
func validateGroup(g *Group) error {
	if g == nil {
		return ErrNilTerm
	}
	if len(g.Members) == 0 {
		return ErrEmptyGroup
	}
	for _, m := range g.Members {
		switch v := m.(type) {
		case nil:
			return ErrNilTerm
		case *Group:
			if err := validateGroup(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// IsLeft reports whether top-level term i belongs to the reactant side.
func (eq *ChemEq) IsLeft(i int) bool { return i < eq.LeftLen }

// Left returns the reactant terms (shared, not copied).
func (eq *ChemEq) Left() []*Group { return eq.Terms[:eq.LeftLen] }

// Right returns the product terms (shared, not copied).
func (eq *ChemEq) Right() []*Group { return eq.Terms[eq.LeftLen:] }

// Coefficients returns the current top-level multipliers in column order.
func (eq *ChemEq) Coefficients() []int64 {
	out := make([]int64, len(eq.Terms))
	for i, g := range eq.Terms {
		out[i] = g.Multiplier
	}

	return out
}
