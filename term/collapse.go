// SPDX-License-Identifier: MIT

package term

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chembal/internal/intmath"
)

// Tally maps an element symbol (or ChargeSymbol) to its net signed count.
// Iteration order carries no meaning; use Symbols for a stable order.
type Tally map[string]int64

// Symbols returns the tally keys in ascending order.
func (t Tally) Symbols() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Collapse accumulates t into tally with multiplier m.
//
// Implementation:
//   - Element: tally[Symbol] += m*Count.
//   - Group: recurse into every member with m*Multiplier, then add m*Charge
//     under ChargeSymbol when Charge != 0.
//   - Electron: nothing; its effect is carried by the enclosing Group.Charge.
//
// Errors:
//   - ErrOverflow when any product or sum leaves int64.
//   - ErrNilTerm on a nil node.
//
// Complexity: O(nodes) time, recursion depth = nesting depth.
func Collapse(t Term, m int64, tally Tally) error {
	switch v := t.(type) {
	case Element:
		return accumulate(tally, v.Symbol, m, v.Count)
	case *Element:
		if v == nil {
			return ErrNilTerm
		}
		return accumulate(tally, v.Symbol, m, v.Count)
	case Electron, *Electron:
		return nil
	case *Group:
		if v == nil {
			return ErrNilTerm
		}
		inner, err := intmath.Mul(m, v.Multiplier)
		if err != nil {
			return err
		}
		for _, member := range v.Members {
			if err = Collapse(member, inner, tally); err != nil {
				return err
			}
		}
		if v.Charge != 0 {
			return accumulate(tally, ChargeSymbol, m, v.Charge)
		}

		return nil
	case nil:
		return ErrNilTerm
	default:
		return fmt.Errorf("term: unsupported term %T", t)
	}
}

// accumulate adds m*n under key with overflow checks.
func accumulate(tally Tally, key string, m, n int64) error {
	delta, err := intmath.Mul(m, n)
	if err != nil {
		return err
	}
	sum, err := intmath.Add(tally[key], delta)
	if err != nil {
		return err
	}
	tally[key] = sum

	return nil
}

// Tally collapses a top-level group with multiplier 1 into a fresh Tally.
// The group's own Multiplier is NOT applied: at top level it is the unknown
// coefficient being solved for, not part of the formula.
func (g *Group) Tally() (Tally, error) {
	if g == nil {
		return nil, ErrNilTerm
	}
	tally := make(Tally)
	for _, member := range g.Members {
		if err := Collapse(member, 1, tally); err != nil {
			return nil, err
		}
	}
	if g.Charge != 0 {
		if err := accumulate(tally, ChargeSymbol, 1, g.Charge); err != nil {
			return nil, err
		}
	}

	return tally, nil
}
