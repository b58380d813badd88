// SPDX-License-Identifier: MIT

package term

// Clone returns a deep copy of the equation; the copy shares no Group with eq.
// Complexity: O(total nodes).
func (eq *ChemEq) Clone() *ChemEq {
	if eq == nil {
		return nil
	}
	out := &ChemEq{Terms: make([]*Group, len(eq.Terms)), LeftLen: eq.LeftLen}
	for i, g := range eq.Terms {
		out.Terms[i] = g.Clone()
	}

	return out
}

// Clone returns a deep copy of g and all nested groups.
func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	out := &Group{
		Members:    make([]Term, len(g.Members)),
		Multiplier: g.Multiplier,
		Charge:     g.Charge,
	}
	for i, m := range g.Members {
		switch v := m.(type) {
		case *Group:
			out.Members[i] = v.Clone()
		case *Element:
			if v != nil {
				out.Members[i] = *v
			}
		default:
			out.Members[i] = m // value types copy on assignment
		}
	}

	return out
}
