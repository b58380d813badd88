package balance_test

import "github.com/katalvlaran/chembal/term"

// el is a short Element constructor.
func el(sym string, n int64) term.Element { return term.Element{Symbol: sym, Count: n} }

// mol builds a neutral molecule from symbol/count pairs given as el values.
func mol(members ...term.Term) *term.Group { return term.Molecule(members...) }

// eqn assembles a ChemEq from left and right groups.
func eqn(left []*term.Group, right []*term.Group) *term.ChemEq {
	terms := append(append([]*term.Group{}, left...), right...)

	return &term.ChemEq{Terms: terms, LeftLen: len(left)}
}
