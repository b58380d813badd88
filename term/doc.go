// Package term defines the structural model of a chemical equation: the
// recursive Term tree (elements, free electrons and bracketed groups) and
// the ChemEq that splits top-level groups into reactants and products.
//
// 🚀 What lives here?
//
//   - Term model: Element, Electron and *Group form a strict tree; a Group
//     exclusively owns its members, so no sharing and no cycles ever occur.
//   - Collapse: multiplies nested group coefficients out into a flat Tally
//     of signed per-symbol counts, with electric charge tracked under the
//     reserved ChargeSymbol.
//   - SetCoefficients: writes a solved coefficient vector back onto the
//     top-level multipliers and reports chemically invalid (≤ 0) values.
//
// ⚙️ Usage:
//
//	eq := &term.ChemEq{
//		Terms: []*term.Group{
//			term.Molecule(term.Element{Symbol: "H", Count: 2}),
//			term.Molecule(term.Element{Symbol: "O", Count: 2}),
//			term.Molecule(term.Element{Symbol: "H", Count: 2}, term.Element{Symbol: "O", Count: 1}),
//		},
//		LeftLen: 2,
//	}
//	tally, err := eq.Terms[2].Tally() // map[H:2 O:1]
//
// All arithmetic is overflow-checked; ErrOverflow is reported instead of
// wrapping. Structural violations (empty equation, bad split, empty group)
// are returned by ChemEq.Validate and signal a broken caller contract.
package term
