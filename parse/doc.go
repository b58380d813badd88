// SPDX-License-Identifier: MIT

// Package parse turns the textual notation of a chemical equation into a
// term.ChemEq.
//
// 🚀 Accepted notation:
//
//   - Elements: an upper-case letter followed by lower-case letters and an
//     optional count, e.g. H2, Fe, Uuo.
//   - Groups: (…) or […] with an optional multiplier, nested freely,
//     e.g. Ca3(PO4)2, K4[Fe(CN)6].
//   - Hydrates: parts joined by '·', '.' or '*', each part with its own
//     leading count, e.g. CuSO4·5H2O.
//   - Charges: a trailing (n+) or (n-) on a term, e.g. Fe(3+), MnO4(-).
//   - Free electrons: e(-).
//   - Arrows: one or more '=', one or more '-' followed by '>', or '→'.
//
// A leading coefficient on a term (2H2O) is accepted and discarded, since
// balancing recomputes every coefficient.
//
// ⚙️ Usage:
//
//	eq, err := parse.Equation("Fe + O2 -> Fe2O3")
//	if err != nil {
//		var se *parse.Error
//		if errors.As(err, &se) { /* se.Pos is a rune offset */ }
//	}
package parse
