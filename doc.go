// Package chembal balances chemical equations with exact integer linear
// algebra: no floating point, no rounding, no tolerance.
//
// 🚀 What is chembal?
//
//	A small engine plus CLI that turns "Fe + O2 -> Fe2O3" into
//	"4Fe + 3O₂ → 2Fe₂O₃":
//		• Term model: elements, free electrons, nested groups, charges
//		• Conservation matrix: one row per element (and charge), one column per term
//		• Fraction-free Gaussian elimination over int64, overflow-checked
//		• Null-space classification: no solution, unique, or an integer basis
//		• Canonical coefficients: minimal, majority-positive
//
// ✨ Why chembal?
//
//   - Exact: every intermediate value stays an integer
//   - Honest: overflow is reported, never wrapped
//   - Complete answers: underdetermined equations yield a full basis
//
// Packages:
//
//	term/     Term tree, ChemEq, stoichiometry collapse, coefficient assignment
//	matrix/   integer Dense matrix, RowReduce, Solve, Normalize, MulVec
//	balance/  conservation matrix builder and the Balance / BalanceAll pipeline
//	parse/    textual notation → ChemEq
//	format/   ChemEq → Unicode text (₂, ³⁺, e⁻), matrix dumps
//	config/   file / environment / flag configuration
//	cmd/chembal/ command-line front end
//
// Quick example:
//
//	eq, _ := parse.Equation("H2 + O2 -> H2O")
//	res, _ := balance.Balance(eq)
//	fmt.Println(res.Solution.Kind, format.Equation(eq)) // unique 2H₂ + O₂ → 2H₂O
//
//	go install github.com/katalvlaran/chembal/cmd/chembal@latest
package chembal
