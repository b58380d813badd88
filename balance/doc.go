// Package balance turns a ChemEq into balanced integer coefficients.
//
// 🚀 Pipeline:
//
//	term.ChemEq ──BuildMatrix──▶ conservation matrix ──matrix.RowReduce──▶
//	echelon form + rank ──matrix.Solve──▶ Solution ──SetCoefficients──▶ ChemEq
//
// ✨ Key features:
//   - exact integers end to end; overflow is an error, never a wrap-around
//   - every returned vector is re-checked against the original matrix
//   - the built and reduced matrices are kept on the Result for diagnostics
//   - BalanceAll balances many independent equations concurrently; each run
//     owns its own matrix
//
// ⚙️ Usage:
//
//	res, err := balance.Balance(eq, balance.WithLogger(logger))
//	switch res.Solution.Kind {
//	case matrix.SolutionUnique:   // eq now carries the coefficients
//	case matrix.SolutionNone:     // unbalanceable
//	case matrix.SolutionInfinite: // res.Solution.Basis spans all answers
//	}
package balance
