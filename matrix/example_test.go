package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/chembal/matrix"
)

// ExampleRowReduce reduces the conservation matrix of Fe + O2 -> Fe2O3
// and solves its one-dimensional null space.
func ExampleRowReduce() {
	// Rows: Fe, O. Columns: Fe, O2, Fe2O3 (products negated).
	m, _ := matrix.NewDenseFromRows([][]int64{
		{1, 0, -2},
		{0, 2, -3},
	})

	rank, _ := matrix.RowReduce(m)
	sol, _ := matrix.Solve(m, rank)

	fmt.Println("rank:", rank)
	fmt.Println("kind:", sol.Kind)
	fmt.Println("coefficients:", sol.Vector())
	// Output:
	// rank: 2
	// kind: unique
	// coefficients: [4 3 2]
}

// ExampleSolve shows an underdetermined system yielding a basis.
func ExampleSolve() {
	// Na + Cl2 -> NaCl + Na + Cl2
	m, _ := matrix.NewDenseFromRows([][]int64{
		{1, 0, -1, -1, 0},
		{0, 2, -1, 0, -2},
	})

	rank, _ := matrix.RowReduce(m)
	sol, _ := matrix.Solve(m, rank)

	fmt.Println("kind:", sol.Kind)
	fmt.Println("dimension:", sol.Dimension())
	// Output:
	// kind: infinite
	// dimension: 3
}
