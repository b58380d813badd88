package balance_test

import (
	"fmt"

	"github.com/katalvlaran/chembal/balance"
	"github.com/katalvlaran/chembal/term"
)

// ExampleBalance balances the combustion of methane.
func ExampleBalance() {
	// CH4 + O2 -> CO2 + H2O
	eq := &term.ChemEq{
		Terms: []*term.Group{
			term.Molecule(term.Element{Symbol: "C", Count: 1}, term.Element{Symbol: "H", Count: 4}),
			term.Molecule(term.Element{Symbol: "O", Count: 2}),
			term.Molecule(term.Element{Symbol: "C", Count: 1}, term.Element{Symbol: "O", Count: 2}),
			term.Molecule(term.Element{Symbol: "H", Count: 2}, term.Element{Symbol: "O", Count: 1}),
		},
		LeftLen: 2,
	}

	res, err := balance.Balance(eq)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Symbols, res.Rank, res.Solution.Kind)
	fmt.Println(eq.Coefficients())
	// Output:
	// [C H O] 3 unique
	// [1 2 1 2]
}
