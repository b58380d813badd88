// SPDX-License-Identifier: MIT

// Command chembal balances chemical equations.
package main

import (
	"os"

	"github.com/katalvlaran/chembal/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
