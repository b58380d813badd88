// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/chembal/matrix"
	"github.com/katalvlaran/chembal/term"
)

// chargeLabel replaces term.ChargeSymbol in row labels.
const chargeLabel = "charge"

// Matrix renders m with one labelled row per line, entries right-aligned:
//
//	H [2 0 -2]
//	O [0 2 -1]
//
// Rows beyond len(symbols) are labelled by index. A nil m renders as "".
func Matrix(m matrix.Matrix, symbols []string) string {
	if matrix.ValidateNotNil(m) != nil {
		return ""
	}
	rows, cols := m.Rows(), m.Cols()

	labels := make([]string, rows)
	labelW := 0
	cells := make([][]string, rows)
	cellW := 1
	for i := 0; i < rows; i++ {
		switch {
		case i >= len(symbols):
			labels[i] = "#" + strconv.Itoa(i)
		case symbols[i] == term.ChargeSymbol:
			labels[i] = chargeLabel
		default:
			labels[i] = symbols[i]
		}
		labelW = max(labelW, len(labels[i]))

		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			cells[i][j] = strconv.FormatInt(v, 10)
			cellW = max(cellW, len(cells[i][j]))
		}
	}

	var b strings.Builder
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "%-*s [", labelW, labels[i])
		for j, c := range cells[i] {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", cellW, c)
		}
		b.WriteString("]\n")
	}

	return b.String()
}
