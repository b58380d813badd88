// SPDX-License-Identifier: MIT

package format

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/chembal/term"
)

const (
	arrow     = " → "
	plus      = " + "
	superPlus = '⁺'
	superMin  = '⁻'
)

var (
	subDigits   = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}
	superDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}
)

// Equation renders eq as "c₁A + c₂B → c₃C". A nil eq renders as "".
func Equation(eq *term.ChemEq, opts ...Option) string {
	if eq == nil {
		return ""
	}
	o := gatherOptions(opts...)

	var good, ill *color.Color
	if o.color {
		good = color.New(color.FgGreen, color.Bold)
		good.EnableColor()
		ill = color.New(color.FgYellow, color.Bold)
		ill.EnableColor()
	}

	var b strings.Builder
	for i, g := range eq.Terms {
		switch {
		case i == eq.LeftLen:
			b.WriteString(arrow)
		case i > 0:
			b.WriteString(plus)
		}
		if g == nil {
			continue
		}
		if g.Multiplier != 1 || o.unit {
			n := strconv.FormatInt(g.Multiplier, 10)
			switch {
			case !o.color:
				b.WriteString(n)
			case g.Multiplier > 0:
				b.WriteString(good.Sprint(n))
			default:
				b.WriteString(ill.Sprint(n))
			}
		}
		writeTop(&b, g)
	}

	return b.String()
}

// Term renders a single term. A top-level *Group is printed without its
// multiplier and without enclosing brackets.
func Term(t term.Term) string {
	var b strings.Builder
	if g, ok := t.(*term.Group); ok {
		writeTop(&b, g)
	} else {
		writeTerm(&b, t)
	}

	return b.String()
}

func writeTop(b *strings.Builder, g *term.Group) {
	if g == nil {
		return
	}
	for _, m := range g.Members {
		writeTerm(b, m)
	}
	writeCharge(b, g.Charge)
}

func writeTerm(b *strings.Builder, t term.Term) {
	switch v := t.(type) {
	case term.Element:
		b.WriteString(v.Symbol)
		writeSub(b, v.Count)
	case *term.Element:
		if v != nil {
			b.WriteString(v.Symbol)
			writeSub(b, v.Count)
		}
	case term.Electron:
		b.WriteByte('e')
	case *term.Group:
		if v == nil {
			return
		}
		b.WriteByte('(')
		for _, m := range v.Members {
			writeTerm(b, m)
		}
		b.WriteByte(')')
		writeSub(b, v.Multiplier)
		writeCharge(b, v.Charge)
	}
}

// writeSub writes n as subscript digits; 1 is omitted.
func writeSub(b *strings.Builder, n int64) {
	if n == 1 {
		return
	}
	writeScript(b, n, &subDigits, '₋')
}

func writeCharge(b *strings.Builder, charge int64) {
	if charge == 0 {
		return
	}
	sign := superPlus
	mag := charge
	if charge < 0 {
		sign = superMin
		mag = -charge
	}
	if mag != 1 {
		writeScript(b, mag, &superDigits, superMin)
	}
	b.WriteRune(sign)
}

func writeScript(b *strings.Builder, n int64, digits *[10]rune, minus rune) {
	s := strconv.FormatInt(n, 10)
	for _, r := range s {
		if r == '-' {
			b.WriteRune(minus)
			continue
		}
		b.WriteRune(digits[r-'0'])
	}
}
