// SPDX-License-Identifier: MIT
// Package parse: recursive-descent parser.
//
// Grammar:
//
//	equation := side arrow side
//	arrow    := '='+ | '-'+ '>' | '→'
//	side     := term ('+' term)*
//	term     := coef? ( "e(-)" | body charge? )
//	body     := unit+ (sep coef? unit+)*
//	unit     := element | '(' unit+ ')' coef? | '[' unit+ ']' coef?
//	element  := [A-Z][a-z]* coef?
//	charge   := '(' coef? ('+' | '-') ')'
//	sep      := '·' | '.' | '*'
//
// Whitespace is allowed around '+' and the arrow only.

package parse

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/katalvlaran/chembal/term"
)

const electronToken = "e(-)"

// Equation parses s into a ChemEq whose top-level multipliers are all 1.
//
// Errors:
//   - *Error (wrapping ErrSyntax) with the rune offset of the first
//     offending character. Zero and int64-overflowing counts are syntax
//     errors too.
func Equation(s string) (*term.ChemEq, error) {
	p := &parser{src: []rune(s)}

	p.skipSpace()
	left, err := p.side()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if err = p.arrow(); err != nil {
		return nil, err
	}
	p.skipSpace()
	right, err := p.side()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.peek())
	}

	terms := append(left, right...)

	return &term.ChemEq{Terms: terms, LeftLen: len(left)}, nil
}

// Term parses a single top-level term such as "CuSO4·5H2O" or "Fe(3+)".
func Term(s string) (*term.Group, error) {
	p := &parser{src: []rune(s)}
	g, err := p.term()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.peek())
	}

	return g, nil
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}

	return p.src[p.pos]
}

func (p *parser) peekAt(off int) rune {
	if p.pos+off >= len(p.src) {
		return 0
	}

	return p.src[p.pos+off]
}

func (p *parser) errorf(format string, args ...any) error {
	return &Error{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

func (p *parser) hasPrefix(s string) bool {
	i := p.pos
	for _, r := range s {
		if i >= len(p.src) || p.src[i] != r {
			return false
		}
		i++
	}

	return true
}

func (p *parser) arrow() error {
	switch p.peek() {
	case '→':
		p.pos++
	case '=':
		for p.peek() == '=' {
			p.pos++
		}
	case '-':
		for p.peek() == '-' {
			p.pos++
		}
		if p.peek() != '>' {
			return p.errorf("expected '>' to finish the arrow")
		}
		p.pos++
	default:
		if p.eof() {
			return p.errorf("expected an arrow, found end of input")
		}

		return p.errorf("expected an arrow, found %q", p.peek())
	}

	return nil
}

func (p *parser) side() ([]*term.Group, error) {
	var out []*term.Group
	for {
		g, err := p.term()
		if err != nil {
			return nil, err
		}
		out = append(out, g)

		mark := p.pos
		p.skipSpace()
		if p.peek() != '+' {
			p.pos = mark

			return out, nil
		}
		p.pos++
		p.skipSpace()
	}
}

func (p *parser) term() (*term.Group, error) {
	// The leading coefficient is recomputed by balancing.
	if _, err := p.coef(); err != nil {
		return nil, err
	}
	if p.hasPrefix(electronToken) {
		p.pos += len(electronToken)

		return term.FreeElectron(), nil
	}

	members, err := p.body()
	if err != nil {
		return nil, err
	}
	charge, err := p.charge()
	if err != nil {
		return nil, err
	}

	return term.Ion(charge, members...), nil
}

func (p *parser) body() ([]term.Term, error) {
	members, err := p.units()
	if err != nil {
		return nil, err
	}
	for isSeparator(p.peek()) {
		p.pos++
		n, err := p.coef()
		if err != nil {
			return nil, err
		}
		part, err := p.units()
		if err != nil {
			return nil, err
		}
		members = append(members, &term.Group{Members: part, Multiplier: n})
	}

	return members, nil
}

// units parses unit+ and stops before anything that cannot start a unit,
// including a trailing charge.
func (p *parser) units() ([]term.Term, error) {
	var out []term.Term
	for {
		r := p.peek()
		switch {
		case isUpper(r):
			el, err := p.element()
			if err != nil {
				return nil, err
			}
			out = append(out, el)
		case r == '(' && !p.chargeAhead(), r == '[':
			g, err := p.bracketed()
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		default:
			if len(out) == 0 {
				if p.eof() {
					return nil, p.errorf("expected an element or group, found end of input")
				}

				return nil, p.errorf("expected an element or group, found %q", r)
			}

			return out, nil
		}
	}
}

func (p *parser) element() (term.Element, error) {
	start := p.pos
	p.pos++
	for isLower(p.peek()) {
		p.pos++
	}
	sym := string(p.src[start:p.pos])
	n, err := p.coef()
	if err != nil {
		return term.Element{}, err
	}

	return term.Element{Symbol: sym, Count: n}, nil
}

func (p *parser) bracketed() (*term.Group, error) {
	open := p.peek()
	closing := ')'
	if open == '[' {
		closing = ']'
	}
	p.pos++

	members, err := p.units()
	if err != nil {
		return nil, err
	}
	if p.peek() != closing {
		return nil, p.errorf("expected %q", closing)
	}
	p.pos++

	n, err := p.coef()
	if err != nil {
		return nil, err
	}

	return &term.Group{Members: members, Multiplier: n}, nil
}

// chargeAhead reports whether the input at pos reads '(' digits? sign ')'.
func (p *parser) chargeAhead() bool {
	if p.peek() != '(' {
		return false
	}
	i := 1
	for isDigit(p.peekAt(i)) {
		i++
	}
	sign := p.peekAt(i)

	return (sign == '+' || sign == '-') && p.peekAt(i+1) == ')'
}

func (p *parser) charge() (int64, error) {
	if !p.chargeAhead() {
		return 0, nil
	}
	p.pos++
	n, err := p.coef()
	if err != nil {
		return 0, err
	}
	if p.peek() == '-' {
		n = -n
	}
	p.pos += 2 // sign and ')'

	return n, nil
}

// coef parses an optional positive decimal count; absent means 1.
func (p *parser) coef() (int64, error) {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	if start == p.pos {
		return 1, nil
	}
	digits := string(p.src[start:p.pos])
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, &Error{Pos: start, Msg: fmt.Sprintf("count %s out of range", digits)}
	}
	if n == 0 {
		return 0, &Error{Pos: start, Msg: "zero count"}
	}

	return n, nil
}

func isSeparator(r rune) bool { return r == '·' || r == '.' || r == '*' }
func isDigit(r rune) bool     { return r >= '0' && r <= '9' }
func isUpper(r rune) bool     { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool     { return r >= 'a' && r <= 'z' }
