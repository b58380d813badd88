// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the reduction kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// PivotStrategy selects how RowReduce picks a pivot within a column.
// Every strategy yields the same rank and the same normalised solution;
// they differ only in intermediate coefficient growth.
type PivotStrategy int

const (
	// PivotLeastAbs picks the nonzero entry of least absolute value
	// (ties: the topmost). Keeps intermediate growth small.
	PivotLeastAbs PivotStrategy = iota

	// PivotFirstNonZero picks the topmost nonzero entry.
	PivotFirstNonZero
)

// String implements fmt.Stringer.
func (p PivotStrategy) String() string {
	switch p {
	case PivotLeastAbs:
		return "least-abs"
	case PivotFirstNonZero:
		return "first-nonzero"
	default:
		return "unknown"
	}
}

// ParsePivotStrategy maps the String form back to a PivotStrategy.
// The boolean is false for unknown names.
func ParsePivotStrategy(s string) (PivotStrategy, bool) {
	switch s {
	case "least-abs", "":
		return PivotLeastAbs, true
	case "first-nonzero":
		return PivotFirstNonZero, true
	default:
		return PivotLeastAbs, false
	}
}

// ---------- Defaults (single source of truth) ----------

// DefaultPivot is the pivot strategy used when no option overrides it.
const DefaultPivot = PivotLeastAbs

// DefaultContentReduction divides every row produced by an elimination step
// by the gcd of its entries. The division is exact, so integrality holds.
const DefaultContentReduction = true

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotInvalid = "matrix: WithPivot: unknown pivot strategy"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivot   PivotStrategy // DefaultPivot
	content bool          // DefaultContentReduction
}

// Pivot returns the resolved pivot strategy.
func (o Options) Pivot() PivotStrategy { return o.pivot }

// WithPivot sets the pivot strategy used by RowReduce.
// Panics on an unknown strategy (programmer error).
func WithPivot(p PivotStrategy) Option {
	if p != PivotLeastAbs && p != PivotFirstNonZero {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = p }
}

// ContentReduction reports whether eliminated rows are reduced by their gcd.
func (o Options) ContentReduction() bool { return o.content }

// WithoutContentReduction keeps eliminated rows exactly as the cross
// multiplication produced them (textbook fraction-free rule, faster growth).
func WithoutContentReduction() Option {
	return func(o *Options) { o.content = false }
}

// WithContentReduction restores the default gcd reduction of eliminated rows.
func WithContentReduction() Option {
	return func(o *Options) { o.content = true }
}

// NewOptions resolves opts over the defaults; exported for facades that
// forward options (e.g. the balance package).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user setters over defaults; last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{pivot: DefaultPivot, content: DefaultContentReduction}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
