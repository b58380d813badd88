// SPDX-License-Identifier: MIT

package format

// Option configures Equation.
type Option func(*options)

type options struct {
	unit  bool
	color bool
}

// WithUnitCoefficients prints coefficients of 1 instead of omitting them.
func WithUnitCoefficients() Option { return func(o *options) { o.unit = true } }

// WithColor highlights coefficients with ANSI colours, even when the output
// is not a terminal.
func WithColor() Option { return func(o *options) { o.color = true } }

func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
