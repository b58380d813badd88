// SPDX-License-Identifier: MIT

// Package balance: functional options for Balance and BalanceAll.
package balance

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/chembal/matrix"
)

// DefaultWorkers bounds BalanceAll concurrency when WithWorkers is not given.
const DefaultWorkers = 4

const panicWorkersInvalid = "balance: WithWorkers: limit must be > 0"

// Option configures a balancing run.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	matrix  []matrix.Option
	workers int
}

// WithLogger routes stage-level debug records to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPivot selects the pivot strategy of the reducer and solver.
// Panics on an unknown strategy (programmer error).
func WithPivot(p matrix.PivotStrategy) Option {
	opt := matrix.WithPivot(p)

	return func(o *options) { o.matrix = append(o.matrix, opt) }
}

// WithMatrixOptions forwards raw matrix options (e.g. WithoutContentReduction).
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrix = append(o.matrix, opts...) }
}

// WithWorkers bounds the number of concurrent runs in BalanceAll.
// Panics when n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

func gatherOptions(user ...Option) options {
	o := options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: DefaultWorkers,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
