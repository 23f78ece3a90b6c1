// SPDX-License-Identifier: MIT

package simplex

import (
	"io"
	"log/slog"
)

// DefaultEpsilonScale multiplies machine epsilon and max|c| to form the
// deadband below which a reduced cost is treated as non-positive.
const DefaultEpsilonScale = 2

const (
	panicLoggerNil           = "simplex: WithLogger: logger must not be nil"
	panicEpsilonScaleNonPos  = "simplex: WithEpsilonScale: scale must be > 0"
	panicMaxIterationsNonPos = "simplex: WithMaxIterations: limit must be > 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger       *slog.Logger
	verbose      bool
	epsilonScale float64
	maxIter      int // 0: the binomial bound alone
}

// WithLogger sets the destination of verbose tableau dumps.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithVerbose logs the full tableau after preprocessing and after every
// pivot, at Debug level.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// WithEpsilonScale overrides DefaultEpsilonScale.
func WithEpsilonScale(k float64) Option {
	if !(k > 0) {
		panic(panicEpsilonScaleNonPos)
	}

	return func(o *Options) { o.epsilonScale = k }
}

// WithMaxIterations caps the pivot budget of each phase below its binomial
// bound. A run that exhausts the budget reports Cycling.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsNonPos)
	}

	return func(o *Options) { o.maxIter = n }
}

// pivotLimit returns the pivot budget of a tableau with the given numbers
// of variables and basic rows: C(vars, rows), capped by WithMaxIterations.
func (o Options) pivotLimit(vars, rows int) int {
	limit := Binomial(vars, rows)
	if o.maxIter > 0 && o.maxIter < limit {
		limit = o.maxIter
	}

	return limit
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func gatherOptions(opts ...Option) Options {
	o := Options{logger: discardLogger, epsilonScale: DefaultEpsilonScale}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
