// SPDX-License-Identifier: MIT

// Package ops: functional configuration of the iterative solvers.
package ops

import (
	"io"
	"log/slog"
	"math"
)

// DefaultMaxSweeps caps the number of Jacobi sweeps.
const DefaultMaxSweeps = 20

const (
	panicMaxSweepsInvalid  = "ops: WithMaxSweeps: sweeps must be >= 1"
	panicLoggerNil         = "ops: WithLogger: logger must not be nil"
	panicSymmetryTolerance = "ops: WithSymmetryTolerance: tolerance must be finite and >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxSweeps int
	logger    *slog.Logger
	symTol    float64 // < 0: reuse the convergence tolerance
}

// WithMaxSweeps overrides DefaultMaxSweeps.
func WithMaxSweeps(n int) Option {
	if n < 1 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = n }
}

// WithLogger routes per-sweep diagnostics (Debug level) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithSymmetryTolerance sets the bound on |a_ij - a_ji| that EigenSymmetric
// accepts, separately from its convergence tolerance.
func WithSymmetryTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 1) {
		panic(panicSymmetryTolerance)
	}

	return func(o *Options) { o.symTol = tol }
}

// discardLogger drops every record; the package never logs unless asked to.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func gatherOptions(opts ...Option) Options {
	o := Options{maxSweeps: DefaultMaxSweeps, logger: discardLogger, symTol: -1}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
