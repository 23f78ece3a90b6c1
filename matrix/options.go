// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults.
//
// Options are consumed by the structural predicates (IsOrthogonal,
// IsRotation) and by DeterminantRows, which picks between cofactor expansion
// and Gaussian elimination.
package matrix

import "github.com/katalvlaran/lvgeom/scalar"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrthogonalityTolerance bounds |row_i·row_j| for i≠j in IsOrthogonal.
	DefaultOrthogonalityTolerance = 1e-5

	// DefaultRotationFactor multiplies eps(T) to bound |det-1| in IsRotation.
	DefaultRotationFactor = 100

	// DefaultCofactorLimit32 is the largest size for which DeterminantRows uses
	// cofactor expansion on 4-byte floats.
	DefaultCofactorLimit32 = 5

	// DefaultCofactorLimit64 is the same limit for 8-byte floats.
	DefaultCofactorLimit64 = 6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid      = "matrix: WithOrthogonalityTolerance: tol must be finite, non-negative"
	panicRotationFactorInvalid = "matrix: WithRotationFactor: factor must be finite, positive"
	panicCofactorLimitInvalid  = "matrix: WithCofactorLimit: limit must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	orthoTol       float64 // DefaultOrthogonalityTolerance
	rotationFactor float64 // DefaultRotationFactor
	cofactorLimit  int     // 0 ⇒ per-type default
}

// WithOrthogonalityTolerance sets the pairwise dot-product bound of IsOrthogonal.
// Panics when tol is NaN, infinite or negative.
//
// AI-Hints:
//   - float32 rotation matrices built from trigonometry need about 1e-5;
//     tighten for float64 data.
func WithOrthogonalityTolerance(tol float64) Option {
	if !scalar.IsFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.orthoTol = tol }
}

// WithRotationFactor sets k in |det-1| ≤ k·eps(T) for IsRotation.
func WithRotationFactor(k float64) Option {
	if !scalar.IsFinite(k) || k <= 0 {
		panic(panicRotationFactorInvalid)
	}

	return func(o *Options) { o.rotationFactor = k }
}

// WithCofactorLimit forces the cofactor/Gauss crossover of DeterminantRows:
// sizes ≤ limit use cofactor expansion.
func WithCofactorLimit(limit int) Option {
	if limit < 1 {
		panic(panicCofactorLimitInvalid)
	}

	return func(o *Options) { o.cofactorLimit = limit }
}

// gatherOptions resolves defaults then applies user setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		orthoTol:       DefaultOrthogonalityTolerance,
		rotationFactor: DefaultRotationFactor,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// cofactorLimitFor returns the effective crossover for scalar type T.
func cofactorLimitFor[T scalar.Float](o Options) int {
	if o.cofactorLimit > 0 {
		return o.cofactorLimit
	}
	if scalar.Epsilon[T]() > 1e-10 { // 4-byte float
		return DefaultCofactorLimit32
	}

	return DefaultCofactorLimit64
}
