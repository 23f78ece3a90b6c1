// SPDX-License-Identifier: MIT
// Package ops: sentinel and typed errors of the factorizations.
//
// Typed errors carry diagnostics and unwrap to the sentinels, so callers
// may use either errors.Is (classification) or errors.As (payload).

package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
)

var (
	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal term is negative.
	ErrNotPositiveDefinite = errors.New("ops: matrix is not positive definite")

	// ErrEigenNotConverged is returned by EigenSymmetric after the sweep budget.
	ErrEigenNotConverged = errors.New("ops: eigen decomposition did not converge")
)

// NotPositiveDefiniteError reports the failing step of a Cholesky factorization.
type NotPositiveDefiniteError[T scalar.Float] struct {
	Value  T                // negative argument of the square root
	Column int              // diagonal index where the factorization stopped
	A      *matrix.Dense[T] // input matrix (copy)
	L      *matrix.Dense[T] // partial factor; columns ≥ Column are incomplete
}

// Error implements error.
func (e *NotPositiveDefiniteError[T]) Error() string {
	return fmt.Sprintf("Cholesky: column %d: sqrt argument %g: %v", e.Column, e.Value, ErrNotPositiveDefinite)
}

// Unwrap exposes ErrNotPositiveDefinite to errors.Is.
func (e *NotPositiveDefiniteError[T]) Unwrap() error { return ErrNotPositiveDefinite }

// EigenNotConvergedError reports a Jacobi run that exhausted its sweeps.
type EigenNotConvergedError struct {
	Sweeps int     // sweeps performed
	Mean   float64 // mean |off-diagonal| after the last sweep
}

// Error implements error.
func (e *EigenNotConvergedError) Error() string {
	return fmt.Sprintf("EigenSymmetric: %d sweeps, mean off-diagonal %g: %v", e.Sweeps, e.Mean, ErrEigenNotConverged)
}

// Unwrap exposes ErrEigenNotConverged to errors.Is.
func (e *EigenNotConvergedError) Unwrap() error { return ErrEigenNotConverged }

// opsErrorf wraps err with an operation tag.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
