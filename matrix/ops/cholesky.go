// SPDX-License-Identifier: MIT

// Package ops: Cholesky factorization A = L·Lᵀ of symmetric positive-definite
// matrices, and the triangular solves built on it.
package ops

import (
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

const (
	opCholesky      = "Cholesky"
	opCholeskySolve = "CholeskySolve"
)

// Cholesky returns the lower-triangular L with L·Lᵀ = a.
//
// Implementation:
//   - Column by column, L[k][i] = (a[k][i] - Σ_{j<i} L[i][j]·L[k][j]) / L[i][i]
//     for k > i, and L[k][k] = sqrt(a[k][k] - Σ_{j<k} L[k][j]²).
//   - Only the lower triangle of a is read; strictly-upper entries of L are 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare,
//   - *NotPositiveDefiniteError[T] (unwraps to ErrNotPositiveDefinite) when a
//     square-root argument is negative. Zero arguments are accepted.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky[T scalar.Float](a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, opsErrorf(opCholesky, err)
	}
	n := a.Rows()
	src := a.RowVectors()
	l := make([]vector.Vector[T], n)
	for i := range l {
		l[i] = vector.New[T](n)
	}

	var i, j, k int
	for i = 0; i < n; i++ {
		// diagonal
		d := src[i][i]
		for j = 0; j < i; j++ {
			d -= l[i][j] * l[i][j]
		}
		if d < 0 {
			partial, _ := matrix.NewDenseFromRows(l)
			return nil, &NotPositiveDefiniteError[T]{Value: d, Column: i, A: a.Clone(), L: partial}
		}
		l[i][i] = scalar.Sqrt(d)

		// column below the diagonal
		for k = i + 1; k < n; k++ {
			s := src[k][i]
			for j = 0; j < i; j++ {
				s -= l[i][j] * l[k][j]
			}
			l[k][i] = s / l[i][i]
		}
	}

	return matrix.NewDenseFromRows(l)
}

// CholeskySolve solves a·x = b for symmetric positive-definite a by
// factorizing and running forward (L·y = b) then backward (Lᵀ·x = y)
// substitution.
//
// Errors: as Cholesky; matrix.ErrDimensionMismatch when len(b) != n;
// matrix.ErrSingular when a diagonal of L is zero.
// Complexity: O(n³).
func CholeskySolve[T scalar.Float](a *matrix.Dense[T], b vector.Vector[T]) (vector.Vector[T], error) {
	l, err := Cholesky(a)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateVecLen(b, l.Rows()); err != nil {
		return nil, opsErrorf(opCholeskySolve, err)
	}
	rows := l.RowVectors()
	n := len(rows)

	y := make(vector.Vector[T], n)
	for i := 0; i < n; i++ {
		if rows[i][i] == 0 {
			return nil, opsErrorf(opCholeskySolve, matrix.ErrSingular)
		}
		s := b[i]
		for j := 0; j < i; j++ {
			s -= rows[i][j] * y[j]
		}
		y[i] = s / rows[i][i]
	}

	x := make(vector.Vector[T], n)
	for i := n - 1; i >= 0; i-- {
		s := y[i]
		for j := i + 1; j < n; j++ {
			s -= rows[j][i] * x[j]
		}
		x[i] = s / rows[i][i]
	}

	return x, nil
}
