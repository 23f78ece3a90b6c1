// SPDX-License-Identifier: MIT

// Package ops: EigenSymmetric computes all eigenvalues and eigenvectors of a
// real symmetric matrix using the cyclic threshold Jacobi rotation method.
package ops

import (
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

const opEigen = "EigenSymmetric"

// Eigen holds an eigen-decomposition: Vectors[k] is the unit eigenvector of Values[k].
type Eigen[T scalar.Float] struct {
	Values  vector.Vector[T]
	Vectors []vector.Vector[T]
}

// EigenSymmetric performs a Jacobi eigen-decomposition of the symmetric matrix a.
//
// Implementation:
//   - Stage 1: validate a is square and symmetric: |a_ij - a_ji| within
//     tolerance, or within WithSymmetryTolerance when given.
//   - Stage 2: sweeps. Each sweep computes the mean |a_pq| over the strict
//     upper triangle; below tolerance the run has converged. Otherwise every
//     pair with |a_pq| above half that mean is annihilated by a plane rotation.
//   - Stage 3: the diagonal holds the eigenvalues; the rotations accumulated
//     from the identity hold the eigenvectors as rows.
//
// Behavior highlights:
//   - t = sign(phi)/(|phi| + sqrt(phi²+1)) avoids cancellation;
//     t = 1/(2·phi) when phi² would overflow.
//   - Values are in diagonal order, not sorted.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry, matrix.ErrNaNInf,
//   - *EigenNotConvergedError (unwraps to ErrEigenNotConverged) after the
//     sweep budget (DefaultMaxSweeps or WithMaxSweeps).
//
// Complexity:
//   - Time O(n³) per sweep, Space O(n²).
func EigenSymmetric[T scalar.Float](a *matrix.Dense[T], tolerance T, opts ...Option) (Eigen[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return Eigen[T]{}, opsErrorf(opEigen, err)
	}
	if !scalar.IsFinite(tolerance) {
		return Eigen[T]{}, opsErrorf(opEigen, matrix.ErrNaNInf)
	}
	o := gatherOptions(opts...)
	symTol := tolerance
	if o.symTol >= 0 {
		symTol = T(o.symTol)
	}
	if err := matrix.ValidateSymmetric(a, symTol); err != nil {
		return Eigen[T]{}, opsErrorf(opEigen, err)
	}
	w := a.RowVectors()
	n := len(w)
	vecs := vector.Identity[T](n)

	var mean T
	for sweep := 0; sweep < o.maxSweeps; sweep++ {
		mean = meanOffDiagonal(w)
		o.logger.Debug("jacobi sweep", "sweep", sweep, "mean", float64(mean))
		if mean == 0 || mean < tolerance {
			return collect(w, vecs), nil
		}
		threshold := mean / 2
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				if scalar.Abs(w[p][q]) > threshold {
					rotate(w, vecs, p, q)
				}
			}
		}
	}
	if mean = meanOffDiagonal(w); mean == 0 || mean < tolerance {
		return collect(w, vecs), nil
	}

	return Eigen[T]{}, &EigenNotConvergedError{Sweeps: o.maxSweeps, Mean: float64(mean)}
}

// meanOffDiagonal returns mean |w[i][j]| over i < j; 0 for n == 1.
func meanOffDiagonal[T scalar.Float](w []vector.Vector[T]) T {
	n := len(w)
	if n < 2 {
		return 0
	}
	var s T
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			s += scalar.Abs(w[i][j])
		}
	}

	return s / T(n*(n-1)/2)
}

// rotate annihilates w[p][q] (p < q) and applies the same rotation to the
// eigenvector rows.
func rotate[T scalar.Float](w, vecs []vector.Vector[T], p, q int) {
	apq := w[p][q]
	phi := (w[q][q] - w[p][p]) / (2 * apq)
	var t T
	if phi2 := phi * phi; scalar.IsFinite(phi2) {
		t = 1 / (scalar.Abs(phi) + scalar.Sqrt(phi2+1))
		if phi < 0 {
			t = -t
		}
	} else {
		t = 1 / (2 * phi)
	}
	c := 1 / scalar.Sqrt(t*t+1)
	s := t * c
	tau := s / (1 + c)

	h := t * apq
	w[p][p] -= h
	w[q][q] += h
	w[p][q] = 0
	w[q][p] = 0

	for k := range w {
		if k == p || k == q {
			continue
		}
		g, hk := w[k][p], w[k][q]
		w[k][p] = g - s*(hk+g*tau)
		w[k][q] = hk + s*(g-hk*tau)
		w[p][k] = w[k][p]
		w[q][k] = w[k][q]
	}
	vp, vq := vecs[p], vecs[q]
	for k := range vp {
		g, hk := vp[k], vq[k]
		vp[k] = g - s*(hk+g*tau)
		vq[k] = hk + s*(g-hk*tau)
	}
}

func collect[T scalar.Float](w, vecs []vector.Vector[T]) Eigen[T] {
	values := make(vector.Vector[T], len(w))
	for i := range w {
		values[i] = w[i][i]
	}

	return Eigen[T]{Values: values, Vectors: vecs}
}
