// SPDX-License-Identifier: MIT
// Package matrix: column statistics of sample matrices (one observation
// per row, one variable per column) and tolerance comparison.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means) // subtract per-column mean
//   - Covariance(X)    -> (Cov, means) // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - AllClose(a, b, rtol, atol)       // |a-b| ≤ atol + rtol·|b| element-wise

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opAllClose      = "AllClose"
)

// CenterColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: Validate X.
//   - Stage 2: Sum each column in row order and divide by r.
//   - Stage 3: Broadcast-subtract the means into a fresh copy.
//
// Returns the centered r×c copy and the c column means.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns[T scalar.Float](X *Dense[T]) (*Dense[T], vector.Vector[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.r, X.c
	means := vector.New[T](c)
	var i, j int
	for i = 0; i < r; i++ {
		row := X.row(i)
		for j = 0; j < c; j++ {
			means[j] += row[j]
		}
	}
	invR := 1 / T(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	res := X.Clone()
	for i = 0; i < r; i++ {
		row := res.row(i)
		for j = 0; j < c; j++ {
			row[j] -= means[j]
		}
	}

	return res, means, nil
}

// Covariance returns the c×c sample covariance of the columns of X,
// (Xcᵀ·Xc)/(r-1) with Xc = CenterColumns(X), and the column means.
// The result is symmetric; its diagonal holds the per-column variances.
//
// Errors:
//   - ErrNilMatrix,
//   - ErrDimensionMismatch when X has fewer than two rows.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance[T scalar.Float](X *Dense[T]) (*Dense[T], vector.Vector[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Gram matrix of the centered columns; upper triangle then mirror.
	c := X.c
	cov := mustDense[T](c, c)
	var i, j, k int
	for k = 0; k < X.r; k++ {
		row := xc.row(k)
		for i = 0; i < c; i++ {
			for j = i; j < c; j++ {
				cov.data[i*c+j] += row[i] * row[j]
			}
		}
	}
	inv := 1 / T(X.r-1)
	for i = 0; i < c; i++ {
		for j = i; j < c; j++ {
			v := cov.data[i*c+j] * inv
			cov.data[i*c+j] = v
			cov.data[j*c+i] = v
		}
	}

	return cov, means, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol·|b| holds for every element.
// Negative tolerances are taken by absolute value.
//
// Errors:
//   - ErrNaNInf for a NaN or infinite tolerance,
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose[T scalar.Float](a, b *Dense[T], rtol, atol T) (bool, error) {
	if !scalar.IsFinite(rtol) || !scalar.IsFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = scalar.Abs(rtol), scalar.Abs(atol)

	for i, bv := range b.data {
		if scalar.Abs(a.data[i]-bv) > atol+rtol*scalar.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
