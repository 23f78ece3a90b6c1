// SPDX-License-Identifier: MIT

// Package ops: Householder QR factorization of square matrices.
package ops

import (
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

const opQR = "QR"

// QR returns the orthogonal Q and upper-triangular R with a = Q·R.
//
// Implementation:
//   - Stage 1: Copy a into R and start Qᵀ from the identity.
//   - Stage 2: For every column k, build the Householder vector v that maps
//     R[k:,k] onto -sign(R[k][k])·‖R[k:,k]‖·e_k and apply H = I - 2vvᵀ/vᵀv
//     to R and to Qᵀ from the left. Zero columns are skipped.
//   - Stage 3: Transpose the accumulated Qᵀ.
//
// Entries of R below the diagonal are set to exactly 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func QR[T scalar.Float](a *matrix.Dense[T]) (q, r *matrix.Dense[T], err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}
	n := a.Rows()
	rr := a.RowVectors()
	qt := make([]vector.Vector[T], n)
	for i := range qt {
		qt[i] = vector.New[T](n)
		qt[i][i] = 1
	}

	v := make([]T, n)
	var i, k int
	for k = 0; k < n; k++ {
		var norm T
		for i = k; i < n; i++ {
			norm += rr[i][k] * rr[i][k]
		}
		norm = scalar.Sqrt(norm)
		if norm == 0 {
			continue
		}
		alpha := norm
		if rr[k][k] >= 0 {
			alpha = -norm
		}
		for i = k; i < n; i++ {
			v[i] = rr[i][k]
		}
		v[k] -= alpha
		var beta T
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		tau := 2 / beta

		reflect(rr, v, k, k, tau)
		reflect(qt, v, k, 0, tau)
		for i = k + 1; i < n; i++ {
			rr[i][k] = 0
		}
	}

	if r, err = matrix.NewDenseFromRows(rr); err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}
	qtd, err := matrix.NewDenseFromRows(qt)
	if err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}
	if q, err = matrix.Transpose(qtd); err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}

	return q, r, nil
}

// reflect applies I - tau·vvᵀ (v nonzero from row k) to the columns ≥ c0 of rows.
func reflect[T scalar.Float](rows []vector.Vector[T], v []T, k, c0 int, tau T) {
	n := len(rows)
	for j := c0; j < len(rows[0]); j++ {
		var s T
		for i := k; i < n; i++ {
			s += v[i] * rows[i][j]
		}
		s *= tau
		for i := k; i < n; i++ {
			rows[i][j] -= s * v[i]
		}
	}
}
