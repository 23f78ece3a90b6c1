// SPDX-License-Identifier: MIT
// Package matrix: linear systems by Gaussian elimination with partial
// pivoting and back substitution, plus small-size closed forms.
//
// Determinism & Performance:
//   - Pivot choice is the first row of maximal magnitude; results are
//     bit-stable across runs.
//   - Inputs are never modified; elimination runs on an augmented copy.

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// cramerLimit is the largest system solved by Cramer's rule / closed-form inverse.
const cramerLimit = 3

// SolveGauss solves a·x = b for square a.
//
// Implementation:
//   - Stage 1: validate, build the augmented n×(n+1) copy.
//   - Stage 2: forward elimination with partial pivoting.
//   - Stage 3: back substitution.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != n),
//   - ErrSingular (a pivot column is all zeros).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func SolveGauss[T scalar.Float](a *Dense[T], b vector.Vector[T]) (vector.Vector[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	rhs := mustDense[T](a.r, 1)
	copy(rhs.data, b)
	x, err := solveAugmented(a, rhs)
	if err != nil {
		return nil, err
	}

	return x.data, nil
}

// SolveGaussMulti solves a·X = B for every column of B in one elimination pass.
// B has n rows and any number of columns; the result has B's shape.
//
// Errors: as SolveGauss; ErrDimensionMismatch when B.Rows != n.
// Complexity: Time O(n²(n+m)), Space O(n(n+m)).
func SolveGaussMulti[T scalar.Float](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	if b.r != a.r {
		return nil, matrixErrorf(opGauss, ErrDimensionMismatch)
	}

	return solveAugmented(a, b)
}

// solveAugmented eliminates [a | b] and back-substitutes; shapes are validated.
func solveAugmented[T scalar.Float](a, b *Dense[T]) (*Dense[T], error) {
	n, m := a.r, b.c
	w := n + m
	aug := make([][]T, n)
	for i := range aug {
		aug[i] = make([]T, w)
		copy(aug[i], a.row(i))
		copy(aug[i][n:], b.row(i))
	}

	var i, j, k int
	for i = 0; i < n; i++ {
		p := pivotRow(aug, i)
		if aug[p][i] == 0 {
			return nil, matrixErrorf(opGauss, ErrSingular)
		}
		aug[p], aug[i] = aug[i], aug[p]
		for k = i + 1; k < n; k++ {
			f := aug[k][i] / aug[i][i]
			if f == 0 {
				continue
			}
			for j = i + 1; j < w; j++ {
				aug[k][j] -= f * aug[i][j]
			}
		}
	}

	x := mustDense[T](n, m)
	for c := 0; c < m; c++ {
		for i = n - 1; i >= 0; i-- {
			s := aug[i][n+c]
			for j = i + 1; j < n; j++ {
				s -= aug[i][j] * x.data[j*m+c]
			}
			x.data[i*m+c] = s / aug[i][i]
		}
	}

	return x, nil
}

// Inverse returns a⁻¹: closed-form adjugate for n ≤ 3, SolveGaussMulti(a, I) otherwise.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (zero determinant or pivot column).
// Complexity: O(n³).
func Inverse[T scalar.Float](a *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if a.r <= cramerLimit {
		return inverseSmall(a)
	}
	id, _ := NewIdentity[T](a.r)
	inv, err := SolveGaussMulti(a, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// inverseSmall is the adjugate inverse for n ∈ {1, 2, 3}.
func inverseSmall[T scalar.Float](a *Dense[T]) (*Dense[T], error) {
	n := a.r
	rows := a.RowVectors()
	idx := identityMap(n)
	det := cofactor(rows, idx, idx)
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	inv := mustDense[T](n, n)
	d := a.data
	switch n {
	case 1:
		inv.data[0] = 1 / det
	case 2:
		inv.data[0] = d[3] / det
		inv.data[1] = -d[1] / det
		inv.data[2] = -d[2] / det
		inv.data[3] = d[0] / det
	case 3:
		// inv[j][i] = cofactor(i, j) / det
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				r := []int{(i + 1) % 3, (i + 2) % 3}
				c := []int{(j + 1) % 3, (j + 2) % 3}
				inv.data[j*n+i] = cofactor(rows, r, c) / det
			}
		}
	}

	return inv, nil
}

// LinearSolve solves a·x = b: Cramer's rule for n ≤ 3, SolveGauss otherwise.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³).
func LinearSolve[T scalar.Float](a *Dense[T], b vector.Vector[T]) (vector.Vector[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if a.r <= cramerLimit {
		return cramer(a, b)
	}

	return SolveGauss(a, b)
}

// cramer replaces one column at a time by b: x_i = det(A_i) / det(A).
func cramer[T scalar.Float](a *Dense[T], b vector.Vector[T]) (vector.Vector[T], error) {
	n := a.r
	rows := a.RowVectors()
	idx := identityMap(n)
	det := cofactor(rows, idx, idx)
	if det == 0 {
		return nil, matrixErrorf(opCramer, ErrSingular)
	}
	x := make(vector.Vector[T], n)
	for c := 0; c < n; c++ {
		saved := make([]T, n)
		for r := 0; r < n; r++ {
			saved[r] = rows[r][c]
			rows[r][c] = b[r]
		}
		x[c] = cofactor(rows, idx, idx) / det
		for r := 0; r < n; r++ {
			rows[r][c] = saved[r]
		}
	}

	return x, nil
}
