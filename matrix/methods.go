// SPDX-License-Identifier: MIT
// Package matrix: structural methods on Dense (trace, diagonal, blocks,
// orthogonality) and thin facades over the determinant and solver kernels.

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// diagLen returns min(Rows, Cols).
func (m *Dense[T]) diagLen() int {
	if m.r < m.c {
		return m.r
	}

	return m.c
}

// Trace returns Σ m[i,i] over i < min(Rows, Cols).
// Complexity: O(min(r,c)).
func (m *Dense[T]) Trace() (T, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var s T
	for i := 0; i < m.diagLen(); i++ {
		s += m.data[i*m.c+i]
	}

	return s, nil
}

// Diagonal returns the main diagonal as a vector of length min(Rows, Cols).
func (m *Dense[T]) Diagonal() (vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	res := make(vector.Vector[T], m.diagLen())
	for i := range res {
		res[i] = m.data[i*m.c+i]
	}

	return res, nil
}

// Block copies the rows×cols sub-matrix whose top-left corner is (r0, c0).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (rows or cols ≤ 0),
//     ErrOutOfRange (block does not fit).
//
// Complexity: O(rows*cols).
func (m *Dense[T]) Block(r0, c0, rows, cols int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opBlock, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opBlock, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, matrixErrorf(opBlock, ErrOutOfRange)
	}

	res := mustDense[T](rows, cols)
	for i := 0; i < rows; i++ {
		copy(res.row(i), m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c0+cols])
	}

	return res, nil
}

// TopLeft copies the leading rows×cols block.
func (m *Dense[T]) TopLeft(rows, cols int) (*Dense[T], error) {
	return m.Block(0, 0, rows, cols)
}

// SetBlock overwrites the region starting at (r0, c0) with b.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense[T]) SetBlock(r0, c0 int, b *Dense[T]) error {
	if err := ValidateBinaryNotNil(m, b); err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	if r0 < 0 || c0 < 0 || r0+b.r > m.r || c0+b.c > m.c {
		return matrixErrorf(opSetBlock, ErrOutOfRange)
	}
	for i := 0; i < b.r; i++ {
		copy(m.data[(r0+i)*m.c+c0:], b.row(i))
	}

	return nil
}

// IsOrthogonal reports whether every row is a unit vector and every pair of
// distinct rows has |row_i·row_j| ≤ tolerance (DefaultOrthogonalityTolerance
// unless WithOrthogonalityTolerance is given).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func (m *Dense[T]) IsOrthogonal(opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}
	o := gatherOptions(opts...)

	return m.isOrthogonal(T(o.orthoTol)), nil
}

func (m *Dense[T]) isOrthogonal(tol T) bool {
	n := m.r
	for i := 0; i < n; i++ {
		if !vector.Vector[T](m.row(i)).IsUnit() {
			return false
		}
		for j := i + 1; j < n; j++ {
			if scalar.Abs(vector.Dot[T](m.row(i), m.row(j))) > tol {
				return false
			}
		}
	}

	return true
}

// IsRotation reports whether m is orthogonal with determinant 1 within
// DefaultRotationFactor·eps(T).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func (m *Dense[T]) IsRotation(opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}
	o := gatherOptions(opts...)
	if !m.isOrthogonal(T(o.orthoTol)) {
		return false, nil
	}
	det, err := DeterminantRows(m.RowVectors(), opts...)
	if err != nil {
		return false, err
	}

	return scalar.Abs(det-1) <= T(o.rotationFactor)*scalar.Epsilon[T](), nil
}

// Determinant returns det(m); see DeterminantRows for the algorithm choice.
func (m *Dense[T]) Determinant(opts ...Option) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return DeterminantRows(m.RowVectors(), opts...)
}

// Inversed returns m⁻¹; see Inverse.
func (m *Dense[T]) Inversed() (*Dense[T], error) {
	return Inverse(m)
}

// Solve returns x with m·x = b; see LinearSolve.
func (m *Dense[T]) Solve(b vector.Vector[T]) (vector.Vector[T], error) {
	return LinearSolve(m, b)
}
