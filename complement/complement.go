// SPDX-License-Identifier: MIT

// Package complement computes orthogonal complements: the vector orthogonal
// to N-1 given vectors of N-space, and orthonormal bases of the hyperplane
// orthogonal to a unit vector.
//
// The single-vector complement is the generalized cross product: component i
// is the signed (N-1)×(N-1) minor obtained by deleting column i. Its length
// is the (N-1)-volume spanned by the inputs, so it is zero exactly when the
// inputs are linearly dependent. Float, signed-integer and *big.Int variants
// share the same formulas; the integer variants are exact.
package complement

import (
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

const (
	opOf       = "Of"
	opOfPoints = "OfPoints"
	opSigned   = "OfSigned"
	opBig      = "OfBig"
)

type number interface {
	scalar.Float | scalar.Signed
}

// validateShape checks that vectors holds N-1 rows of length N, N ≥ 2.
func validateShape[R ~[]E, E any](vectors []R) (int, error) {
	n := len(vectors) + 1
	if n < 2 {
		return 0, ErrDimensionMismatch
	}
	for _, v := range vectors {
		if len(v) != n {
			return 0, ErrDimensionMismatch
		}
	}

	return n, nil
}

// closedForm returns the complement for N ∈ {2, 3, 4}; ok is false otherwise.
func closedForm[T number, R ~[]T](v []R) (res []T, ok bool) {
	switch len(v) + 1 {
	case 2:
		return []T{v[0][1], -v[0][0]}, true
	case 3:
		return []T{
			v[0][1]*v[1][2] - v[0][2]*v[1][1],
			-(v[0][0]*v[1][2] - v[0][2]*v[1][0]),
			v[0][0]*v[1][1] - v[0][1]*v[1][0],
		}, true
	case 4:
		a, b, c := v[0], v[1], v[2]
		m23 := b[2]*c[3] - b[3]*c[2]
		m13 := b[1]*c[3] - b[3]*c[1]
		m12 := b[1]*c[2] - b[2]*c[1]
		m03 := b[0]*c[3] - b[3]*c[0]
		m02 := b[0]*c[2] - b[2]*c[0]
		m01 := b[0]*c[1] - b[1]*c[0]
		return []T{
			a[1]*m23 - a[2]*m13 + a[3]*m12,
			-a[0]*m23 + a[2]*m03 - a[3]*m02,
			a[0]*m13 - a[1]*m03 + a[3]*m01,
			-a[0]*m12 + a[1]*m02 - a[2]*m01,
		}, true
	}

	return nil, false
}

// deletedColumn returns [0..n) without i.
func deletedColumn(n, i int) []int {
	cols := make([]int, 0, n-1)
	for c := 0; c < n; c++ {
		if c != i {
			cols = append(cols, c)
		}
	}

	return cols
}

func rowSequence(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}

	return rows
}

// Of returns the vector orthogonal to the N-1 given vectors of dimension N.
//
// Implementation:
//   - N = 2, 3, 4: closed forms.
//   - N ≥ 5: res[i] = (-1)^i · det(vectors with column i deleted),
//     each minor by matrix.DeterminantMinor.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1) for N ≤ 4, O(N · (N-1)!) otherwise.
func Of[T scalar.Float](vectors []vector.Vector[T]) (vector.Vector[T], error) {
	n, err := validateShape(vectors)
	if err != nil {
		return nil, complementErrorf(opOf, err)
	}
	if res, ok := closedForm(vectors); ok {
		return res, nil
	}

	rows := rowSequence(n - 1)
	res := make(vector.Vector[T], n)
	for i := range res {
		minor, err := matrix.DeterminantMinor(vectors, rows, deletedColumn(n, i))
		if err != nil {
			return nil, complementErrorf(opOf, err)
		}
		if i%2 == 1 {
			minor = -minor
		}
		res[i] = minor
	}

	return res, nil
}

// UnitNormalOf returns Of(vectors) scaled to unit length. Dependent inputs
// produce a non-finite vector.
func UnitNormalOf[T scalar.Float](vectors []vector.Vector[T]) (vector.Vector[T], error) {
	res, err := Of(vectors)
	if err != nil {
		return nil, err
	}
	res.Normalize()

	return res, nil
}

// OfPoints returns the complement of the N-1 edge vectors
// points[indices[i+1]] - points[indices[0]], i.e. the (unnormalized) normal
// of the hyperplane through the N indexed points.
//
// Errors: ErrDimensionMismatch, ErrIndexOutOfRange.
func OfPoints[T scalar.Float](points []vector.Vector[T], indices []int) (vector.Vector[T], error) {
	if err := validateIndices(len(points), indices); err != nil {
		return nil, complementErrorf(opOfPoints, err)
	}
	org := points[indices[0]]
	vectors := make([]vector.Vector[T], len(indices)-1)
	for i := range vectors {
		p := points[indices[i+1]]
		if len(p) != len(org) {
			return nil, complementErrorf(opOfPoints, ErrDimensionMismatch)
		}
		vectors[i] = p.Sub(org)
	}

	return Of(vectors)
}

func validateIndices(count int, indices []int) error {
	if len(indices) < 2 {
		return ErrDimensionMismatch
	}
	for _, i := range indices {
		if i < 0 || i >= count {
			return ErrIndexOutOfRange
		}
	}

	return nil
}

// OfSigned is the exact integer form of Of. Intermediate products may
// overflow T for large coordinates; use OfBig when that can happen.
//
// Errors: ErrDimensionMismatch.
func OfSigned[T scalar.Signed](vectors [][]T) ([]T, error) {
	n, err := validateShape(vectors)
	if err != nil {
		return nil, complementErrorf(opSigned, err)
	}
	if res, ok := closedForm(vectors); ok {
		return res, nil
	}

	rows := rowSequence(n - 1)
	res := make([]T, n)
	for i := range res {
		minor, err := matrix.DeterminantSigned(vectors, rows, deletedColumn(n, i))
		if err != nil {
			return nil, complementErrorf(opSigned, err)
		}
		if i%2 == 1 {
			minor = -minor
		}
		res[i] = minor
	}

	return res, nil
}

// OfPointsSigned is OfPoints over integer coordinates, exact while the
// products fit in T.
func OfPointsSigned[T scalar.Signed](points [][]T, indices []int) ([]T, error) {
	if err := validateIndices(len(points), indices); err != nil {
		return nil, complementErrorf(opOfPoints, err)
	}
	org := points[indices[0]]
	vectors := make([][]T, len(indices)-1)
	for i := range vectors {
		p := points[indices[i+1]]
		if len(p) != len(org) {
			return nil, complementErrorf(opOfPoints, ErrDimensionMismatch)
		}
		d := make([]T, len(p))
		for k := range p {
			d[k] = p[k] - org[k]
		}
		vectors[i] = d
	}

	return OfSigned(vectors)
}
