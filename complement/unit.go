// SPDX-License-Identifier: MIT

package complement

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

const (
	opUnit        = "OfUnitVector"
	opSubspace    = "BySubspace"
	opGramSchmidt = "ByGramSchmidt"

	// axisLimit: an axis whose component exceeds this is treated as close to u.
	axisLimit = 0.1

	// subspaceMaxDim is the largest dimension OfUnitVector builds by subspace
	// complements; larger dimensions use Gram-Schmidt.
	subspaceMaxDim = 4
)

// OfUnitVector returns N-1 orthonormal vectors spanning the hyperplane
// orthogonal to the unit vector u. Dimensions up to 4 use BySubspace,
// higher ones ByGramSchmidt.
//
// Errors: ErrNotUnitVector, ErrDimensionMismatch (N < 2).
func OfUnitVector[T scalar.Float](u vector.Vector[T]) ([]vector.Vector[T], error) {
	if len(u) < 2 {
		return nil, complementErrorf(opUnit, ErrDimensionMismatch)
	}
	if !u.IsUnit() {
		return nil, complementErrorf(opUnit, ErrNotUnitVector)
	}
	if len(u) <= subspaceMaxDim {
		return BySubspace(u)
	}

	return ByGramSchmidt(u)
}

// excludedAxis returns the first axis among the first limit ones on which u
// has a component larger than axisLimit, or limit when there is none.
func excludedAxis[T scalar.Float](u vector.Vector[T], limit int) int {
	i := 0
	for ; i < limit; i++ {
		if scalar.Abs(u[i]) > axisLimit {
			break
		}
	}

	return i
}

// BySubspace builds the basis by repeated single-vector complements.
// Starting from u and N-2 coordinate axes (skipping the axis u is close to),
// each axis in turn is replaced by the normalized complement of the current
// set; finally u itself is replaced by the complement of the others.
//
// Errors: ErrDimensionMismatch (N < 2). u is assumed to be unit.
// Complexity: O(N · N!) through the general complement for N ≥ 5.
func BySubspace[T scalar.Float](u vector.Vector[T]) ([]vector.Vector[T], error) {
	n := len(u)
	switch n {
	case 0, 1:
		return nil, complementErrorf(opSubspace, ErrDimensionMismatch)
	case 2:
		return []vector.Vector[T]{{u[1], -u[0]}}, nil
	case 3:
		other := vector.Of[T](1, 0, 0)
		if scalar.Abs(u[0]) > axisLimit {
			other = vector.Of[T](0, 1, 0)
		}
		e0 := vector.Cross(u, other).Normalized()
		e1 := vector.Cross(u, e0)
		return []vector.Vector[T]{e0, e1}, nil
	}

	exclude := excludedAxis(u, n-2)
	basis := make([]vector.Vector[T], n-1)
	basis[n-2] = u.Clone()
	for i, num := 0, 0; num < n-2; i++ {
		if i != exclude {
			basis[num] = vector.Axis[T](n, i)
			num++
		}
	}

	for i := 0; i < n-2; i++ {
		c, err := Of(basis)
		if err != nil {
			return nil, complementErrorf(opSubspace, err)
		}
		basis[i] = c.Normalized()
	}
	last, err := Of(basis)
	if err != nil {
		return nil, complementErrorf(opSubspace, err)
	}
	basis[n-2] = last

	return basis, nil
}

// ByGramSchmidt orthonormalizes u followed by N-1 coordinate axes (skipping
// the axis u is close to) and drops u from the result.
//
// Errors: ErrDimensionMismatch (N < 2). u is assumed to be unit.
// Complexity: O(N³).
func ByGramSchmidt[T scalar.Float](u vector.Vector[T]) ([]vector.Vector[T], error) {
	n := len(u)
	if n < 2 {
		return nil, complementErrorf(opGramSchmidt, ErrDimensionMismatch)
	}
	if n == 2 {
		return []vector.Vector[T]{{u[1], -u[0]}}, nil
	}

	exclude := excludedAxis(u, n-1)
	basis := make([]vector.Vector[T], n)
	basis[0] = u
	for i, num := 0, 1; num < n; i++ {
		if i != exclude {
			basis[num] = vector.Axis[T](n, i)
			num++
		}
	}

	ortho := make([]vector.Vector[T], n)
	ortho[0] = u.Clone()
	for i := 1; i < n; i++ {
		sum := vector.New[T](n)
		for k := 0; k < i; k++ {
			sum.MultiplyAdd(ortho[k], vector.Dot(basis[i], ortho[k]))
		}
		ortho[i] = basis[i].Sub(sum).Normalized()
	}

	return ortho[1:], nil
}
