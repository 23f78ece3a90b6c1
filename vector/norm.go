// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvgeom/scalar"

// unitTolerance is the factor applied to machine epsilon by IsUnit.
const unitTolerance = 100

// Norm1 returns Σ|v[i]|.
func (v Vector[T]) Norm1() T {
	res := scalar.Abs(v[0])
	for _, x := range v[1:] {
		res += scalar.Abs(x)
	}
	return res
}

// NormInfinity returns max|v[i]|.
func (v Vector[T]) NormInfinity() T {
	res := scalar.Abs(v[0])
	for _, x := range v[1:] {
		res = scalar.Max(res, scalar.Abs(x))
	}
	return res
}

// NormSquared returns Σv[i]².
func (v Vector[T]) NormSquared() T {
	s := v[0] * v[0]
	for _, x := range v[1:] {
		s += x * x
	}
	return s
}

// Norm returns the Euclidean length.
func (v Vector[T]) Norm() T {
	return scalar.Sqrt(v.NormSquared())
}

// NormStable returns the Euclidean length computed on components scaled by
// the infinity norm, so squares neither overflow nor underflow.
// The zero vector yields NaN (0/0), matching the unscaled formula's domain.
func (v Vector[T]) NormStable() T {
	m := v.NormInfinity()
	k := v[0] / m
	s := k * k
	for _, x := range v[1:] {
		k = x / m
		s += k * k
	}
	return m * scalar.Sqrt(s)
}

// Normalized returns v / |v|.
func (v Vector[T]) Normalized() Vector[T] {
	return v.Div(v.Norm())
}

// Normalize scales v to unit length in place.
func (v Vector[T]) Normalize() {
	n := v.Norm()
	for i := range v {
		v[i] /= n
	}
}

// IsUnit reports whether |v|² lies strictly inside ((1-d)², (1+d)²) with
// d = 100·ε(T).
func (v Vector[T]) IsUnit() bool {
	d := unitTolerance * scalar.Epsilon[T]()
	lo := (1 - d) * (1 - d)
	hi := (1 + d) * (1 + d)
	s := v.NormSquared()
	return s > lo && s < hi
}

// Dot returns Σa[i]·b[i].
func Dot[T scalar.Float](a, b Vector[T]) T {
	mustSameDim("Dot", a, b)
	res := a[0] * b[0]
	for i := 1; i < len(a); i++ {
		res += a[i] * b[i]
	}
	return res
}

// Cross returns the 3-D cross product a × b.
func Cross[T scalar.Float](a, b Vector[T]) Vector[T] {
	if len(a) != 3 || len(b) != 3 {
		panic("vector: Cross: " + ErrDimensionMismatch.Error() + " (want 3)")
	}
	return Vector[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Cross2 returns the scalar 2-D cross product a0·b1 - a1·b0.
func Cross2[T scalar.Float](a, b Vector[T]) T {
	if len(a) != 2 || len(b) != 2 {
		panic("vector: Cross2: " + ErrDimensionMismatch.Error() + " (want 2)")
	}
	return a[0]*b[1] - a[1]*b[0]
}
