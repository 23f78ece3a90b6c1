// SPDX-License-Identifier: MIT

// Package vector provides Vector, a dense numeric tuple whose length is the
// dimension of the space it lives in.
//
// Vectors are values: every operation returns a fresh slice and never aliases
// its operands, except the explicitly in-place methods (Normalize,
// MultiplyAdd). Mixing dimensions is a programming error and panics with
// ErrDimensionMismatch; numeric degeneracy (division by zero, overflow)
// propagates as IEEE Inf/NaN and is never trapped.
package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
)

// ErrDimensionMismatch is the panic value for operands of different length.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// Vector is an ordered tuple of len(v) scalars.
type Vector[T scalar.Float] []T

// New returns the zero vector of dimension n (n > 0).
func New[T scalar.Float](n int) Vector[T] {
	if n <= 0 {
		panic(fmt.Sprintf("vector: New: dimension %d must be > 0", n))
	}
	return make(Vector[T], n)
}

// Of builds a vector from its components.
func Of[T scalar.Float](values ...T) Vector[T] {
	if len(values) == 0 {
		panic("vector: Of: no components")
	}
	v := make(Vector[T], len(values))
	copy(v, values)
	return v
}

// Filled returns a vector of dimension n with every component set to value.
func Filled[T scalar.Float](n int, value T) Vector[T] {
	v := New[T](n)
	for i := range v {
		v[i] = value
	}
	return v
}

// Axis returns the i-th unit axis of n-space (row i of the identity).
func Axis[T scalar.Float](n, i int) Vector[T] {
	v := New[T](n)
	v[i] = 1
	return v
}

// Identity returns the n axes of n-space.
func Identity[T scalar.Float](n int) []Vector[T] {
	res := make([]Vector[T], n)
	for i := range res {
		res[i] = Axis[T](n, i)
	}
	return res
}

// mustSameDim panics unless a and b have equal length.
func mustSameDim[T scalar.Float](op string, a, b Vector[T]) {
	if len(a) != len(b) {
		panic(fmt.Errorf("%s: %d vs %d: %w", op, len(a), len(b), ErrDimensionMismatch))
	}
}

// Dim returns the dimension.
func (v Vector[T]) Dim() int { return len(v) }

// Clone returns an independent copy.
func (v Vector[T]) Clone() Vector[T] {
	res := make(Vector[T], len(v))
	copy(res, v)
	return res
}

// Equal reports exact component-wise equality.
func (v Vector[T]) Equal(a Vector[T]) bool {
	if len(v) != len(a) {
		return false
	}
	for i := range v {
		if v[i] != a[i] {
			return false
		}
	}
	return true
}

// Add returns v + a.
func (v Vector[T]) Add(a Vector[T]) Vector[T] {
	mustSameDim("Add", v, a)
	res := make(Vector[T], len(v))
	for i := range v {
		res[i] = v[i] + a[i]
	}
	return res
}

// Sub returns v - a.
func (v Vector[T]) Sub(a Vector[T]) Vector[T] {
	mustSameDim("Sub", v, a)
	res := make(Vector[T], len(v))
	for i := range v {
		res[i] = v[i] - a[i]
	}
	return res
}

// Mul returns the element-wise product.
func (v Vector[T]) Mul(a Vector[T]) Vector[T] {
	mustSameDim("Mul", v, a)
	res := make(Vector[T], len(v))
	for i := range v {
		res[i] = v[i] * a[i]
	}
	return res
}

// Scale returns v * s.
func (v Vector[T]) Scale(s T) Vector[T] {
	res := make(Vector[T], len(v))
	for i := range v {
		res[i] = v[i] * s
	}
	return res
}

// Div returns v / s.
func (v Vector[T]) Div(s T) Vector[T] {
	res := make(Vector[T], len(v))
	for i := range v {
		res[i] = v[i] / s
	}
	return res
}

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] {
	res := make(Vector[T], len(v))
	for i := range v {
		res[i] = -v[i]
	}
	return res
}

// MultiplyAdd performs v += a*s in place.
func (v Vector[T]) MultiplyAdd(a Vector[T], s T) {
	mustSameDim("MultiplyAdd", v, a)
	for i := range v {
		v[i] += a[i] * s
	}
}

// Clamp limits every component to [low, high].
func (v Vector[T]) Clamp(low, high T) Vector[T] {
	res := make(Vector[T], len(v))
	for i, x := range v {
		switch {
		case x < low:
			res[i] = low
		case x > high:
			res[i] = high
		default:
			res[i] = x
		}
	}
	return res
}

// MaxN returns max(value, v[i]) per component; NaN components become value.
func (v Vector[T]) MaxN(value T) Vector[T] {
	res := make(Vector[T], len(v))
	for i, x := range v {
		if x > value {
			res[i] = x
		} else {
			res[i] = value
		}
	}
	return res
}

// Reciprocal returns 1/v[i] per component. Both +0 and -0 map to +Inf so the
// sign agrees with NegativeBool, which treats -0 as non-negative.
func (v Vector[T]) Reciprocal() Vector[T] {
	res := make(Vector[T], len(v))
	for i, x := range v {
		if x == 0 {
			res[i] = scalar.Inf[T](1)
			continue
		}
		res[i] = 1 / x
	}
	return res
}

// NegativeBool reports v[i] < 0 per component.
func (v Vector[T]) NegativeBool() []bool {
	res := make([]bool, len(v))
	for i, x := range v {
		res[i] = x < 0
	}
	return res
}

// IsZero reports whether every component equals 0.
func (v Vector[T]) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// IsFinite reports whether every component is finite.
func (v Vector[T]) IsFinite() bool {
	for _, x := range v {
		if !scalar.IsFinite(x) {
			return false
		}
	}
	return true
}

// String formats v as "(x0, x1, ...)" with round-trip precision.
func (v Vector[T]) String() string {
	bits := scalar.Bits[T]()
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, bits))
	}
	sb.WriteByte(')')
	return sb.String()
}

// MinVector returns the component-wise minimum.
func MinVector[T scalar.Float](a, b Vector[T]) Vector[T] {
	mustSameDim("MinVector", a, b)
	res := make(Vector[T], len(a))
	for i := range a {
		res[i] = scalar.Min(a[i], b[i])
	}
	return res
}

// MaxVector returns the component-wise maximum.
func MaxVector[T scalar.Float](a, b Vector[T]) Vector[T] {
	mustSameDim("MaxVector", a, b)
	res := make(Vector[T], len(a))
	for i := range a {
		res[i] = scalar.Max(a[i], b[i])
	}
	return res
}

// Interpolation returns a + x*(b - a).
func Interpolation[T scalar.Float](a, b Vector[T], x T) Vector[T] {
	mustSameDim("Interpolation", a, b)
	res := make(Vector[T], len(a))
	for i := range a {
		res[i] = a[i] + x*(b[i]-a[i])
	}
	return res
}
