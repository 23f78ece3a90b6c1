// SPDX-License-Identifier: MIT

// Package scalar declares the numeric type sets shared by every lvgeom
// package, together with small per-type helpers (machine epsilon, largest
// finite value, absolute value) that generic code cannot express with
// arithmetic operators alone.
//
// Scalars:
//   - Float  – IEEE-754 binary32/binary64 and named types over them.
//   - Signed – signed integers used by the exact (non-pivoting) code paths.
//
// The helpers dispatch on the storage size of T, so named float types
// (e.g. type Meters float64) resolve to the same limits as their base type.
package scalar

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the scalar set for floating-point geometry and decompositions.
type Float interface {
	constraints.Float
}

// Signed is the scalar set for exact integer determinants and complements.
type Signed interface {
	constraints.Signed
}

// Machine constants for binary32 and binary64.
const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

// Is32 reports whether T is stored as binary32.
func Is32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Bits returns the storage width of T: 32 or 64.
func Bits[T Float]() int {
	if Is32[T]() {
		return 32
	}
	return 64
}

// Epsilon returns the machine epsilon of T: the distance from 1 to the next
// representable value.
// Complexity: O(1).
func Epsilon[T Float]() T {
	if Is32[T]() {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Float]() T {
	if Is32[T]() {
		return T(math.MaxFloat32)
	}
	m := math.MaxFloat64
	return T(m)
}

// Lowest returns the most negative finite value of T.
func Lowest[T Float]() T {
	return -MaxValue[T]()
}

// Inf returns +Inf for sign >= 0, -Inf otherwise.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

// NaN returns a quiet NaN of type T.
func NaN[T Float]() T {
	return T(math.NaN())
}

// Abs returns |v| for any signed or floating scalar.
// -0 maps to +0 for floats.
func Abs[T Float | Signed](v T) T {
	if v < 0 {
		return -v
	}
	if v == 0 {
		return 0
	}
	return v
}

// Square returns v*v.
func Square[T Float | Signed](v T) T {
	return v * v
}

// Sqrt returns the square root of v computed in float64 and rounded to T.
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// Hypot returns sqrt(a*a + b*b) without undue overflow.
func Hypot[T Float](a, b T) T {
	return T(math.Hypot(float64(a), float64(b)))
}

// Copysign returns a value with the magnitude of m and the sign of s.
func Copysign[T Float](m, s T) T {
	return T(math.Copysign(float64(m), float64(s)))
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsNaN reports whether v is NaN.
func IsNaN[T Float](v T) bool {
	return v != v
}

// Min returns the smaller of a and b. When a is NaN, a is returned.
func Min[T Float | Signed](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T Float | Signed](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Sincos returns sin(v) and cos(v) computed in float64 and rounded to T.
func Sincos[T Float](v T) (sin, cos T) {
	s, c := math.Sincos(float64(v))
	return T(s), T(c)
}
