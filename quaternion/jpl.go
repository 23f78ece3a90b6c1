// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// JPL is a quaternion in the JPL convention, vector part first.
type JPL[T scalar.Float] struct {
	X, Y, Z, W T
}

// NewJPL returns the JPL quaternion (x, y, z, w).
func NewJPL[T scalar.Float](x, y, z, w T) JPL[T] {
	return JPL[T]{X: x, Y: y, Z: z, W: w}
}

// JPLFromAxisAngle returns (sin(θ/2)·axis, cos(θ/2)). Its RotationMatrix
// rotates coordinates into a frame turned by angle about axis, the
// transpose of the Hamilton rotation with the same components.
//
// Errors: ErrDimensionMismatch unless len(axis) == 3, ErrZeroAxis.
func JPLFromAxisAngle[T scalar.Float](axis vector.Vector[T], angle T) (JPL[T], error) {
	w, x, y, z, err := axisAngle(axis, angle)
	if err != nil {
		return JPL[T]{}, err
	}
	return JPL[T]{X: x, Y: y, Z: z, W: w}, nil
}

// components returns the Hamilton quaternion with the same four numbers.
func (q JPL[T]) components() Quaternion[T] {
	return Quaternion[T]{W: q.W, X: q.X, Y: q.Y, Z: q.Z}
}

func fromComponents[T scalar.Float](h Quaternion[T]) JPL[T] {
	return JPL[T]{X: h.X, Y: h.Y, Z: h.Z, W: h.W}
}

// Vec returns the vector part (X, Y, Z).
func (q JPL[T]) Vec() vector.Vector[T] {
	return vector.Of(q.X, q.Y, q.Z)
}

// Mul returns the JPL product q⊗p: scalar part w_q·w_p - u_q·u_p, vector
// part w_q·u_p + w_p·u_q - u_q×u_p. In components it equals the Hamilton
// product p·q.
func (q JPL[T]) Mul(p JPL[T]) JPL[T] {
	return fromComponents(p.components().Mul(q.components()))
}

// Conjugate negates the vector part.
func (q JPL[T]) Conjugate() JPL[T] {
	return JPL[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Norm returns the Euclidean length of the four components.
func (q JPL[T]) Norm() T { return q.components().Norm() }

// Normalized returns q/|q|.
func (q JPL[T]) Normalized() JPL[T] { return fromComponents(q.components().Normalized()) }

// IsUnit applies the vector unit test to the four components.
func (q JPL[T]) IsUnit() bool { return q.components().IsUnit() }

// Inversed returns the multiplicative inverse q*/|q|².
func (q JPL[T]) Inversed() JPL[T] { return fromComponents(q.components().Inversed()) }

// RotationMatrix returns C(q) = (2w²-1)·I - 2w·[u×] + 2u·uᵀ, the transpose
// of the Hamilton matrix with the same components.
func (q JPL[T]) RotationMatrix() *matrix.Dense[T] {
	return mustMatrix(rotationRows(q.W, -q.X, -q.Y, -q.Z))
}

// Rotate returns C(q)·v for a unit q.
//
// Errors: ErrDimensionMismatch unless len(v) == 3.
func (q JPL[T]) Rotate(v vector.Vector[T]) (vector.Vector[T], error) {
	return q.components().Conjugate().Rotate(v)
}

// ToHamilton returns the Hamilton quaternion with the same rotation
// matrix: (W, -X, -Y, -Z). The mapping turns JPL products into Hamilton
// products of the images.
func (q JPL[T]) ToHamilton() Quaternion[T] {
	return q.components().Conjugate()
}

// FromHamilton is the inverse of ToHamilton.
func FromHamilton[T scalar.Float](h Quaternion[T]) JPL[T] {
	return fromComponents(h.Conjugate())
}

// String formats q as "(x, y, z, w)".
func (q JPL[T]) String() string {
	return vector.Of(q.X, q.Y, q.Z, q.W).String()
}
