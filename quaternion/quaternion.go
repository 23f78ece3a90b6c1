// SPDX-License-Identifier: MIT

// Package quaternion provides rotation quaternions in two conventions.
//
// Quaternion follows Hamilton: ij = k, and a unit q rotates v actively by
// v' = q·v·q*. Its RotationMatrix R satisfies R(p·q) = R(p)·R(q).
//
// JPL follows the convention of the JPL attitude literature: the product
// negates the cross term, ij = -k, and the rotation matrix of a JPL
// quaternion is the transpose of the Hamilton matrix with the same
// components. C(p⊗q) = C(p)·C(q) still holds.
//
// Being a unit quaternion is checked (IsUnit), never enforced by the type.
package quaternion

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

const (
	opFromAxisAngle      = "FromAxisAngle"
	opFromRotationMatrix = "FromRotationMatrix"
	opRotate             = "Rotate"
)

// Quaternion is the Hamilton quaternion W + X·i + Y·j + Z·k.
type Quaternion[T scalar.Float] struct {
	W, X, Y, Z T
}

// New returns w + x·i + y·j + z·k.
func New[T scalar.Float](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{W: w, X: x, Y: y, Z: z}
}

// Identity returns the rotation by zero.
func Identity[T scalar.Float]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// FromScalarVector returns w + v, v being the imaginary part.
func FromScalarVector[T scalar.Float](w T, v vector.Vector[T]) (Quaternion[T], error) {
	if len(v) != 3 {
		return Quaternion[T]{}, ErrDimensionMismatch
	}
	return Quaternion[T]{W: w, X: v[0], Y: v[1], Z: v[2]}, nil
}

// axisAngle returns cos(θ/2) and sin(θ/2)·axis/|axis|.
func axisAngle[T scalar.Float](axis vector.Vector[T], angle T) (w, x, y, z T, err error) {
	if len(axis) != 3 {
		return 0, 0, 0, 0, quaternionErrorf(opFromAxisAngle, ErrDimensionMismatch)
	}
	if axis.IsZero() {
		return 0, 0, 0, 0, quaternionErrorf(opFromAxisAngle, ErrZeroAxis)
	}
	u := axis.Normalized()
	s, c := scalar.Sincos(angle / 2)
	return c, s * u[0], s * u[1], s * u[2], nil
}

// FromAxisAngle returns the unit quaternion rotating by angle radians about
// axis (counter-clockwise looking against the axis).
//
// Errors: ErrDimensionMismatch unless len(axis) == 3, ErrZeroAxis.
func FromAxisAngle[T scalar.Float](axis vector.Vector[T], angle T) (Quaternion[T], error) {
	w, x, y, z, err := axisAngle(axis, angle)
	if err != nil {
		return Quaternion[T]{}, err
	}
	return Quaternion[T]{W: w, X: x, Y: y, Z: z}, nil
}

// Vec returns the imaginary part (X, Y, Z).
func (q Quaternion[T]) Vec() vector.Vector[T] {
	return vector.Of(q.X, q.Y, q.Z)
}

// Mul returns the Hamilton product q·p.
func (q Quaternion[T]) Mul(p Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
	}
}

// Scale returns q·s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{W: q.W * s, X: q.X * s, Y: q.Y * s, Z: q.Z * s}
}

// Conjugate returns W - X·i - Y·j - Z·k.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// NormSquared returns W² + X² + Y² + Z².
func (q Quaternion[T]) NormSquared() T {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Norm returns the Euclidean length of the four components.
func (q Quaternion[T]) Norm() T {
	return scalar.Sqrt(q.NormSquared())
}

// Normalized returns q/|q|.
func (q Quaternion[T]) Normalized() Quaternion[T] {
	return q.Scale(1 / q.Norm())
}

// IsUnit applies the vector unit test to the four components.
func (q Quaternion[T]) IsUnit() bool {
	return vector.Of(q.W, q.X, q.Y, q.Z).IsUnit()
}

// Inversed returns q*/|q|², the multiplicative inverse.
func (q Quaternion[T]) Inversed() Quaternion[T] {
	return q.Conjugate().Scale(1 / q.NormSquared())
}

// Rotate returns q·v·q* for a unit q, evaluated as
// v + 2w(u×v) + 2u×(u×v) with u the imaginary part.
//
// Errors: ErrDimensionMismatch unless len(v) == 3.
func (q Quaternion[T]) Rotate(v vector.Vector[T]) (vector.Vector[T], error) {
	if len(v) != 3 {
		return nil, quaternionErrorf(opRotate, ErrDimensionMismatch)
	}
	u := q.Vec()
	t := vector.Cross(u, v).Scale(2)
	res := v.Clone()
	res.MultiplyAdd(t, q.W)
	return res.Add(vector.Cross(u, t)), nil
}

// rotationRows returns the rows of the active rotation matrix of a unit q.
func rotationRows[T scalar.Float](w, x, y, z T) []vector.Vector[T] {
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return []vector.Vector[T]{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	}
}

// mustMatrix builds a 3×3 matrix from rows that are known to be well formed.
func mustMatrix[T scalar.Float](rows []vector.Vector[T]) *matrix.Dense[T] {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("quaternion: %v", err))
	}
	return m
}

// RotationMatrix returns the 3×3 matrix R with R·v = q·v·q* for a unit q.
func (q Quaternion[T]) RotationMatrix() *matrix.Dense[T] {
	return mustMatrix(rotationRows(q.W, q.X, q.Y, q.Z))
}

// FromRotationMatrix returns the unit quaternion with W ≥ 0 whose
// RotationMatrix is m. opts tune the rotation check (see matrix.IsRotation).
//
// Implementation:
//   - Stage 1: require a 3×3 proper rotation.
//   - Stage 2: Shepperd's method: derive the largest of |W|, |X|, |Y|, |Z|
//     from the trace or a diagonal entry, the others from off-diagonal sums
//     and differences divided by it.
//   - Stage 3: flip the sign so W ≥ 0.
//
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch, ErrNotRotation.
func FromRotationMatrix[T scalar.Float](m *matrix.Dense[T], opts ...matrix.Option) (Quaternion[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Quaternion[T]{}, quaternionErrorf(opFromRotationMatrix, err)
	}
	if m.Rows() != 3 || m.Cols() != 3 {
		return Quaternion[T]{}, quaternionErrorf(opFromRotationMatrix, ErrDimensionMismatch)
	}
	ok, err := m.IsRotation(opts...)
	if err != nil {
		return Quaternion[T]{}, quaternionErrorf(opFromRotationMatrix, err)
	}
	if !ok {
		return Quaternion[T]{}, quaternionErrorf(opFromRotationMatrix, ErrNotRotation)
	}

	r := m.RowVectors()
	var q Quaternion[T]
	switch tr := r[0][0] + r[1][1] + r[2][2]; {
	case tr > 0:
		s := 2 * scalar.Sqrt(tr+1)
		q = Quaternion[T]{W: s / 4, X: (r[2][1] - r[1][2]) / s, Y: (r[0][2] - r[2][0]) / s, Z: (r[1][0] - r[0][1]) / s}
	case r[0][0] > r[1][1] && r[0][0] > r[2][2]:
		s := 2 * scalar.Sqrt(1+r[0][0]-r[1][1]-r[2][2])
		q = Quaternion[T]{W: (r[2][1] - r[1][2]) / s, X: s / 4, Y: (r[0][1] + r[1][0]) / s, Z: (r[0][2] + r[2][0]) / s}
	case r[1][1] > r[2][2]:
		s := 2 * scalar.Sqrt(1+r[1][1]-r[0][0]-r[2][2])
		q = Quaternion[T]{W: (r[0][2] - r[2][0]) / s, X: (r[0][1] + r[1][0]) / s, Y: s / 4, Z: (r[1][2] + r[2][1]) / s}
	default:
		s := 2 * scalar.Sqrt(1+r[2][2]-r[0][0]-r[1][1])
		q = Quaternion[T]{W: (r[1][0] - r[0][1]) / s, X: (r[0][2] + r[2][0]) / s, Y: (r[1][2] + r[2][1]) / s, Z: s / 4}
	}
	if q.W < 0 {
		q = q.Scale(-1)
	}
	return q, nil
}

// String formats q as "w + xi + yj + zk" with signs folded in.
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("%v %s %vi %s %vj %s %vk",
		float64(q.W), sign(q.X), abs64(q.X), sign(q.Y), abs64(q.Y), sign(q.Z), abs64(q.Z))
}

func sign[T scalar.Float](v T) string {
	if v < 0 {
		return "-"
	}
	return "+"
}

func abs64[T scalar.Float](v T) float64 {
	return float64(scalar.Abs(v))
}
