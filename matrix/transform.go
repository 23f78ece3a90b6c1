// SPDX-License-Identifier: MIT
// Package matrix: homogeneous transform builders for the renderer boundary.
// View and projection matrices follow the column-vector convention
// (p' = M·p) and are returned row-major.

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// viewDim is the dimension of the space LookAt works in.
const viewDim = 3

// ScaleMatrix returns the homogeneous (N+1)×(N+1) scaling by v.
func ScaleMatrix[T scalar.Float](v vector.Vector[T]) (*Dense[T], error) {
	d := make(vector.Vector[T], len(v)+1)
	copy(d, v)
	d[len(v)] = 1
	m, err := NewDiagonal(d)
	if err != nil {
		return nil, matrixErrorf(opTransform, err)
	}

	return m, nil
}

// TranslateMatrix returns the homogeneous (N+1)×(N+1) translation by v.
func TranslateMatrix[T scalar.Float](v vector.Vector[T]) (*Dense[T], error) {
	m, err := NewIdentity[T](len(v) + 1)
	if err != nil {
		return nil, matrixErrorf(opTransform, err)
	}
	n := len(v) + 1
	for i, x := range v {
		m.data[i*n+n-1] = x
	}

	return m, nil
}

// LookAt returns the right-handed 4×4 view matrix placing the camera at eye,
// looking at center, with up as the approximate vertical.
//
// Errors:
//   - ErrDimensionMismatch (vectors are not 3-D),
//   - ErrNaNInf (eye == center or up parallel to the view direction).
func LookAt[T scalar.Float](eye, center, up vector.Vector[T]) (*Dense[T], error) {
	if len(eye) != viewDim || len(center) != viewDim || len(up) != viewDim {
		return nil, matrixErrorf(opTransform, ErrDimensionMismatch)
	}
	f := center.Sub(eye).Normalized()
	s := vector.Cross(f, up).Normalized()
	u := vector.Cross(s, f)

	m := mustDense[T](4, 4)
	copy(m.row(0), []T{s[0], s[1], s[2], -vector.Dot(s, eye)})
	copy(m.row(1), []T{u[0], u[1], u[2], -vector.Dot(u, eye)})
	copy(m.row(2), []T{-f[0], -f[1], -f[2], vector.Dot(f, eye)})
	m.data[15] = 1
	if !m.IsFinite() {
		return nil, matrixErrorf(opTransform, ErrNaNInf)
	}

	return m, nil
}

// OrthoOpenGL returns the orthographic projection of the box
// [left,right]×[bottom,top]×[-near,-far] onto OpenGL clip space
// (x, y, z ∈ [-1, 1], y up).
//
// Errors: ErrNaNInf when an extent is zero.
func OrthoOpenGL[T scalar.Float](left, right, bottom, top, near, far T) (*Dense[T], error) {
	m := mustDense[T](4, 4)
	copy(m.row(0), []T{2 / (right - left), 0, 0, -(right + left) / (right - left)})
	copy(m.row(1), []T{0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom)})
	copy(m.row(2), []T{0, 0, -2 / (far - near), -(far + near) / (far - near)})
	m.data[15] = 1

	return finiteTransform(m)
}

// OrthoVulkan is OrthoOpenGL for Vulkan clip space: z ∈ [0, 1] and y pointing
// down, so top maps to -1.
func OrthoVulkan[T scalar.Float](left, right, bottom, top, near, far T) (*Dense[T], error) {
	m := mustDense[T](4, 4)
	copy(m.row(0), []T{2 / (right - left), 0, 0, -(right + left) / (right - left)})
	copy(m.row(1), []T{0, -2 / (top - bottom), 0, (top + bottom) / (top - bottom)})
	copy(m.row(2), []T{0, 0, -1 / (far - near), -near / (far - near)})
	m.data[15] = 1

	return finiteTransform(m)
}

func finiteTransform[T scalar.Float](m *Dense[T]) (*Dense[T], error) {
	if !m.IsFinite() {
		return nil, matrixErrorf(opTransform, ErrNaNInf)
	}

	return m, nil
}
