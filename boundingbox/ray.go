// SPDX-License-Identifier: MIT

package boundingbox

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Ray is the half-line Org + t·Dir, t ≥ 0. Dir is unit length when built
// with NewRay.
type Ray[T scalar.Float] struct {
	Org vector.Vector[T]
	Dir vector.Vector[T]
}

// NewRay returns a ray from org along dir normalized.
// Panics with vector.ErrDimensionMismatch if the dimensions differ.
func NewRay[T scalar.Float](org, dir vector.Vector[T]) Ray[T] {
	if len(org) != len(dir) {
		panic("boundingbox: NewRay: " + vector.ErrDimensionMismatch.Error())
	}
	return Ray[T]{Org: org.Clone(), Dir: dir.Normalized()}
}

// Point returns Org + t·Dir.
func (r Ray[T]) Point(t T) vector.Vector[T] {
	p := r.Org.Clone()
	p.MultiplyAdd(r.Dir, t)
	return p
}

// Moved returns the ray with its origin shifted by distance along Dir.
func (r Ray[T]) Moved(distance T) Ray[T] {
	return Ray[T]{Org: r.Point(distance), Dir: r.Dir.Clone()}
}

// Reversed returns the ray from the same origin in the opposite direction.
func (r Ray[T]) Reversed() Ray[T] {
	return Ray[T]{Org: r.Org.Clone(), Dir: r.Dir.Neg()}
}

// String formats the ray as "org -> dir".
func (r Ray[T]) String() string {
	return r.Org.String() + " -> " + r.Dir.String()
}
