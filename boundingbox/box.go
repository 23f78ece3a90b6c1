// SPDX-License-Identifier: MIT

// Package boundingbox provides BoundingBox, an axis-aligned box in N-space,
// and slab-method ray intersection against it.
//
// Invariant: min[i] ≤ max[i] for every axis. Constructors and the two
// mutators (Merge, MergeBox) keep it; accessors return copies so callers
// cannot break it from outside.
//
// Ray tests come in three shapes:
//   - Intersect / IntersectMax: distance to the box surface.
//   - IntersectVolume / IntersectVolumeMax: distance to the box as a solid,
//     0 when the ray starts inside.
//   - IntersectReciprocal / IntersectReciprocalMax: hit/no-hit with the
//     reciprocal direction precomputed, for many boxes against one ray.
//
// Axis-parallel rays are not branched on: the reciprocal of a zero component
// is +Inf and the comparison order in the slab loop drops the NaN that
// 0·Inf produces when the origin lies on a slab plane.
package boundingbox

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

const (
	opFromPoints = "FromPoints"
	opMergeBox   = "MergeBox"
	opToSDFBox2  = "ToSDFBox2"
	opToSDFBox3  = "ToSDFBox3"
)

// BoundingBox is a closed axis-aligned box [min, max].
type BoundingBox[T scalar.Float] struct {
	min vector.Vector[T]
	max vector.Vector[T]
}

// New returns the smallest box containing p1 and p2.
// Panics with vector.ErrDimensionMismatch if the dimensions differ.
func New[T scalar.Float](p1, p2 vector.Vector[T]) BoundingBox[T] {
	return BoundingBox[T]{
		min: vector.MinVector(p1, p2),
		max: vector.MaxVector(p1, p2),
	}
}

// FromPoint returns the degenerate box holding the single point p.
func FromPoint[T scalar.Float](p vector.Vector[T]) BoundingBox[T] {
	return BoundingBox[T]{min: p.Clone(), max: p.Clone()}
}

// FromPoints returns the smallest box containing every point.
//
// Errors:
//   - ErrNoPoints for an empty slice.
//   - ErrDimensionMismatch if the points differ in dimension.
//
// Complexity: O(len(points)·N).
func FromPoints[T scalar.Float](points []vector.Vector[T]) (BoundingBox[T], error) {
	if len(points) == 0 {
		return BoundingBox[T]{}, boxErrorf(opFromPoints, ErrNoPoints)
	}
	n := len(points[0])
	for _, p := range points[1:] {
		if len(p) != n {
			return BoundingBox[T]{}, boxErrorf(opFromPoints, ErrDimensionMismatch)
		}
	}

	b := FromPoint(points[0])
	for _, p := range points[1:] {
		b.Merge(p)
	}

	return b, nil
}

// Dim returns the dimension of the box.
func (b BoundingBox[T]) Dim() int { return len(b.min) }

// Min returns a copy of the lower corner.
func (b BoundingBox[T]) Min() vector.Vector[T] { return b.min.Clone() }

// Max returns a copy of the upper corner.
func (b BoundingBox[T]) Max() vector.Vector[T] { return b.max.Clone() }

// Merge grows the box to contain p.
func (b *BoundingBox[T]) Merge(p vector.Vector[T]) {
	b.min = vector.MinVector(b.min, p)
	b.max = vector.MaxVector(b.max, p)
}

// MergeBox grows the box to contain other.
func (b *BoundingBox[T]) MergeBox(other BoundingBox[T]) error {
	if len(other.min) != len(b.min) {
		return boxErrorf(opMergeBox, ErrDimensionMismatch)
	}
	b.min = vector.MinVector(b.min, other.min)
	b.max = vector.MaxVector(b.max, other.max)

	return nil
}

// Diagonal returns max - min.
func (b BoundingBox[T]) Diagonal() vector.Vector[T] {
	return b.max.Sub(b.min)
}

// Center returns (min + max) / 2.
func (b BoundingBox[T]) Center() vector.Vector[T] {
	return vector.Interpolation(b.min, b.max, 0.5)
}

// Volume returns the product of the extents.
func (b BoundingBox[T]) Volume() T {
	d := b.Diagonal()
	res := d[0]
	for _, e := range d[1:] {
		res *= e
	}
	return res
}

// Surface returns the (N-1)-measure of the boundary: two facets per axis,
// each the product of the other extents. In 3-D this is 2·(xy + xz + yz).
// A 1-D box yields 0.
//
// Complexity: O(N²); no division, so zero extents are exact.
func (b BoundingBox[T]) Surface() T {
	d := b.Diagonal()
	if len(d) < 2 {
		return 0
	}
	var res T
	for i := range d {
		facet := T(1)
		for j, e := range d {
			if j != i {
				facet *= e
			}
		}
		res += facet
	}
	return 2 * res
}

// MaximumExtent returns the axis of the largest extent; ties pick the
// lowest axis.
func (b BoundingBox[T]) MaximumExtent() int {
	d := b.Diagonal()
	axis := 0
	for i := 1; i < len(d); i++ {
		if d[i] > d[axis] {
			axis = i
		}
	}
	return axis
}

// Contains reports whether p lies in the closed box.
// Points of another dimension are never contained.
func (b BoundingBox[T]) Contains(p vector.Vector[T]) bool {
	if len(p) != len(b.min) {
		return false
	}
	for i, x := range p {
		if !(x >= b.min[i] && x <= b.max[i]) {
			return false
		}
	}
	return true
}

// String formats the box as "min .. max".
func (b BoundingBox[T]) String() string {
	return b.min.String() + " .. " + b.max.String()
}
