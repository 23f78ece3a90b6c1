// SPDX-License-Identifier: MIT

package boundingbox

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// clip narrows [near, far] by the slab [lo, hi] of one axis, for a ray with
// origin o and reciprocal direction r. neg swaps the slab planes.
// Comparisons are written so a NaN from 0·Inf never replaces a bound.
func clip[T scalar.Float](near, far, lo, hi, o, r T, neg bool) (T, T) {
	if neg {
		lo, hi = hi, lo
	}
	if t := (lo - o) * r; t > near {
		near = t
	}
	if t := (hi - o) * r; t < far {
		far = t
	}
	return near, far
}

// reciprocal returns 1/d with both zeros mapping to +Inf.
func reciprocal[T scalar.Float](d T) T {
	if d == 0 {
		return scalar.Inf[T](1)
	}
	return 1 / d
}

// slab returns the parameter interval of ray ∩ box restricted to t ≥ 0.
// ok is false when the interval is empty.
//
// Implementation:
//   - Stage 1: start from [0, +Inf).
//   - Stage 2: per axis, clip by the entry/exit distances of the slab.
//   - Stage 3: bail out as soon as far < near.
//
// Complexity: O(N), no allocation.
func (b BoundingBox[T]) slab(r Ray[T]) (near, far T, ok bool) {
	if len(r.Org) != len(b.min) || len(r.Dir) != len(b.min) {
		panic("boundingbox: ray: " + vector.ErrDimensionMismatch.Error())
	}
	far = scalar.Inf[T](1)
	for i := range b.min {
		d := r.Dir[i]
		near, far = clip(near, far, b.min[i], b.max[i], r.Org[i], reciprocal(d), d < 0)
		if far < near {
			return 0, 0, false
		}
	}
	return near, far, true
}

// Intersect returns the distance along r to the box surface: the entry
// distance when the origin is outside, the exit distance when it is inside.
// ok is false when r misses the box, the box is behind the origin, or the
// only boundary point is the origin itself.
func (b BoundingBox[T]) Intersect(r Ray[T]) (T, bool) {
	return b.IntersectMax(r, scalar.Inf[T](1))
}

// IntersectMax is Intersect limited to hits at distances below maxDistance.
func (b BoundingBox[T]) IntersectMax(r Ray[T], maxDistance T) (T, bool) {
	near, far, ok := b.slab(r)
	if !ok {
		return 0, false
	}
	t := near
	if t <= 0 {
		t = far
	}
	if t <= 0 || !(t < maxDistance) {
		return 0, false
	}
	return t, true
}

// IntersectVolume treats the box as a solid: it returns 0 when the origin
// lies in the closed box and the entry distance otherwise.
func (b BoundingBox[T]) IntersectVolume(r Ray[T]) (T, bool) {
	return b.IntersectVolumeMax(r, scalar.Inf[T](1))
}

// IntersectVolumeMax is IntersectVolume limited to distances below maxDistance.
func (b BoundingBox[T]) IntersectVolumeMax(r Ray[T], maxDistance T) (T, bool) {
	near, _, ok := b.slab(r)
	if !ok || !(near < maxDistance) {
		return 0, false
	}
	return near, true
}

// NegativeDirections returns dir[i] < 0 per axis, the companion of
// dir.Reciprocal() for IntersectReciprocal. Negative zero counts as
// non-negative, matching the +Inf reciprocal of both zeros.
func NegativeDirections[T scalar.Float](dir vector.Vector[T]) []bool {
	return dir.NegativeBool()
}

// IntersectReciprocal reports whether the ray hits the box as a solid, given
// the origin, the per-axis reciprocal of the direction and the per-axis
// sign flags from NegativeDirections. No division is performed.
func (b BoundingBox[T]) IntersectReciprocal(org, dirReciprocal vector.Vector[T], dirNegative []bool) bool {
	return b.IntersectReciprocalMax(org, dirReciprocal, dirNegative, scalar.Inf[T](1))
}

// IntersectReciprocalMax is IntersectReciprocal limited to hits at
// distances below maxDistance.
//
// Complexity: O(N), no allocation.
func (b BoundingBox[T]) IntersectReciprocalMax(org, dirReciprocal vector.Vector[T], dirNegative []bool, maxDistance T) bool {
	n := len(b.min)
	if len(org) != n || len(dirReciprocal) != n || len(dirNegative) != n {
		panic("boundingbox: IntersectReciprocal: " + vector.ErrDimensionMismatch.Error())
	}
	var near T
	far := scalar.Inf[T](1)
	for i := 0; i < n; i++ {
		near, far = clip(near, far, b.min[i], b.max[i], org[i], dirReciprocal[i], dirNegative[i])
		if far < near {
			return false
		}
	}
	return near < maxDistance
}
