// SPDX-License-Identifier: MIT

package boundingbox

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// FromSDFBox3 converts an sdfx 3-D box.
func FromSDFBox3(b sdf.Box3) BoundingBox[float64] {
	return New(
		vector.Of(b.Min.X, b.Min.Y, b.Min.Z),
		vector.Of(b.Max.X, b.Max.Y, b.Max.Z),
	)
}

// FromSDFBox2 converts an sdfx 2-D box.
func FromSDFBox2(b sdf.Box2) BoundingBox[float64] {
	return New(
		vector.Of(b.Min.X, b.Min.Y),
		vector.Of(b.Max.X, b.Max.Y),
	)
}

// FromSDF3 returns the bounding box sdfx reports for a solid.
func FromSDF3(s sdf.SDF3) BoundingBox[float64] {
	return FromSDFBox3(s.BoundingBox())
}

// ToSDFBox3 converts a 3-D box to sdfx, widening to float64.
func ToSDFBox3[T scalar.Float](b BoundingBox[T]) (sdf.Box3, error) {
	if b.Dim() != 3 {
		return sdf.Box3{}, boxErrorf(opToSDFBox3, ErrDimensionMismatch)
	}
	return sdf.Box3{
		Min: v3.Vec{X: float64(b.min[0]), Y: float64(b.min[1]), Z: float64(b.min[2])},
		Max: v3.Vec{X: float64(b.max[0]), Y: float64(b.max[1]), Z: float64(b.max[2])},
	}, nil
}

// ToSDFBox2 converts a 2-D box to sdfx, widening to float64.
func ToSDFBox2[T scalar.Float](b BoundingBox[T]) (sdf.Box2, error) {
	if b.Dim() != 2 {
		return sdf.Box2{}, boxErrorf(opToSDFBox2, ErrDimensionMismatch)
	}
	return sdf.Box2{
		Min: v2.Vec{X: float64(b.min[0]), Y: float64(b.min[1])},
		Max: v2.Vec{X: float64(b.max[0]), Y: float64(b.max[1])},
	}, nil
}
