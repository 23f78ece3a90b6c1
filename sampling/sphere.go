// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// minSphereNormSquared rejects near-zero Gaussian draws before normalization.
const minSphereNormSquared = 1e-12

// UniformOnSphere returns a unit vector uniformly distributed on the sphere
// S^(n-1). Components are independent normal draws, normalized; draws with a
// tiny norm are rejected so the result is always finite.
//
// Complexity: O(n) expected.
func UniformOnSphere[T scalar.Float](rng *rand.Rand, n int) vector.Vector[T] {
	v := vector.New[T](n)
	for {
		var s float64
		for i := range v {
			x := rng.NormFloat64()
			v[i] = T(x)
			s += x * x
		}
		if s > minSphereNormSquared {
			v.Normalize()
			return v
		}
	}
}

// Uniform returns a value uniformly distributed in [lo, hi).
func Uniform[T scalar.Float](rng *rand.Rand, lo, hi T) T {
	return lo + T(rng.Float64())*(hi-lo)
}

// UniformVector returns a vector with components uniform in [lo, hi).
func UniformVector[T scalar.Float](rng *rand.Rand, n int, lo, hi T) vector.Vector[T] {
	v := vector.New[T](n)
	for i := range v {
		v[i] = Uniform(rng, lo, hi)
	}
	return v
}

// InternalPoints returns count points strictly inside the axis-aligned box
// starting at org and spanning diagonal (every component of diagonal > 0).
// Each coordinate is drawn from the open unit interval, keeping points off
// the faces.
func InternalPoints[T scalar.Float](rng *rand.Rand, org, diagonal vector.Vector[T], count int) []vector.Vector[T] {
	if len(org) != len(diagonal) {
		panic(fmt.Errorf("sampling: InternalPoints: %w", vector.ErrDimensionMismatch))
	}
	res := make([]vector.Vector[T], count)
	for k := range res {
		p := org.Clone()
		for i := range p {
			var f float64
			for f == 0 {
				f = rng.Float64()
			}
			p[i] += T(f) * diagonal[i]
		}
		res[k] = p
	}
	return res
}
