// SPDX-License-Identifier: MIT

// Package optics implements mirror reflection and Snell refraction of unit
// directions about a unit surface normal, in any dimension.
//
// eta is the ratio n_incident / n_transmitted of the refractive indices.
// Total internal reflection is an ordinary outcome, reported by ok=false.
package optics

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Reflect returns v mirrored about the plane with normal n: v - 2(v·n)n.
func Reflect[T scalar.Float](v, n vector.Vector[T]) vector.Vector[T] {
	res := v.Clone()
	res.MultiplyAdd(n, -2*vector.Dot(v, n))
	return res
}

// Refract bends the incident direction v (travelling towards the surface,
// v·n < 0) through the surface with normal n.
//
//	k = 1 - eta²(1 - (n·v)²)
//	t = eta·v - (eta·(n·v) + √k)·n
//
// ok is false when k < 0 (total internal reflection).
func Refract[T scalar.Float](v, n vector.Vector[T], eta T) (vector.Vector[T], bool) {
	nv := vector.Dot(n, v)
	k := 1 - eta*eta*(1-nv*nv)
	if k < 0 {
		return nil, false
	}
	res := v.Scale(eta)
	res.MultiplyAdd(n, -(eta*nv + scalar.Sqrt(k)))
	return res, true
}

// Refract2 is Refract for wo pointing away from the surface, on the same
// side as n (wo·n > 0). The result points into the other medium.
//
//	sin²θt = eta²·(1 - (n·wo)²)
//	t = -eta·wo + (eta·(n·wo) - cosθt)·n
//
// ok is false when sin²θt ≥ 1.
func Refract2[T scalar.Float](wo, n vector.Vector[T], eta T) (vector.Vector[T], bool) {
	cosI := vector.Dot(n, wo)
	sin2I := scalar.Max(0, 1-cosI*cosI)
	sin2T := eta * eta * sin2I
	if sin2T >= 1 {
		return nil, false
	}
	cosT := scalar.Sqrt(1 - sin2T)
	res := wo.Scale(-eta)
	res.MultiplyAdd(n, eta*cosI-cosT)
	return res, true
}
