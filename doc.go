// SPDX-License-Identifier: MIT

// Package lvgeom is a generic numerical geometry core: dense vectors and
// matrices over float32/float64, robust decompositions, exact integer
// determinants, orthogonal complements, axis-aligned boxes with ray tests,
// a simplex feasibility solver, and rotation quaternions.
//
// Everything is organized under subpackages:
//
//	scalar/       numeric constraints, machine epsilon, small per-type helpers
//	vector/       Vector[T]: arithmetic, norms, dot and cross products
//	matrix/       Dense[T], kernels, determinant, Gauss, inverse, transforms, covariance
//	matrix/ops/   Cholesky, Householder QR and Jacobi eigen-decomposition
//	complement/   orthogonal complement (float, signed, big.Int) and bases
//	boundingbox/  BoundingBox[T], Ray[T], slab intersection, sdfx interop
//	simplex/      two-phase simplex: feasibility and maximization
//	quaternion/   Hamilton and JPL quaternions, rotation matrices
//	region/       integer grid regions (offset + extent)
//	optics/       reflection and refraction of directions
//	sampling/     deterministic RNGs and samplers for tests and benchmarks
//
// Dimension is a runtime property (len of a vector); small dimensions get
// closed-form fast paths. All operations are pure on their inputs and safe
// for concurrent use; the library starts no goroutines and logs only when a
// logger is passed in through an option.
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
