// SPDX-License-Identifier: MIT

// Package matrix provides a generic dense matrix and the linear-algebra
// kernels the geometry packages are built on.
//
// The matrix package provides:
//
//   - Dense[T], a row-major rows×cols matrix over float32 or float64 with
//     bounds-checked access (At/Set return ErrOutOfRange, never panic).
//   - Kernels Add, Sub, Mul, Scale, Transpose, Hadamard, MulVec and VecMul.
//     Operands are never mutated; results are freshly allocated.
//   - Determinants by cofactor expansion (DeterminantMinor, DeterminantRows)
//     or Gaussian elimination with partial pivoting (DeterminantGauss), plus
//     exact variants over signed integers and *big.Int.
//   - Linear systems: SolveGauss, SolveGaussMulti, LinearSolve (Cramer's rule
//     up to 3×3) and Inverse.
//   - Homogeneous transform builders for the renderer boundary: ScaleMatrix,
//     TranslateMatrix, LookAt, OrthoOpenGL and OrthoVulkan.
//   - Column statistics of sample matrices (CenterColumns, Covariance) and
//     the AllClose tolerance comparison.
//
// Errors are package sentinels wrapped with an operation tag; match them with
// errors.Is. Factorizations (Cholesky, Householder QR, Jacobi eigenvalues) live in
// matrix/ops.
package matrix
