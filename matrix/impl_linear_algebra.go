// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, subtraction, matrix
// multiplication, transpose, scalar scaling and matrix-vector products on
// Dense. All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Notes:
//   - Kernels never mutate their operands; every result is freshly allocated.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opHadamard    = "Hadamard"
	opMulVec      = "MulVec"
	opVecMul      = "VecMul"
	opTrace       = "Trace"
	opDiagonal    = "Diagonal"
	opBlock       = "Block"
	opSetBlock    = "SetBlock"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opSolve       = "Solve"
	opGauss       = "SolveGauss"
	opCramer      = "Cramer"
	opOrthogonal  = "IsOrthogonal"
	opTransform   = "Transform"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Inputs:
//   - tag: operation name (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: single flat loop 0..n-1 over the backing slices.
//
// Errors:
//   - ErrNilMatrix          (a or b is nil).
//   - ErrDimensionMismatch  (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T scalar.Float](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := mustDense[T](a.r, a.c)
	for i := range res.data {
		res.data[i] = a.data[i] + sign*b.data[i]
	}

	return res, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T scalar.Float](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T scalar.Float](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }

// Mul computes the matrix product a×b, shape (a.Rows × b.Cols).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i-k-j loop order; a[i,k] is hoisted and the inner loop walks a
//     contiguous row of b and of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed i→k→j accumulation order: results are bit-stable across runs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T scalar.Float](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := mustDense[T](a.r, b.c)
	var i, k, j int
	for i = 0; i < a.r; i++ {
		out := res.row(i)
		for k = 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue // zero contributes nothing
			}
			bk := b.row(k)
			for j = 0; j < b.c; j++ {
				out[j] += aik * bk[j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T scalar.Float](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := mustDense[T](m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T scalar.Float](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := mustDense[T](m.r, m.c)
	for i, v := range m.data {
		res.data[i] = alpha * v
	}

	return res, nil
}

// Hadamard returns the element-wise product a∘b.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard[T scalar.Float](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	res := mustDense[T](a.r, a.c)
	for i := range res.data {
		res.data[i] = a.data[i] * b.data[i]
	}

	return res, nil
}

// MulVec computes y = m·x, treating x as a column vector.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MulVec[T scalar.Float](m *Dense[T], x vector.Vector[T]) (vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	y := make(vector.Vector[T], m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		row := m.row(i)
		var s T
		for j = 0; j < m.c; j++ {
			s += row[j] * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// VecMul computes y = x·m, treating x as a row vector.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Rows).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func VecMul[T scalar.Float](x vector.Vector[T], m *Dense[T]) (vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}

	y := make(vector.Vector[T], m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		row := m.row(i)
		for j = 0; j < m.c; j++ {
			y[j] += x[i] * row[j]
		}
	}

	return y, nil
}
