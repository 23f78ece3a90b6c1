// SPDX-License-Identifier: MIT
// Package matrix: determinants by cofactor (Laplace) expansion and by
// Gaussian elimination with partial pivoting.
//
// Cofactor expansion is exact in the arithmetic of T and is preferred for
// small sizes; elimination is O(n³) and takes over beyond the per-type
// crossover (DefaultCofactorLimit32 / DefaultCofactorLimit64).

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// number is the arithmetic shared by the float and exact-integer paths.
type number interface {
	scalar.Float | scalar.Signed
}

// DeterminantMinor returns the determinant of the minor formed by rows[rowMap[i]][colMap[j]].
//
// Implementation:
//   - Sizes 1, 2, 3 use closed forms.
//   - Size ≥ 4 expands along rowMap[0], recursing over the remaining rows and
//     every column but one, with alternating sign.
//
// Errors:
//   - ErrEmptyMap          (no rows selected),
//   - ErrDimensionMismatch (len(rowMap) != len(colMap)),
//   - ErrOutOfRange        (an index outside rows).
//
// Complexity:
//   - Time O(k!) for a k×k minor, Space O(k²) for column maps.
func DeterminantMinor[T scalar.Float](rows []vector.Vector[T], rowMap, colMap []int) (T, error) {
	if err := validateMaps(rows, rowMap, colMap); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactor(rows, rowMap, colMap), nil
}

// validateMaps checks a minor selection against rows.
func validateMaps[R ~[]E, E any](rows []R, rowMap, colMap []int) error {
	if len(rowMap) == 0 {
		return ErrEmptyMap
	}
	if len(rowMap) != len(colMap) {
		return ErrDimensionMismatch
	}
	for _, r := range rowMap {
		if r < 0 || r >= len(rows) {
			return ErrOutOfRange
		}
		for _, c := range colMap {
			if c < 0 || c >= len(rows[r]) {
				return ErrOutOfRange
			}
		}
	}

	return nil
}

// cofactor is the unchecked Laplace expansion shared by every scalar kind.
func cofactor[T number, R ~[]T](rows []R, rowMap, colMap []int) T {
	switch len(rowMap) {
	case 1:
		return rows[rowMap[0]][colMap[0]]
	case 2:
		r0, r1 := rows[rowMap[0]], rows[rowMap[1]]
		return r0[colMap[0]]*r1[colMap[1]] - r0[colMap[1]]*r1[colMap[0]]
	case 3:
		r0, r1, r2 := rows[rowMap[0]], rows[rowMap[1]], rows[rowMap[2]]
		c0, c1, c2 := colMap[0], colMap[1], colMap[2]
		return r0[c0]*(r1[c1]*r2[c2]-r1[c2]*r2[c1]) -
			r0[c1]*(r1[c0]*r2[c2]-r1[c2]*r2[c0]) +
			r0[c2]*(r1[c0]*r2[c1]-r1[c1]*r2[c0])
	}

	top := rows[rowMap[0]]
	subRows := rowMap[1:]
	subCols := make([]int, len(colMap)-1)
	var res T
	for k, c := range colMap {
		copy(subCols, colMap[:k])
		copy(subCols[k:], colMap[k+1:])
		if top[c] == 0 {
			continue
		}
		d := top[c] * cofactor(rows, subRows, subCols)
		if k%2 == 0 {
			res += d
		} else {
			res -= d
		}
	}

	return res
}

// identityMap returns [0, 1, ..., n-1].
func identityMap(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}

	return m
}

// DeterminantRows returns the determinant of the square matrix given as rows.
// Sizes up to the per-type crossover use cofactor expansion; larger sizes use
// DeterminantGauss. WithCofactorLimit overrides the crossover.
//
// Errors:
//   - ErrInvalidDimensions (no rows), ErrNonSquare.
//
// Complexity:
//   - O(n!) below the crossover, O(n³) above.
func DeterminantRows[T scalar.Float](rows []vector.Vector[T], opts ...Option) (T, error) {
	if err := validateRowsSquare(opDeterminant, rows); err != nil {
		return 0, err
	}
	if len(rows) > cofactorLimitFor[T](gatherOptions(opts...)) {
		return determinantGauss(rows), nil
	}
	idx := identityMap(len(rows))

	return cofactor(rows, idx, idx), nil
}

// DeterminantGauss returns the determinant by Gaussian elimination with
// partial pivoting, working on a copy of rows.
//
// Behavior highlights:
//   - The pivot is the entry of largest magnitude in the working column.
//   - Each row swap flips the sign.
//   - A column with only exact zeros at or below the diagonal yields 0.
//
// Errors:
//   - ErrInvalidDimensions, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func DeterminantGauss[T scalar.Float](rows []vector.Vector[T]) (T, error) {
	if err := validateRowsSquare(opDeterminant, rows); err != nil {
		return 0, err
	}

	return determinantGauss(rows), nil
}

func determinantGauss[T scalar.Float](rows []vector.Vector[T]) T {
	n := len(rows)
	a := make([]vector.Vector[T], n)
	for i := range rows {
		a[i] = rows[i].Clone()
	}

	var det T = 1
	for i := 0; i < n; i++ {
		p := pivotRow(a, i)
		if a[p][i] == 0 {
			return 0
		}
		if p != i {
			a[p], a[i] = a[i], a[p]
			det = -det
		}
		det *= a[i][i]
		for k := i + 1; k < n; k++ {
			f := a[k][i] / a[i][i]
			if f == 0 {
				continue
			}
			for j := i + 1; j < n; j++ {
				a[k][j] -= f * a[i][j]
			}
		}
	}

	return det
}

// pivotRow returns the index ≥ col of the row with the largest |a[row][col]|;
// the first such row wins on ties.
func pivotRow[T scalar.Float, R ~[]T](a []R, col int) int {
	p := col
	best := scalar.Abs(a[col][col])
	for k := col + 1; k < len(a); k++ {
		if v := scalar.Abs(a[k][col]); v > best {
			best, p = v, k
		}
	}

	return p
}
