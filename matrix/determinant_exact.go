// SPDX-License-Identifier: MIT
// Package matrix: exact determinants over signed integers and *big.Int.
// These paths always use cofactor expansion: elimination would need division.

package matrix

import (
	"math/big"

	"github.com/katalvlaran/lvgeom/scalar"
)

// DeterminantSigned returns the exact determinant of the minor
// rows[rowMap[i]][colMap[j]] over a signed integer type. Overflow of T wraps
// silently as Go integer arithmetic does; use DeterminantBig when the
// magnitude of entries is unbounded.
//
// Errors: ErrEmptyMap, ErrDimensionMismatch, ErrOutOfRange.
// Complexity: O(k!) for a k×k minor.
func DeterminantSigned[T scalar.Signed](rows [][]T, rowMap, colMap []int) (T, error) {
	if err := validateMaps(rows, rowMap, colMap); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactor(rows, rowMap, colMap), nil
}

// DeterminantBig returns the exact determinant of the minor
// rows[rowMap[i]][colMap[j]] with arbitrary precision. Inputs are not
// modified; the result is a fresh value.
//
// Errors: ErrEmptyMap, ErrDimensionMismatch, ErrOutOfRange, ErrNilMatrix (nil entry).
// Complexity: O(k!) big-integer multiplications for a k×k minor.
func DeterminantBig(rows [][]*big.Int, rowMap, colMap []int) (*big.Int, error) {
	if err := validateMaps(rows, rowMap, colMap); err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}
	for _, r := range rowMap {
		for _, c := range colMap {
			if rows[r][c] == nil {
				return nil, matrixErrorf(opDeterminant, ErrNilMatrix)
			}
		}
	}

	return cofactorBig(rows, rowMap, colMap, new(big.Int)), nil
}

// cofactorBig expands along rowMap[0]. tmp is scratch owned by this call
// level; every recursion level allocates its own.
func cofactorBig(rows [][]*big.Int, rowMap, colMap []int, tmp *big.Int) *big.Int {
	res := new(big.Int)
	switch len(rowMap) {
	case 1:
		return res.Set(rows[rowMap[0]][colMap[0]])
	case 2:
		r0, r1 := rows[rowMap[0]], rows[rowMap[1]]
		res.Mul(r0[colMap[0]], r1[colMap[1]])
		tmp.Mul(r0[colMap[1]], r1[colMap[0]])
		return res.Sub(res, tmp)
	}

	top := rows[rowMap[0]]
	subRows := rowMap[1:]
	subCols := make([]int, len(colMap)-1)
	inner := new(big.Int)
	for k, c := range colMap {
		if top[c].Sign() == 0 {
			continue
		}
		copy(subCols, colMap[:k])
		copy(subCols[k:], colMap[k+1:])
		tmp.Mul(top[c], cofactorBig(rows, subRows, subCols, inner))
		if k%2 == 0 {
			res.Add(res, tmp)
		} else {
			res.Sub(res, tmp)
		}
	}

	return res
}

// LinearIndependent reports whether the first count rows are linearly
// independent: some count×count minor over those rows is non-zero. Column
// subsets are tried in lexicographic order and the search stops at the first
// non-zero minor.
//
// Errors:
//   - ErrInvalidDimensions (count < 1 or count > len(rows)),
//   - ErrDimensionMismatch (ragged rows).
//
// Complexity: O(C(n, count) · count!) in the worst case.
func LinearIndependent[T scalar.Signed](rows [][]T, count int) (bool, error) {
	if count < 1 || count > len(rows) {
		return false, matrixErrorf(opDeterminant, ErrInvalidDimensions)
	}
	n := len(rows[0])
	for _, r := range rows[:count] {
		if len(r) != n {
			return false, matrixErrorf(opDeterminant, ErrDimensionMismatch)
		}
	}
	if count > n {
		return false, nil
	}

	rowMap := identityMap(count)
	colMap := identityMap(count)
	for {
		if cofactor(rows, rowMap, colMap) != 0 {
			return true, nil
		}
		if !nextCombination(colMap, n) {
			return false, nil
		}
	}
}

// nextCombination advances comb (strictly increasing indices < n) to the
// next combination in lexicographic order. It returns false after the last.
func nextCombination(comb []int, n int) bool {
	k := len(comb)
	i := k - 1
	for i >= 0 && comb[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	comb[i]++
	for j := i + 1; j < k; j++ {
		comb[j] = comb[j-1] + 1
	}

	return true
}
