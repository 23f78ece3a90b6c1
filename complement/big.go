// SPDX-License-Identifier: MIT

package complement

import (
	"math/big"

	"github.com/katalvlaran/lvgeom/matrix"
)

// bigScratch holds the accumulators of the 4-D path. A fresh value is
// created per call, so concurrent calls never share state.
type bigScratch struct {
	m [6]big.Int // 2×2 minors of the last two rows
	t big.Int
}

// OfBig is the arbitrary-precision form of Of. Inputs are not modified;
// every returned component is a new *big.Int.
//
// Errors: ErrDimensionMismatch; matrix.ErrNilMatrix for nil entries.
func OfBig(vectors [][]*big.Int) ([]*big.Int, error) {
	n, err := validateShape(vectors)
	if err != nil {
		return nil, complementErrorf(opBig, err)
	}
	for _, v := range vectors {
		for _, x := range v {
			if x == nil {
				return nil, complementErrorf(opBig, matrix.ErrNilMatrix)
			}
		}
	}
	switch n {
	case 2:
		v := vectors[0]
		return []*big.Int{new(big.Int).Set(v[1]), new(big.Int).Neg(v[0])}, nil
	case 3:
		return ofBig3(vectors), nil
	case 4:
		var s bigScratch
		return s.ofBig4(vectors), nil
	}

	rows := rowSequence(n - 1)
	res := make([]*big.Int, n)
	for i := range res {
		minor, err := matrix.DeterminantBig(vectors, rows, deletedColumn(n, i))
		if err != nil {
			return nil, complementErrorf(opBig, err)
		}
		if i%2 == 1 {
			minor.Neg(minor)
		}
		res[i] = minor
	}

	return res, nil
}

// det2 sets z = a·d - b·c using t as scratch.
func det2(z, t, a, d, b, c *big.Int) *big.Int {
	z.Mul(a, d)
	t.Mul(b, c)
	return z.Sub(z, t)
}

func ofBig3(v [][]*big.Int) []*big.Int {
	var t big.Int
	a, b := v[0], v[1]
	res := []*big.Int{new(big.Int), new(big.Int), new(big.Int)}
	det2(res[0], &t, a[1], b[2], a[2], b[1])
	det2(res[1], &t, a[2], b[0], a[0], b[2])
	det2(res[2], &t, a[0], b[1], a[1], b[0])

	return res
}

// ofBig4 expands along the first row with the six 2×2 minors of rows 1, 2
// computed once.
func (s *bigScratch) ofBig4(v [][]*big.Int) []*big.Int {
	a, b, c := v[0], v[1], v[2]
	m23 := det2(&s.m[0], &s.t, b[2], c[3], b[3], c[2])
	m13 := det2(&s.m[1], &s.t, b[1], c[3], b[3], c[1])
	m12 := det2(&s.m[2], &s.t, b[1], c[2], b[2], c[1])
	m03 := det2(&s.m[3], &s.t, b[0], c[3], b[3], c[0])
	m02 := det2(&s.m[4], &s.t, b[0], c[2], b[2], c[0])
	m01 := det2(&s.m[5], &s.t, b[0], c[1], b[1], c[0])

	res := make([]*big.Int, 4)
	res[0] = s.combine(a[1], m23, a[2], m13, a[3], m12)
	res[1] = s.combine(a[0], m23, a[2], m03, a[3], m02)
	res[1].Neg(res[1])
	res[2] = s.combine(a[0], m13, a[1], m03, a[3], m01)
	res[3] = s.combine(a[0], m12, a[1], m02, a[2], m01)
	res[3].Neg(res[3])

	return res
}

// combine returns x·mx - y·my + z·mz.
func (s *bigScratch) combine(x, mx, y, my, z, mz *big.Int) *big.Int {
	r := new(big.Int).Mul(x, mx)
	s.t.Mul(y, my)
	r.Sub(r, &s.t)
	s.t.Mul(z, mz)
	return r.Add(r, &s.t)
}
