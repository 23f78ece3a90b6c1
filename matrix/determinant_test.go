package matrix_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/sampling"
	"github.com/katalvlaran/lvgeom/vector"
)

func TestDeterminantClosedForms(t *testing.T) {
	for _, tc := range []struct {
		rows [][]float64
		want float64
	}{
		{[][]float64{{5}}, 5},
		{[][]float64{{1, 2}, {3, 4}}, -2},
		{[][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 6},
		{[][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
	} {
		t.Run(fmt.Sprint(len(tc.rows)), func(t *testing.T) {
			m := MustRows(t, tc.rows)
			det, err := m.Determinant()
			require.NoError(t, err)
			require.InDelta(t, tc.want, det, 1e-12)

			g, err := matrix.DeterminantGauss(m.RowVectors())
			require.NoError(t, err)
			require.InDelta(t, tc.want, g, 1e-12)
		})
	}
}

func TestDeterminantFixture(t *testing.T) {
	fx := loadGaussFixture(t)
	m := MustRows(t, fx.Matrix)

	det, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, fx.Determinant, det, "integer entries: cofactor expansion is exact")

	g, err := matrix.DeterminantGauss(m.RowVectors())
	require.NoError(t, err)
	require.InDelta(t, fx.Determinant, g, 1e-10)
}

func TestDeterminantCofactorMatchesGauss(t *testing.T) {
	rng := sampling.NewRNG(21)
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			m := RandomDense(rng, n, n)
			rows := m.RowVectors()

			cof, err := matrix.DeterminantRows(rows, matrix.WithCofactorLimit(8))
			require.NoError(t, err)
			gauss, err := matrix.DeterminantGauss(rows)
			require.NoError(t, err)
			require.InDelta(t, cof, gauss, 1e-12)
			require.InDelta(t, mat.Det(toGonum(m)), gauss, 1e-12)

			auto, err := matrix.DeterminantRows(rows)
			require.NoError(t, err)
			require.InDelta(t, gauss, auto, 1e-12)
		})
	}
}

func TestDeterminantGaussPivoting(t *testing.T) {
	// zero leading pivot forces a swap; det = -1
	rows := []vector.Vector[float64]{vector.Of(0.0, 1), vector.Of(1.0, 0)}
	det, err := matrix.DeterminantGauss(rows)
	require.NoError(t, err)
	require.Equal(t, -1.0, det)
	require.Equal(t, vector.Of(0.0, 1), rows[0], "input untouched")

	// all-zero column
	det, err = matrix.DeterminantGauss([]vector.Vector[float64]{vector.Of(0.0, 1), vector.Of(0.0, 2)})
	require.NoError(t, err)
	require.Zero(t, det)
}

func TestDeterminantErrors(t *testing.T) {
	_, err := matrix.DeterminantRows([]vector.Vector[float64]{vector.Of(1.0, 2)})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.DeterminantGauss[float32](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	rows := []vector.Vector[float64]{vector.Of(1.0, 2), vector.Of(3.0, 4)}
	_, err = matrix.DeterminantMinor(rows, nil, nil)
	require.ErrorIs(t, err, matrix.ErrEmptyMap)
	_, err = matrix.DeterminantMinor(rows, []int{0}, []int{0, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.DeterminantMinor(rows, []int{2}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDeterminantMinorSelection(t *testing.T) {
	rows := []vector.Vector[float64]{
		vector.Of(1.0, 2, 3, 4),
		vector.Of(5.0, 6, 7, 8),
		vector.Of(2.0, 6, 4, 8),
	}
	// rows 0,2 and columns 1,3: 2*8 - 4*6
	d, err := matrix.DeterminantMinor(rows, []int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	require.Equal(t, -8.0, d)
}

func TestDeterminantExact(t *testing.T) {
	rows := [][]int64{
		{2, 2, 3, 4},
		{5, 12, 7, 8},
		{9, 10, 22, 12},
		{13, 14, 15, 32},
	}
	idx := []int{0, 1, 2, 3}
	d, err := matrix.DeterminantSigned(rows, idx, idx)
	require.NoError(t, err)
	require.Equal(t, int64(400), d)

	brows := make([][]*big.Int, len(rows))
	for i, r := range rows {
		for _, v := range r {
			brows[i] = append(brows[i], big.NewInt(v))
		}
	}
	bd, err := matrix.DeterminantBig(brows, idx, idx)
	require.NoError(t, err)
	require.Equal(t, 0, bd.Cmp(big.NewInt(400)))
	require.Equal(t, int64(2), brows[0][0].Int64(), "inputs untouched")

	// entries whose products overflow int64
	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	one := big.NewInt(1)
	bd, err = matrix.DeterminantBig([][]*big.Int{{huge, one}, {one, huge}}, []int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	want := new(big.Int).Sub(new(big.Int).Mul(huge, huge), one)
	require.Equal(t, 0, bd.Cmp(want))

	brows[1][1] = nil
	_, err = matrix.DeterminantBig(brows, idx, idx)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLinearIndependent(t *testing.T) {
	ok, err := matrix.LinearIndependent([][]int64{{1, 2, 3}, {2, 4, 6}}, 2)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.LinearIndependent([][]int64{{1, 2, 3}, {2, 4, 7}}, 2)
	require.NoError(t, err)
	require.True(t, ok, "columns (1,2) are dependent but (0,2) are not")

	ok, err = matrix.LinearIndependent([][]int32{{1, 0}, {0, 1}, {1, 1}}, 3)
	require.NoError(t, err)
	require.False(t, ok, "three rows in 2-D")

	_, err = matrix.LinearIndependent([][]int64{{1}}, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
