package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/sampling"
	"github.com/katalvlaran/lvgeom/vector"
)

func checkGaussFixture[T float32 | float64](t *testing.T, fx gaussFixture, prec float64) {
	a := MustRows(t, convertRows[T](fx.Matrix))
	b := make(vector.Vector[T], len(fx.RHS))
	for i, v := range fx.RHS {
		b[i] = T(v)
	}

	x, err := matrix.SolveGauss(a, b)
	require.NoError(t, err)
	for i, w := range fx.Solution {
		require.InDelta(t, w, float64(x[i]), prec, "x[%d]", i)
	}

	x, err = matrix.LinearSolve(a, b)
	require.NoError(t, err)
	for i, w := range fx.Solution {
		require.InDelta(t, w, float64(x[i]), prec, "x[%d]", i)
	}

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	requireAllClose(t, fx.Inverse, inv, prec)
}

func TestGaussFixture(t *testing.T) {
	fx := loadGaussFixture(t)
	t.Run("float32", func(t *testing.T) { checkGaussFixture[float32](t, fx, fx.Precision.Float32) })
	t.Run("float64", func(t *testing.T) { checkGaussFixture[float64](t, fx, fx.Precision.Float64) })
}

func TestSolveGaussMulti(t *testing.T) {
	fx := loadGaussFixture(t)
	a := MustRows(t, fx.Matrix)
	b := MustRows(t, [][]float64{{1, 2}, {2, 4}, {3, 6}, {4, 8}})

	x, err := matrix.SolveGaussMulti(a, b)
	require.NoError(t, err)
	want := make([][]float64, len(fx.Solution))
	for i, s := range fx.Solution {
		want[i] = []float64{s, 2 * s}
	}
	requireAllClose(t, want, x, 1e-13)

	_, err = matrix.SolveGaussMulti(a, MustDense[float64](t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolveSmallCramer(t *testing.T) {
	a := MustRows(t, [][]float64{{2, 1}, {1, 3}})
	x, err := a.Solve(vector.Of(3.0, 5))
	require.NoError(t, err)
	require.InDelta(t, 0.8, x[0], 1e-15)
	require.InDelta(t, 1.4, x[1], 1e-15)

	a3 := MustRows(t, [][]float64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}})
	x, err = matrix.LinearSolve(a3, vector.Of(14.0, 14, 17))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2, 3}, []float64(x), 1e-12)
}

func TestInverseAgainstGonum(t *testing.T) {
	rng := sampling.NewRNG(8)
	for n := 1; n <= 6; n++ {
		a := RandomDense(rng, n, n)
		inv, err := a.Inversed()
		require.NoError(t, err)

		var want mat.Dense
		require.NoError(t, want.Inverse(toGonum(a)))
		requireMatchesGonum(t, &want, inv, 1e-9)

		prod, err := matrix.Mul(a, inv)
		require.NoError(t, err)
		id, _ := matrix.NewIdentity[float64](n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.InDelta(t, MustAt(t, id, i, j), MustAt(t, prod, i, j), 1e-9)
			}
		}
	}
}

func TestSingular(t *testing.T) {
	s3 := MustRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}})
	_, err := matrix.Inverse(s3)
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.LinearSolve(s3, vector.Of(1.0, 2, 3))
	require.ErrorIs(t, err, matrix.ErrSingular)

	s4 := MustRows(t, [][]float64{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}})
	_, err = matrix.SolveGauss(s4, vector.Of(1.0, 1, 1, 1))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Inverse(s4)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.SolveGauss(MustDense[float64](t, 2, 3), vector.Of(1.0, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.SolveGauss(s4, vector.Of(1.0))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
