package ops_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/sampling"
	"github.com/katalvlaran/lvgeom/vector"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	vs := make([]vector.Vector[float64], len(rows))
	for i, r := range rows {
		vs[i] = vector.Of(r...)
	}
	m, err := matrix.NewDenseFromRows(vs)
	require.NoError(t, err)

	return m
}

// randomSymmetric returns an n×n symmetric matrix with entries in [-10, 10).
func randomSymmetric(rng *rand.Rand, n int) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := sampling.Uniform(rng, -10.0, 10)
			a[i][j], a[j][i] = v, v
		}
	}

	return a
}

// randomSPD returns B·Bᵀ + n·I for a random B.
func randomSPD(rng *rand.Rand, n int) [][]float64 {
	b := randomSymmetric(rng, n)
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			for k := 0; k < n; k++ {
				a[i][j] += b[i][k] * b[j][k]
			}
		}
		a[i][i] += float64(n)
	}

	return a
}

func symDense(rows [][]float64) *mat.SymDense {
	n := len(rows)
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, rows[i][j])
		}
	}

	return s
}
