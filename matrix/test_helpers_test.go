// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Bridge Dense to gonum's mat.Dense, used as an independent oracle.

package matrix_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/sampling"
	"github.com/katalvlaran/lvgeom/vector"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense[T float32 | float64](t *testing.T, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows[T float32 | float64](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	vs := make([]vector.Vector[T], len(rows))
	for i, r := range rows {
		vs[i] = vector.Of(r...)
	}
	m, err := matrix.NewDenseFromRows(vs)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T float32 | float64](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomDense fills an r×c matrix with values uniform in [-1, 1).
func RandomDense(rng *rand.Rand, r, c int) *matrix.Dense[float64] {
	rows := make([]vector.Vector[float64], r)
	for i := range rows {
		rows[i] = sampling.UniformVector[float64](rng, c, -1, 1)
	}
	m, _ := matrix.NewDenseFromRows(rows)

	return m
}

// toGonum copies m into a gonum matrix.
func toGonum(m *matrix.Dense[float64]) *mat.Dense {
	g := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			g.Set(i, j, v)
		}
	}

	return g
}

// requireMatchesGonum compares m to g element-wise within tol.
func requireMatchesGonum(t *testing.T, g mat.Matrix, m *matrix.Dense[float64], tol float64) {
	t.Helper()
	r, c := g.Dims()
	require.Equal(t, r, m.Rows())
	require.Equal(t, c, m.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, g.At(i, j), MustAt(t, m, i, j), tol, "[%d,%d]", i, j)
		}
	}
}

// requireAllClose compares m to want element-wise within tol.
func requireAllClose[T float32 | float64](t *testing.T, want [][]float64, m *matrix.Dense[T], tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	for i, row := range want {
		require.Equal(t, len(row), m.Cols())
		for j, w := range row {
			require.InDelta(t, w, float64(MustAt(t, m, i, j)), tol, "[%d,%d]", i, j)
		}
	}
}

// gaussFixture mirrors testdata/gauss.yaml.
type gaussFixture struct {
	Matrix      [][]float64 `yaml:"matrix"`
	Inverse     [][]float64 `yaml:"inverse"`
	RHS         []float64   `yaml:"rhs"`
	Solution    []float64   `yaml:"solution"`
	Determinant float64     `yaml:"determinant"`
	Precision   struct {
		Float32 float64 `yaml:"float32"`
		Float64 float64 `yaml:"float64"`
	} `yaml:"precision"`
}

func loadGaussFixture(t *testing.T) gaussFixture {
	t.Helper()
	raw, err := os.ReadFile("testdata/gauss.yaml")
	require.NoError(t, err)
	var fx gaussFixture
	require.NoError(t, yaml.Unmarshal(raw, &fx))

	return fx
}

// convertRows casts float64 fixture rows to T.
func convertRows[T float32 | float64](rows [][]float64) [][]T {
	res := make([][]T, len(rows))
	for i, r := range rows {
		res[i] = make([]T, len(r))
		for j, v := range r {
			res[i][j] = T(v)
		}
	}

	return res
}
