package simplex_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/sampling"
	"github.com/katalvlaran/lvgeom/simplex"
	"github.com/katalvlaran/lvgeom/vector"
)

type expectation struct {
	Solution   string    `yaml:"solution"`
	Value      float64   `yaml:"value"`
	X          []float64 `yaml:"x"`
	Iterations *int      `yaml:"iterations"`
}

type simplexCase struct {
	Name        string      `yaml:"name"`
	A           [][]float64 `yaml:"a"`
	B           []float64   `yaml:"b"`
	C           []float64   `yaml:"c"`
	Constraints expectation `yaml:"constraints"`
	Maximize    expectation `yaml:"maximize"`
}

func loadCases(t *testing.T) []simplexCase {
	t.Helper()
	raw, err := os.ReadFile("testdata/simplex.yaml")
	require.NoError(t, err)
	var cases []simplexCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)
	return cases
}

func rowsOf(rows [][]float64) []vector.Vector[float64] {
	res := make([]vector.Vector[float64], len(rows))
	for i, r := range rows {
		res[i] = vector.Of(r...)
	}
	return res
}

// requireSatisfies checks b + a·x ≥ -tol and x ≥ 0.
func requireSatisfies(t *testing.T, a []vector.Vector[float64], b []float64, x vector.Vector[float64], tol float64) {
	t.Helper()
	for _, xj := range x {
		require.GreaterOrEqual(t, xj, 0.0)
	}
	for i, row := range a {
		require.GreaterOrEqual(t, b[i]+vector.Dot(row, x), -tol, "row %d", i)
	}
}

func TestFixtures(t *testing.T) {
	for _, c := range loadCases(t) {
		t.Run(c.Name, func(t *testing.T) {
			a := rowsOf(c.A)

			res, err := simplex.SolveConstraints(a, c.B)
			require.NoError(t, err)
			require.Equal(t, c.Constraints.Solution, res.Solution.String())
			if c.Constraints.Iterations != nil {
				require.Equal(t, *c.Constraints.Iterations, res.Iterations)
			}

			opt, err := simplex.Maximize(a, c.B, vector.Of(c.C...))
			require.NoError(t, err)
			require.Equal(t, c.Maximize.Solution, opt.Solution.String())
			if c.Maximize.Iterations != nil {
				require.Equal(t, *c.Maximize.Iterations, opt.Iterations)
			}
			if opt.Solution != simplex.Feasible {
				require.Nil(t, opt.X)
				return
			}
			require.InDelta(t, c.Maximize.Value, opt.Value, 1e-12)
			require.InDelta(t, opt.Value, vector.Dot(vector.Of(c.C...), opt.X), 1e-12)
			if c.Maximize.X != nil {
				require.InDeltaSlice(t, c.Maximize.X, []float64(opt.X), 1e-12)
			}
			requireSatisfies(t, a, c.B, opt.X, 1e-12)
		})
	}
}

func TestFloat32(t *testing.T) {
	a := []vector.Vector[float32]{
		vector.Of[float32](-1, -1, -3),
		vector.Of[float32](-2, -2, -5),
		vector.Of[float32](-4, -1, -2),
	}
	opt, err := simplex.Maximize(a, []float32{30, 24, 36}, vector.Of[float32](3, 1, 2))
	require.NoError(t, err)
	require.Equal(t, simplex.Feasible, opt.Solution)
	require.InDelta(t, 28, opt.Value, 1e-4)
	require.InDeltaSlice(t, []float32{8, 4, 0}, []float32(opt.X), 1e-4)
}

func TestShapeErrors(t *testing.T) {
	one := []vector.Vector[float64]{vector.Of(1.0)}

	_, err := simplex.SolveConstraints[float64](nil, nil)
	require.ErrorIs(t, err, simplex.ErrEmptySystem)

	_, err = simplex.SolveConstraints(one, []float64{1, 2})
	require.ErrorIs(t, err, simplex.ErrDimensionMismatch)

	_, err = simplex.SolveConstraints([]vector.Vector[float64]{vector.Of(1.0), vector.Of(1.0, 2)}, []float64{1, 2})
	require.ErrorIs(t, err, simplex.ErrDimensionMismatch)

	_, err = simplex.Maximize(one, []float64{1}, vector.Of(1.0, 2))
	require.ErrorIs(t, err, simplex.ErrDimensionMismatch)
}

func TestSolutionString(t *testing.T) {
	require.Equal(t, "Infeasible", simplex.Infeasible.String())
	require.Equal(t, "Feasible", simplex.Feasible.String())
	require.Equal(t, "Unbound", simplex.Unbound.String())
	require.Equal(t, "Cycling", simplex.Cycling.String())
	require.Equal(t, "Solution(?)", simplex.Solution(9).String())
}

func TestBinomial(t *testing.T) {
	require.Equal(t, 1, simplex.Binomial(0, 0))
	require.Equal(t, 10, simplex.Binomial(5, 2))
	require.Equal(t, 10, simplex.Binomial(5, 3))
	require.Equal(t, 0, simplex.Binomial(5, 6))
	require.Equal(t, 0, simplex.Binomial(5, -1))
	require.Equal(t, 184756, simplex.Binomial(20, 10))
	require.Equal(t, math.MaxInt, simplex.Binomial(200, 100))
}

func TestOptions(t *testing.T) {
	require.Panics(t, func() { simplex.WithLogger(nil) })
	require.Panics(t, func() { simplex.WithEpsilonScale(0) })
	require.Panics(t, func() { simplex.WithEpsilonScale(math.NaN()) })
	require.Panics(t, func() { simplex.WithMaxIterations(0) })

	a := rowsOf([][]float64{{-2, 1}, {-1, 5}})
	b := []float64{2, -4}
	c := vector.Of(2.0, -1)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := simplex.Maximize(a, b, c, simplex.WithLogger(logger))
	require.NoError(t, err)
	require.Zero(t, buf.Len(), "silent without WithVerbose")

	opt, err := simplex.Maximize(a, b, c, simplex.WithLogger(logger), simplex.WithVerbose(), simplex.WithEpsilonScale(8))
	require.NoError(t, err)
	require.Equal(t, simplex.Feasible, opt.Solution)
	out := buf.String()
	require.Contains(t, out, "simplex tableau")
	require.Contains(t, out, "preprocessed")
	require.Contains(t, out, "first pivot")
	require.Contains(t, out, "phase 2 start")
	require.Contains(t, out, "b(v)")
}

func TestMaxIterationsReportsCycling(t *testing.T) {
	a := rowsOf([][]float64{{-1, -1, -3}, {-2, -2, -5}, {-4, -1, -2}})
	b := []float64{30, 24, 36}
	c := vector.Of(3.0, 1, 2)

	opt, err := simplex.Maximize(a, b, c, simplex.WithMaxIterations(2))
	require.NoError(t, err)
	require.Equal(t, simplex.Cycling, opt.Solution)
	require.Equal(t, 1, opt.Iterations)
	require.Nil(t, opt.X)

	opt, err = simplex.Maximize(a, b, c, simplex.WithMaxIterations(3))
	require.NoError(t, err)
	require.Equal(t, simplex.Feasible, opt.Solution)
	require.InDelta(t, 28, opt.Value, 1e-12)

	res, err := simplex.SolveConstraints(rowsOf([][]float64{{-2, 1}, {-1, 5}}), []float64{2, -4}, simplex.WithMaxIterations(2))
	require.NoError(t, err)
	require.Equal(t, simplex.Cycling, res.Solution)
	require.Equal(t, 1, res.Iterations)
}

// gonumMaximize solves the same problem with gonum's standard-form simplex:
// minimize -c·x subject to [-a | I]·(x, s) = b, (x, s) ≥ 0.
func gonumMaximize(a []vector.Vector[float64], b []float64, c vector.Vector[float64]) (float64, error) {
	n, m := len(c), len(b)
	std := mat.NewDense(m, n+m, nil)
	for i, row := range a {
		for j, x := range row {
			std.Set(i, j, -x)
		}
		std.Set(i, n+i, 1)
	}
	cost := make([]float64, n+m)
	for j, x := range c {
		cost[j] = -x
	}
	f, _, err := lp.Simplex(cost, std, b, 1e-10, nil)
	return -f, err
}

// TestAgainstGonum compares classification and optimum on random bounded
// systems; Σx ≤ 10 is always one of the rows.
func TestAgainstGonum(t *testing.T) {
	rng := sampling.NewRNG(29)
	var feasible, infeasible int
	for trial := 0; trial < 300; trial++ {
		n := 2 + rng.Intn(4)
		m := 2 + rng.Intn(5)
		a := make([]vector.Vector[float64], m)
		b := make([]float64, m)
		for i := 0; i < m-1; i++ {
			a[i] = sampling.UniformVector[float64](rng, n, -1, 1)
			b[i] = sampling.Uniform[float64](rng, -2, 2)
		}
		a[m-1] = vector.Filled[float64](n, -1)
		b[m-1] = 10
		c := sampling.UniformVector[float64](rng, n, -1, 1)

		want, gerr := gonumMaximize(a, b, c)
		res, err := simplex.SolveConstraints(a, b)
		require.NoError(t, err)
		require.Less(t, res.Iterations, simplex.Binomial(n+1+m, m))
		opt, err := simplex.Maximize(a, b, c)
		require.NoError(t, err)

		switch {
		case errors.Is(gerr, lp.ErrInfeasible):
			infeasible++
			require.Equal(t, simplex.Infeasible, res.Solution, "trial %d", trial)
			require.Equal(t, simplex.Infeasible, opt.Solution, "trial %d", trial)
		case gerr == nil:
			feasible++
			require.Equal(t, simplex.Feasible, res.Solution, "trial %d", trial)
			require.Equal(t, simplex.Feasible, opt.Solution, "trial %d", trial)
			require.InDelta(t, want, opt.Value, 1e-8*(1+math.Abs(want)), "trial %d", trial)
			requireSatisfies(t, a, b, opt.X, 1e-9)
		default:
			t.Logf("trial %d: gonum: %v", trial, gerr)
		}
	}
	require.Positive(t, feasible)
	require.Positive(t, infeasible)
}
