package ops_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/matrix/ops"
	"github.com/katalvlaran/lvgeom/sampling"
)

func TestQRReconstructs(t *testing.T) {
	rng := sampling.NewRNG(11)
	for n := 1; n <= 7; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			rows := randomSymmetric(rng, n)
			rows[0][n-1] += 3 // break the symmetry
			a := mustRows(t, rows)

			q, r, err := ops.QR(a)
			require.NoError(t, err)

			ok, err := q.IsOrthogonal(matrix.WithOrthogonalityTolerance(1e-12))
			require.NoError(t, err)
			require.True(t, ok)

			qr, err := matrix.Mul(q, r)
			require.NoError(t, err)

			var g mat.QR
			g.Factorize(mat.NewDense(n, n, flatten(rows)))
			var gr mat.Dense
			g.RTo(&gr)

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					v, _ := qr.At(i, j)
					require.InDelta(t, rows[i][j], v, 1e-10, "QR[%d,%d]", i, j)
					rij, _ := r.At(i, j)
					if i > j {
						require.Zero(t, rij, "R is upper triangular")
						continue
					}
					if i == j {
						// R is unique up to the signs of its rows
						require.InDelta(t, math.Abs(gr.At(i, i)), math.Abs(rij), 1e-10)
					}
				}
			}
		})
	}
}

func TestQRZeroColumn(t *testing.T) {
	a := mustRows(t, [][]float64{{0, 1}, {0, 2}})
	q, r, err := ops.QR(a)
	require.NoError(t, err)

	qr, err := matrix.Mul(q, r)
	require.NoError(t, err)
	require.True(t, qr.Equal(a))
}

func TestQRErrors(t *testing.T) {
	_, _, err := ops.QR[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)
	_, _, err = ops.QR(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func flatten(rows [][]float64) []float64 {
	var res []float64
	for _, r := range rows {
		res = append(res, r...)
	}

	return res
}
