package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/vector"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{2, 6},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense[float64](t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDenseInvalid(t *testing.T) {
	_, err := matrix.NewDense[float32](0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows[float64](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([]vector.Vector[float64]{vector.Of(1.0, 2), vector.Of(1.0)})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAtSetBounds(t *testing.T) {
	m := MustDense[float64](t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7))
	require.Equal(t, 7.0, MustAt(t, m, 1, 2))

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestRowsColumnsClone(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	r, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, vector.Of(4.0, 5, 6), r)
	c, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, vector.Of(3.0, 6), c)
	_, err = m.Column(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	cl := m.Clone()
	require.NoError(t, cl.SetRow(0, vector.Of(9.0, 9, 9)))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0), "clone must not alias")
	require.False(t, cl.Equal(m))
	require.ErrorIs(t, cl.SetRow(0, vector.Of(1.0)), matrix.ErrDimensionMismatch)

	rows := m.RowVectors()
	rows[0][0] = 100
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())
}

func TestConstructors(t *testing.T) {
	id, err := matrix.NewIdentity[float32](3)
	require.NoError(t, err)
	tr, err := id.Trace()
	require.NoError(t, err)
	require.Equal(t, float32(3), tr)

	d, err := matrix.NewDiagonal(vector.Of(1.0, 2, 3))
	require.NoError(t, err)
	diag, err := d.Diagonal()
	require.NoError(t, err)
	require.Equal(t, vector.Of(1.0, 2, 3), diag)

	f, err := matrix.NewFilled(2, 2, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0.5, MustAt(t, f, 1, 0))
	require.True(t, f.IsFinite())
}

func TestBlocks(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	tl, err := m.TopLeft(2, 2)
	require.NoError(t, err)
	requireAllClose(t, [][]float64{{1, 2}, {4, 5}}, tl, 0)

	b, err := m.Block(1, 1, 2, 2)
	require.NoError(t, err)
	requireAllClose(t, [][]float64{{5, 6}, {8, 9}}, b, 0)

	_, err = m.Block(2, 2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Block(0, 0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	require.NoError(t, m.SetBlock(1, 0, tl))
	requireAllClose(t, [][]float64{{1, 2, 3}, {1, 2, 6}, {4, 5, 9}}, m, 0)
	require.ErrorIs(t, m.SetBlock(2, 2, tl), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetBlock(0, 0, nil), matrix.ErrNilMatrix)
}

func TestTraceDiagonalRectangular(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := m.Trace()
	require.NoError(t, err)
	require.Equal(t, 6.0, tr)
	d, err := m.Diagonal()
	require.NoError(t, err)
	require.Equal(t, vector.Of(1.0, 5), d)

	var nilM *matrix.Dense[float64]
	_, err = nilM.Trace()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIsOrthogonalRotation(t *testing.T) {
	// 90° about z.
	rot := MustRows(t, [][]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}})
	ok, err := rot.IsOrthogonal()
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = rot.IsRotation()
	require.NoError(t, err)
	require.True(t, ok)

	// reflection: orthogonal, det = -1
	refl := MustRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}})
	ok, err = refl.IsOrthogonal()
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = refl.IsRotation()
	require.NoError(t, err)
	require.False(t, ok)

	skew := MustRows(t, [][]float64{{1, 0}, {0.1, 1}})
	ok, err = skew.IsOrthogonal()
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = skew.IsOrthogonal(matrix.WithOrthogonalityTolerance(0.2))
	require.NoError(t, err)
	require.False(t, ok, "second row is not unit")

	_, err = MustDense[float64](t, 2, 3).IsOrthogonal()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Panics(t, func() { matrix.WithOrthogonalityTolerance(-1) })
	require.Panics(t, func() { matrix.WithCofactorLimit(0) })
}
