package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/scalar"
)

type meters float32

func TestEpsilon(t *testing.T) {
	require.Equal(t, float32(math.Nextafter32(1, 2)-1), scalar.Epsilon[float32]())
	require.Equal(t, math.Nextafter(1, 2)-1, scalar.Epsilon[float64]())
	require.Equal(t, meters(scalar.Epsilon[float32]()), scalar.Epsilon[meters](), "named types resolve by storage size")
}

func TestLimits(t *testing.T) {
	require.Equal(t, float32(math.MaxFloat32), scalar.MaxValue[float32]())
	require.Equal(t, meters(math.MaxFloat32), scalar.MaxValue[meters]())
	require.Equal(t, math.MaxFloat64, scalar.MaxValue[float64]())
	require.Equal(t, float32(-math.MaxFloat32), scalar.Lowest[float32]())
	require.Equal(t, -math.MaxFloat64, scalar.Lowest[float64]())
	require.False(t, math.IsInf(float64(scalar.MaxValue[float32]()), 0))
	require.True(t, math.IsInf(scalar.Inf[float64](0), 1))
	require.True(t, math.IsInf(float64(scalar.Inf[float32](-1)), -1))
	require.True(t, scalar.IsNaN(scalar.NaN[float32]()))
	require.False(t, scalar.IsFinite(scalar.Inf[float64](1)))
	require.True(t, scalar.IsFinite(scalar.MaxValue[float64]()))
}

func TestStorageWidth(t *testing.T) {
	require.True(t, scalar.Is32[float32]())
	require.True(t, scalar.Is32[meters]())
	require.False(t, scalar.Is32[float64]())
	require.Equal(t, 32, scalar.Bits[meters]())
	require.Equal(t, 64, scalar.Bits[float64]())
}

func TestHelpers(t *testing.T) {
	require.Equal(t, 3.0, scalar.Abs(-3.0))
	require.Equal(t, int64(7), scalar.Abs(int64(-7)))
	require.False(t, math.Signbit(scalar.Abs(math.Copysign(0, -1))))
	require.Equal(t, int32(9), scalar.Square(int32(-3)))
	require.Equal(t, float32(5), scalar.Hypot[float32](3, 4))
	require.Equal(t, -2.0, scalar.Copysign(2.0, -0.5))
	require.Equal(t, -1.0, scalar.Min(-1.0, 2))
	require.Equal(t, int8(2), scalar.Max(int8(-1), 2))

	s, c := scalar.Sincos(math.Pi / 2)
	require.InDelta(t, 1, s, 1e-15)
	require.InDelta(t, 0, c, 1e-15)
}
