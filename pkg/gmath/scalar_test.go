package gmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEquals(t *testing.T) {
	require.True(t, Equals(1, 1))
	require.True(t, Equals(1, 1+1e-7))
	require.False(t, Equals(1, 1.1))

	// Relative tolerance: half a unit at magnitude 1e6 is within bounds.
	require.True(t, Equals(1e6, 1e6+0.5))
	require.False(t, Equals(1e6, 1e6+10))

	// Near zero the tolerance is absolute.
	require.True(t, Equals(0, 1e-7))
	require.False(t, Equals(0, 1e-5))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0.5, Clamp(0.5, 0, 1))
	require.Equal(t, 0.0, Clamp(-2, 0, 1))
	require.Equal(t, 1.0, Clamp(7, 0, 1))
}

func TestDegreeTrig(t *testing.T) {
	require.InDelta(t, 1, Sin(90), 1e-12)
	require.InDelta(t, 0, Cos(90), 1e-12)
	require.InDelta(t, 1, Tan(45), 1e-12)
	require.InDelta(t, 90, Atan2(1, 0), 1e-12)
	require.InDelta(t, math.Pi, Deg2Rad(180), 1e-12)
	require.InDelta(t, 180, Rad2Deg(math.Pi), 1e-12)
}

func TestAsinAcosClampDomain(t *testing.T) {
	// Arguments nudged outside [-1,1] by floating error must not yield NaN.
	require.False(t, math.IsNaN(Acos(1.0000001)))
	require.False(t, math.IsNaN(Asin(-1.0000001)))
	require.InDelta(t, 0, Acos(1.0000001), 1e-12)
	require.InDelta(t, -90, Asin(-1.0000001), 1e-12)
}

func TestLerpScalar(t *testing.T) {
	require.InDelta(t, 5, Lerp(0, 10, 0.5), 1e-12)
	require.InDelta(t, -10, Lerp(0, 10, -1), 1e-12) // extrapolation allowed
}
