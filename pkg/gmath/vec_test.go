package gmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec2Basics(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}

	require.Equal(t, Vec2{4, 6}, a.Add(b))
	require.Equal(t, Vec2{-2, -2}, a.Sub(b))
	require.Equal(t, Vec2{3, 8}, a.Mul(b))
	require.InDelta(t, 11, a.Dot(b), 1e-12)
	require.InDelta(t, -2, a.Cross(b), 1e-12)
	require.InDelta(t, 5, Vec2{3, 4}.Length(), 1e-12)
}

func TestVec3Basics(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	require.Equal(t, Vec3{0, 0, 1}, x.Cross(y))
	require.Equal(t, Vec3{0, 0, -1}, y.Cross(x))
	require.InDelta(t, 0, x.Dot(y), 1e-12)

	v := Vec3{2, 3, 6}
	require.InDelta(t, 7, v.Length(), 1e-12)
	require.InDelta(t, 49, v.LengthSq(), 1e-12)
	require.InDelta(t, 1, v.Normalize().Length(), 1e-12)
}

func TestNormalizeZeroVector(t *testing.T) {
	require.Equal(t, Vec2{}, Vec2{}.Normalize())
	require.Equal(t, Vec3{}, Vec3{}.Normalize())
	require.Equal(t, Vec4{}, Vec4{}.Normalize())
}

func TestVecLerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}

	require.True(t, a.Lerp(b, 0).Equals(a))
	require.True(t, a.Lerp(b, 1).Equals(b))
	require.True(t, a.Lerp(b, 0.5).Equals(Vec3{5, 10, 15}))

	// Extrapolation is not clamped.
	require.True(t, a.Lerp(b, 2).Equals(Vec3{20, 40, 60}))
}

func TestVecLerpPerComponent(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}
	got := a.LerpV(b, Vec3{0, 0.5, 1})
	require.True(t, got.Equals(Vec3{0, 10, 30}))

	a4 := Vec4{0, 0, 0, 0}
	b4 := Vec4{4, 4, 4, 4}
	require.True(t, a4.LerpV(b4, Vec4{0, 0.25, 0.5, 1}).Equals(Vec4{0, 1, 2, 4}))
}

func TestVecMinMax(t *testing.T) {
	a := Vec3{1, 5, 3}
	b := Vec3{2, 4, 3}
	require.Equal(t, Vec3{1, 4, 3}, a.Min(b))
	require.Equal(t, Vec3{2, 5, 3}, a.Max(b))
}

func TestVecEquals(t *testing.T) {
	require.True(t, Vec3{1, 2, 3}.Equals(Vec3{1 + 1e-8, 2, 3}))
	require.False(t, Vec3{1, 2, 3}.Equals(Vec3{1.1, 2, 3}))
}
