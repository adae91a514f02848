package gmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// quatEqualsUpToSign reports whether a equals b or -b within epsilon.
// q and -q represent the same rotation.
func quatEqualsUpToSign(a, b Quat) bool {
	return a.Equals(b) || a.Equals(b.Negate())
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	require.Equal(t, Quat{0, 0, 0, 1}, q)
	require.True(t, q.Mat3().Equals(Mat3Identity()))
	require.True(t, q.Mat4().Equals(Mat4Identity()))
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Z: (0, 0, sin 45, cos 45).
	q := QuatFromAxisAngle(Vec3{Z: 1}, 90)
	require.InDelta(t, 0, q.X, 1e-12)
	require.InDelta(t, 0, q.Y, 1e-12)
	require.InDelta(t, 0.70710678, q.Z, 1e-6)
	require.InDelta(t, 0.70710678, q.W, 1e-6)

	// A non-unit axis deliberately yields a non-unit quaternion.
	nq := QuatFromAxisAngle(Vec3{Z: 2}, 90)
	require.False(t, Equals(nq.Length(), 1))
}

func TestQuatAxisAngleRoundTrip(t *testing.T) {
	axis := Vec3{1, 2, 3}.Normalize()
	q := QuatFromAxisAngle(axis, 70)

	gotAxis, gotDeg := q.AxisAngle()
	require.InDelta(t, 70, gotDeg, 1e-6)
	require.True(t, gotAxis.Equals(axis))
}

func TestQuatAxisAngleZeroRotation(t *testing.T) {
	// The axis of a zero-angle rotation is undefined; unit-x is returned
	// and the pair still reconstructs the identity.
	axis, deg := QuatIdentity().AxisAngle()
	require.Equal(t, Vec3{X: 1}, axis)
	require.InDelta(t, 0, deg, 1e-6)
	require.True(t, quatEqualsUpToSign(QuatFromAxisAngle(axis, deg), QuatIdentity()))
}

func TestQuatMat3RoundTrip(t *testing.T) {
	quats := []Quat{
		QuatIdentity(),
		QuatFromAxisAngle(Vec3{Z: 1}, 90),
		QuatFromAxisAngle(Vec3{X: 1}, 170),   // trace near -1, x-dominant branch
		QuatFromAxisAngle(Vec3{Y: 1}, -170),  // y-dominant branch
		QuatFromAxisAngle(Vec3{Z: 1}, 179.5), // z-dominant branch
		QuatFromAxisAngle(Vec3{1, 1, 1}.Normalize(), 120),
		QuatFromEuler(Vec3{30, 45, 60}, OrderZYX),
	}
	for _, q := range quats {
		got := QuatFromMat3(q.Mat3()).Normalize()
		require.True(t, quatEqualsUpToSign(got, q), "round trip of %+v gave %+v", q, got)
	}
}

func TestQuatFromMat3NotRenormalized(t *testing.T) {
	// Doubling a rotation matrix scales the trace; the extraction must
	// pass the non-unit result through untouched.
	m := QuatFromAxisAngle(Vec3{Y: 1}, 40).Mat3()
	for i := range m {
		m[i] *= 2
	}
	q := QuatFromMat3(m)
	require.False(t, Equals(q.Length(), 1))
}

func TestQuatMul(t *testing.T) {
	qx := QuatFromAxisAngle(Vec3{X: 1}, 90)
	qy := QuatFromAxisAngle(Vec3{Y: 1}, 90)

	// Rotating (0,0,1) by qx gives (0,-1,0); qy first, then qx.
	v := qx.Mul(qy).RotateVec3(Vec3{Z: 1})
	want := qx.RotateVec3(qy.RotateVec3(Vec3{Z: 1}))
	require.True(t, v.Equals(want))

	// Non-commutative.
	require.False(t, qx.Mul(qy).Equals(qy.Mul(qx)))
}

func TestQuatMulFold(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{X: 1}, 30)
	b := QuatFromAxisAngle(Vec3{Y: 1}, 40)
	c := QuatFromAxisAngle(Vec3{Z: 1}, 50)
	require.True(t, MulQuat(a, b, c).Equals(a.Mul(b).Mul(c)))
}

func TestQuatInverse(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 0, 1}.Normalize(), 35)
	require.True(t, q.Mul(q.Inverse()).Equals(QuatIdentity()))
	require.Equal(t, Quat{}, Quat{}.Inverse())
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{1, 2, 3, 4}.Normalize()
	require.InDelta(t, 1, q.Length(), 1e-12)
	require.Equal(t, QuatIdentity(), Quat{}.Normalize())
}

func TestQuatRotateVec3(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{Z: 1}, 90)
	require.True(t, q.RotateVec3(Vec3{X: 1}).Equals(Vec3{Y: 1}))

	m := q.Mat3()
	require.True(t, m.MulVec3(Vec3{X: 1}).Equals(Vec3{Y: 1}))
}

func TestQuatSlerpBoundaries(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{X: 1}, 10)
	b := QuatFromAxisAngle(Vec3{Y: 1}, 100)

	require.True(t, a.Slerp(b, 0).Equals(a))
	require.True(t, quatEqualsUpToSign(a.Slerp(b, 1), b))

	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		require.True(t, a.Slerp(a, tt).Equals(a), "slerp(a,a,%v)", tt)
	}
}

func TestQuatSlerpHalfway(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(Vec3{Y: 1}, 90)

	mid := a.Slerp(b, 0.5)
	want := QuatFromAxisAngle(Vec3{Y: 1}, 45)
	require.True(t, quatEqualsUpToSign(mid, want))
	require.InDelta(t, 1, mid.Length(), 1e-9)
}

func TestQuatSlerpShorterArc(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{X: 1}, 20)
	b := QuatFromAxisAngle(Vec3{X: 1}, 160).Negate()
	require.Less(t, a.Dot(b), 0.0)

	// Negating an endpoint must not change the interpolated path.
	got := a.Slerp(b, 0.5)
	want := a.Slerp(b.Negate(), 0.5)
	require.True(t, quatEqualsUpToSign(got, want))
}

func TestQuatNlerp(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{Y: 1}, 10)
	b := QuatFromAxisAngle(Vec3{Y: 1}, 30)

	require.True(t, a.Nlerp(b, 0).Equals(a))
	require.True(t, quatEqualsUpToSign(a.Nlerp(b, 1), b))
	require.InDelta(t, 1, a.Nlerp(b, 0.37).Length(), 1e-12)

	// For small angular differences nlerp approximates slerp.
	require.True(t, quatEqualsUpToSign(a.Nlerp(b, 0.5), a.Slerp(b, 0.5)))
}

func TestSqlerp(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{X: 1}, 0)
	b := QuatFromAxisAngle(Vec3{X: 1}, 30)
	c := QuatFromAxisAngle(Vec3{X: 1}, 60)
	d := QuatFromAxisAngle(Vec3{X: 1}, 90)

	require.True(t, quatEqualsUpToSign(Sqlerp(a, b, c, d, 0), a))
	require.True(t, quatEqualsUpToSign(Sqlerp(a, b, c, d, 1), d))

	mid := Sqlerp(a, b, c, d, 0.5)
	require.True(t, quatEqualsUpToSign(mid, QuatFromAxisAngle(Vec3{X: 1}, 45)))
}

func TestQuatLnExp(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 2, -1}.Normalize(), 50)
	require.True(t, quatEqualsUpToSign(q.Ln().Exp(), q))

	// Pure real quaternion: vector part has no defined axis, maps to zero.
	ln := QuatIdentity().Ln()
	require.Equal(t, Quat{}, ln)
	require.True(t, ln.Exp().Equals(QuatIdentity()))
}

func TestQuatPow(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{Y: 1}, 80)

	half := q.Pow(0.5)
	require.True(t, quatEqualsUpToSign(half, QuatFromAxisAngle(Vec3{Y: 1}, 40)))
	require.True(t, quatEqualsUpToSign(half.Mul(half), q))

	require.True(t, quatEqualsUpToSign(q.Pow(1), q))
	require.True(t, quatEqualsUpToSign(q.Pow(0), QuatIdentity()))
	require.True(t, quatEqualsUpToSign(q.Pow(2), QuatFromAxisAngle(Vec3{Y: 1}, 160)))
}

func TestQuatDotLength(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{Z: 1}, 90)
	require.InDelta(t, 1, q.Dot(q), 1e-12)
	require.InDelta(t, 1, q.LengthSq(), 1e-12)
	require.InDelta(t, math.Sqrt(30), Quat{1, 2, 3, 4}.Length(), 1e-12)
}
