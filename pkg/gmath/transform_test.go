package gmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecomposeTranslateScale(t *testing.T) {
	// Translation (5,0,0), identity rotation, scale (2,1,1).
	m := MulMat4(Mat4Translate(Vec3{5, 0, 0}), Mat4Scale(Vec3{2, 1, 1}))
	tr := Decompose(m)

	require.True(t, tr.Translation.Equals(Vec3{5, 0, 0}))
	require.True(t, tr.Scale.Equals(Vec3{2, 1, 1}))
	require.True(t, quatEqualsUpToSign(tr.Rotation, QuatIdentity()))
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	want := Transform{
		Translation: Vec3{1, 2, 3},
		Rotation:    QuatFromEuler(Vec3{30, 45, 60}, OrderZYX),
		Scale:       Vec3{2, 3, 4},
	}

	got := Decompose(Compose(want))
	require.True(t, got.Translation.Equals(want.Translation))
	require.True(t, got.Scale.Equals(want.Scale))
	require.True(t, quatEqualsUpToSign(got.Rotation, want.Rotation))
}

func TestComposeMatchesMatrixProduct(t *testing.T) {
	tr := Transform{
		Translation: Vec3{-4, 0.5, 9},
		Rotation:    QuatFromAxisAngle(Vec3{1, 1, 0}.Normalize(), 72),
		Scale:       Vec3{1.5, 2, 0.25},
	}
	want := MulMat4(Mat4Translate(tr.Translation), tr.Rotation.Mat4(), Mat4Scale(tr.Scale))
	require.True(t, Compose(tr).Equals(want))
}

func TestComposeAt(t *testing.T) {
	origin := Vec3{1, 2, 3}
	tr := Transform{
		Rotation: QuatFromAxisAngle(Vec3{Z: 1}, 90),
		Scale:    Vec3{2, 2, 2},
	}

	// The pivot point stays fixed when there is no translation.
	m := ComposeAt(tr, origin)
	require.True(t, m.TransformPoint(origin).Equals(origin))

	// ComposeAt is conjugation by the origin translation.
	want := MulMat4(
		Mat4Translate(tr.Translation),
		Mat4Translate(origin),
		tr.Rotation.Mat4(),
		Mat4Scale(tr.Scale),
		Mat4Translate(origin.Negate()),
	)
	require.True(t, m.Equals(want))
}

func TestComposeAtWorldOrigin(t *testing.T) {
	tr := Transform{
		Translation: Vec3{7, -2, 1},
		Rotation:    QuatFromEuler(Vec3{10, 20, 30}, OrderZYX),
		Scale:       Vec3{1, 2, 3},
	}
	require.True(t, ComposeAt(tr, Vec3{}).Equals(Compose(tr)))
}

func TestDecomposeNegativeDoesNotRecoverMirror(t *testing.T) {
	// Scale is recovered as column length, so a mirrored matrix comes
	// back with positive scale and a rotation that differs. This is the
	// documented shear-free, positive-scale precondition.
	m := Mat4Scale(Vec3{-2, 1, 1})
	tr := Decompose(m)
	require.True(t, tr.Scale.Equals(Vec3{2, 1, 1}))
}

func TestTransformEquals(t *testing.T) {
	a := Transform{
		Translation: Vec3{1, 2, 3},
		Rotation:    QuatIdentity(),
		Scale:       Vec3{1, 1, 1},
	}
	b := a
	b.Translation.X += 1e-8
	require.True(t, a.Equals(b))
	b.Translation.X += 1
	require.False(t, a.Equals(b))
}
