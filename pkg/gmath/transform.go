package gmath

// Transform is a 4x4 affine matrix decomposed into translation, rotation,
// and non-uniform scale, applied in T * R * S order.
type Transform struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// Decompose extracts translation, rotation, and scale from a matrix built
// as T * R * S. The input must be shear-free: after dividing each basis
// column by its length, the columns must be mutually orthogonal. Sheared
// input produces an approximate scale and a correspondingly distorted
// rotation. A zero scale component divides by zero and propagates
// Inf/NaN; callers must guarantee non-zero scale.
func Decompose(m Mat4) Transform {
	s := Vec3{
		X: m.Column(0).Length(),
		Y: m.Column(1).Length(),
		Z: m.Column(2).Length(),
	}

	basis := Mat3{
		m[0] / s.X, m[1] / s.X, m[2] / s.X,
		m[4] / s.Y, m[5] / s.Y, m[6] / s.Y,
		m[8] / s.Z, m[9] / s.Z, m[10] / s.Z,
	}

	return Transform{
		Translation: Vec3{m[12], m[13], m[14]},
		Rotation:    QuatFromMat3(basis).Normalize(),
		Scale:       s,
	}
}

// Compose builds the 4x4 matrix T * R * S from the transform components.
// The rotation is assumed unit length and is not validated.
func Compose(t Transform) Mat4 {
	r := t.Rotation.Mat3()
	return Mat4{
		r[0] * t.Scale.X, r[1] * t.Scale.X, r[2] * t.Scale.X, 0,
		r[3] * t.Scale.Y, r[4] * t.Scale.Y, r[5] * t.Scale.Y, 0,
		r[6] * t.Scale.Z, r[7] * t.Scale.Z, r[8] * t.Scale.Z, 0,
		t.Translation.X, t.Translation.Y, t.Translation.Z, 1,
	}
}

// ComposeAt builds the same matrix as Compose but pivots the rotation and
// scale around origin instead of the world origin:
// translation' = translation + origin - RS * origin.
func ComposeAt(t Transform, origin Vec3) Mat4 {
	out := Compose(t)
	rs := out.TransformDir(origin)
	out[12] = t.Translation.X + origin.X - rs.X
	out[13] = t.Translation.Y + origin.Y - rs.Y
	out[14] = t.Translation.Z + origin.Z - rs.Z
	return out
}

// Equals reports approximate equality of all three components. Rotations
// are compared exactly by component; q and -q compare unequal.
func (t Transform) Equals(other Transform) bool {
	return t.Translation.Equals(other.Translation) &&
		t.Rotation.Equals(other.Rotation) &&
		t.Scale.Equals(other.Scale)
}
