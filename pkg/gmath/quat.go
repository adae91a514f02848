package gmath

import "math"

// Quat is a rotation quaternion with components (X, Y, Z, W) where W is the
// scalar part. A Quat represents a rotation only when it is unit length;
// non-unit quaternions are valid intermediate values (for example the raw
// output of QuatFromMat3) and must be normalized before reuse as a rotation.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion rotating deg degrees around axis.
// The axis must be normalized by the caller; a non-unit axis yields a
// non-unit quaternion.
func QuatFromAxisAngle(axis Vec3, deg float64) Quat {
	half := deg * math.Pi / 360
	s := math.Sin(half)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(half),
	}
}

// AxisAngle returns the rotation axis and angle in degrees. For a
// near-zero-angle rotation the axis is not unique and unit-x is returned;
// the axis/angle pair still reconstructs the same rotation.
func (q Quat) AxisAngle() (Vec3, float64) {
	deg := 2 * Acos(q.W)
	s := math.Sin(Deg2Rad(deg) / 2)
	if s <= Epsilon {
		return Vec3{X: 1}, deg
	}
	return Vec3{q.X / s, q.Y / s, q.Z / s}, deg
}

// QuatFromMat3 extracts a quaternion from a rotation matrix using
// Shoemake's trace-based case analysis: when the trace is positive the
// scalar part dominates and is computed first; otherwise the dominant
// diagonal axis is picked so the divisor stays away from zero. The result
// is not renormalized; callers needing a unit quaternion must normalize.
func QuatFromMat3(m Mat3) Quat {
	trace := m[0] + m[4] + m[8]
	if trace > 0 {
		root := math.Sqrt(trace + 1) // 2w
		inv := 0.5 / root
		return Quat{
			X: (m[5] - m[7]) * inv,
			Y: (m[6] - m[2]) * inv,
			Z: (m[1] - m[3]) * inv,
			W: 0.5 * root,
		}
	}

	// Pick the dominant diagonal entry.
	i := 0
	if m[4] > m[0] {
		i = 1
	}
	if m[8] > m[i*3+i] {
		i = 2
	}
	j := (i + 1) % 3
	k := (i + 2) % 3

	root := math.Sqrt(m[i*3+i] - m[j*3+j] - m[k*3+k] + 1)
	inv := 0.5 / root

	var out [4]float64
	out[i] = 0.5 * root
	out[3] = (m[j*3+k] - m[k*3+j]) * inv
	out[j] = (m[j*3+i] + m[i*3+j]) * inv
	out[k] = (m[k*3+i] + m[i*3+k]) * inv
	return Quat{out[0], out[1], out[2], out[3]}
}

// Mat3 expands the quaternion to a 3x3 rotation matrix. q is assumed unit
// length and is not validated; a non-unit input produces a matrix that is
// not a proper rotation.
func (q Quat) Mat3() Mat3 {
	x2, y2, z2 := q.X*2, q.Y*2, q.Z*2
	xx, yx, yy := q.X*x2, q.Y*x2, q.Y*y2
	zx, zy, zz := q.Z*x2, q.Z*y2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return Mat3{
		1 - yy - zz, yx + wz, zx - wy,
		yx - wz, 1 - xx - zz, zy + wx,
		zx + wy, zy - wx, 1 - xx - yy,
	}
}

// Mat4 expands the quaternion to a 4x4 rotation matrix. See Mat3.
func (q Quat) Mat4() Mat4 {
	return Mat4FromMat3(q.Mat3())
}

// Mul returns the Hamilton product q * other (other applied first).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Add returns the component-wise sum.
func (q Quat) Add(other Quat) Quat {
	return Quat{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Scale returns the component-wise product with s.
func (q Quat) Scale(s float64) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Negate returns -q. q and -q represent the same rotation.
func (q Quat) Negate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, -q.W}
}

// Conjugate returns the conjugate, which for a unit quaternion is also the
// inverse.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the multiplicative inverse. The zero quaternion has no
// inverse and returns the zero value.
func (q Quat) Inverse() Quat {
	d := q.LengthSq()
	if d == 0 {
		return Quat{}
	}
	inv := 1 / d
	return Quat{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

// Dot returns the four-component dot product.
func (q Quat) Dot(other Quat) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the magnitude.
func (q Quat) Length() float64 {
	return math.Sqrt(q.LengthSq())
}

// LengthSq returns the squared magnitude.
func (q Quat) LengthSq() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Normalize returns a unit quaternion. Near-zero magnitude normalizes to
// the identity.
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l <= Epsilon {
		return QuatIdentity()
	}
	return q.Scale(1 / l)
}

// RotateVec3 rotates v by the quaternion.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// Equals reports component-wise approximate equality. Note that q and -q
// compare unequal even though they encode the same rotation.
func (q Quat) Equals(other Quat) bool {
	return Equals(q.X, other.X) && Equals(q.Y, other.Y) &&
		Equals(q.Z, other.Z) && Equals(q.W, other.W)
}

// Ln returns the natural logarithm of the quaternion. A pure real
// quaternion has an undefined rotation axis; its vector part maps to zero.
func (q Quat) Ln() Quat {
	r := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	t := 0.0
	if r > 0 {
		t = math.Atan2(r, q.W) / r
	}
	return Quat{
		X: q.X * t,
		Y: q.Y * t,
		Z: q.Z * t,
		W: 0.5 * math.Log(q.LengthSq()),
	}
}

// Exp returns the exponential of the quaternion, the inverse of Ln.
func (q Quat) Exp() Quat {
	r := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	et := math.Exp(q.W)
	s := 0.0
	if r > 0 {
		s = et * math.Sin(r) / r
	}
	return Quat{
		X: q.X * s,
		Y: q.Y * s,
		Z: q.Z * s,
		W: et * math.Cos(r),
	}
}

// Pow raises the quaternion to the power t, scaling the rotation it
// represents: q.Pow(0.5) is half the rotation of q.
func (q Quat) Pow(t float64) Quat {
	return q.Ln().Scale(t).Exp()
}

// Slerp spherically interpolates toward other with constant angular
// velocity. The shorter arc is always taken: when the dot product is
// negative, other is negated before interpolating. Near-parallel inputs
// fall back to linear weights to avoid dividing by a vanishing sine.
func (q Quat) Slerp(other Quat, t float64) Quat {
	cosom := q.Dot(other)
	if cosom < 0 {
		cosom = -cosom
		other = other.Negate()
	}

	var scale0, scale1 float64
	if 1-cosom > Epsilon {
		omega := math.Acos(cosom)
		sinom := math.Sin(omega)
		scale0 = math.Sin((1-t)*omega) / sinom
		scale1 = math.Sin(t*omega) / sinom
	} else {
		scale0 = 1 - t
		scale1 = t
	}

	return Quat{
		X: scale0*q.X + scale1*other.X,
		Y: scale0*q.Y + scale1*other.Y,
		Z: scale0*q.Z + scale1*other.Z,
		W: scale0*q.W + scale1*other.W,
	}
}

// Nlerp is normalized linear interpolation: a cheaper approximation of
// Slerp that keeps the shorter-arc correction but blends the components
// linearly before renormalizing.
func (q Quat) Nlerp(other Quat, t float64) Quat {
	if q.Dot(other) < 0 {
		other = other.Negate()
	}
	return Quat{
		X: q.X + t*(other.X-q.X),
		Y: q.Y + t*(other.Y-q.Y),
		Z: q.Z + t*(other.Z-q.Z),
		W: q.W + t*(other.W-q.W),
	}.Normalize()
}

// Sqlerp is spherical cubic interpolation through four control quaternions,
// the spherical analogue of a Bezier-like blend:
// slerp(slerp(a,d,t), slerp(b,c,t), 2t(1-t)).
func Sqlerp(a, b, c, d Quat, t float64) Quat {
	return a.Slerp(d, t).Slerp(b.Slerp(c, t), 2*t*(1-t))
}

// MulQuat multiplies quaternions left to right. Quaternion multiplication
// is non-commutative; the fold order is significant.
func MulQuat(qs ...Quat) Quat {
	out := QuatIdentity()
	for _, q := range qs {
		out = out.Mul(q)
	}
	return out
}
