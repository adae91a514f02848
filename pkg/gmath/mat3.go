package gmath

// Mat3 is a 3x3 matrix in column-major order.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float64

// Mat3Identity returns an identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3RotateX returns a rotation matrix around the X axis. The angle is in
// degrees.
func Mat3RotateX(deg float64) Mat3 {
	c, s := Cos(deg), Sin(deg)
	return Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// Mat3RotateY returns a rotation matrix around the Y axis.
func Mat3RotateY(deg float64) Mat3 {
	c, s := Cos(deg), Sin(deg)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// Mat3RotateZ returns a rotation matrix around the Z axis.
func Mat3RotateZ(deg float64) Mat3 {
	c, s := Cos(deg), Sin(deg)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Mat3Scale returns a scale matrix.
func Mat3Scale(s Vec3) Mat3 {
	return Mat3{
		s.X, 0, 0,
		0, s.Y, 0,
		0, 0, s.Z,
	}
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out[col*3+row] = m[row]*other[col*3] +
				m[3+row]*other[col*3+1] +
				m[6+row]*other[col*3+2]
		}
	}
	return out
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transpose.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant.
func (m Mat3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[3]*(m[1]*m[8]-m[2]*m[7]) +
		m[6]*(m[1]*m[5]-m[2]*m[4])
}

// Adjugate returns the adjugate matrix.
func (m Mat3) Adjugate() Mat3 {
	return Mat3{
		m[4]*m[8] - m[5]*m[7],
		m[2]*m[7] - m[1]*m[8],
		m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8],
		m[0]*m[8] - m[2]*m[6],
		m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6],
		m[1]*m[6] - m[0]*m[7],
		m[0]*m[4] - m[1]*m[3],
	}
}

// Invert returns the inverse. ok is false when the determinant is zero, in
// which case the returned matrix is the zero value.
func (m Mat3) Invert() (Mat3, bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat3{}, false
	}
	adj := m.Adjugate()
	inv := 1 / det
	for i := range adj {
		adj[i] *= inv
	}
	return adj, true
}

// Column returns column i as a Vec3.
func (m Mat3) Column(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Equals reports component-wise approximate equality.
func (m Mat3) Equals(other Mat3) bool {
	for i := range m {
		if !Equals(m[i], other[i]) {
			return false
		}
	}
	return true
}

// MulMat3 multiplies matrices left to right. Matrix multiplication is
// non-commutative; the fold order is significant.
func MulMat3(ms ...Mat3) Mat3 {
	out := Mat3Identity()
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}
