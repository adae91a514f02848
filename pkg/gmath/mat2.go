package gmath

// Mat2 is a 2x2 matrix in column-major order.
// Layout: [m0 m2]
//
//	[m1 m3]
type Mat2 [4]float64

// Mat2Identity returns an identity matrix.
func Mat2Identity() Mat2 {
	return Mat2{1, 0, 0, 1}
}

// Mat2Rotate returns a rotation matrix. The angle is in degrees.
func Mat2Rotate(deg float64) Mat2 {
	c, s := Cos(deg), Sin(deg)
	return Mat2{c, s, -s, c}
}

// Mat2Scale returns a scale matrix.
func Mat2Scale(s Vec2) Mat2 {
	return Mat2{s.X, 0, 0, s.Y}
}

// Mul returns m * other.
func (m Mat2) Mul(other Mat2) Mat2 {
	return Mat2{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
	}
}

// MulVec2 returns m * v.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		m[0]*v.X + m[2]*v.Y,
		m[1]*v.X + m[3]*v.Y,
	}
}

// Transpose returns the transpose.
func (m Mat2) Transpose() Mat2 {
	return Mat2{m[0], m[2], m[1], m[3]}
}

// Determinant returns the determinant.
func (m Mat2) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Adjugate returns the adjugate matrix.
func (m Mat2) Adjugate() Mat2 {
	return Mat2{m[3], -m[1], -m[2], m[0]}
}

// Invert returns the inverse. ok is false when the determinant is zero, in
// which case the returned matrix is the zero value.
func (m Mat2) Invert() (Mat2, bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat2{}, false
	}
	inv := 1 / det
	return Mat2{m[3] * inv, -m[1] * inv, -m[2] * inv, m[0] * inv}, true
}

// Equals reports component-wise approximate equality.
func (m Mat2) Equals(other Mat2) bool {
	for i := range m {
		if !Equals(m[i], other[i]) {
			return false
		}
	}
	return true
}
