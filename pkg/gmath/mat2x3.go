package gmath

// Mat2x3 is a 2D affine matrix: a 2x2 linear block plus a translation
// column, column-major. The implicit third row [0, 0, 1] is never stored.
// Layout: [a c tx]
//
//	[b d ty]
type Mat2x3 [6]float64

// Mat2x3Identity returns an identity matrix.
func Mat2x3Identity() Mat2x3 {
	return Mat2x3{1, 0, 0, 1, 0, 0}
}

// Mat2x3Translate returns a translation matrix.
func Mat2x3Translate(t Vec2) Mat2x3 {
	return Mat2x3{1, 0, 0, 1, t.X, t.Y}
}

// Mat2x3Rotate returns a rotation matrix. The angle is in degrees.
func Mat2x3Rotate(deg float64) Mat2x3 {
	c, s := Cos(deg), Sin(deg)
	return Mat2x3{c, s, -s, c, 0, 0}
}

// Mat2x3Scale returns a scale matrix.
func Mat2x3Scale(s Vec2) Mat2x3 {
	return Mat2x3{s.X, 0, 0, s.Y, 0, 0}
}

// Mul returns m * other, composing the affine transforms with other
// applied first.
func (m Mat2x3) Mul(other Mat2x3) Mat2x3 {
	a0, b0, c0, d0, tx0, ty0 := m[0], m[1], m[2], m[3], m[4], m[5]
	a1, b1, c1, d1, tx1, ty1 := other[0], other[1], other[2], other[3], other[4], other[5]
	return Mat2x3{
		a0*a1 + c0*b1,
		b0*a1 + d0*b1,
		a0*c1 + c0*d1,
		b0*c1 + d0*d1,
		a0*tx1 + c0*ty1 + tx0,
		b0*tx1 + d0*ty1 + ty0,
	}
}

// TransformPoint applies the affine transform to a point.
func (m Mat2x3) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		m[0]*p.X + m[2]*p.Y + m[4],
		m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// TransformDir applies only the linear block, ignoring translation.
func (m Mat2x3) TransformDir(d Vec2) Vec2 {
	return Vec2{
		m[0]*d.X + m[2]*d.Y,
		m[1]*d.X + m[3]*d.Y,
	}
}

// Determinant returns the determinant of the linear block.
func (m Mat2x3) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse transform. ok is false when the linear block
// is singular.
func (m Mat2x3) Invert() (Mat2x3, bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat2x3{}, false
	}
	inv := 1 / det
	a, b, c, d := m[3]*inv, -m[1]*inv, -m[2]*inv, m[0]*inv
	return Mat2x3{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// Equals reports component-wise approximate equality.
func (m Mat2x3) Equals(other Mat2x3) bool {
	for i := range m {
		if !Equals(m[i], other[i]) {
			return false
		}
	}
	return true
}
