package gmath

import "math"

// Vec4 is a 4D vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul returns the component-wise product.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Scale returns v * s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Negate returns -v.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// LengthSq returns the squared magnitude.
func (v Vec4) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize returns a unit vector. The zero vector normalizes to itself.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	if l == 0 {
		return Vec4{}
	}
	return Vec4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// Min returns the component-wise minimum.
func (v Vec4) Min(other Vec4) Vec4 {
	return Vec4{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z), math.Min(v.W, other.W)}
}

// Max returns the component-wise maximum.
func (v Vec4) Max(other Vec4) Vec4 {
	return Vec4{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z), math.Max(v.W, other.W)}
}

// Lerp linearly interpolates toward other. t is not clamped.
func (v Vec4) Lerp(other Vec4, t float64) Vec4 {
	return Vec4{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
		v.Z + t*(other.Z-v.Z),
		v.W + t*(other.W-v.W),
	}
}

// LerpV interpolates toward other with a separate factor per component.
func (v Vec4) LerpV(other Vec4, t Vec4) Vec4 {
	return Vec4{
		v.X + t.X*(other.X-v.X),
		v.Y + t.Y*(other.Y-v.Y),
		v.Z + t.Z*(other.Z-v.Z),
		v.W + t.W*(other.W-v.W),
	}
}

// Equals reports component-wise approximate equality.
func (v Vec4) Equals(other Vec4) bool {
	return Equals(v.X, other.X) && Equals(v.Y, other.Y) &&
		Equals(v.Z, other.Z) && Equals(v.W, other.W)
}

// Vec3 returns the XYZ components.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
