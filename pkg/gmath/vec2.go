package gmath

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSq returns the squared magnitude.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector. The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// Min returns the component-wise minimum.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{math.Min(v.X, other.X), math.Min(v.Y, other.Y)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{math.Max(v.X, other.X), math.Max(v.Y, other.Y)}
}

// Lerp linearly interpolates toward other. t is not clamped.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
	}
}

// LerpV interpolates toward other with a separate factor per component.
func (v Vec2) LerpV(other Vec2, t Vec2) Vec2 {
	return Vec2{
		v.X + t.X*(other.X-v.X),
		v.Y + t.Y*(other.Y-v.Y),
	}
}

// Equals reports component-wise approximate equality.
func (v Vec2) Equals(other Vec2) bool {
	return Equals(v.X, other.X) && Equals(v.Y, other.Y)
}
