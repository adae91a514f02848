// Package gmath provides small fixed-size vector, matrix, and quaternion
// types for graphics and geometry code: conversion between rotation
// representations, affine decomposition, and keyframe interpolation.
//
// All types are immutable values; every operation is a pure function of its
// inputs and safe for concurrent use. Angles at the API boundary are always
// in degrees.
package gmath

import "math"

// Epsilon is the tolerance used by every approximate comparison in this
// package.
const Epsilon = 1e-6

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// Sin returns the sine of an angle in degrees.
func Sin(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

// Cos returns the cosine of an angle in degrees.
func Cos(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

// Tan returns the tangent of an angle in degrees.
func Tan(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}

// Asin returns the arcsine of x in degrees. The argument is clamped to
// [-1, 1] so that accumulated floating error in dot products cannot
// produce NaN.
func Asin(x float64) float64 {
	return Rad2Deg(math.Asin(Clamp(x, -1, 1)))
}

// Acos returns the arccosine of x in degrees. The argument is clamped to
// [-1, 1], see Asin.
func Acos(x float64) float64 {
	return Rad2Deg(math.Acos(Clamp(x, -1, 1)))
}

// Atan2 returns the angle of the vector (x, y) in degrees.
func Atan2(y, x float64) float64 {
	return Rad2Deg(math.Atan2(y, x))
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Equals reports whether a and b are equal within Epsilon, relative to the
// larger magnitude: |a-b| <= Epsilon * max(1, |a|, |b|).
func Equals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// Lerp linearly interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
