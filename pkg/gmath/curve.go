package gmath

// Cubic curve evaluation with closed-form degree-3 basis weights. t is not
// clamped; values outside [0,1] extrapolate.

func hermiteWeights(t float64) (f1, f2, f3, f4 float64) {
	tt := t * t
	f1 = tt*(2*t-3) + 1
	f2 = tt*(t-2) + t
	f3 = tt * (t - 1)
	f4 = tt * (3 - 2*t)
	return
}

func bezierWeights(t float64) (f1, f2, f3, f4 float64) {
	it := 1 - t
	itt := it * it
	tt := t * t
	f1 = itt * it
	f2 = 3 * t * itt
	f3 = 3 * tt * it
	f4 = tt * t
	return
}

// Hermite evaluates a cubic Hermite curve from endpoint a with tangent ta
// to endpoint b with tangent tb.
func Hermite(a, ta, tb, b Vec3, t float64) Vec3 {
	f1, f2, f3, f4 := hermiteWeights(t)
	return a.Scale(f1).Add(ta.Scale(f2)).Add(tb.Scale(f3)).Add(b.Scale(f4))
}

// HermiteVec2 is Hermite over Vec2.
func HermiteVec2(a, ta, tb, b Vec2, t float64) Vec2 {
	f1, f2, f3, f4 := hermiteWeights(t)
	return a.Scale(f1).Add(ta.Scale(f2)).Add(tb.Scale(f3)).Add(b.Scale(f4))
}

// HermiteVec4 is Hermite over Vec4.
func HermiteVec4(a, ta, tb, b Vec4, t float64) Vec4 {
	f1, f2, f3, f4 := hermiteWeights(t)
	return a.Scale(f1).Add(ta.Scale(f2)).Add(tb.Scale(f3)).Add(b.Scale(f4))
}

// Bezier evaluates a cubic Bezier curve through control points a, b, c, d
// using the Bernstein basis.
func Bezier(a, b, c, d Vec3, t float64) Vec3 {
	f1, f2, f3, f4 := bezierWeights(t)
	return a.Scale(f1).Add(b.Scale(f2)).Add(c.Scale(f3)).Add(d.Scale(f4))
}

// BezierVec2 is Bezier over Vec2.
func BezierVec2(a, b, c, d Vec2, t float64) Vec2 {
	f1, f2, f3, f4 := bezierWeights(t)
	return a.Scale(f1).Add(b.Scale(f2)).Add(c.Scale(f3)).Add(d.Scale(f4))
}

// BezierVec4 is Bezier over Vec4.
func BezierVec4(a, b, c, d Vec4, t float64) Vec4 {
	f1, f2, f3, f4 := bezierWeights(t)
	return a.Scale(f1).Add(b.Scale(f2)).Add(c.Scale(f3)).Add(d.Scale(f4))
}
