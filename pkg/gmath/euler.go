package gmath

import "math"

// EulerOrder selects the intrinsic axis order in which the three elemental
// rotations of an Euler triple are composed. OrderZYX is the default used
// throughout this package.
type EulerOrder int

const (
	OrderZYX EulerOrder = iota
	OrderXYZ
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
)

// gimbalEps is the |sin| threshold at which the middle axis is considered
// locked and the extraction switches to the degenerate branch.
const gimbalEps = 0.9999999

// String returns the lowercase axis order, e.g. "zyx".
func (o EulerOrder) String() string {
	switch o {
	case OrderXYZ:
		return "xyz"
	case OrderXZY:
		return "xzy"
	case OrderYXZ:
		return "yxz"
	case OrderYZX:
		return "yzx"
	case OrderZXY:
		return "zxy"
	default:
		return "zyx"
	}
}

// ParseEulerOrder converts an axis-order string such as "zyx" to an
// EulerOrder. Unknown strings return OrderZYX and false.
func ParseEulerOrder(s string) (EulerOrder, bool) {
	switch s {
	case "xyz":
		return OrderXYZ, true
	case "xzy":
		return OrderXZY, true
	case "yxz":
		return OrderYXZ, true
	case "yzx":
		return OrderYZX, true
	case "zxy":
		return OrderZXY, true
	case "zyx":
		return OrderZYX, true
	}
	return OrderZYX, false
}

// QuatFromEuler builds a quaternion from an Euler triple (degrees per
// axis) composed in the given intrinsic order. Each order uses its own
// closed-form half-angle product rather than composing three matrices, so
// the result carries no intermediate rounding.
func QuatFromEuler(e Vec3, order EulerOrder) Quat {
	halfToRad := math.Pi / 360
	sx, cx := math.Sincos(e.X * halfToRad)
	sy, cy := math.Sincos(e.Y * halfToRad)
	sz, cz := math.Sincos(e.Z * halfToRad)

	switch order {
	case OrderXYZ:
		return Quat{
			X: sx*cy*cz + cx*sy*sz,
			Y: cx*sy*cz - sx*cy*sz,
			Z: cx*cy*sz + sx*sy*cz,
			W: cx*cy*cz - sx*sy*sz,
		}
	case OrderXZY:
		return Quat{
			X: sx*cy*cz - cx*sy*sz,
			Y: cx*sy*cz - sx*cy*sz,
			Z: cx*cy*sz + sx*sy*cz,
			W: cx*cy*cz + sx*sy*sz,
		}
	case OrderYXZ:
		return Quat{
			X: sx*cy*cz + cx*sy*sz,
			Y: cx*sy*cz - sx*cy*sz,
			Z: cx*cy*sz - sx*sy*cz,
			W: cx*cy*cz + sx*sy*sz,
		}
	case OrderYZX:
		return Quat{
			X: sx*cy*cz + cx*sy*sz,
			Y: cx*sy*cz + sx*cy*sz,
			Z: cx*cy*sz - sx*sy*cz,
			W: cx*cy*cz - sx*sy*sz,
		}
	case OrderZXY:
		return Quat{
			X: sx*cy*cz - cx*sy*sz,
			Y: cx*sy*cz + sx*cy*sz,
			Z: cx*cy*sz + sx*sy*cz,
			W: cx*cy*cz - sx*sy*sz,
		}
	default: // OrderZYX
		return Quat{
			X: sx*cy*cz - cx*sy*sz,
			Y: cx*sy*cz + sx*cy*sz,
			Z: cx*cy*sz - sx*sy*cz,
			W: cx*cy*cz + sx*sy*sz,
		}
	}
}

// Euler extracts the Euler triple (degrees per axis) for the given
// intrinsic order. The quaternion is assumed unit length.
//
// At gimbal lock the extraction is not unique: one outer angle is set to
// zero and the remaining angle absorbs the combined rotation, so the
// returned triple still reconstructs the same rotation. The asin argument
// is clamped to [-1, 1] to keep accumulated floating error from producing
// NaN.
func (q Quat) Euler(order EulerOrder) Vec3 {
	m := q.Mat3()
	m11, m21, m31 := m[0], m[1], m[2]
	m12, m22, m32 := m[3], m[4], m[5]
	m13, m23, m33 := m[6], m[7], m[8]

	var x, y, z float64
	switch order {
	case OrderXYZ:
		y = Asin(m13)
		if math.Abs(m13) < gimbalEps {
			x = Atan2(-m23, m33)
			z = Atan2(-m12, m11)
		} else {
			x = Atan2(m32, m22)
			z = 0
		}
	case OrderXZY:
		z = Asin(-m12)
		if math.Abs(m12) < gimbalEps {
			x = Atan2(m32, m22)
			y = Atan2(m13, m11)
		} else {
			x = Atan2(-m23, m33)
			y = 0
		}
	case OrderYXZ:
		x = Asin(-m23)
		if math.Abs(m23) < gimbalEps {
			y = Atan2(m13, m33)
			z = Atan2(m21, m22)
		} else {
			y = Atan2(-m31, m11)
			z = 0
		}
	case OrderYZX:
		z = Asin(m21)
		if math.Abs(m21) < gimbalEps {
			x = Atan2(-m23, m22)
			y = Atan2(-m31, m11)
		} else {
			x = 0
			y = Atan2(m13, m33)
		}
	case OrderZXY:
		x = Asin(m32)
		if math.Abs(m32) < gimbalEps {
			y = Atan2(-m31, m33)
			z = Atan2(-m12, m22)
		} else {
			y = 0
			z = Atan2(m21, m11)
		}
	default: // OrderZYX
		y = Asin(-m31)
		if math.Abs(m31) < gimbalEps {
			x = Atan2(m32, m33)
			z = Atan2(m21, m11)
		} else {
			x = 0
			z = Atan2(-m12, m22)
		}
	}
	return Vec3{x, y, z}
}
