package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DirectionEpsilon is the smallest magnitude a direction component may have
// before it is used as a divisor in a slab test.
const DirectionEpsilon = 1e-8

// Forward is the fallback direction for degenerate rays (cameras look down -Z).
var Forward = mgl64.Vec3{0, 0, -1}

// SafeDiv clamps x away from zero, preserving its sign. Zero is treated as positive.
func SafeDiv(x float64) float64 {
	if math.Abs(x) > DirectionEpsilon {
		return x
	}
	if x >= 0 {
		return DirectionEpsilon
	}
	return -DirectionEpsilon
}

// ClampDirection applies SafeDiv to every component of d
func ClampDirection(d mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{SafeDiv(d[0]), SafeDiv(d[1]), SafeDiv(d[2])}
}

// NormalizeOr returns v normalized, or fallback when v has zero (or non-finite) length.
// mgl64's Normalize divides by the length unconditionally, which yields NaN for zero vectors.
func NormalizeOr(v, fallback mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fallback
	}
	return v.Mul(1 / l)
}

// DivVec returns component-wise a / b
func DivVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

// MinVec returns the component-wise minimum of two vectors
func MinVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

// MaxVec returns the component-wise maximum of two vectors
func MaxVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// MulVec returns component-wise multiplication of two vectors
func MulVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Clamp01 returns a color with components clamped to [0, 1]
func Clamp01(c mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(c[0], 0, 1),
		mgl64.Clamp(c[1], 0, 1),
		mgl64.Clamp(c[2], 0, 1),
	}
}

// Reflect reflects incident vector i around normal n (GLSL reflect semantics)
func Reflect(i, n mgl64.Vec3) mgl64.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

// IsFinite reports whether every component of v is a finite number
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
