// Package mathx provides the small numeric helpers generative sketches lean
// on: interpolation, remapping, clamping, angle conversion and random
// sampling.
//
// Functions that sample randomness take a *rand.Rand. Passing nil uses a
// shared package-level source, which Seed makes reproducible.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of integer and floating point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp restricts v to [lo, hi]. Bounds given in reverse order are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp performs linear interpolation between a and b.
// t=0 returns a, t=1 returns b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns the t for which Lerp(a, b, t) == v.
// It returns 0 when a == b.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Map remaps v from the range [inLo, inHi] to [outLo, outHi].
// A degenerate input range maps everything to outLo.
func Map(v, inLo, inHi, outLo, outHi float64) float64 {
	return Lerp(outLo, outHi, InverseLerp(inLo, inHi, v))
}

// MapClamped is Map with the result restricted to the output range.
func MapClamped(v, inLo, inHi, outLo, outHi float64) float64 {
	return Clamp(Map(v, inLo, inHi, outLo, outHi), outLo, outHi)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// PolarToCartesian converts a radius and angle (radians) to x, y offsets.
func PolarToCartesian(r, theta float64) (x, y float64) {
	sin, cos := math.Sincos(theta)
	return r * cos, r * sin
}

// AlmostEqual reports whether a and b differ by at most eps.
func AlmostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
