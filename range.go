package sketch

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/sketch/mathx"
)

// Number is the set of numeric types a Range can hold.
type Number = mathx.Number

// Range is a closed numeric interval [min, max].
//
// A Range always satisfies Min() <= Max(). Out-of-order input is never
// rejected: the constructor swaps the arguments and the setters rotate the
// bounds (see SetMax and SetMin). The zero value is the range [0, 0].
type Range[T Number] struct {
	min T
	max T
}

// NewRange creates a Range from two values given in any order.
func NewRange[T Number](a, b T) Range[T] {
	if b < a {
		a, b = b, a
	}
	return Range[T]{min: a, max: b}
}

// Min returns the lower bound.
func (r Range[T]) Min() T { return r.min }

// Max returns the upper bound.
func (r Range[T]) Max() T { return r.max }

// SetMax sets the upper bound.
//
// If v is below the current minimum, the bounds rotate: the old minimum
// becomes the new maximum and v becomes the new minimum. This is not a clamp,
// so Range(2, 10).SetMax(1) yields [1, 2]. A warning is logged for every
// rotation.
func (r *Range[T]) SetMax(v T) {
	if v < r.min {
		old := r.min
		r.min, r.max = v, old
		Logger().Warn("sketch: range max below min, rotating bounds",
			"requested", v, "min", r.min, "max", r.max)
		return
	}
	r.max = v
}

// SetMin sets the lower bound.
//
// If v is above the current maximum, the bounds rotate: the old maximum
// becomes the new minimum and v becomes the new maximum, so
// Range(2, 10).SetMin(15) yields [10, 15]. A warning is logged for every
// rotation.
func (r *Range[T]) SetMin(v T) {
	if v > r.max {
		old := r.max
		r.min, r.max = old, v
		Logger().Warn("sketch: range min above max, rotating bounds",
			"requested", v, "min", r.min, "max", r.max)
		return
	}
	r.min = v
}

// Span returns max - min.
func (r Range[T]) Span() T { return r.max - r.min }

// Contains reports whether v lies within the closed interval.
func (r Range[T]) Contains(v T) bool {
	return v >= r.min && v <= r.max
}

// Clamp restricts v to the interval.
func (r Range[T]) Clamp(v T) T {
	return mathx.Clamp(v, r.min, r.max)
}

// Lerp returns the value at fraction t of the interval.
// t is not clamped, so values outside [0, 1] extrapolate.
func (r Range[T]) Lerp(t float64) float64 {
	return mathx.Lerp(float64(r.min), float64(r.max), t)
}

// Norm returns where v sits within the interval as a fraction in [0, 1]
// for values inside it. An empty interval yields 0.
func (r Range[T]) Norm(v T) float64 {
	return mathx.InverseLerp(float64(r.min), float64(r.max), float64(v))
}

// Random samples a value uniformly from the interval.
// Floating point ranges sample [min, max); integer ranges sample [min, max].
// A nil rnd uses the shared source configured with mathx.Seed.
func (r Range[T]) Random(rnd *rand.Rand) T {
	if r.min == r.max {
		return r.min
	}
	switch {
	case isFloat[T]():
		return T(mathx.Random(rnd, float64(r.min), float64(r.max)))
	case isUnsigned[T]():
		return T(mathx.RandomUint64(rnd, uint64(r.min), uint64(r.max)))
	}
	return T(mathx.RandomInt(rnd, int64(r.min), int64(r.max)))
}

// String implements fmt.Stringer.
func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.min, r.max)
}

// isFloat reports whether T is a floating point type.
func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

// isUnsigned reports whether T is an unsigned integer type.
func isUnsigned[T Number]() bool {
	var zero T
	return !isFloat[T]() && zero-1 > zero
}
