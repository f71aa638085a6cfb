package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// InRange reports lo <= v <= hi.
func InRange[T constraints.Ordered](v, lo, hi T) bool {
	return lo <= v && v <= hi
}

// Between reports lo < v < hi.
func Between[T constraints.Ordered](v, lo, hi T) bool {
	return lo < v && v < hi
}

// Clamp limits v to [lo, hi]. When lo > hi the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}

	return min(max(v, lo), hi)
}

// Sign returns -1, 0 or 1. NaN yields 0.
func Sign[T Number](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// IsPositive reports v > 0.
func IsPositive[T Number](v T) bool { return v > 0 }

// IsNegative reports v < 0.
func IsNegative[T Number](v T) bool { return v < 0 }

// IsEven reports whether v is divisible by two.
func IsEven[T constraints.Integer](v T) bool { return v%2 == 0 }

// IsOdd reports whether v is not divisible by two.
func IsOdd[T constraints.Integer](v T) bool { return v%2 != 0 }

// AlmostEqual reports |a-b| <= eps.
func AlmostEqual[T constraints.Float](a, b, eps T) bool {
	return math.Abs(float64(a)-float64(b)) <= float64(eps)
}
