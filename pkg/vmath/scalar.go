// Package vmath provides double-precision vectors, matrices, quaternions,
// transforms and geometric primitives for real-time graphics code.
//
// Every mutating operation writes into a caller-owned destination and
// allocates nothing. Methods mutate their receiver in place and return it
// for chaining; free functions take an explicit out pointer as their first
// argument and are safe when out aliases any input. Storage is float64
// throughout; precision narrows to float32 only in the ToFloat32Array /
// FromFloat32Array GPU upload boundary.
//
// The library never raises errors on degenerate input. Normalizing a
// near-zero vector, inverting a singular matrix or a near-zero quaternion
// leaves the value unchanged, and geometric queries that can miss return
// the sentinel -1. Callers that need to distinguish these cases check the
// inputs (e.g. Determinant) or the sentinel.
package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the default tolerance for approximate comparisons and for the
// divide-by-near-zero guards used across the library.
const Epsilon = 1e-6

// HalfPi is π/2, also the fallback result of the angle-between operations
// when either operand has zero length.
const HalfPi = math.Pi / 2

// Clamp returns f limited to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Clamp01 returns f limited to the range [0, 1].
func Clamp01(f float64) float64 {
	return Clamp(f, 0, 1)
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1 depending on the sign of v.
func Sign[T constraints.Signed | constraints.Float](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Lerp linearly interpolates from a to b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns where value sits between a and b as a fraction.
// Returns 0 when a == b instead of dividing by zero.
func InverseLerp(a, b, value float64) float64 {
	if a == b {
		return 0
	}
	return (value - a) / (b - a)
}

// Remap maps value from the range [fromMin, fromMax] to [toMin, toMax].
func Remap(value, fromMin, fromMax, toMin, toMax float64) float64 {
	return Lerp(toMin, toMax, InverseLerp(fromMin, fromMax, value))
}

// Smoothstep returns the classic cubic Hermite interpolation of t clamped
// to [0, 1] between edge0 and edge1.
func Smoothstep(edge0, edge1, t float64) float64 {
	x := Clamp01(InverseLerp(edge0, edge1, t))
	return x * x * (3 - 2*x)
}

// Smootherstep is Perlin's quintic variant of Smoothstep with zero first
// and second derivatives at the edges.
func Smootherstep(edge0, edge1, t float64) float64 {
	x := Clamp01(InverseLerp(edge0, edge1, t))
	return x * x * x * (x*(x*6-15) + 10)
}

// ApproxEqual reports whether a and b differ by at most epsilon.
func ApproxEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// WrapAngle wraps an angle in radians to the range [-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// LerpAngle interpolates between the angles a and b along the shortest
// arc, returning a wrapped angle in [-π, π].
func LerpAngle(a, b, t float64) float64 {
	return WrapAngle(a + WrapAngle(b-a)*t)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two that is >= n.
// Returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * (180 / math.Pi)
}
