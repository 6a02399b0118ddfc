package vmath

import "math"

// Tolerances for approximate comparisons in tests. Round trips through
// trigonometry accumulate more error than plain arithmetic, so those
// checks use the loose one.
const (
	testTol      = 1e-9
	testLooseTol = 1e-4
)

func within(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vec3Near(v *Vec3, x, y, z, tol float64) bool {
	return within(v.X, x, tol) && within(v.Y, y, tol) && within(v.Z, z, tol)
}

// sameRotation reports whether a and b encode the same rotation, treating
// q and -q as equal.
func sameRotation(a, b *Quat, tol float64) bool {
	if a.Dot(b) < 0 {
		neg := Quat{X: -b.X, Y: -b.Y, Z: -b.Z, W: -b.W}
		return a.Equals(&neg, tol)
	}
	return a.Equals(b, tol)
}
