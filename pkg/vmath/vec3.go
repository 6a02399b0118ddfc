package vmath

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 returns a new vector with the given components.
func NewVec3(x, y, z float64) *Vec3 {
	return &Vec3{X: x, Y: y, Z: z}
}

// Set sets all three components.
func (v *Vec3) Set(x, y, z float64) *Vec3 {
	v.X = x
	v.Y = y
	v.Z = z
	return v
}

// Copy copies other into v.
func (v *Vec3) Copy(other *Vec3) *Vec3 {
	*v = *other
	return v
}

// Clone returns a newly allocated copy of v.
func (v *Vec3) Clone() *Vec3 {
	c := *v
	return &c
}

// Add adds other to v in place.
func (v *Vec3) Add(other *Vec3) *Vec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// AddScalar adds s to every component.
func (v *Vec3) AddScalar(s float64) *Vec3 {
	v.X += s
	v.Y += s
	v.Z += s
	return v
}

// Sub subtracts other from v in place.
func (v *Vec3) Sub(other *Vec3) *Vec3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// SubScalar subtracts s from every component.
func (v *Vec3) SubScalar(s float64) *Vec3 {
	v.X -= s
	v.Y -= s
	v.Z -= s
	return v
}

// Mul multiplies v by other componentwise.
func (v *Vec3) Mul(other *Vec3) *Vec3 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

// MulScalar multiplies every component by s.
func (v *Vec3) MulScalar(s float64) *Vec3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Div divides v by other componentwise.
func (v *Vec3) Div(other *Vec3) *Vec3 {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

// DivScalar divides every component by s.
func (v *Vec3) DivScalar(s float64) *Vec3 {
	v.X /= s
	v.Y /= s
	v.Z /= s
	return v
}

// Negate flips the sign of every component.
func (v *Vec3) Negate() *Vec3 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

// Abs replaces every component with its absolute value.
func (v *Vec3) Abs() *Vec3 {
	v.X = math.Abs(v.X)
	v.Y = math.Abs(v.Y)
	v.Z = math.Abs(v.Z)
	return v
}

// Floor rounds every component down.
func (v *Vec3) Floor() *Vec3 {
	v.X = math.Floor(v.X)
	v.Y = math.Floor(v.Y)
	v.Z = math.Floor(v.Z)
	return v
}

// Ceil rounds every component up.
func (v *Vec3) Ceil() *Vec3 {
	v.X = math.Ceil(v.X)
	v.Y = math.Ceil(v.Y)
	v.Z = math.Ceil(v.Z)
	return v
}

// Round rounds every component to the nearest integer.
func (v *Vec3) Round() *Vec3 {
	v.X = math.Round(v.X)
	v.Y = math.Round(v.Y)
	v.Z = math.Round(v.Z)
	return v
}

// Min replaces every component with the smaller of v's and other's.
func (v *Vec3) Min(other *Vec3) *Vec3 {
	v.X = math.Min(v.X, other.X)
	v.Y = math.Min(v.Y, other.Y)
	v.Z = math.Min(v.Z, other.Z)
	return v
}

// Max replaces every component with the larger of v's and other's.
func (v *Vec3) Max(other *Vec3) *Vec3 {
	v.X = math.Max(v.X, other.X)
	v.Y = math.Max(v.Y, other.Y)
	v.Z = math.Max(v.Z, other.Z)
	return v
}

// Clamp limits every component to the range [lo, hi] componentwise.
func (v *Vec3) Clamp(lo, hi *Vec3) *Vec3 {
	v.X = Clamp(v.X, lo.X, hi.X)
	v.Y = Clamp(v.Y, lo.Y, hi.Y)
	v.Z = Clamp(v.Z, lo.Z, hi.Z)
	return v
}

// Length returns the magnitude of v.
func (v *Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared magnitude of v.
func (v *Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// ManhattanLength returns the sum of the absolute components.
func (v *Vec3) ManhattanLength() float64 {
	return math.Abs(v.X) + math.Abs(v.Y) + math.Abs(v.Z)
}

// Normalize scales v to unit length. Vectors of length <= Epsilon are
// left unchanged.
func (v *Vec3) Normalize() *Vec3 {
	l := v.Length()
	if l <= Epsilon {
		return v
	}
	return v.MulScalar(1 / l)
}

// SetLength scales v to the given length. A no-op on near-zero vectors.
func (v *Vec3) SetLength(length float64) *Vec3 {
	return v.Normalize().MulScalar(length)
}

// ClampLength limits the magnitude of v to the range [lo, hi].
func (v *Vec3) ClampLength(lo, hi float64) *Vec3 {
	l := v.Length()
	if l <= Epsilon {
		return v
	}
	return v.MulScalar(Clamp(l, lo, hi) / l)
}

// Lerp interpolates v toward other by t in place.
func (v *Vec3) Lerp(other *Vec3, t float64) *Vec3 {
	v.X += (other.X - v.X) * t
	v.Y += (other.Y - v.Y) * t
	v.Z += (other.Z - v.Z) * t
	return v
}

// Dot returns the dot product.
func (v *Vec3) Dot(other *Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross replaces v with the cross product v x other.
func (v *Vec3) Cross(other *Vec3) *Vec3 {
	return Vec3Cross(v, v, other)
}

// DistanceTo returns the distance to another point.
func (v *Vec3) DistanceTo(other *Vec3) float64 {
	return math.Sqrt(v.DistanceToSq(other))
}

// DistanceToSq returns the squared distance to another point.
func (v *Vec3) DistanceToSq(other *Vec3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// ManhattanDistanceTo returns the Manhattan distance to another point.
func (v *Vec3) ManhattanDistanceTo(other *Vec3) float64 {
	return math.Abs(v.X-other.X) + math.Abs(v.Y-other.Y) + math.Abs(v.Z-other.Z)
}

// AngleTo returns the unsigned angle to other. When either vector has
// near-zero length the angle is undefined and π/2 is returned.
func (v *Vec3) AngleTo(other *Vec3) float64 {
	d := math.Sqrt(v.LengthSq() * other.LengthSq())
	if d <= Epsilon {
		return HalfPi
	}
	return math.Acos(Clamp(v.Dot(other)/d, -1, 1))
}

// Reflect reflects v off a surface with the given unit normal.
func (v *Vec3) Reflect(normal *Vec3) *Vec3 {
	d := 2 * v.Dot(normal)
	v.X -= d * normal.X
	v.Y -= d * normal.Y
	v.Z -= d * normal.Z
	return v
}

// ProjectOnto replaces v with its projection onto other. Projecting onto
// a near-zero vector zeroes v.
func (v *Vec3) ProjectOnto(other *Vec3) *Vec3 {
	denom := other.LengthSq()
	if denom <= Epsilon {
		return v.Set(0, 0, 0)
	}
	s := v.Dot(other) / denom
	v.X = other.X * s
	v.Y = other.Y * s
	v.Z = other.Z * s
	return v
}

// ProjectOnPlane replaces v with its projection onto the plane through the
// origin with the given unit normal.
func (v *Vec3) ProjectOnPlane(normal *Vec3) *Vec3 {
	d := v.Dot(normal)
	v.X -= d * normal.X
	v.Y -= d * normal.Y
	v.Z -= d * normal.Z
	return v
}

// IsZero reports whether every component is within Epsilon of zero.
func (v *Vec3) IsZero() bool {
	return math.Abs(v.X) <= Epsilon && math.Abs(v.Y) <= Epsilon && math.Abs(v.Z) <= Epsilon
}

// IsFinite reports whether every component is finite.
func (v *Vec3) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) &&
		!math.IsInf(v.Y, 0) && !math.IsNaN(v.Y) &&
		!math.IsInf(v.Z, 0) && !math.IsNaN(v.Z)
}

// Equals reports whether v and other differ by at most epsilon per
// component.
func (v *Vec3) Equals(other *Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// ExactEquals reports whether v and other are bitwise equal.
func (v *Vec3) ExactEquals(other *Vec3) bool {
	return *v == *other
}

// ToFloat32Array writes the components as float32 into dst starting at
// offset. This is the only place precision narrows.
func (v *Vec3) ToFloat32Array(dst []float32, offset int) {
	dst[offset+0] = float32(v.X)
	dst[offset+1] = float32(v.Y)
	dst[offset+2] = float32(v.Z)
}

// FromFloat32Array reads the components from src starting at offset.
func (v *Vec3) FromFloat32Array(src []float32, offset int) *Vec3 {
	v.X = float64(src[offset+0])
	v.Y = float64(src[offset+1])
	v.Z = float64(src[offset+2])
	return v
}

// Vec3Add writes a + b into out. out may alias a or b.
func Vec3Add(out, a, b *Vec3) *Vec3 {
	out.X = a.X + b.X
	out.Y = a.Y + b.Y
	out.Z = a.Z + b.Z
	return out
}

// Vec3Sub writes a - b into out. out may alias a or b.
func Vec3Sub(out, a, b *Vec3) *Vec3 {
	out.X = a.X - b.X
	out.Y = a.Y - b.Y
	out.Z = a.Z - b.Z
	return out
}

// Vec3Mul writes the componentwise product of a and b into out.
func Vec3Mul(out, a, b *Vec3) *Vec3 {
	out.X = a.X * b.X
	out.Y = a.Y * b.Y
	out.Z = a.Z * b.Z
	return out
}

// Vec3Div writes the componentwise quotient of a and b into out.
func Vec3Div(out, a, b *Vec3) *Vec3 {
	out.X = a.X / b.X
	out.Y = a.Y / b.Y
	out.Z = a.Z / b.Z
	return out
}

// Vec3Scale writes a * s into out.
func Vec3Scale(out, a *Vec3, s float64) *Vec3 {
	out.X = a.X * s
	out.Y = a.Y * s
	out.Z = a.Z * s
	return out
}

// Vec3Cross writes a x b into out. All source components are read before
// out is written, so out may alias a or b.
func Vec3Cross(out, a, b *Vec3) *Vec3 {
	ax, ay, az := a.X, a.Y, a.Z
	bx, by, bz := b.X, b.Y, b.Z
	out.X = ay*bz - az*by
	out.Y = az*bx - ax*bz
	out.Z = ax*by - ay*bx
	return out
}

// Vec3Lerp writes the interpolation from a to b by t into out.
func Vec3Lerp(out, a, b *Vec3, t float64) *Vec3 {
	out.X = a.X + (b.X-a.X)*t
	out.Y = a.Y + (b.Y-a.Y)*t
	out.Z = a.Z + (b.Z-a.Z)*t
	return out
}

// Vec3Min writes the componentwise minimum of a and b into out.
func Vec3Min(out, a, b *Vec3) *Vec3 {
	out.X = math.Min(a.X, b.X)
	out.Y = math.Min(a.Y, b.Y)
	out.Z = math.Min(a.Z, b.Z)
	return out
}

// Vec3Max writes the componentwise maximum of a and b into out.
func Vec3Max(out, a, b *Vec3) *Vec3 {
	out.X = math.Max(a.X, b.X)
	out.Y = math.Max(a.Y, b.Y)
	out.Z = math.Max(a.Z, b.Z)
	return out
}

// Vec3Normalize writes a normalized copy of a into out. Near-zero vectors
// are copied unchanged.
func Vec3Normalize(out, a *Vec3) *Vec3 {
	return out.Copy(a).Normalize()
}

// Vec3Reflect writes v reflected off the unit normal into out. out may
// alias v or normal.
func Vec3Reflect(out, v, normal *Vec3) *Vec3 {
	d := 2 * v.Dot(normal)
	nx, ny, nz := normal.X, normal.Y, normal.Z
	out.X = v.X - d*nx
	out.Y = v.Y - d*ny
	out.Z = v.Z - d*nz
	return out
}
