package vmath

import "math"

// Vec4 is a 4D vector, used both as a homogeneous coordinate and as a
// free 4-tuple.
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 returns a new vector with the given components.
func NewVec4(x, y, z, w float64) *Vec4 {
	return &Vec4{X: x, Y: y, Z: z, W: w}
}

// Set sets all four components.
func (v *Vec4) Set(x, y, z, w float64) *Vec4 {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
	return v
}

// Copy copies other into v.
func (v *Vec4) Copy(other *Vec4) *Vec4 {
	*v = *other
	return v
}

// Clone returns a newly allocated copy of v.
func (v *Vec4) Clone() *Vec4 {
	c := *v
	return &c
}

// Vec3 writes the x, y and z components into out, dropping w.
func (v *Vec4) Vec3(out *Vec3) *Vec3 {
	return out.Set(v.X, v.Y, v.Z)
}

// Add adds other to v in place.
func (v *Vec4) Add(other *Vec4) *Vec4 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
	return v
}

// AddScalar adds s to every component.
func (v *Vec4) AddScalar(s float64) *Vec4 {
	v.X += s
	v.Y += s
	v.Z += s
	v.W += s
	return v
}

// Sub subtracts other from v in place.
func (v *Vec4) Sub(other *Vec4) *Vec4 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
	return v
}

// SubScalar subtracts s from every component.
func (v *Vec4) SubScalar(s float64) *Vec4 {
	v.X -= s
	v.Y -= s
	v.Z -= s
	v.W -= s
	return v
}

// Mul multiplies v by other componentwise.
func (v *Vec4) Mul(other *Vec4) *Vec4 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	v.W *= other.W
	return v
}

// MulScalar multiplies every component by s.
func (v *Vec4) MulScalar(s float64) *Vec4 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
	return v
}

// Div divides v by other componentwise.
func (v *Vec4) Div(other *Vec4) *Vec4 {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	v.W /= other.W
	return v
}

// DivScalar divides every component by s.
func (v *Vec4) DivScalar(s float64) *Vec4 {
	v.X /= s
	v.Y /= s
	v.Z /= s
	v.W /= s
	return v
}

// Negate flips the sign of every component.
func (v *Vec4) Negate() *Vec4 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	v.W = -v.W
	return v
}

// Abs replaces every component with its absolute value.
func (v *Vec4) Abs() *Vec4 {
	v.X = math.Abs(v.X)
	v.Y = math.Abs(v.Y)
	v.Z = math.Abs(v.Z)
	v.W = math.Abs(v.W)
	return v
}

// Floor rounds every component down.
func (v *Vec4) Floor() *Vec4 {
	v.X = math.Floor(v.X)
	v.Y = math.Floor(v.Y)
	v.Z = math.Floor(v.Z)
	v.W = math.Floor(v.W)
	return v
}

// Ceil rounds every component up.
func (v *Vec4) Ceil() *Vec4 {
	v.X = math.Ceil(v.X)
	v.Y = math.Ceil(v.Y)
	v.Z = math.Ceil(v.Z)
	v.W = math.Ceil(v.W)
	return v
}

// Round rounds every component to the nearest integer.
func (v *Vec4) Round() *Vec4 {
	v.X = math.Round(v.X)
	v.Y = math.Round(v.Y)
	v.Z = math.Round(v.Z)
	v.W = math.Round(v.W)
	return v
}

// Min replaces every component with the smaller of v's and other's.
func (v *Vec4) Min(other *Vec4) *Vec4 {
	v.X = math.Min(v.X, other.X)
	v.Y = math.Min(v.Y, other.Y)
	v.Z = math.Min(v.Z, other.Z)
	v.W = math.Min(v.W, other.W)
	return v
}

// Max replaces every component with the larger of v's and other's.
func (v *Vec4) Max(other *Vec4) *Vec4 {
	v.X = math.Max(v.X, other.X)
	v.Y = math.Max(v.Y, other.Y)
	v.Z = math.Max(v.Z, other.Z)
	v.W = math.Max(v.W, other.W)
	return v
}

// Clamp limits every component to the range [lo, hi] componentwise.
func (v *Vec4) Clamp(lo, hi *Vec4) *Vec4 {
	v.X = Clamp(v.X, lo.X, hi.X)
	v.Y = Clamp(v.Y, lo.Y, hi.Y)
	v.Z = Clamp(v.Z, lo.Z, hi.Z)
	v.W = Clamp(v.W, lo.W, hi.W)
	return v
}

// Length returns the magnitude of v.
func (v *Vec4) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// LengthSq returns the squared magnitude of v.
func (v *Vec4) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// ManhattanLength returns the sum of the absolute components.
func (v *Vec4) ManhattanLength() float64 {
	return math.Abs(v.X) + math.Abs(v.Y) + math.Abs(v.Z) + math.Abs(v.W)
}

// Normalize scales v to unit length. Vectors of length <= Epsilon are
// left unchanged.
func (v *Vec4) Normalize() *Vec4 {
	l := v.Length()
	if l <= Epsilon {
		return v
	}
	return v.MulScalar(1 / l)
}

// SetLength scales v to the given length. A no-op on near-zero vectors.
func (v *Vec4) SetLength(length float64) *Vec4 {
	return v.Normalize().MulScalar(length)
}

// ClampLength limits the magnitude of v to the range [lo, hi].
func (v *Vec4) ClampLength(lo, hi float64) *Vec4 {
	l := v.Length()
	if l <= Epsilon {
		return v
	}
	return v.MulScalar(Clamp(l, lo, hi) / l)
}

// Lerp interpolates v toward other by t in place.
func (v *Vec4) Lerp(other *Vec4, t float64) *Vec4 {
	v.X += (other.X - v.X) * t
	v.Y += (other.Y - v.Y) * t
	v.Z += (other.Z - v.Z) * t
	v.W += (other.W - v.W) * t
	return v
}

// Dot returns the dot product.
func (v *Vec4) Dot(other *Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// DistanceTo returns the distance to another point.
func (v *Vec4) DistanceTo(other *Vec4) float64 {
	return math.Sqrt(v.DistanceToSq(other))
}

// DistanceToSq returns the squared distance to another point.
func (v *Vec4) DistanceToSq(other *Vec4) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	dw := v.W - other.W
	return dx*dx + dy*dy + dz*dz + dw*dw
}

// IsZero reports whether every component is within Epsilon of zero.
func (v *Vec4) IsZero() bool {
	return math.Abs(v.X) <= Epsilon && math.Abs(v.Y) <= Epsilon &&
		math.Abs(v.Z) <= Epsilon && math.Abs(v.W) <= Epsilon
}

// IsFinite reports whether every component is finite.
func (v *Vec4) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) &&
		!math.IsInf(v.Y, 0) && !math.IsNaN(v.Y) &&
		!math.IsInf(v.Z, 0) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.W, 0) && !math.IsNaN(v.W)
}

// Equals reports whether v and other differ by at most epsilon per
// component.
func (v *Vec4) Equals(other *Vec4, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon &&
		math.Abs(v.W-other.W) <= epsilon
}

// ExactEquals reports whether v and other are bitwise equal.
func (v *Vec4) ExactEquals(other *Vec4) bool {
	return *v == *other
}

// ToFloat32Array writes the components as float32 into dst starting at
// offset. This is the only place precision narrows.
func (v *Vec4) ToFloat32Array(dst []float32, offset int) {
	dst[offset+0] = float32(v.X)
	dst[offset+1] = float32(v.Y)
	dst[offset+2] = float32(v.Z)
	dst[offset+3] = float32(v.W)
}

// FromFloat32Array reads the components from src starting at offset.
func (v *Vec4) FromFloat32Array(src []float32, offset int) *Vec4 {
	v.X = float64(src[offset+0])
	v.Y = float64(src[offset+1])
	v.Z = float64(src[offset+2])
	v.W = float64(src[offset+3])
	return v
}

// Vec4Add writes a + b into out. out may alias a or b.
func Vec4Add(out, a, b *Vec4) *Vec4 {
	out.X = a.X + b.X
	out.Y = a.Y + b.Y
	out.Z = a.Z + b.Z
	out.W = a.W + b.W
	return out
}

// Vec4Sub writes a - b into out. out may alias a or b.
func Vec4Sub(out, a, b *Vec4) *Vec4 {
	out.X = a.X - b.X
	out.Y = a.Y - b.Y
	out.Z = a.Z - b.Z
	out.W = a.W - b.W
	return out
}

// Vec4Mul writes the componentwise product of a and b into out.
func Vec4Mul(out, a, b *Vec4) *Vec4 {
	out.X = a.X * b.X
	out.Y = a.Y * b.Y
	out.Z = a.Z * b.Z
	out.W = a.W * b.W
	return out
}

// Vec4Div writes the componentwise quotient of a and b into out.
func Vec4Div(out, a, b *Vec4) *Vec4 {
	out.X = a.X / b.X
	out.Y = a.Y / b.Y
	out.Z = a.Z / b.Z
	out.W = a.W / b.W
	return out
}

// Vec4Scale writes a * s into out.
func Vec4Scale(out, a *Vec4, s float64) *Vec4 {
	out.X = a.X * s
	out.Y = a.Y * s
	out.Z = a.Z * s
	out.W = a.W * s
	return out
}

// Vec4Lerp writes the interpolation from a to b by t into out.
func Vec4Lerp(out, a, b *Vec4, t float64) *Vec4 {
	out.X = a.X + (b.X-a.X)*t
	out.Y = a.Y + (b.Y-a.Y)*t
	out.Z = a.Z + (b.Z-a.Z)*t
	out.W = a.W + (b.W-a.W)*t
	return out
}

// Vec4Min writes the componentwise minimum of a and b into out.
func Vec4Min(out, a, b *Vec4) *Vec4 {
	out.X = math.Min(a.X, b.X)
	out.Y = math.Min(a.Y, b.Y)
	out.Z = math.Min(a.Z, b.Z)
	out.W = math.Min(a.W, b.W)
	return out
}

// Vec4Max writes the componentwise maximum of a and b into out.
func Vec4Max(out, a, b *Vec4) *Vec4 {
	out.X = math.Max(a.X, b.X)
	out.Y = math.Max(a.Y, b.Y)
	out.Z = math.Max(a.Z, b.Z)
	out.W = math.Max(a.W, b.W)
	return out
}

// Vec4Normalize writes a normalized copy of a into out. Near-zero vectors
// are copied unchanged.
func Vec4Normalize(out, a *Vec4) *Vec4 {
	return out.Copy(a).Normalize()
}
