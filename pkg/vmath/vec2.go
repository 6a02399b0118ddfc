package vmath

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// NewVec2 returns a new vector with the given components.
func NewVec2(x, y float64) *Vec2 {
	return &Vec2{X: x, Y: y}
}

// Set sets both components.
func (v *Vec2) Set(x, y float64) *Vec2 {
	v.X = x
	v.Y = y
	return v
}

// Copy copies other into v.
func (v *Vec2) Copy(other *Vec2) *Vec2 {
	*v = *other
	return v
}

// Clone returns a newly allocated copy of v.
func (v *Vec2) Clone() *Vec2 {
	c := *v
	return &c
}

// Add adds other to v in place.
func (v *Vec2) Add(other *Vec2) *Vec2 {
	v.X += other.X
	v.Y += other.Y
	return v
}

// AddScalar adds s to every component.
func (v *Vec2) AddScalar(s float64) *Vec2 {
	v.X += s
	v.Y += s
	return v
}

// Sub subtracts other from v in place.
func (v *Vec2) Sub(other *Vec2) *Vec2 {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// SubScalar subtracts s from every component.
func (v *Vec2) SubScalar(s float64) *Vec2 {
	v.X -= s
	v.Y -= s
	return v
}

// Mul multiplies v by other componentwise.
func (v *Vec2) Mul(other *Vec2) *Vec2 {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// MulScalar multiplies every component by s.
func (v *Vec2) MulScalar(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

// Div divides v by other componentwise.
func (v *Vec2) Div(other *Vec2) *Vec2 {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// DivScalar divides every component by s.
func (v *Vec2) DivScalar(s float64) *Vec2 {
	v.X /= s
	v.Y /= s
	return v
}

// Negate flips the sign of every component.
func (v *Vec2) Negate() *Vec2 {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

// Abs replaces every component with its absolute value.
func (v *Vec2) Abs() *Vec2 {
	v.X = math.Abs(v.X)
	v.Y = math.Abs(v.Y)
	return v
}

// Floor rounds every component down.
func (v *Vec2) Floor() *Vec2 {
	v.X = math.Floor(v.X)
	v.Y = math.Floor(v.Y)
	return v
}

// Ceil rounds every component up.
func (v *Vec2) Ceil() *Vec2 {
	v.X = math.Ceil(v.X)
	v.Y = math.Ceil(v.Y)
	return v
}

// Round rounds every component to the nearest integer.
func (v *Vec2) Round() *Vec2 {
	v.X = math.Round(v.X)
	v.Y = math.Round(v.Y)
	return v
}

// Min replaces every component with the smaller of v's and other's.
func (v *Vec2) Min(other *Vec2) *Vec2 {
	v.X = math.Min(v.X, other.X)
	v.Y = math.Min(v.Y, other.Y)
	return v
}

// Max replaces every component with the larger of v's and other's.
func (v *Vec2) Max(other *Vec2) *Vec2 {
	v.X = math.Max(v.X, other.X)
	v.Y = math.Max(v.Y, other.Y)
	return v
}

// Clamp limits every component to the range [lo, hi] componentwise.
func (v *Vec2) Clamp(lo, hi *Vec2) *Vec2 {
	v.X = Clamp(v.X, lo.X, hi.X)
	v.Y = Clamp(v.Y, lo.Y, hi.Y)
	return v
}

// Length returns the magnitude of v.
func (v *Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared magnitude of v.
func (v *Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// ManhattanLength returns the sum of the absolute components.
func (v *Vec2) ManhattanLength() float64 {
	return math.Abs(v.X) + math.Abs(v.Y)
}

// Normalize scales v to unit length. Vectors of length <= Epsilon are
// left unchanged.
func (v *Vec2) Normalize() *Vec2 {
	l := v.Length()
	if l <= Epsilon {
		return v
	}
	return v.MulScalar(1 / l)
}

// SetLength scales v to the given length. A no-op on near-zero vectors.
func (v *Vec2) SetLength(length float64) *Vec2 {
	return v.Normalize().MulScalar(length)
}

// ClampLength limits the magnitude of v to the range [lo, hi].
func (v *Vec2) ClampLength(lo, hi float64) *Vec2 {
	l := v.Length()
	if l <= Epsilon {
		return v
	}
	return v.MulScalar(Clamp(l, lo, hi) / l)
}

// Lerp interpolates v toward other by t in place.
func (v *Vec2) Lerp(other *Vec2, t float64) *Vec2 {
	v.X += (other.X - v.X) * t
	v.Y += (other.Y - v.Y) * t
	return v
}

// Dot returns the dot product.
func (v *Vec2) Dot(other *Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v *Vec2) Cross(other *Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// DistanceTo returns the distance to another point.
func (v *Vec2) DistanceTo(other *Vec2) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceToSq returns the squared distance to another point.
func (v *Vec2) DistanceToSq(other *Vec2) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

// ManhattanDistanceTo returns the Manhattan distance to another point.
func (v *Vec2) ManhattanDistanceTo(other *Vec2) float64 {
	return math.Abs(v.X-other.X) + math.Abs(v.Y-other.Y)
}

// Angle returns the angle of v in radians with respect to the positive
// x axis, in the range (-π, π].
func (v *Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the unsigned angle to other. When either vector has
// near-zero length the angle is undefined and π/2 is returned.
func (v *Vec2) AngleTo(other *Vec2) float64 {
	d := math.Sqrt(v.LengthSq() * other.LengthSq())
	if d <= Epsilon {
		return HalfPi
	}
	return math.Acos(Clamp(v.Dot(other)/d, -1, 1))
}

// SignedAngleTo returns the signed angle to other, positive when other is
// counterclockwise from v. π/2 is returned for near-zero operands.
func (v *Vec2) SignedAngleTo(other *Vec2) float64 {
	if v.LengthSq() <= Epsilon*Epsilon || other.LengthSq() <= Epsilon*Epsilon {
		return HalfPi
	}
	return math.Atan2(v.Cross(other), v.Dot(other))
}

// Reflect reflects v off a surface with the given unit normal.
func (v *Vec2) Reflect(normal *Vec2) *Vec2 {
	d := 2 * v.Dot(normal)
	v.X -= d * normal.X
	v.Y -= d * normal.Y
	return v
}

// IsZero reports whether every component is within Epsilon of zero.
func (v *Vec2) IsZero() bool {
	return math.Abs(v.X) <= Epsilon && math.Abs(v.Y) <= Epsilon
}

// IsFinite reports whether every component is finite.
func (v *Vec2) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) &&
		!math.IsInf(v.Y, 0) && !math.IsNaN(v.Y)
}

// Equals reports whether v and other differ by at most epsilon per
// component.
func (v *Vec2) Equals(other *Vec2, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon
}

// ExactEquals reports whether v and other are bitwise equal.
func (v *Vec2) ExactEquals(other *Vec2) bool {
	return *v == *other
}

// ToFloat32Array writes the components as float32 into dst starting at
// offset. This is the only place precision narrows.
func (v *Vec2) ToFloat32Array(dst []float32, offset int) {
	dst[offset+0] = float32(v.X)
	dst[offset+1] = float32(v.Y)
}

// FromFloat32Array reads the components from src starting at offset.
func (v *Vec2) FromFloat32Array(src []float32, offset int) *Vec2 {
	v.X = float64(src[offset+0])
	v.Y = float64(src[offset+1])
	return v
}

// Vec2Add writes a + b into out. out may alias a or b.
func Vec2Add(out, a, b *Vec2) *Vec2 {
	out.X = a.X + b.X
	out.Y = a.Y + b.Y
	return out
}

// Vec2Sub writes a - b into out. out may alias a or b.
func Vec2Sub(out, a, b *Vec2) *Vec2 {
	out.X = a.X - b.X
	out.Y = a.Y - b.Y
	return out
}

// Vec2Mul writes the componentwise product of a and b into out.
func Vec2Mul(out, a, b *Vec2) *Vec2 {
	out.X = a.X * b.X
	out.Y = a.Y * b.Y
	return out
}

// Vec2Div writes the componentwise quotient of a and b into out.
func Vec2Div(out, a, b *Vec2) *Vec2 {
	out.X = a.X / b.X
	out.Y = a.Y / b.Y
	return out
}

// Vec2Scale writes a * s into out.
func Vec2Scale(out, a *Vec2, s float64) *Vec2 {
	out.X = a.X * s
	out.Y = a.Y * s
	return out
}

// Vec2Lerp writes the interpolation from a to b by t into out.
func Vec2Lerp(out, a, b *Vec2, t float64) *Vec2 {
	out.X = a.X + (b.X-a.X)*t
	out.Y = a.Y + (b.Y-a.Y)*t
	return out
}

// Vec2Min writes the componentwise minimum of a and b into out.
func Vec2Min(out, a, b *Vec2) *Vec2 {
	out.X = math.Min(a.X, b.X)
	out.Y = math.Min(a.Y, b.Y)
	return out
}

// Vec2Max writes the componentwise maximum of a and b into out.
func Vec2Max(out, a, b *Vec2) *Vec2 {
	out.X = math.Max(a.X, b.X)
	out.Y = math.Max(a.Y, b.Y)
	return out
}

// Vec2Normalize writes a normalized copy of a into out. Near-zero vectors
// are copied unchanged.
func Vec2Normalize(out, a *Vec2) *Vec2 {
	return out.Copy(a).Normalize()
}

// Vec2Reflect writes v reflected off the unit normal into out. out may
// alias v or normal.
func Vec2Reflect(out, v, normal *Vec2) *Vec2 {
	d := 2 * v.Dot(normal)
	nx, ny := normal.X, normal.Y
	out.X = v.X - d*nx
	out.Y = v.Y - d*ny
	return out
}
