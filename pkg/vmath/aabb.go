package vmath

import "math"

// AABB is an axis-aligned bounding box defined by inclusive Min and Max
// corners. The canonical empty box has Min at +Inf and Max at -Inf so
// that expanding it by any point yields a degenerate box at that point.
type AABB struct {
	Min, Max Vec3
}

// NewAABB returns a new box with the given corners.
func NewAABB(min, max *Vec3) *AABB {
	return &AABB{Min: *min, Max: *max}
}

// NewAABBEmpty returns a new canonical empty box.
func NewAABBEmpty() *AABB {
	b := &AABB{}
	return b.SetEmpty()
}

// Set sets both corners.
func (b *AABB) Set(min, max *Vec3) *AABB {
	b.Min = *min
	b.Max = *max
	return b
}

// SetEmpty resets b to the canonical empty box.
func (b *AABB) SetEmpty() *AABB {
	b.Min.Set(math.Inf(1), math.Inf(1), math.Inf(1))
	b.Max.Set(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	return b
}

// IsEmpty reports whether b contains no points, i.e. Max is below Min on
// any axis.
func (b *AABB) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Copy copies other into b.
func (b *AABB) Copy(other *AABB) *AABB {
	*b = *other
	return b
}

// Clone returns a newly allocated copy of b.
func (b *AABB) Clone() *AABB {
	c := *b
	return &c
}

// SetFromPoints sets b to the tightest box containing all points. An
// empty slice yields the canonical empty box.
func (b *AABB) SetFromPoints(points []Vec3) *AABB {
	b.SetEmpty()
	for i := range points {
		b.ExpandByPoint(&points[i])
	}
	return b
}

// ExpandByPoint grows b just enough to contain p.
func (b *AABB) ExpandByPoint(p *Vec3) *AABB {
	b.Min.Min(p)
	b.Max.Max(p)
	return b
}

// ExpandByScalar pushes every face outward by s. Negative s shrinks the
// box and may turn it empty.
func (b *AABB) ExpandByScalar(s float64) *AABB {
	b.Min.SubScalar(s)
	b.Max.AddScalar(s)
	return b
}

// Union grows b to contain other as well.
func (b *AABB) Union(other *AABB) *AABB {
	return AABBUnion(b, b, other)
}

// AABBUnion writes the tightest box containing both a and b into out.
// out may alias a or b. Unioning with an empty box returns the other box.
func AABBUnion(out, a, b *AABB) *AABB {
	Vec3Min(&out.Min, &a.Min, &b.Min)
	Vec3Max(&out.Max, &a.Max, &b.Max)
	return out
}

// Intersect shrinks b to its overlap with other. Disjoint boxes produce
// an empty result.
func (b *AABB) Intersect(other *AABB) *AABB {
	return AABBIntersect(b, b, other)
}

// AABBIntersect writes the overlap of a and b into out. out may alias a
// or b. The result of disjoint inputs is empty but not canonical.
func AABBIntersect(out, a, b *AABB) *AABB {
	Vec3Max(&out.Min, &a.Min, &b.Min)
	Vec3Min(&out.Max, &a.Max, &b.Max)
	return out
}

// Center writes the midpoint of b into out. Meaningless on an empty box.
func (b *AABB) Center(out *Vec3) *Vec3 {
	return out.Set(
		(b.Min.X+b.Max.X)/2,
		(b.Min.Y+b.Max.Y)/2,
		(b.Min.Z+b.Max.Z)/2,
	)
}

// Size writes the edge lengths of b into out.
func (b *AABB) Size(out *Vec3) *Vec3 {
	return Vec3Sub(out, &b.Max, &b.Min)
}

// Extents writes the half edge lengths of b into out.
func (b *AABB) Extents(out *Vec3) *Vec3 {
	return b.Size(out).MulScalar(0.5)
}

// Volume returns the volume of b.
func (b *AABB) Volume() float64 {
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y) * (b.Max.Z - b.Min.Z)
}

// SurfaceArea returns the total face area of b.
func (b *AABB) SurfaceArea() float64 {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z
	return 2 * (dx*dy + dy*dz + dz*dx)
}

// ContainsPoint reports whether p is inside b. Points on a face count as
// inside.
func (b *AABB) ContainsPoint(p *Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsAABB reports whether other lies entirely inside b.
func (b *AABB) ContainsAABB(other *AABB) bool {
	return other.Min.X >= b.Min.X && other.Max.X <= b.Max.X &&
		other.Min.Y >= b.Min.Y && other.Max.Y <= b.Max.Y &&
		other.Min.Z >= b.Min.Z && other.Max.Z <= b.Max.Z
}

// IntersectsAABB reports whether b and other overlap. Touching faces
// count as overlapping.
func (b *AABB) IntersectsAABB(other *AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// ClampPoint writes the point inside b closest to p into out. out may
// alias p.
func (b *AABB) ClampPoint(out, p *Vec3) *Vec3 {
	return out.Set(
		Clamp(p.X, b.Min.X, b.Max.X),
		Clamp(p.Y, b.Min.Y, b.Max.Y),
		Clamp(p.Z, b.Min.Z, b.Max.Z),
	)
}

// DistanceToPoint returns the distance from p to the surface of b, or 0
// when p is inside.
func (b *AABB) DistanceToPoint(p *Vec3) float64 {
	return math.Sqrt(b.DistanceToPointSq(p))
}

// DistanceToPointSq returns the squared distance from p to the surface of
// b, or 0 when p is inside.
func (b *AABB) DistanceToPointSq(p *Vec3) float64 {
	var c Vec3
	b.ClampPoint(&c, p)
	return c.DistanceToSq(p)
}

// ApplyMat4 replaces b with the tightest axis-aligned box around b after
// transforming it by m, computed from the transformed center and the
// absolute rotation of the extents rather than all eight corners. Empty
// boxes are left unchanged.
func (b *AABB) ApplyMat4(m *Mat4) *AABB {
	if b.IsEmpty() {
		return b
	}

	var center, extents Vec3
	b.Center(&center)
	b.Extents(&extents)

	m.TransformPoint(&center, &center)

	ex := extents.X*math.Abs(m[0]) + extents.Y*math.Abs(m[4]) + extents.Z*math.Abs(m[8])
	ey := extents.X*math.Abs(m[1]) + extents.Y*math.Abs(m[5]) + extents.Z*math.Abs(m[9])
	ez := extents.X*math.Abs(m[2]) + extents.Y*math.Abs(m[6]) + extents.Z*math.Abs(m[10])

	b.Min.Set(center.X-ex, center.Y-ey, center.Z-ez)
	b.Max.Set(center.X+ex, center.Y+ey, center.Z+ez)
	return b
}

// Equals reports whether the corners of b and other differ by at most
// epsilon per component.
func (b *AABB) Equals(other *AABB, epsilon float64) bool {
	return b.Min.Equals(&other.Min, epsilon) && b.Max.Equals(&other.Max, epsilon)
}

// ExactEquals reports whether b and other are bitwise equal.
func (b *AABB) ExactEquals(other *AABB) bool {
	return *b == *other
}
