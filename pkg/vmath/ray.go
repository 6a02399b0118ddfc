package vmath

import "math"

// Ray is a half-line starting at Origin and extending along Direction.
// The constructors and setters normalize Direction, so distances returned
// by the intersection tests are in world units. Every intersection test
// returns the parametric distance to the nearest hit at or in front of
// the origin, or exactly -1 on a miss.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay returns a new ray. direction is normalized; a near-zero
// direction is kept as given and makes every test miss.
func NewRay(origin, direction *Vec3) *Ray {
	r := &Ray{}
	return r.Set(origin, direction)
}

// Set sets the origin and direction, normalizing the direction.
func (r *Ray) Set(origin, direction *Vec3) *Ray {
	r.Origin = *origin
	r.Direction = *direction
	r.Direction.Normalize()
	return r
}

// Copy copies other into r.
func (r *Ray) Copy(other *Ray) *Ray {
	*r = *other
	return r
}

// Clone returns a newly allocated copy of r.
func (r *Ray) Clone() *Ray {
	c := *r
	return &c
}

// At writes the point at parametric distance t along r into out.
func (r *Ray) At(t float64, out *Vec3) *Vec3 {
	return out.Set(
		r.Origin.X+r.Direction.X*t,
		r.Origin.Y+r.Direction.Y*t,
		r.Origin.Z+r.Direction.Z*t,
	)
}

// ClosestPointToPoint writes the point on r closest to p into out. The
// projection is clamped to the origin for points behind the ray.
func (r *Ray) ClosestPointToPoint(p *Vec3, out *Vec3) *Vec3 {
	var d Vec3
	Vec3Sub(&d, p, &r.Origin)
	t := d.Dot(&r.Direction)
	if t < 0 {
		t = 0
	}
	return r.At(t, out)
}

// DistanceToPoint returns the distance from p to the closest point on r.
func (r *Ray) DistanceToPoint(p *Vec3) float64 {
	return math.Sqrt(r.DistanceToPointSq(p))
}

// DistanceToPointSq returns the squared distance from p to the closest
// point on r.
func (r *Ray) DistanceToPointSq(p *Vec3) float64 {
	var c Vec3
	r.ClosestPointToPoint(p, &c)
	return c.DistanceToSq(p)
}

// IntersectAABB returns the distance to the nearest intersection with
// box using the slab method, or -1 on a miss. A ray starting inside the
// box hits the exit face. Axis-parallel rays are handled by sending the
// slab bounds to ±Inf when the origin lies inside the slab, and to an
// inverted pair when it does not, which forces a miss.
func (r *Ray) IntersectAABB(box *AABB) float64 {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var o, d, lo, hi float64
		switch axis {
		case 0:
			o, d, lo, hi = r.Origin.X, r.Direction.X, box.Min.X, box.Max.X
		case 1:
			o, d, lo, hi = r.Origin.Y, r.Direction.Y, box.Min.Y, box.Max.Y
		default:
			o, d, lo, hi = r.Origin.Z, r.Direction.Z, box.Min.Z, box.Max.Z
		}

		var t1, t2 float64
		if d != 0 {
			inv := 1 / d
			t1 = (lo - o) * inv
			t2 = (hi - o) * inv
			if t1 > t2 {
				t1, t2 = t2, t1
			}
		} else if o >= lo && o <= hi {
			t1 = math.Inf(-1)
			t2 = math.Inf(1)
		} else {
			// Parallel and outside the slab: empty interval.
			t1 = math.Inf(1)
			t2 = math.Inf(-1)
		}

		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return -1
		}
	}

	if tmin >= 0 {
		return tmin
	}
	if tmax >= 0 {
		return tmax
	}
	return -1
}

// IntersectSphere returns the distance to the nearest intersection with
// the sphere at center with the given radius, or -1 on a miss. A ray
// starting inside the sphere hits the far surface.
func (r *Ray) IntersectSphere(center *Vec3, radius float64) float64 {
	var oc Vec3
	Vec3Sub(&oc, center, &r.Origin)

	b := oc.Dot(&r.Direction)
	c := oc.LengthSq() - radius*radius
	disc := b*b - c
	if disc < 0 {
		return -1
	}

	sq := math.Sqrt(disc)
	t := b - sq
	if t >= 0 {
		return t
	}
	t = b + sq
	if t >= 0 {
		return t
	}
	return -1
}

// IntersectPlane returns the distance to the plane through point with the
// given normal, or -1 when the ray is parallel to the plane or the plane
// lies behind the origin.
func (r *Ray) IntersectPlane(point, normal *Vec3) float64 {
	denom := normal.Dot(&r.Direction)
	if math.Abs(denom) <= Epsilon {
		return -1
	}

	var d Vec3
	Vec3Sub(&d, point, &r.Origin)
	t := d.Dot(normal) / denom
	if t < 0 {
		return -1
	}
	return t
}

// IntersectTriangle returns the distance to the triangle a, b, c using
// the Möller-Trumbore algorithm, or -1 on a miss. Both windings hit;
// degenerate triangles always miss.
func (r *Ray) IntersectTriangle(a, b, c *Vec3) float64 {
	var e1, e2 Vec3
	Vec3Sub(&e1, b, a)
	Vec3Sub(&e2, c, a)

	var p Vec3
	Vec3Cross(&p, &r.Direction, &e2)
	det := e1.Dot(&p)
	if math.Abs(det) <= Epsilon {
		return -1
	}
	invDet := 1 / det

	var s Vec3
	Vec3Sub(&s, &r.Origin, a)
	u := s.Dot(&p) * invDet
	if u < 0 || u > 1 {
		return -1
	}

	var q Vec3
	Vec3Cross(&q, &s, &e1)
	v := r.Direction.Dot(&q) * invDet
	if v < 0 || u+v > 1 {
		return -1
	}

	t := e2.Dot(&q) * invDet
	if t < 0 {
		return -1
	}
	return t
}

// ApplyMat4 transforms r by m: the origin as a point, the direction as a
// direction renormalized afterward so parametric distances stay in world
// units.
func (r *Ray) ApplyMat4(m *Mat4) *Ray {
	m.TransformPoint(&r.Origin, &r.Origin)
	m.TransformDirection(&r.Direction, &r.Direction)
	r.Direction.Normalize()
	return r
}

// Equals reports whether the origins and directions of r and other differ
// by at most epsilon per component.
func (r *Ray) Equals(other *Ray, epsilon float64) bool {
	return r.Origin.Equals(&other.Origin, epsilon) &&
		r.Direction.Equals(&other.Direction, epsilon)
}
