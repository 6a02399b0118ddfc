package vmath

import "math"

// Quat is a quaternion representing a rotation. Components are X, Y, Z
// with W as the scalar part. Operations do not renormalize their results;
// after long multiplication chains callers normalize explicitly to correct
// drift.
type Quat struct {
	X, Y, Z, W float64
}

// NewQuat returns a new quaternion with the given components.
func NewQuat(x, y, z, w float64) *Quat {
	return &Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatIdentity returns a new identity quaternion (no rotation).
func NewQuatIdentity() *Quat {
	return &Quat{W: 1}
}

// Set sets all four components.
func (q *Quat) Set(x, y, z, w float64) *Quat {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
	return q
}

// Identity resets q to the identity rotation.
func (q *Quat) Identity() *Quat {
	return q.Set(0, 0, 0, 1)
}

// Copy copies other into q.
func (q *Quat) Copy(other *Quat) *Quat {
	*q = *other
	return q
}

// Clone returns a newly allocated copy of q.
func (q *Quat) Clone() *Quat {
	c := *q
	return &c
}

// Length returns the magnitude of q.
func (q *Quat) Length() float64 {
	return math.Sqrt(q.LengthSq())
}

// LengthSq returns the squared magnitude of q.
func (q *Quat) LengthSq() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Dot returns the dot product.
func (q *Quat) Dot(other *Quat) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Normalize scales q to unit length. Quaternions of length <= Epsilon
// are left unchanged.
func (q *Quat) Normalize() *Quat {
	l := q.Length()
	if l <= Epsilon {
		return q
	}
	inv := 1 / l
	q.X *= inv
	q.Y *= inv
	q.Z *= inv
	q.W *= inv
	return q
}

// Conjugate negates the vector part in place.
func (q *Quat) Conjugate() *Quat {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
	return q
}

// Invert replaces q with its inverse (conjugate divided by the squared
// length). Near-zero quaternions are left unchanged.
func (q *Quat) Invert() *Quat {
	lsq := q.LengthSq()
	if lsq <= Epsilon {
		return q
	}
	inv := 1 / lsq
	q.X = -q.X * inv
	q.Y = -q.Y * inv
	q.Z = -q.Z * inv
	q.W = q.W * inv
	return q
}

// Multiply sets q = q * other (Hamilton product): the combined rotation
// applies other first, then q.
func (q *Quat) Multiply(other *Quat) *Quat {
	return QuatMultiply(q, q, other)
}

// Premultiply sets q = other * q.
func (q *Quat) Premultiply(other *Quat) *Quat {
	return QuatMultiply(q, other, q)
}

// QuatMultiply writes the Hamilton product a * b into out. All source
// components are read before out is written, so out may alias a or b.
func QuatMultiply(out, a, b *Quat) *Quat {
	ax, ay, az, aw := a.X, a.Y, a.Z, a.W
	bx, by, bz, bw := b.X, b.Y, b.Z, b.W
	out.X = aw*bx + ax*bw + ay*bz - az*by
	out.Y = aw*by - ax*bz + ay*bw + az*bx
	out.Z = aw*bz + ax*by - ay*bx + az*bw
	out.W = aw*bw - ax*bx - ay*by - az*bz
	return out
}

// SetFromAxisAngle sets q from an axis-angle rotation. axis must be
// normalized, angle is in radians.
func (q *Quat) SetFromAxisAngle(axis *Vec3, angle float64) *Quat {
	half := angle / 2
	s := math.Sin(half)
	return q.Set(axis.X*s, axis.Y*s, axis.Z*s, math.Cos(half))
}

// SetFromEuler sets q from intrinsic XYZ Euler angles in radians, combined
// via half-angle products.
func (q *Quat) SetFromEuler(x, y, z float64) *Quat {
	c1 := math.Cos(x / 2)
	s1 := math.Sin(x / 2)
	c2 := math.Cos(y / 2)
	s2 := math.Sin(y / 2)
	c3 := math.Cos(z / 2)
	s3 := math.Sin(z / 2)

	return q.Set(
		s1*c2*c3+c1*s2*s3,
		c1*s2*c3-s1*c2*s3,
		c1*c2*s3+s1*s2*c3,
		c1*c2*c3-s1*s2*s3,
	)
}

// SetFromRotationMatrix sets q from the rotation part of m, which must be
// a pure rotation (orthonormal, no scale). Branches on the largest of the
// trace and the diagonal elements to avoid precision loss near trace -1.
func (q *Quat) SetFromRotationMatrix(m *Mat4) *Quat {
	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]
	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		return q.Set((m32-m23)*s, (m13-m31)*s, (m21-m12)*s, 0.25/s)
	case m11 > m22 && m11 > m33:
		s := 2 * math.Sqrt(1+m11-m22-m33)
		return q.Set(0.25*s, (m12+m21)/s, (m13+m31)/s, (m32-m23)/s)
	case m22 > m33:
		s := 2 * math.Sqrt(1+m22-m11-m33)
		return q.Set((m12+m21)/s, 0.25*s, (m23+m32)/s, (m13-m31)/s)
	default:
		s := 2 * math.Sqrt(1+m33-m11-m22)
		return q.Set((m13+m31)/s, (m23+m32)/s, 0.25*s, (m21-m12)/s)
	}
}

// ToEuler writes the intrinsic XYZ Euler angles of q into out, inverting
// SetFromEuler. At the gimbal-lock singularity (middle axis saturated near
// ±90°) the third angle is zeroed and the output is no longer uniquely
// invertible.
func (q *Quat) ToEuler(out *Vec3) *Vec3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W

	m11 := 1 - 2*(y*y+z*z)
	m12 := 2 * (x*y - w*z)
	m13 := 2 * (x*z + w*y)
	m22 := 1 - 2*(x*x+z*z)
	m23 := 2 * (y*z - w*x)
	m32 := 2 * (y*z + w*x)
	m33 := 1 - 2*(x*x+y*y)

	ey := math.Asin(Clamp(m13, -1, 1))
	if math.Abs(m13) < 1-Epsilon {
		return out.Set(math.Atan2(-m23, m33), ey, math.Atan2(-m12, m11))
	}
	return out.Set(math.Atan2(m32, m22), ey, 0)
}

// GetAxisAngle writes the rotation axis into outAxis and returns the
// rotation angle in radians. The identity rotation reports the X axis
// with angle 0.
func (q *Quat) GetAxisAngle(outAxis *Vec3) float64 {
	angle := 2 * math.Acos(Clamp(q.W, -1, 1))
	s := math.Sqrt(1 - q.W*q.W)
	if s <= Epsilon {
		outAxis.Set(1, 0, 0)
		return angle
	}
	outAxis.Set(q.X/s, q.Y/s, q.Z/s)
	return angle
}

// ToMat4 writes the rotation matrix of q into out. q is normalized into a
// local copy first; q itself is not modified.
func (q *Quat) ToMat4(out *Mat4) *Mat4 {
	n := *q
	n.Normalize()

	xx := n.X * n.X
	xy := n.X * n.Y
	xz := n.X * n.Z
	xw := n.X * n.W
	yy := n.Y * n.Y
	yz := n.Y * n.Z
	yw := n.Y * n.W
	zz := n.Z * n.Z
	zw := n.Z * n.W

	*out = Mat4{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
	return out
}

// TransformVec3 writes v rotated by q into out, using the expanded
// sandwich product q * (v,0) * q⁻¹ without building a matrix. out may
// alias v.
func (q *Quat) TransformVec3(out, v *Vec3) *Vec3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	vx, vy, vz := v.X, v.Y, v.Z

	ix := w*vx + y*vz - z*vy
	iy := w*vy + z*vx - x*vz
	iz := w*vz + x*vy - y*vx
	iw := -x*vx - y*vy - z*vz

	return out.Set(
		ix*w-iw*x-iy*z+iz*y,
		iy*w-iw*y-iz*x+ix*z,
		iz*w-iw*z-ix*y+iy*x,
	)
}

// Slerp interpolates q toward other by t along the shortest arc.
func (q *Quat) Slerp(other *Quat, t float64) *Quat {
	return QuatSlerp(q, q, other, t)
}

// QuatSlerp writes the shortest-path spherical interpolation from a to b
// by t into out. The endpoints are returned directly for t <= 0 and
// t >= 1 without evaluating any trigonometry; the sign of b is flipped
// when the dot product is negative so interpolation never takes the long
// way around; and when the arc is too small for a stable division the
// result falls back to normalized linear interpolation. out may alias a
// or b.
func QuatSlerp(out, a, b *Quat, t float64) *Quat {
	if t <= 0 {
		return out.Copy(a)
	}
	if t >= 1 {
		return out.Copy(b)
	}

	ax, ay, az, aw := a.X, a.Y, a.Z, a.W
	bx, by, bz, bw := b.X, b.Y, b.Z, b.W

	dot := ax*bx + ay*by + az*bz + aw*bw
	if dot < 0 {
		bx, by, bz, bw = -bx, -by, -bz, -bw
		dot = -dot
	}

	sinSq := 1 - dot*dot
	if sinSq < 0.001 {
		out.Set(
			ax+(bx-ax)*t,
			ay+(by-ay)*t,
			az+(bz-az)*t,
			aw+(bw-aw)*t,
		)
		return out.Normalize()
	}

	sinTheta := math.Sqrt(sinSq)
	theta := math.Atan2(sinTheta, dot)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta

	return out.Set(
		ax*wa+bx*wb,
		ay*wa+by*wb,
		az*wa+bz*wb,
		aw*wa+bw*wb,
	)
}

// Equals reports whether q and other differ by at most epsilon per
// component.
func (q *Quat) Equals(other *Quat, epsilon float64) bool {
	return math.Abs(q.X-other.X) <= epsilon &&
		math.Abs(q.Y-other.Y) <= epsilon &&
		math.Abs(q.Z-other.Z) <= epsilon &&
		math.Abs(q.W-other.W) <= epsilon
}

// ExactEquals reports whether q and other are bitwise equal.
func (q *Quat) ExactEquals(other *Quat) bool {
	return *q == *other
}

// ToFloat32Array writes the components as float32 into dst starting at
// offset.
func (q *Quat) ToFloat32Array(dst []float32, offset int) {
	dst[offset+0] = float32(q.X)
	dst[offset+1] = float32(q.Y)
	dst[offset+2] = float32(q.Z)
	dst[offset+3] = float32(q.W)
}

// FromFloat32Array reads the components from src starting at offset.
func (q *Quat) FromFloat32Array(src []float32, offset int) *Quat {
	q.X = float64(src[offset+0])
	q.Y = float64(src[offset+1])
	q.Z = float64(src[offset+2])
	q.W = float64(src[offset+3])
	return q
}
