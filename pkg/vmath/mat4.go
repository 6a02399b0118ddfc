package vmath

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Element (row r, column c) lives at flat index 4*c + r:
//
//	[m0 m4 m8  m12]
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float64

// NewMat4 returns a new identity matrix.
func NewMat4() *Mat4 {
	m := &Mat4{}
	return m.Identity()
}

// Identity resets m to the identity matrix.
func (m *Mat4) Identity() *Mat4 {
	*m = Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return m
}

// Set sets all sixteen elements in column-major order, matching the
// internal storage.
func (m *Mat4) Set(e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15 float64) *Mat4 {
	*m = Mat4{e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15}
	return m
}

// Copy copies other into m.
func (m *Mat4) Copy(other *Mat4) *Mat4 {
	*m = *other
	return m
}

// Clone returns a newly allocated copy of m.
func (m *Mat4) Clone() *Mat4 {
	c := *m
	return &c
}

// Equals reports whether m and other differ by at most epsilon per
// element.
func (m *Mat4) Equals(other *Mat4, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-other[i]) > epsilon {
			return false
		}
	}
	return true
}

// ExactEquals reports whether m and other are bitwise equal.
func (m *Mat4) ExactEquals(other *Mat4) bool {
	return *m == *other
}

// Multiply sets m = m * other (column-vector convention: other is applied
// first).
func (m *Mat4) Multiply(other *Mat4) *Mat4 {
	return Mat4Multiply(m, m, other)
}

// Premultiply sets m = other * m.
func (m *Mat4) Premultiply(other *Mat4) *Mat4 {
	return Mat4Multiply(m, other, m)
}

// Mat4Multiply writes a * b into out. Both operands are snapshotted before
// out is written, so out may alias a or b.
func Mat4Multiply(out, a, b *Mat4) *Mat4 {
	ta, tb := *a, *b
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				ta[0*4+row]*tb[col*4+0] +
					ta[1*4+row]*tb[col*4+1] +
					ta[2*4+row]*tb[col*4+2] +
					ta[3*4+row]*tb[col*4+3]
		}
	}
	return out
}

// FromTranslation resets m to a translation matrix.
func (m *Mat4) FromTranslation(v *Vec3) *Mat4 {
	m.Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// FromScaling resets m to a scale matrix.
func (m *Mat4) FromScaling(v *Vec3) *Mat4 {
	m.Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// FromRotationX resets m to a rotation matrix around the X axis.
// angle is in radians.
func (m *Mat4) FromRotationX(angle float64) *Mat4 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	m.Identity()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

// FromRotationY resets m to a rotation matrix around the Y axis.
// angle is in radians.
func (m *Mat4) FromRotationY(angle float64) *Mat4 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	m.Identity()
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

// FromRotationZ resets m to a rotation matrix around the Z axis.
// angle is in radians.
func (m *Mat4) FromRotationZ(angle float64) *Mat4 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	m.Identity()
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	return m
}

// FromAxisAngle resets m to a rotation matrix around an arbitrary axis.
// axis must be normalized, angle is in radians.
func (m *Mat4) FromAxisAngle(axis *Vec3, angle float64) *Mat4 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	*m = Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
	return m
}

// FromQuat resets m to the rotation matrix of q.
func (m *Mat4) FromQuat(q *Quat) *Mat4 {
	return q.ToMat4(m)
}

// Translate right-multiplies m by a translation, moving along the current
// local axes.
func (m *Mat4) Translate(v *Vec3) *Mat4 {
	var t Mat4
	return m.Multiply(t.FromTranslation(v))
}

// Scale right-multiplies m by a scale along the current local axes.
func (m *Mat4) Scale(v *Vec3) *Mat4 {
	var t Mat4
	return m.Multiply(t.FromScaling(v))
}

// RotateX right-multiplies m by a rotation around the local X axis.
func (m *Mat4) RotateX(angle float64) *Mat4 {
	var t Mat4
	return m.Multiply(t.FromRotationX(angle))
}

// RotateY right-multiplies m by a rotation around the local Y axis.
func (m *Mat4) RotateY(angle float64) *Mat4 {
	var t Mat4
	return m.Multiply(t.FromRotationY(angle))
}

// RotateZ right-multiplies m by a rotation around the local Z axis.
func (m *Mat4) RotateZ(angle float64) *Mat4 {
	var t Mat4
	return m.Multiply(t.FromRotationZ(angle))
}

// Rotate right-multiplies m by a rotation around an arbitrary normalized
// axis.
func (m *Mat4) Rotate(axis *Vec3, angle float64) *Mat4 {
	var t Mat4
	return m.Multiply(t.FromAxisAngle(axis, angle))
}

// Transpose swaps rows and columns in place.
func (m *Mat4) Transpose() *Mat4 {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
	return m
}

// Determinant returns the determinant by cofactor expansion along the
// first column.
func (m *Mat4) Determinant() float64 {
	c00 := m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c01 := -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	c02 := m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	c03 := -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	return m[0]*c00 + m[4]*c01 + m[8]*c02 + m[12]*c03
}

// Invert replaces m with its inverse, computed by cofactor expansion for
// a general (not necessarily affine) matrix. When |det| <= Epsilon the
// matrix is left unchanged; callers that need to detect that case check
// Determinant beforehand.
func (m *Mat4) Invert() *Mat4 {
	c00 := m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c01 := -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	c02 := m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	c03 := -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]

	det := m[0]*c00 + m[4]*c01 + m[8]*c02 + m[12]*c03
	if math.Abs(det) <= Epsilon {
		return m
	}

	c10 := -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	c11 := m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	c12 := -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	c13 := m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]

	c20 := m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	c21 := -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	c22 := m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	c23 := -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]

	c30 := -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	c31 := m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	c32 := -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	c33 := m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	invDet := 1 / det
	*m = Mat4{
		c00 * invDet, c01 * invDet, c02 * invDet, c03 * invDet,
		c10 * invDet, c11 * invDet, c12 * invDet, c13 * invDet,
		c20 * invDet, c21 * invDet, c22 * invDet, c23 * invDet,
		c30 * invDet, c31 * invDet, c32 * invDet, c33 * invDet,
	}
	return m
}

// GetTranslation writes the translation column into out.
func (m *Mat4) GetTranslation(out *Vec3) *Vec3 {
	return out.Set(m[12], m[13], m[14])
}

// GetScaling writes the per-column Euclidean norms of the upper-left 3x3
// block into out. Only correct when the rotation part is orthonormal
// (no shear).
func (m *Mat4) GetScaling(out *Vec3) *Vec3 {
	return out.Set(
		math.Sqrt(m[0]*m[0]+m[1]*m[1]+m[2]*m[2]),
		math.Sqrt(m[4]*m[4]+m[5]*m[5]+m[6]*m[6]),
		math.Sqrt(m[8]*m[8]+m[9]*m[9]+m[10]*m[10]),
	)
}

// SetPerspective resets m to a right-handed perspective projection.
// fovY is the vertical field of view in radians, aspect is width/height.
func (m *Mat4) SetPerspective(fovY, aspect, near, far float64) *Mat4 {
	f := 1 / math.Tan(fovY/2)
	nf := 1 / (near - far)

	*m = Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
	return m
}

// SetOrtho resets m to an orthographic projection.
func (m *Mat4) SetOrtho(left, right, bottom, top, near, far float64) *Mat4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	*m = Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
	return m
}

// SetLookAt resets m to a view matrix looking from eye toward target with
// the given up direction. The basis is built by Gram-Schmidt; when an
// intermediate vector has exactly zero length its normalization is
// skipped rather than producing NaN.
func (m *Mat4) SetLookAt(eye, target, up *Vec3) *Mat4 {
	fx := target.X - eye.X
	fy := target.Y - eye.Y
	fz := target.Z - eye.Z
	if l := math.Sqrt(fx*fx + fy*fy + fz*fz); l != 0 {
		fx /= l
		fy /= l
		fz /= l
	}

	// s = f x up
	sx := fy*up.Z - fz*up.Y
	sy := fz*up.X - fx*up.Z
	sz := fx*up.Y - fy*up.X
	if l := math.Sqrt(sx*sx + sy*sy + sz*sz); l != 0 {
		sx /= l
		sy /= l
		sz /= l
	}

	// u = s x f
	ux := sy*fz - sz*fy
	uy := sz*fx - sx*fz
	uz := sx*fy - sy*fx

	*m = Mat4{
		sx, ux, -fx, 0,
		sy, uy, -fy, 0,
		sz, uz, -fz, 0,
		-(sx*eye.X + sy*eye.Y + sz*eye.Z),
		-(ux*eye.X + uy*eye.Y + uz*eye.Z),
		fx*eye.X + fy*eye.Y + fz*eye.Z,
		1,
	}
	return m
}

// TransformPoint writes p transformed by m into out, assuming w = 1 and
// dividing by the resulting w when it is neither 0 nor 1. out may alias p.
func (m *Mat4) TransformPoint(out, p *Vec3) *Vec3 {
	x, y, z := p.X, p.Y, p.Z
	ox := m[0]*x + m[4]*y + m[8]*z + m[12]
	oy := m[1]*x + m[5]*y + m[9]*z + m[13]
	oz := m[2]*x + m[6]*y + m[10]*z + m[14]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w != 0 && w != 1 {
		return out.Set(ox/w, oy/w, oz/w)
	}
	return out.Set(ox, oy, oz)
}

// TransformDirection writes d transformed by the upper-left 3x3 block of
// m into out, ignoring translation. out may alias d.
func (m *Mat4) TransformDirection(out, d *Vec3) *Vec3 {
	x, y, z := d.X, d.Y, d.Z
	return out.Set(
		m[0]*x+m[4]*y+m[8]*z,
		m[1]*x+m[5]*y+m[9]*z,
		m[2]*x+m[6]*y+m[10]*z,
	)
}

// TransformVec4 writes v transformed by m into out. out may alias v.
func (m *Mat4) TransformVec4(out, v *Vec4) *Vec4 {
	x, y, z, w := v.X, v.Y, v.Z, v.W
	return out.Set(
		m[0]*x+m[4]*y+m[8]*z+m[12]*w,
		m[1]*x+m[5]*y+m[9]*z+m[13]*w,
		m[2]*x+m[6]*y+m[10]*z+m[14]*w,
		m[3]*x+m[7]*y+m[11]*z+m[15]*w,
	)
}

// ToFloat32Array writes the sixteen elements as float32 into dst starting
// at offset, in column-major order. This is the GPU upload boundary and
// the only place precision narrows.
func (m *Mat4) ToFloat32Array(dst []float32, offset int) {
	for i, e := range m {
		dst[offset+i] = float32(e)
	}
}

// FromFloat32Array reads sixteen column-major elements from src starting
// at offset.
func (m *Mat4) FromFloat32Array(src []float32, offset int) *Mat4 {
	for i := range m {
		m[i] = float64(src[offset+i])
	}
	return m
}
