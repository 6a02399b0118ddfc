package vmath

// Transform is a position, rotation and scale with a lazily built local
// matrix. Mutate it through the setter methods so the cached matrix is
// marked stale; writing the exported fields directly leaves the cache as
// it was until the next setter call.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3

	matrix Mat4
	dirty  bool
}

// NewTransform returns an identity transform.
func NewTransform() *Transform {
	t := &Transform{}
	t.Rotation.Identity()
	t.Scale.Set(1, 1, 1)
	t.matrix.Identity()
	return t
}

// NewTransformFrom returns a transform with the given components.
func NewTransformFrom(position *Vec3, rotation *Quat, scale *Vec3) *Transform {
	t := NewTransform()
	return t.Set(position, rotation, scale)
}

// Set sets all three components at once.
func (t *Transform) Set(position *Vec3, rotation *Quat, scale *Vec3) *Transform {
	t.Position = *position
	t.Rotation = *rotation
	t.Scale = *scale
	t.dirty = true
	return t
}

// SetPosition replaces the position.
func (t *Transform) SetPosition(x, y, z float64) *Transform {
	t.Position.Set(x, y, z)
	t.dirty = true
	return t
}

// Translate offsets the position by the given vector.
func (t *Transform) Translate(offset *Vec3) *Transform {
	t.Position.Add(offset)
	t.dirty = true
	return t
}

// SetRotation replaces the rotation.
func (t *Transform) SetRotation(rotation *Quat) *Transform {
	t.Rotation = *rotation
	t.dirty = true
	return t
}

// Rotate applies an additional rotation on top of the current one, so the
// new rotation happens in the transform's local frame last.
func (t *Transform) Rotate(rotation *Quat) *Transform {
	t.Rotation.Multiply(rotation)
	t.dirty = true
	return t
}

// RotateAxisAngle applies an additional rotation about the given unit axis.
func (t *Transform) RotateAxisAngle(axis *Vec3, angle float64) *Transform {
	var q Quat
	q.SetFromAxisAngle(axis, angle)
	return t.Rotate(&q)
}

// SetScale replaces the scale.
func (t *Transform) SetScale(x, y, z float64) *Transform {
	t.Scale.Set(x, y, z)
	t.dirty = true
	return t
}

// SetScaleUniform replaces the scale with s on all three axes.
func (t *Transform) SetScaleUniform(s float64) *Transform {
	return t.SetScale(s, s, s)
}

// ScaleBy multiplies the scale componentwise.
func (t *Transform) ScaleBy(factor *Vec3) *Transform {
	t.Scale.Mul(factor)
	t.dirty = true
	return t
}

// IsDirty reports whether the cached matrix is stale.
func (t *Transform) IsDirty() bool {
	return t.dirty
}

// Matrix returns the local matrix, rebuilding it in closed form from
// position, rotation and scale when stale. The returned pointer is the
// live cache; callers that hold it across further mutations must copy.
func (t *Transform) Matrix() *Mat4 {
	if !t.dirty {
		return &t.matrix
	}

	x, y, z, w := t.Rotation.X, t.Rotation.Y, t.Rotation.Z, t.Rotation.W
	sx, sy, sz := t.Scale.X, t.Scale.Y, t.Scale.Z

	xx := x * x
	xy := x * y
	xz := x * z
	xw := x * w
	yy := y * y
	yz := y * z
	yw := y * w
	zz := z * z
	zw := z * w

	t.matrix = Mat4{
		(1 - 2*(yy+zz)) * sx, 2 * (xy + zw) * sx, 2 * (xz - yw) * sx, 0,
		2 * (xy - zw) * sy, (1 - 2*(xx+zz)) * sy, 2 * (yz + xw) * sy, 0,
		2 * (xz + yw) * sz, 2 * (yz - xw) * sz, (1 - 2*(xx+yy)) * sz, 0,
		t.Position.X, t.Position.Y, t.Position.Z, 1,
	}
	t.dirty = false
	return &t.matrix
}

// Compose combines t with a child transform so that t becomes the world
// transform of the child: t = t * child.
func (t *Transform) Compose(child *Transform) *Transform {
	return TransformCompose(t, t, child)
}

// TransformCompose writes parent * child into out, so applying out is the
// same as applying child first and parent second. out may alias parent or
// child. Non-uniform parent scale combined with child rotation introduces
// shear that a position/rotation/scale triple cannot represent; the scale
// is combined componentwise and the shear is dropped.
func TransformCompose(out, parent, child *Transform) *Transform {
	pos := parent.Position
	rot := parent.Rotation
	scl := parent.Scale

	var scaled Vec3
	Vec3Mul(&scaled, &child.Position, &scl)
	rot.TransformVec3(&scaled, &scaled)

	Vec3Add(&out.Position, &pos, &scaled)
	QuatMultiply(&out.Rotation, &rot, &child.Rotation)
	Vec3Mul(&out.Scale, &scl, &child.Scale)
	out.dirty = true
	return out
}

// Invert replaces t with its inverse. The scale is inverted by reciprocal
// without a degeneracy guard, so a zero scale component produces Inf that
// propagates through the inverted position.
func (t *Transform) Invert() *Transform {
	invScale := Vec3{X: 1 / t.Scale.X, Y: 1 / t.Scale.Y, Z: 1 / t.Scale.Z}

	t.Rotation.Invert()

	p := t.Position
	p.Negate()
	t.Rotation.TransformVec3(&p, &p)
	p.Mul(&invScale)

	t.Position = p
	t.Scale = invScale
	t.dirty = true
	return t
}

// TransformPoint writes p transformed by t into out, applying scale, then
// rotation, then translation. out may alias p.
func (t *Transform) TransformPoint(out, p *Vec3) *Vec3 {
	Vec3Mul(out, p, &t.Scale)
	t.Rotation.TransformVec3(out, out)
	return out.Add(&t.Position)
}

// TransformDirection writes dir rotated by t into out, ignoring scale and
// translation. out may alias dir.
func (t *Transform) TransformDirection(out, dir *Vec3) *Vec3 {
	return t.Rotation.TransformVec3(out, dir)
}

// Lerp interpolates t toward other by x: position and scale linearly,
// rotation by slerp.
func (t *Transform) Lerp(other *Transform, x float64) *Transform {
	t.Position.Lerp(&other.Position, x)
	t.Rotation.Slerp(&other.Rotation, x)
	t.Scale.Lerp(&other.Scale, x)
	t.dirty = true
	return t
}

// Copy copies other's components into t. The cached matrix is not copied.
func (t *Transform) Copy(other *Transform) *Transform {
	t.Position = other.Position
	t.Rotation = other.Rotation
	t.Scale = other.Scale
	t.dirty = true
	return t
}

// Clone returns a newly allocated copy of t.
func (t *Transform) Clone() *Transform {
	c := NewTransform()
	return c.Copy(t)
}

// Equals reports whether the components of t and other differ by at most
// epsilon each. The cached matrices are not compared.
func (t *Transform) Equals(other *Transform, epsilon float64) bool {
	return t.Position.Equals(&other.Position, epsilon) &&
		t.Rotation.Equals(&other.Rotation, epsilon) &&
		t.Scale.Equals(&other.Scale, epsilon)
}
