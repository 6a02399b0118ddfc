package vmath

import (
	"math"
	"testing"
)

func TestTransformDefaults(t *testing.T) {
	tr := NewTransform()
	if !vec3Near(&tr.Position, 0, 0, 0, testTol) {
		t.Errorf("default position: got %+v", &tr.Position)
	}
	if !tr.Rotation.Equals(NewQuatIdentity(), testTol) {
		t.Errorf("default rotation: got %+v", &tr.Rotation)
	}
	if !vec3Near(&tr.Scale, 1, 1, 1, testTol) {
		t.Errorf("default scale: got %+v", &tr.Scale)
	}
	if !tr.Matrix().Equals(NewMat4(), testTol) {
		t.Errorf("default matrix should be identity, got %v", tr.Matrix())
	}
}

func TestTransformMatrixCaching(t *testing.T) {
	tr := NewTransform()
	tr.Matrix()
	if tr.IsDirty() {
		t.Error("matrix should be clean after Matrix()")
	}

	tr.SetPosition(1, 2, 3)
	if !tr.IsDirty() {
		t.Error("SetPosition should mark the matrix dirty")
	}

	m := tr.Matrix()
	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Errorf("rebuilt matrix translation: got (%f, %f, %f)", m[12], m[13], m[14])
	}
	if tr.IsDirty() {
		t.Error("matrix should be clean after rebuild")
	}
}

func TestTransformMatrixMatchesTRS(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(3, -1, 2)
	tr.Rotation.SetFromEuler(0.3, 0.7, -0.4)
	tr.SetScale(2, 0.5, 1.5)

	// Closed form must equal T * R * S built from separate matrices.
	var trans, rot, scale Mat4
	trans.FromTranslation(&tr.Position)
	tr.Rotation.ToMat4(&rot)
	scale.FromScaling(&tr.Scale)

	want := trans.Multiply(&rot).Multiply(&scale)
	if !tr.Matrix().Equals(want, testLooseTol) {
		t.Errorf("closed-form matrix disagrees with T*R*S:\n got %v\nwant %v", tr.Matrix(), want)
	}
}

func TestTransformPoint(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(10, 0, 0)
	tr.Rotation.SetFromAxisAngle(NewVec3(0, 0, 1), HalfPi)
	tr.SetScale(2, 2, 2)

	// Scale, then rotate, then translate: (1,0,0) -> (2,0,0) -> (0,2,0) -> (10,2,0).
	var p Vec3
	tr.TransformPoint(&p, NewVec3(1, 0, 0))
	if !vec3Near(&p, 10, 2, 0, testLooseTol) {
		t.Errorf("TransformPoint: got %+v, want (10, 2, 0)", &p)
	}

	// Must agree with the matrix path.
	var viaMatrix Vec3
	tr.Matrix().TransformPoint(&viaMatrix, NewVec3(1, 0, 0))
	if !p.Equals(&viaMatrix, testLooseTol) {
		t.Errorf("TransformPoint disagrees with Matrix(): %+v vs %+v", &p, &viaMatrix)
	}
}

func TestTransformDirection(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(100, 100, 100)
	tr.SetScale(5, 5, 5)
	tr.Rotation.SetFromAxisAngle(NewVec3(0, 1, 0), HalfPi)

	var d Vec3
	tr.TransformDirection(&d, NewVec3(1, 0, 0))
	if !vec3Near(&d, 0, 0, -1, testLooseTol) {
		t.Errorf("TransformDirection should rotate only, got %+v", &d)
	}
}

func TestTransformComposeTranslations(t *testing.T) {
	parent := NewTransform().SetPosition(10, 0, 0)
	child := NewTransform().SetPosition(5, 0, 0)

	parent.Compose(child)
	if !vec3Near(&parent.Position, 15, 0, 0, testTol) {
		t.Errorf("composed position: got %+v, want (15, 0, 0)", &parent.Position)
	}
}

func TestTransformComposeRotated(t *testing.T) {
	parent := NewTransform().SetPosition(10, 0, 0)
	parent.Rotation.SetFromAxisAngle(NewVec3(0, 0, 1), HalfPi)

	child := NewTransform().SetPosition(1, 0, 0)

	var world Transform
	world.Rotation.Identity()
	TransformCompose(&world, parent, child)

	// The child offset rotates into the parent frame.
	if !vec3Near(&world.Position, 10, 1, 0, testLooseTol) {
		t.Errorf("composed position: got %+v, want (10, 1, 0)", &world.Position)
	}
}

func TestTransformComposeMatchesMatrix(t *testing.T) {
	parent := NewTransform().SetPosition(1, 2, 3).SetScaleUniform(2)
	parent.Rotation.SetFromEuler(0.2, -0.5, 0.9)
	child := NewTransform().SetPosition(-4, 0, 1).SetScaleUniform(0.5)
	child.Rotation.SetFromEuler(-0.3, 0.1, 0.6)

	var composed Transform
	composed.Rotation.Identity()
	TransformCompose(&composed, parent, child)

	want := Mat4Multiply(NewMat4(), parent.Matrix(), child.Matrix())
	if !composed.Matrix().Equals(want, testLooseTol) {
		t.Errorf("composed matrix disagrees with matrix product:\n got %v\nwant %v", composed.Matrix(), want)
	}
}

func TestTransformComposeAliasing(t *testing.T) {
	parent := NewTransform().SetPosition(10, 0, 0)
	child := NewTransform().SetPosition(5, 0, 0)

	var want Transform
	want.Rotation.Identity()
	TransformCompose(&want, parent, child)

	TransformCompose(parent, parent, child)
	if !parent.Equals(&want, testTol) {
		t.Errorf("TransformCompose with out == parent: got %+v, want %+v", parent, &want)
	}
}

func TestTransformInvertRoundTrip(t *testing.T) {
	tr := NewTransform().SetPosition(3, -2, 1).SetScaleUniform(2)
	tr.Rotation.SetFromEuler(0.5, -0.3, 0.8)

	inv := tr.Clone().Invert()

	p := NewVec3(1.5, 2.5, -0.5)
	var world, back Vec3
	tr.TransformPoint(&world, p)
	inv.TransformPoint(&back, &world)

	if !back.Equals(p, testLooseTol) {
		t.Errorf("invert round trip: got %+v, want %+v", &back, p)
	}
}

func TestTransformInvertZeroScale(t *testing.T) {
	// The reciprocal scale is deliberately unguarded, so a zero component
	// produces Inf rather than a silent fallback.
	tr := NewTransform().SetPosition(1, 2, 3).SetScale(0, 1, 1)
	tr.Invert()

	if !math.IsInf(tr.Scale.X, 1) {
		t.Errorf("inverted zero scale should be +Inf, got %f", tr.Scale.X)
	}
	if tr.Position.IsFinite() {
		t.Errorf("position should absorb the Inf scale, got %+v", &tr.Position)
	}
}

func TestTransformRotate(t *testing.T) {
	tr := NewTransform()
	tr.RotateAxisAngle(NewVec3(0, 0, 1), HalfPi/2)
	tr.RotateAxisAngle(NewVec3(0, 0, 1), HalfPi/2)

	var p Vec3
	tr.TransformPoint(&p, NewVec3(1, 0, 0))
	if !vec3Near(&p, 0, 1, 0, testLooseTol) {
		t.Errorf("two 45 degree rotations: got %+v, want (0, 1, 0)", &p)
	}
}

func TestTransformLerp(t *testing.T) {
	a := NewTransform().SetPosition(0, 0, 0)
	b := NewTransform().SetPosition(10, 0, 0).SetScaleUniform(3)
	b.Rotation.SetFromAxisAngle(NewVec3(0, 0, 1), HalfPi)

	a.Lerp(b, 0.5)
	if !vec3Near(&a.Position, 5, 0, 0, testTol) {
		t.Errorf("lerped position: got %+v, want (5, 0, 0)", &a.Position)
	}
	if !vec3Near(&a.Scale, 2, 2, 2, testTol) {
		t.Errorf("lerped scale: got %+v, want (2, 2, 2)", &a.Scale)
	}

	want := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 0, 1), HalfPi/2)
	if !sameRotation(&a.Rotation, want, testLooseTol) {
		t.Errorf("lerped rotation: got %+v, want %+v", &a.Rotation, want)
	}
}

func TestTransformCopyEquals(t *testing.T) {
	a := NewTransform().SetPosition(1, 2, 3).SetScale(4, 5, 6)
	a.Rotation.SetFromEuler(0.1, 0.2, 0.3)

	b := NewTransform().Copy(a)
	if !b.Equals(a, testTol) {
		t.Errorf("copied transform should equal source")
	}

	b.SetPosition(9, 9, 9)
	if b.Equals(a, testTol) {
		t.Error("mutated copy should not equal source")
	}
}
