package vmath

import "testing"

func TestQuatIdentityLaws(t *testing.T) {
	q := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 1, 0), 0.8)
	id := NewQuatIdentity()

	if got := q.Clone().Multiply(id); !got.Equals(q, testTol) {
		t.Errorf("q * identity: got %+v, want %+v", got, q)
	}
	if got := q.Clone().Premultiply(id); !got.Equals(q, testTol) {
		t.Errorf("identity * q: got %+v, want %+v", got, q)
	}
}

func TestQuatMultiplyInverse(t *testing.T) {
	q := NewQuat(0, 0, 0, 0).SetFromEuler(0.3, -0.7, 1.1)
	inv := q.Clone().Invert()

	product := q.Clone().Multiply(inv)
	if !product.Equals(NewQuatIdentity(), testLooseTol) {
		t.Errorf("q * q^-1 should be identity, got %+v", product)
	}
}

func TestQuatInvertZero(t *testing.T) {
	q := NewQuat(0, 0, 0, 0)
	q.Invert()
	if !q.ExactEquals(NewQuat(0, 0, 0, 0)) {
		t.Errorf("inverting a zero quaternion should be a no-op, got %+v", q)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := NewQuat(1, 2, 3, 4)
	q.Normalize()
	if !within(q.Length(), 1, testTol) {
		t.Errorf("Normalize length: got %f, want 1", q.Length())
	}
}

func TestQuatAxisAngleRotation(t *testing.T) {
	// 90 degrees about z takes x to y.
	q := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 0, 1), HalfPi)

	var out Vec3
	q.TransformVec3(&out, NewVec3(1, 0, 0))
	if !vec3Near(&out, 0, 1, 0, testLooseTol) {
		t.Errorf("90 degree z rotation of (1,0,0): got %+v, want (0, 1, 0)", &out)
	}
}

func TestQuatTransformMatchesMatrix(t *testing.T) {
	q := NewQuat(0, 0, 0, 0).SetFromEuler(0.4, 1.2, -0.6)
	v := NewVec3(1.5, -2, 0.5)

	var direct Vec3
	q.TransformVec3(&direct, v)

	var m Mat4
	q.ToMat4(&m)
	var viaMatrix Vec3
	m.TransformPoint(&viaMatrix, v)

	if !direct.Equals(&viaMatrix, testLooseTol) {
		t.Errorf("TransformVec3 disagrees with ToMat4: %+v vs %+v", &direct, &viaMatrix)
	}
}

func TestQuatTransformAliasing(t *testing.T) {
	q := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 0, 1), HalfPi)
	v := NewVec3(1, 0, 0)
	q.TransformVec3(v, v)
	if !vec3Near(v, 0, 1, 0, testLooseTol) {
		t.Errorf("TransformVec3 with out == v: got %+v, want (0, 1, 0)", v)
	}
}

func TestQuatEulerComposition(t *testing.T) {
	// Intrinsic XYZ equals the product qx * qy * qz.
	x, y, z := 0.3, -0.9, 1.7

	composed := NewQuat(0, 0, 0, 0)
	composed.SetFromEuler(x, y, z)

	qx := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(1, 0, 0), x)
	qy := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 1, 0), y)
	qz := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 0, 1), z)
	manual := qx.Multiply(qy).Multiply(qz)

	if !sameRotation(composed, manual, testLooseTol) {
		t.Errorf("SetFromEuler disagrees with qx*qy*qz: %+v vs %+v", composed, manual)
	}
}

func TestQuatEulerRoundTrip(t *testing.T) {
	cases := [][3]float64{
		{0, 0, 0},
		{0.5, 0.3, -0.2},
		{-1.2, 0.8, 2.5},
		{0.1, -1.4, 0.9},
	}
	for _, c := range cases {
		q := NewQuat(0, 0, 0, 0).SetFromEuler(c[0], c[1], c[2])

		var e Vec3
		q.ToEuler(&e)
		back := NewQuat(0, 0, 0, 0).SetFromEuler(e.X, e.Y, e.Z)

		if !sameRotation(q, back, testLooseTol) {
			t.Errorf("euler round trip for %v: got %+v, want %+v", c, back, q)
		}
	}
}

func TestQuatEulerGimbalLock(t *testing.T) {
	// With the middle axis at 90 degrees only the combined first and third
	// rotation is recoverable. The round trip must still encode the same
	// rotation and report a zero third angle.
	q := NewQuat(0, 0, 0, 0).SetFromEuler(0.4, HalfPi, 0.3)

	var e Vec3
	q.ToEuler(&e)
	if e.Z != 0 {
		t.Errorf("gimbal lock should zero the third angle, got %f", e.Z)
	}

	back := NewQuat(0, 0, 0, 0).SetFromEuler(e.X, e.Y, e.Z)
	if !sameRotation(q, back, testLooseTol) {
		t.Errorf("gimbal round trip: got %+v, want %+v", back, q)
	}
}

func TestQuatMatrixRoundTrip(t *testing.T) {
	cases := [][3]float64{
		{0, 0, 0},
		{0.5, 0.3, -0.2},
		{3.0, 0.1, 0.1},  // near trace < 0, x branch
		{0.1, 3.0, 0.1},  // y branch
		{0.1, 0.1, 3.0},  // z branch
		{-2.8, 1.4, 0.7},
	}
	for _, c := range cases {
		q := NewQuat(0, 0, 0, 0).SetFromEuler(c[0], c[1], c[2])

		var m Mat4
		q.ToMat4(&m)
		back := NewQuat(0, 0, 0, 0).SetFromRotationMatrix(&m)

		if !sameRotation(q, back, testLooseTol) {
			t.Errorf("matrix round trip for %v: got %+v, want %+v", c, back, q)
		}
	}
}

func TestQuatGetAxisAngle(t *testing.T) {
	axis := NewVec3(1, 2, -1).Normalize()
	q := NewQuat(0, 0, 0, 0).SetFromAxisAngle(axis, 1.3)

	var out Vec3
	angle := q.GetAxisAngle(&out)
	if !within(angle, 1.3, testLooseTol) {
		t.Errorf("GetAxisAngle angle: got %f, want 1.3", angle)
	}
	if !out.Equals(axis, testLooseTol) {
		t.Errorf("GetAxisAngle axis: got %+v, want %+v", &out, axis)
	}

	// Identity reports the x axis with angle 0.
	angle = NewQuatIdentity().GetAxisAngle(&out)
	if angle != 0 || !vec3Near(&out, 1, 0, 0, testTol) {
		t.Errorf("identity axis-angle: got %+v angle %f", &out, angle)
	}
}

func TestQuatSlerpEndpoints(t *testing.T) {
	a := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 0, 1), 0.2)
	b := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 0, 1), 1.8)

	var out Quat
	QuatSlerp(&out, a, b, 0)
	if !out.ExactEquals(a) {
		t.Errorf("slerp t=0: got %+v, want %+v", &out, a)
	}
	QuatSlerp(&out, a, b, 1)
	if !out.ExactEquals(b) {
		t.Errorf("slerp t=1: got %+v, want %+v", &out, b)
	}
	QuatSlerp(&out, a, b, -0.5)
	if !out.ExactEquals(a) {
		t.Errorf("slerp t<0 should clamp to a, got %+v", &out)
	}
}

func TestQuatSlerpMidpoint(t *testing.T) {
	a := NewQuatIdentity()
	b := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 0, 1), HalfPi)

	var out Quat
	QuatSlerp(&out, a, b, 0.5)

	want := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 0, 1), HalfPi/2)
	if !sameRotation(&out, want, testLooseTol) {
		t.Errorf("slerp midpoint: got %+v, want %+v", &out, want)
	}
	if !within(out.Length(), 1, testLooseTol) {
		t.Errorf("slerp result should be unit length, got %f", out.Length())
	}
}

func TestQuatSlerpShortestPath(t *testing.T) {
	// b and -b encode the same rotation; slerp must take the short arc.
	a := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 1, 0), 0.4)
	b := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 1, 0), 1.0)
	negB := NewQuat(-b.X, -b.Y, -b.Z, -b.W)

	var viaB, viaNegB Quat
	QuatSlerp(&viaB, a, b, 0.5)
	QuatSlerp(&viaNegB, a, negB, 0.5)

	if !sameRotation(&viaB, &viaNegB, testLooseTol) {
		t.Errorf("slerp toward -b took the long way: %+v vs %+v", &viaB, &viaNegB)
	}
}

func TestQuatSlerpNearlyIdentical(t *testing.T) {
	a := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 0, 1), 0.5)
	b := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 0, 1), 0.5+1e-8)

	var out Quat
	QuatSlerp(&out, a, b, 0.5)
	if !sameRotation(&out, a, testLooseTol) {
		t.Errorf("slerp between nearly identical quats: got %+v, want %+v", &out, a)
	}
	if !within(out.Length(), 1, testLooseTol) {
		t.Errorf("lerp fallback should renormalize, got length %f", out.Length())
	}
}

func TestQuatSlerpAliasing(t *testing.T) {
	a := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(1, 0, 0), 0.3)
	b := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(1, 0, 0), 1.5)
	want := QuatSlerp(&Quat{}, a, b, 0.5)

	a.Slerp(b, 0.5)
	if !a.Equals(want, testTol) {
		t.Errorf("Slerp with receiver as out: got %+v, want %+v", a, want)
	}
}

func TestQuatFromMat4Composition(t *testing.T) {
	// Converting a composed rotation matrix recovers the composed quat.
	qa := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(0, 1, 0), 0.7)
	qb := NewQuat(0, 0, 0, 0).SetFromAxisAngle(NewVec3(1, 0, 0), -0.4)
	composed := qa.Clone().Multiply(qb)

	var ma, mb Mat4
	qa.ToMat4(&ma)
	qb.ToMat4(&mb)
	ma.Multiply(&mb)

	back := NewQuat(0, 0, 0, 0).SetFromRotationMatrix(&ma)
	if !sameRotation(composed, back, testLooseTol) {
		t.Errorf("matrix composition disagrees with quat product: %+v vs %+v", back, composed)
	}
}

func TestQuatFloat32RoundTrip(t *testing.T) {
	q := NewQuat(0, 0, 0, 0).SetFromEuler(0.25, 0.5, 0.75)

	buf := make([]float32, 4)
	q.ToFloat32Array(buf, 0)

	var back Quat
	back.FromFloat32Array(buf, 0)
	if !back.Equals(q, 1e-6) {
		t.Errorf("float32 round trip drifted: got %+v, want %+v", &back, q)
	}
}

func TestQuatConjugateOfUnitIsInverse(t *testing.T) {
	q := NewQuat(0, 0, 0, 0).SetFromEuler(0.2, 0.4, 0.6)
	conj := q.Clone().Conjugate()
	inv := q.Clone().Invert()
	if !conj.Equals(inv, testLooseTol) {
		t.Errorf("conjugate of unit quat should equal inverse: %+v vs %+v", conj, inv)
	}
}
