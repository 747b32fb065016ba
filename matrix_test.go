package curve3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const halfPi = float32(math.Pi / 2)

func TestMatrix3_Rotations(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix3
		in     Vec3
		expect Vec3
	}{
		{"identity", Identity3(), V3(1, 2, 3), V3(1, 2, 3)},
		{"x 90deg y->z", RotateX(halfPi), V3(0, 1, 0), V3(0, 0, 1)},
		{"y 90deg z->x", RotateY(halfPi), V3(0, 0, 1), V3(1, 0, 0)},
		{"z 90deg x->y", RotateZ(halfPi), V3(1, 0, 0), V3(0, 1, 0)},
		{"axis z matches RotateZ", RotateAxis(V3(0, 0, 5), halfPi), V3(1, 0, 0), V3(0, 1, 0)},
		{"axis x matches RotateX", RotateAxis(V3(2, 0, 0), halfPi), V3(0, 1, 0), V3(0, 0, 1)},
		{"zero axis is identity", RotateAxis(Vec3{}, 1), V3(1, 2, 3), V3(1, 2, 3)},
		{"scale", Scale3(2, 3, 4), V3(1, 1, 1), V3(2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformVec(tt.in)
			if !got.Approx(tt.expect, 1e-6) {
				t.Errorf("TransformVec(%v) = %v, want %v", tt.in, got, tt.expect)
			}
		})
	}
}

func TestMatrix3_RotateAxisDiagonal(t *testing.T) {
	// A third of a turn about (1,1,1) cycles the basis vectors.
	m := RotateAxis(V3(1, 1, 1), float32(2*math.Pi/3))
	if got := m.TransformVec(V3(1, 0, 0)); !got.Approx(V3(0, 1, 0), 1e-5) {
		t.Errorf("x -> %v, want (0, 1, 0)", got)
	}
	if got := m.TransformVec(V3(0, 1, 0)); !got.Approx(V3(0, 0, 1), 1e-5) {
		t.Errorf("y -> %v, want (0, 0, 1)", got)
	}
}

func TestMatrix3_Multiply(t *testing.T) {
	a := RotateZ(halfPi)
	b := RotateX(halfPi)
	v := V3(0, 1, 0)

	// (a*b)v == a(b v)
	got := a.Multiply(b).TransformVec(v)
	want := a.TransformVec(b.TransformVec(v))
	if !got.Approx(want, 1e-6) {
		t.Errorf("composition = %v, want %v", got, want)
	}

	if !Identity3().Multiply(a).TransformVec(v).Approx(a.TransformVec(v), 1e-6) {
		t.Error("identity * a != a")
	}
}

func TestMatrix3_TransposeInvertsRotation(t *testing.T) {
	m := RotateAxis(V3(1, 2, 3), 0.7)
	v := V3(4, -1, 2)
	back := m.Transpose().TransformVec(m.TransformVec(v))
	if !back.Approx(v, 1e-5) {
		t.Errorf("transpose round trip = %v, want %v", back, v)
	}
}

func TestMatrix3_Determinant(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix3
		expect float32
	}{
		{"identity", Identity3(), 1},
		{"rotation", RotateAxis(V3(1, -1, 2), 1.3), 1},
		{"scale", Scale3(2, 3, 4), 24},
		{"mirror", Scale3(-1, 1, 1), -1},
		{"zero", Matrix3{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); math.Abs(float64(got-tt.expect)) > 1e-5 {
				t.Errorf("Determinant() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestMatrix3_IsRotation(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
		want bool
	}{
		{"identity", Identity3(), true},
		{"rotate x", RotateX(0.3), true},
		{"arbitrary axis", RotateAxis(V3(3, 1, -2), 2.1), true},
		{"uniform scale", Scale3(2, 2, 2), false},
		{"mirror", Scale3(1, -1, 1), false},
		{"zero", Matrix3{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsRotation(1e-5); got != tt.want {
				t.Errorf("IsRotation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix3_IsIdentity(t *testing.T) {
	if !Identity3().IsIdentity() {
		t.Error("Identity3().IsIdentity() = false")
	}
	if RotateY(0.1).IsIdentity() {
		t.Error("RotateY(0.1).IsIdentity() = true")
	}
}

func TestMgl_RoundTrip(t *testing.T) {
	v := V3(1, -2, 3)
	if got := FromMgl(v.Mgl()); got != v {
		t.Errorf("vector round trip = %v, want %v", got, v)
	}

	m := RotateAxis(V3(1, 2, 3), 0.9)
	if got := Matrix3FromMgl(m.Mgl()); got != m {
		t.Errorf("matrix round trip = %+v, want %+v", got, m)
	}
}

func TestMgl_RotationAgrees(t *testing.T) {
	angle := float32(0.8)
	ours := RotateY(angle)
	theirs := Matrix3FromMgl(mgl32.Rotate3DY(angle))

	v := V3(1, 2, 3)
	if got, want := theirs.TransformVec(v), ours.TransformVec(v); !got.Approx(want, 1e-5) {
		t.Errorf("mgl32 rotation = %v, want %v", got, want)
	}

	mglResult := FromMgl(mgl32.Rotate3DY(angle).Mul3x1(v.Mgl()))
	if !mglResult.Approx(ours.TransformVec(v), 1e-5) {
		t.Errorf("mgl32 Mul3x1 = %v, want %v", mglResult, ours.TransformVec(v))
	}
}
