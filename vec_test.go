package curve3d

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3_Creation(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
	}{
		{"zero", 0, 0, 0},
		{"positive", 1, 2, 3},
		{"negative", -1, -2, -3},
		{"fractional", 1.5, 2.5, -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := V3(tt.x, tt.y, tt.z)
			if v.X != tt.x || v.Y != tt.y || v.Z != tt.z {
				t.Errorf("V3(%v, %v, %v) = %v", tt.x, tt.y, tt.z, v)
			}
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	tests := []struct {
		name   string
		got    Vec3
		expect Vec3
	}{
		{"add", a.Add(b), V3(5, -3, 9)},
		{"sub", a.Sub(b), V3(-3, 7, -3)},
		{"mul", a.Mul(2), V3(2, 4, 6)},
		{"mul zero", a.Mul(0), V3(0, 0, 0)},
		{"div", b.Div(2), V3(2, -2.5, 3)},
		{"neg", a.Neg(), V3(-1, -2, -3)},
		{"cross", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"cross anticommutes", V3(0, 1, 0).Cross(V3(1, 0, 0)), V3(0, 0, -1)},
		{"cross parallel", a.Cross(a.Mul(3)), V3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.expect, 1e-6) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVec3_Dot(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec3
		expect float32
	}{
		{"orthogonal", V3(1, 0, 0), V3(0, 1, 0), 0},
		{"parallel", V3(1, 2, 3), V3(1, 2, 3), 14},
		{"opposite", V3(1, 0, 0), V3(-2, 0, 0), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Dot(tt.w); got != tt.expect {
				t.Errorf("%v.Dot(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVec3_Length(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec3
		expect float32
	}{
		{"zero", V3(0, 0, 0), 0},
		{"unit x", V3(1, 0, 0), 1},
		{"3-4-0", V3(3, 4, 0), 5},
		{"2-3-6", V3(2, 3, 6), 7},
		{"negative", V3(-2, -3, -6), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math32.Abs(got-tt.expect) > 1e-6 {
				t.Errorf("%v.Length() = %v, want %v", tt.v, got, tt.expect)
			}
			if got := tt.v.LengthSq(); math32.Abs(got-tt.expect*tt.expect) > 1e-5 {
				t.Errorf("%v.LengthSq() = %v, want %v", tt.v, got, tt.expect*tt.expect)
			}
		})
	}
}

func TestVec3_Distance(t *testing.T) {
	d := V3(1, 1, 1).Distance(V3(3, 4, 7))
	if math32.Abs(d-7) > 1e-6 {
		t.Errorf("Distance = %v, want 7", d)
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := V3(0, 3, 4).Normalize()
	if !n.Approx(V3(0, 0.6, 0.8), 1e-6) {
		t.Errorf("Normalize = %v, want (0, 0.6, 0.8)", n)
	}
	if math32.Abs(n.Length()-1) > 1e-6 {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}

	if z := (Vec3{}).Normalize(); !z.IsZero() {
		t.Errorf("zero.Normalize() = %v, want zero", z)
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, -10, 4)

	tests := []struct {
		name   string
		t      float32
		expect Vec3
	}{
		{"t=0", 0, a},
		{"t=1", 1, b},
		{"t=0.5", 0.5, V3(5, -5, 2)},
		{"extrapolate", 2, V3(20, -20, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Lerp(b, tt.t); !got.Approx(tt.expect, 1e-6) {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}

func TestVec3_IsZero(t *testing.T) {
	if !V3(0, 0, 0).IsZero() {
		t.Error("V3(0,0,0).IsZero() = false")
	}
	if V3(0, 0, 1e-9).IsZero() {
		t.Error("V3(0,0,1e-9).IsZero() = true")
	}
}

func TestVec3_String(t *testing.T) {
	if got := V3(0.75, -6, 0).String(); got != "(0.75, -6, 0)" {
		t.Errorf("String() = %q", got)
	}
}
