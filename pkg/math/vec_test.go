package math

import (
	"math"
	"testing"
)

func TestVec2ScaleAdd(t *testing.T) {
	got := Vec2{1, -2}.Scale(0.5).Add(Vec2{1, 1})
	want := Vec2{1.5, 0}
	if got != want {
		t.Errorf("Scale/Add = %v, want %v", got, want)
	}
}

func TestVec3NormalizeExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
	}{
		{"tiny", Vec3{1e-25, -1e-25, 0}},
		{"huge", Vec3{3e20, -3e20, 0}},
		{"subnormal", Vec3{0, 0, 1e-40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.in.Normalize()
			if l := n.Length(); l < 0.9999 || l > 1.0001 {
				t.Errorf("Normalize(%v) = %v, length %v", tt.in, n, l)
			}
		})
	}

	n := Vec3{3e20, -3e20, 0}.Normalize()
	if d := n.X - float32(math.Sqrt2/2); d > 1e-6 || d < -1e-6 {
		t.Errorf("huge x component = %v, want ~0.7071", n.X)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", got)
	}
}

func TestVec3Mix(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, 8}
	if got := a.Mix(b, 0.5); got != (Vec3{1, 2, 4}) {
		t.Errorf("Mix(0.5) = %v", got)
	}
	if got := a.Mix(b, 0); got != a {
		t.Errorf("Mix(0) = %v", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("expected finite")
	}
	nan := float32(math.NaN())
	if (Vec3{1, nan, 3}).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	inf := float32(math.Inf(1))
	if (Vec3{inf, 0, 0}).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestFract(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.25, 0.25},
		{-0.25, 0.75},
		{3, 0},
	}
	for _, tt := range tests {
		if got := Fract(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Fract(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := Fract(-1e-20); got >= 1 || got < 0 {
		t.Errorf("Fract(-1e-20) = %v, want [0,1)", got)
	}
}

func TestClampMix(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp out of range")
	}
	if Mix(0.65, 1.0, 1) != 1.0 {
		t.Error("Mix at t=1 should return b")
	}
}

func TestSmoothstep01(t *testing.T) {
	if Smoothstep01(0) != 0 || Smoothstep01(1) != 1 || Smoothstep01(0.5) != 0.5 {
		t.Error("Smoothstep01 endpoints/midpoint incorrect")
	}
}
