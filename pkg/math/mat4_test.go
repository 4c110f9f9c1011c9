package math

import (
	"math"
	"testing"
)

func TestMulVec4Translation(t *testing.T) {
	// column-major translation by (10, 20, 30)
	m := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		10, 20, 30, 1,
	}
	got := m.MulVec4(Vec4{1, 2, 3, 1})
	want := Vec4{11, 22, 33, 1}
	if got != want {
		t.Errorf("MulVec4: got %v, want %v", got, want)
	}
}

func TestMulComposesViewProjection(t *testing.T) {
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	proj := Perspective(1, 1, 0.1, 100)
	vp := proj.Mul(view)

	p := Vec4{0.5, -0.25, 1, 1}
	got := vp.MulVec4(p)
	want := proj.MulVec4(view.MulVec4(p))
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Errorf("component %d: (P*V)p = %v, P(Vp) = %v", i, got[i], want[i])
		}
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestProjectCenter(t *testing.T) {
	view := LookAt(Vec3{0, 1, 20}, Vec3{0, 1, 0}, Vec3{0, 1, 0})
	proj := Perspective(float32(math.Pi/4), 16.0/9.0, 0.1, 1000)
	vp := proj.Mul(view)

	ndc, ok := vp.Project(Vec3{0, 1, 0})
	if !ok {
		t.Fatal("target should be in front of the eye")
	}
	if abs(ndc.X) > 1e-4 || abs(ndc.Y) > 1e-4 {
		t.Errorf("target should project to screen center, got %v", ndc)
	}
	if ndc.Z <= -1 || ndc.Z >= 1 {
		t.Errorf("depth %f outside clip range", ndc.Z)
	}

	if _, ok := vp.Project(Vec3{0, 1, 40}); ok {
		t.Error("point behind the eye should not project")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
