package camera

import (
	"testing"

	"github.com/Faultbox/meadow/pkg/math"
)

func near(a, b float32) bool {
	d := a - b
	return d > -1e-4 && d < 1e-4
}

func TestPositionDistance(t *testing.T) {
	c := NewOrbitCamera()
	d := c.Position().Sub(c.Target).Length()
	if !near(d, c.Distance) {
		t.Errorf("camera distance = %v, want %v", d, c.Distance)
	}
	if c.Position().Z <= 0 {
		t.Errorf("default camera should sit on +Z, got %v", c.Position())
	}
}

func TestTargetProjectsToCenter(t *testing.T) {
	c := NewOrbitCamera()
	ndc, ok := c.ViewProjection(1280, 720).Project(c.Target)
	if !ok {
		t.Fatal("target not in front of camera")
	}
	if !near(ndc.X, 0) || !near(ndc.Y, 0) {
		t.Errorf("target projects to %v, want center", ndc)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch = %v, want max %v", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch = %v, want min %v", c.RotationX, c.MinPitch)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want min %v", c.Distance, c.MinDistance)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds([3]float32{-10, 0, -5}, [3]float32{10, 2, 5})
	if c.Target != (math.Vec3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("target = %v, want (0,1,0)", c.Target)
	}
	if !near(c.Distance, 16) {
		t.Errorf("distance = %v, want 16", c.Distance)
	}
}
