// Package camera provides the orbit camera used to look at the grass patch.
package camera

import (
	gomath "math"

	"github.com/Faultbox/meadow/pkg/math"
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from target
	RotationX float32 // Pitch above the horizon (radians)
	RotationY float32 // Yaw around Y (radians), 0 looks from +Z

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Projection
	FovY float32
	Near float32
	Far  float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a camera 20 units from a target one unit above the
// patch center, tilted one radian from vertical.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Target:          math.Vec3{X: 0, Y: 1, Z: 0},
		Distance:        20.0,
		RotationX:       gomath.Pi/2 - 1,
		RotationY:       0.0,
		MinDistance:     2.0,
		MaxDistance:     200.0,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		FovY:            0.8,
		Near:            0.1,
		Far:             1000.0,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Target.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Target, up)
}

// ProjectionMatrix returns the perspective projection for a viewport.
func (c *OrbitCamera) ProjectionMatrix(width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(width, height int) math.Mat4 {
	return c.ProjectionMatrix(width, height).Mul(c.ViewMatrix())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = math.Clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on a box and backs off far enough to see
// its larger horizontal side.
func (c *OrbitCamera) FitToBounds(minB, maxB [3]float32) {
	c.Target = math.Vec3{
		X: (minB[0] + maxB[0]) / 2,
		Y: (minB[1] + maxB[1]) / 2,
		Z: (minB[2] + maxB[2]) / 2,
	}

	size := max(maxB[0]-minB[0], maxB[2]-minB[2])
	c.Distance = math.Clamp(size*0.8, c.MinDistance, c.MaxDistance)
}
