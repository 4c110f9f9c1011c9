// Package scene renders the grass field seen through an orbit camera.
package scene

import (
	"context"
	"fmt"

	"github.com/Faultbox/meadow/internal/engine/camera"
	"github.com/Faultbox/meadow/internal/engine/frame"
	"github.com/Faultbox/meadow/internal/engine/grass"
	"github.com/Faultbox/meadow/internal/engine/shading"
	"github.com/Faultbox/meadow/internal/engine/sway"
)

// Config contains scene configuration options.
type Config struct {
	Width  int
	Height int
}

// Scene owns the camera and the grass renderer.
type Scene struct {
	config Config

	Camera *camera.OrbitCamera
	grass  *GrassRenderer
	bounds grass.Bounds
}

// New creates a scene. Requires a current OpenGL context.
func New(cfg Config, sw sway.Model, sh shading.Model) (*Scene, error) {
	gr, err := NewGrassRenderer(sw, sh)
	if err != nil {
		return nil, fmt.Errorf("creating grass renderer: %w", err)
	}
	return &Scene{
		config: cfg,
		Camera: camera.NewOrbitCamera(),
		grass:  gr,
	}, nil
}

// LoadField uploads the field mesh.
func (s *Scene) LoadField(m *grass.Mesh) error {
	if err := s.grass.LoadMesh(m); err != nil {
		return err
	}
	s.bounds = m.Bounds
	return nil
}

// FitCamera centers the orbit camera on the loaded field.
func (s *Scene) FitCamera() {
	s.Camera.FitToBounds(s.bounds.Min, s.bounds.Max)
}

// HostSway reports whether sway runs on the CPU.
func (s *Scene) HostSway() bool {
	return s.grass.hostSway
}

// Resize updates the projection aspect.
func (s *Scene) Resize(width, height int) {
	s.config.Width = width
	s.config.Height = height
}

// Render draws the field with the frame's parameters.
func (s *Scene) Render(ctx context.Context, p frame.Params) error {
	viewProj := s.Camera.ViewProjection(s.config.Width, s.config.Height)
	return s.grass.Render(ctx, viewProj, p)
}

// Destroy releases GPU resources.
func (s *Scene) Destroy() {
	if s.grass != nil {
		s.grass.Destroy()
	}
}
