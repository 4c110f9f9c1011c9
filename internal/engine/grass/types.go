// Package grass builds the static blade mesh of a grass field.
package grass

import (
	"errors"
	"fmt"
)

// Params holds generation-time field parameters.
type Params struct {
	BladeCount int
	Segments   int     // quads per blade, base to tip
	PatchWidth float32 // extent along X
	PatchDepth float32 // extent along Z
	HeightMin  float32
	HeightMax  float32
	WidthMin   float32 // blade width at the base
	WidthMax   float32
}

// DefaultParams returns the reference 25x25 field of 50000 blades.
func DefaultParams() Params {
	return Params{
		BladeCount: 50000,
		Segments:   10,
		PatchWidth: 25,
		PatchDepth: 25,
		HeightMin:  0.7,
		HeightMax:  1.3,
		WidthMin:   0.10,
		WidthMax:   0.12,
	}
}

// VerticesPerBlade returns 2 * (Segments + 1).
func (p Params) VerticesPerBlade() int {
	return 2 * (p.Segments + 1)
}

// IndicesPerBlade returns 6 * Segments.
func (p Params) IndicesPerBlade() int {
	return 6 * p.Segments
}

// ErrInvalidParams is matched by every *ConfigError.
var ErrInvalidParams = errors.New("invalid grass parameters")

// ConfigError reports a rejected field parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("grass: %s %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidParams) hold.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidParams
}

// Blade is one generated placement record.
type Blade struct {
	BaseX  float32 `csv:"base_x"`
	BaseZ  float32 `csv:"base_z"`
	Height float32 `csv:"height"`
	Width  float32 `csv:"width"`
}

// Bounds holds the axis-aligned bounding box of the undisplaced mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Mesh holds the field geometry ready for GPU upload.
type Mesh struct {
	Params       Params
	Blades       []Blade
	Positions    []float32 // Flat array: x,y,z per vertex
	BladeHeights []float32 // One per vertex, equal to the owning blade's height
	Indices      []uint32  // Triangle list
	Bounds       Bounds
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.BladeHeights)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// BladeVertexRange returns the half-open vertex index range owned by blade i.
func (m *Mesh) BladeVertexRange(i int) (start, end int) {
	per := m.Params.VerticesPerBlade()
	return i * per, (i + 1) * per
}
