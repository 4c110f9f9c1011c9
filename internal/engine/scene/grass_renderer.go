package scene

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meadow/internal/engine/frame"
	"github.com/Faultbox/meadow/internal/engine/grass"
	"github.com/Faultbox/meadow/internal/engine/noise"
	"github.com/Faultbox/meadow/internal/engine/scene/shaders"
	"github.com/Faultbox/meadow/internal/engine/shader"
	"github.com/Faultbox/meadow/internal/engine/shading"
	"github.com/Faultbox/meadow/internal/engine/sway"
	"github.com/Faultbox/meadow/pkg/math"
)

// Vertex attribute locations of the grass program.
const (
	attribPosition    = 0
	attribBladeHeight = 1
	attribDisplaced   = 2
)

// Uniform names of the grass program.
const (
	uViewProj        = "uViewProj"
	uTime            = "uTime"
	uWindSpeed       = "uWindSpeed"
	uAmplitude       = "uAmplitude"
	uSampleScale     = "uSampleScale"
	uHostSway        = "uHostSway"
	uVariant         = "uVariant"
	uBottomColor     = "uBottomColor"
	uTipColor        = "uTipColor"
	uLightDir        = "uLightDir"
	uSkyIntensity    = "uSkyIntensity"
	uSkyColor        = "uSkyColor"
	uGroundColor     = "uGroundColor"
	uFront           = "uFront"
	uBack            = "uBack"
	uDiffuseExponent = "uDiffuseExponent"
	uBaseRange       = "uBaseRange"
)

// GrassRenderer draws a grass mesh with wind sway evaluated per frame.
type GrassRenderer struct {
	program *shader.Program

	Sway    sway.Model
	Shading shading.Model

	vao          uint32
	positionVBO  uint32
	heightVBO    uint32
	displacedVBO uint32
	ebo          uint32
	indexCount   int32

	mesh      *grass.Mesh
	hostSway  bool
	displaced []float32
}

// NeedsHostSway reports whether src must be evaluated on the CPU. Only the
// hash noise has a GLSL counterpart.
func NeedsHostSway(src noise.Source) bool {
	switch src.(type) {
	case noise.Hash, *noise.Hash:
		return false
	default:
		return true
	}
}

// variantIndex maps a shading variant to the uVariant value.
func variantIndex(v shading.Variant) int32 {
	if v == shading.VariantSimple {
		return 1
	}
	return 0
}

// NewGrassRenderer compiles the grass program.
func NewGrassRenderer(sw sway.Model, sh shading.Model) (*GrassRenderer, error) {
	program, err := shader.NewProgram(shaders.GrassVertexShader, shaders.GrassFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("grass shader: %w", err)
	}
	return &GrassRenderer{
		program: program,
		Sway:    sw,
		Shading: sh,
	}, nil
}

// LoadMesh uploads m, replacing any previous mesh.
func (gr *GrassRenderer) LoadMesh(m *grass.Mesh) error {
	if m == nil || len(m.Indices) == 0 {
		return fmt.Errorf("grass renderer: empty mesh")
	}
	gr.clearMesh()

	gr.mesh = m
	gr.hostSway = NeedsHostSway(gr.Sway.Noise)
	gr.indexCount = int32(len(m.Indices))

	gl.GenVertexArrays(1, &gr.vao)
	gl.BindVertexArray(gr.vao)

	// Position (location 0)
	gl.GenBuffers(1, &gr.positionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gr.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*4, unsafe.Pointer(&m.Positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(attribPosition)

	// Blade height (location 1)
	gl.GenBuffers(1, &gr.heightVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gr.heightVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.BladeHeights)*4, unsafe.Pointer(&m.BladeHeights[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(attribBladeHeight, 1, gl.FLOAT, false, 4, 0)
	gl.EnableVertexAttribArray(attribBladeHeight)

	// Displaced position (location 2), streamed each frame
	if gr.hostSway {
		gr.displaced = make([]float32, len(m.Positions))
		copy(gr.displaced, m.Positions)
		gl.GenBuffers(1, &gr.displacedVBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, gr.displacedVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(gr.displaced)*4, unsafe.Pointer(&gr.displaced[0]), gl.STREAM_DRAW)
		gl.VertexAttribPointerWithOffset(attribDisplaced, 3, gl.FLOAT, false, 3*4, 0)
		gl.EnableVertexAttribArray(attribDisplaced)
	}

	// EBO
	gl.GenBuffers(1, &gr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return nil
}

// Render draws the field for one frame.
func (gr *GrassRenderer) Render(ctx context.Context, viewProj math.Mat4, p frame.Params) error {
	if gr.vao == 0 {
		return nil
	}

	if gr.hostSway {
		if err := gr.Sway.DisplaceMesh(ctx, gr.mesh.Positions, gr.mesh.BladeHeights, p.Time, gr.displaced, nil); err != nil {
			return fmt.Errorf("grass sway: %w", err)
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, gr.displacedVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(gr.displaced)*4, unsafe.Pointer(&gr.displaced[0]))
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	}

	gr.program.Use()
	pr := gr.program

	gl.UniformMatrix4fv(pr.Uniform(uViewProj), 1, false, viewProj.Ptr())
	gl.Uniform1f(pr.Uniform(uTime), p.Time)
	gl.Uniform1f(pr.Uniform(uWindSpeed), gr.Sway.WindSpeed)
	gl.Uniform1f(pr.Uniform(uAmplitude), gr.Sway.Amplitude)
	gl.Uniform1f(pr.Uniform(uSampleScale), gr.Sway.SampleScale)
	gl.Uniform1i(pr.Uniform(uHostSway), boolToInt(gr.hostSway))

	sh := gr.Shading
	gl.Uniform1i(pr.Uniform(uVariant), variantIndex(sh.Variant))
	gl.Uniform4fv(pr.Uniform(uBottomColor), 1, &sh.Bottom[0])
	gl.Uniform4fv(pr.Uniform(uTipColor), 1, &sh.Tip[0])
	gl.Uniform3f(pr.Uniform(uFront), sh.Front.Ambient, sh.Front.DiffuseWeight, sh.Front.SkyWeight)
	gl.Uniform3f(pr.Uniform(uBack), sh.Back.Ambient, sh.Back.DiffuseWeight, sh.Back.SkyWeight)
	gl.Uniform1f(pr.Uniform(uDiffuseExponent), sh.DiffuseExponent)
	gl.Uniform2f(pr.Uniform(uBaseRange), sh.BaseMin, sh.BaseMax)

	gl.Uniform3f(pr.Uniform(uLightDir), p.LightDirection.X, p.LightDirection.Y, p.LightDirection.Z)
	gl.Uniform1f(pr.Uniform(uSkyIntensity), p.SkyIntensity)
	gl.Uniform3f(pr.Uniform(uSkyColor), p.SkyColor.X, p.SkyColor.Y, p.SkyColor.Z)
	gl.Uniform3f(pr.Uniform(uGroundColor), p.GroundColor.X, p.GroundColor.Y, p.GroundColor.Z)

	// Both faces of a blade are visible.
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(gr.vao)
	gl.DrawElements(gl.TRIANGLES, gr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return nil
}

func (gr *GrassRenderer) clearMesh() {
	for _, buf := range []*uint32{&gr.positionVBO, &gr.heightVBO, &gr.displacedVBO, &gr.ebo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if gr.vao != 0 {
		gl.DeleteVertexArrays(1, &gr.vao)
		gr.vao = 0
	}
	gr.mesh = nil
	gr.displaced = nil
	gr.indexCount = 0
}

// Destroy releases all resources.
func (gr *GrassRenderer) Destroy() {
	gr.clearMesh()
	if gr.program != nil {
		gr.program.Delete()
	}
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
