package export

import (
	"context"
	"errors"

	"github.com/Faultbox/meadow/internal/engine/frame"
	"github.com/Faultbox/meadow/internal/engine/grass"
	"github.com/Faultbox/meadow/internal/engine/shading"
	"github.com/Faultbox/meadow/internal/engine/sway"
)

// VertexSample is one displaced and shaded vertex of a frame.
type VertexSample struct {
	Blade    int     `csv:"blade"`
	Vertex   int     `csv:"vertex"`
	X        float32 `csv:"x"`
	Y        float32 `csv:"y"`
	Z        float32 `csv:"z"`
	Offset   float32 `csv:"offset"`
	Gradient float32 `csv:"gradient"`
	R        float32 `csv:"r"`
	G        float32 `csv:"g"`
	B        float32 `csv:"b"`
}

// Frame is a mesh displaced for one set of frame parameters.
type Frame struct {
	Mesh      *grass.Mesh
	Params    frame.Params
	Positions []float32 // displaced, x,y,z per vertex
	Gradients []float32 // one per vertex
}

// Offset returns the sway x offset of vertex v.
func (f *Frame) Offset(v int) float32 {
	return f.Positions[v*3] - f.Mesh.Positions[v*3]
}

// Displace runs the sway model over every vertex of m.
func Displace(ctx context.Context, m *grass.Mesh, sw sway.Model, p frame.Params) (*Frame, error) {
	if m == nil {
		return nil, errors.New("export: nil mesh")
	}
	f := &Frame{
		Mesh:      m,
		Params:    p,
		Positions: make([]float32, len(m.Positions)),
		Gradients: make([]float32, m.VertexCount()),
	}
	if err := sw.DisplaceMesh(ctx, m.Positions, m.BladeHeights, p.Time, f.Positions, f.Gradients); err != nil {
		return nil, err
	}
	return f, nil
}

// Samples shades the front face of every vertex of every stride-th blade.
// A stride below 1 is treated as 1.
func (f *Frame) Samples(sh shading.Model, stride int) []VertexSample {
	stride = max(stride, 1)
	var out []VertexSample
	for b := 0; b < len(f.Mesh.Blades); b += stride {
		start, end := f.Mesh.BladeVertexRange(b)
		for v := start; v < end; v++ {
			off := f.Offset(v)
			c := sh.Shade(shading.Fragment{
				Gradient:    f.Gradients[v],
				FrontFacing: true,
				Offset:      off,
			}, f.Params)
			out = append(out, VertexSample{
				Blade:    b,
				Vertex:   v,
				X:        f.Positions[v*3],
				Y:        f.Positions[v*3+1],
				Z:        f.Positions[v*3+2],
				Offset:   off,
				Gradient: f.Gradients[v],
				R:        c[0],
				G:        c[1],
				B:        c[2],
			})
		}
	}
	return out
}
