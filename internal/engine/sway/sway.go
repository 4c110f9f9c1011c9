// Package sway computes the wind displacement of grass vertices.
//
// The model is evaluated once per vertex per frame. Displacement is never
// baked into the static mesh: callers pass the base position every time.
package sway

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meadow/internal/engine/noise"
	"github.com/Faultbox/meadow/pkg/math"
)

// Reference constants of the wind model.
const (
	DefaultWindSpeed   = 0.6
	DefaultAmplitude   = 0.6
	DefaultSampleScale = 0.5
)

// Model holds the wind parameters.
type Model struct {
	WindSpeed   float32 // noise scroll per second of animation time
	Amplitude   float32 // maximum x offset at the blade tip
	SampleScale float32 // world to noise space scale
	Noise       noise.Source
}

// Default returns the reference model using hash noise.
func Default() Model {
	return Model{
		WindSpeed:   DefaultWindSpeed,
		Amplitude:   DefaultAmplitude,
		SampleScale: DefaultSampleScale,
		Noise:       noise.Hash{},
	}
}

// Result is the output of one vertex evaluation.
type Result struct {
	Position math.Vec3 // displaced position
	Offset   float32   // x displacement applied
	Gradient float32   // height fraction clamped to [0,1], consumed by shading
}

// Sample returns the noise value at a base position and time.
func (m Model) Sample(pos math.Vec3, time float32) float32 {
	drift := time * m.WindSpeed
	p := pos.XZ().Scale(m.SampleScale).Add(math.Vec2{X: drift, Y: drift})
	return float32(m.Noise.Eval(float64(p.X), float64(p.Y)))
}

// Offset is the bend law: n * amplitude * t^2. t is not clamped.
func (m Model) Offset(n, t float32) float32 {
	return n * m.Amplitude * t * t
}

// Displace evaluates the sway of one vertex. A non-positive bladeHeight
// yields no displacement.
func (m Model) Displace(pos math.Vec3, bladeHeight, time float32) Result {
	if bladeHeight <= 0 {
		return Result{Position: pos}
	}
	t := pos.Y / bladeHeight
	off := m.Offset(m.Sample(pos, time), t)

	out := pos
	out.X += off
	return Result{
		Position: out,
		Offset:   off,
		Gradient: math.Clamp(t, 0, 1),
	}
}

// minChunk is the smallest vertex run handed to a worker.
const minChunk = 4096

// DisplaceMesh evaluates every vertex of a flat xyz position buffer.
// positions and outPositions hold 3 floats per vertex, heights and
// outGradients one. outGradients may be nil.
func (m Model) DisplaceMesh(ctx context.Context, positions, heights []float32, time float32, outPositions, outGradients []float32) error {
	if len(positions)%3 != 0 {
		return fmt.Errorf("sway: position buffer length %d not a multiple of 3", len(positions))
	}
	n := len(positions) / 3
	if len(heights) != n {
		return fmt.Errorf("sway: %d heights for %d vertices", len(heights), n)
	}
	if len(outPositions) != len(positions) {
		return fmt.Errorf("sway: output buffer length %d, want %d", len(outPositions), len(positions))
	}
	if outGradients != nil && len(outGradients) != n {
		return fmt.Errorf("sway: gradient buffer length %d, want %d", len(outGradients), n)
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				p := math.Vec3{X: positions[i*3], Y: positions[i*3+1], Z: positions[i*3+2]}
				r := m.Displace(p, heights[i], time)
				outPositions[i*3] = r.Position.X
				outPositions[i*3+1] = r.Position.Y
				outPositions[i*3+2] = r.Position.Z
				if outGradients != nil {
					outGradients[i] = r.Gradient
				}
			}
			return nil
		})
	}
	return g.Wait()
}
