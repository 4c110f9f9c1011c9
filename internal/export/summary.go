// Package export writes grass field data for offline inspection: blade
// placement CSV, sampled frame CSV, summary statistics and a PNG preview.
package export

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Faultbox/meadow/internal/engine/grass"
)

// Stat summarizes one sampled blade attribute.
type Stat struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
}

// Summary describes a built field.
type Summary struct {
	Blades    int
	Vertices  int
	Triangles int
	Height    Stat
	Width     Stat
	Bounds    grass.Bounds
}

// Summarize computes counts and attribute statistics for a mesh.
func Summarize(m *grass.Mesh) Summary {
	heights := make([]float64, len(m.Blades))
	widths := make([]float64, len(m.Blades))
	for i, b := range m.Blades {
		heights[i] = float64(b.Height)
		widths[i] = float64(b.Width)
	}

	return Summary{
		Blades:    len(m.Blades),
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		Height:    describe(heights),
		Width:     describe(widths),
		Bounds:    m.Bounds,
	}
}

// describe sorts x in place.
func describe(x []float64) Stat {
	if len(x) == 0 {
		return Stat{}
	}
	sort.Float64s(x)
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		std = 0
	}
	return Stat{
		Min:    floats.Min(x),
		Max:    floats.Max(x),
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
	}
}
