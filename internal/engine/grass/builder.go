package grass

import (
	"context"
	gomath "math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meadow/pkg/math"
)

// RandSource supplies uniform samples in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// NewRand returns a PCG source seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Validate rejects parameter sets that cannot produce a mesh.
func (p Params) Validate() error {
	switch {
	case p.BladeCount < 1:
		return &ConfigError{Field: "blade count", Reason: "must be at least 1"}
	case p.Segments < 1:
		return &ConfigError{Field: "segments", Reason: "must be at least 1"}
	case uint64(p.BladeCount) > gomath.MaxUint32:
		return &ConfigError{Field: "blade count", Reason: "exceeds the 32-bit index range"}
	case uint64(p.Segments) > gomath.MaxUint32/2-1:
		return &ConfigError{Field: "segments", Reason: "exceeds the 32-bit index range"}
	case uint64(p.BladeCount)*2*(uint64(p.Segments)+1) > gomath.MaxUint32:
		return &ConfigError{Field: "blade count", Reason: "exceeds the 32-bit index range"}
	}

	for _, f := range []struct {
		name string
		v    float32
	}{
		{"patch width", p.PatchWidth},
		{"patch depth", p.PatchDepth},
		{"height min", p.HeightMin},
		{"height max", p.HeightMax},
		{"width min", p.WidthMin},
		{"width max", p.WidthMax},
	} {
		if !math.IsFinite(f.v) {
			return &ConfigError{Field: f.name, Reason: "must be finite"}
		}
	}

	switch {
	case p.PatchWidth < 0:
		return &ConfigError{Field: "patch width", Reason: "must not be negative"}
	case p.PatchDepth < 0:
		return &ConfigError{Field: "patch depth", Reason: "must not be negative"}
	case p.HeightMin <= 0:
		return &ConfigError{Field: "height min", Reason: "must be positive"}
	case p.HeightMin > p.HeightMax:
		return &ConfigError{Field: "height range", Reason: "min exceeds max"}
	case p.WidthMin < 0:
		return &ConfigError{Field: "width min", Reason: "must not be negative"}
	case p.WidthMin > p.WidthMax:
		return &ConfigError{Field: "width range", Reason: "min exceeds max"}
	}
	return nil
}

// Build generates the field mesh. rng is consumed in blade order: base x,
// base z, height, width.
func Build(params Params, rng RandSource) (*Mesh, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	m := newMesh(params, sampleBlades(params, rng))
	for i := range m.Blades {
		m.expandBlade(i)
	}
	return m, nil
}

// BuildParallel is Build with geometry expansion spread over workers.
// Sampling stays sequential, so the output equals Build for the same rng
// state. workers <= 0 uses GOMAXPROCS.
func BuildParallel(ctx context.Context, params Params, rng RandSource, workers int) (*Mesh, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	m := newMesh(params, sampleBlades(params, rng))
	chunk := (len(m.Blades) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(m.Blades); start += chunk {
		end := min(start+chunk, len(m.Blades))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				m.expandBlade(i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

func sampleBlades(p Params, rng RandSource) []Blade {
	blades := make([]Blade, p.BladeCount)
	for i := range blades {
		b := &blades[i]
		b.BaseX = centered(rng, p.PatchWidth)
		b.BaseZ = centered(rng, p.PatchDepth)
		b.Height = uniform(rng, p.HeightMin, p.HeightMax)
		b.Width = uniform(rng, p.WidthMin, p.WidthMax)
	}
	return blades
}

// uniform samples [lo, hi] in float64 so rounding never leaves the range.
func uniform(rng RandSource, lo, hi float32) float32 {
	return float32(float64(lo) + rng.Float64()*(float64(hi)-float64(lo)))
}

// centered samples [-extent/2, extent/2].
func centered(rng RandSource, extent float32) float32 {
	return float32((rng.Float64() - 0.5) * float64(extent))
}

// newMesh allocates the buffers and computes bounds; geometry is filled by
// expandBlade.
func newMesh(p Params, blades []Blade) *Mesh {
	vertexCount := len(blades) * p.VerticesPerBlade()
	m := &Mesh{
		Params:       p,
		Blades:       blades,
		Positions:    make([]float32, vertexCount*3),
		BladeHeights: make([]float32, vertexCount),
		Indices:      make([]uint32, len(blades)*p.IndicesPerBlade()),
		Bounds: Bounds{
			Min: [3]float32{1e10, 0, 1e10},
			Max: [3]float32{-1e10, 0, -1e10},
		},
	}
	for _, b := range blades {
		half := b.Width / 2
		m.Bounds.Min[0] = min(m.Bounds.Min[0], b.BaseX-half)
		m.Bounds.Max[0] = max(m.Bounds.Max[0], b.BaseX+half)
		m.Bounds.Max[1] = max(m.Bounds.Max[1], b.Height)
		m.Bounds.Min[2] = min(m.Bounds.Min[2], b.BaseZ)
		m.Bounds.Max[2] = max(m.Bounds.Max[2], b.BaseZ)
	}
	return m
}

// expandBlade writes the rings and triangles of blade i into its own
// contiguous slice of the mesh buffers.
func (m *Mesh) expandBlade(i int) {
	b := m.Blades[i]
	segments := m.Params.Segments
	first := i * m.Params.VerticesPerBlade()

	v := first
	for j := 0; j <= segments; j++ {
		t := float32(j) / float32(segments)
		y := t * b.Height
		w := b.Width * (1 - t) / 2

		// Left then right edge of the ring.
		m.setVertex(v, b.BaseX-w, y, b.BaseZ, b.Height)
		m.setVertex(v+1, b.BaseX+w, y, b.BaseZ, b.Height)
		v += 2
	}

	k := i * m.Params.IndicesPerBlade()
	for j := 0; j < segments; j++ {
		idx := uint32(first + j*2)
		copy(m.Indices[k:k+6], []uint32{
			idx, idx + 1, idx + 2,
			idx + 1, idx + 3, idx + 2,
		})
		k += 6
	}
}

func (m *Mesh) setVertex(v int, x, y, z, height float32) {
	m.Positions[v*3] = x
	m.Positions[v*3+1] = y
	m.Positions[v*3+2] = z
	m.BladeHeights[v] = height
}
