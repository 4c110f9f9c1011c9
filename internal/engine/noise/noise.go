// Package noise provides deterministic 2D noise sources for wind sway.
package noise

import (
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"

	gm "github.com/Faultbox/meadow/pkg/math"
)

// Source samples a 2D noise field. Implementations are pure: the same input
// always yields the same output, always in [0, 1).
type Source interface {
	Eval(x, y float64) float64
}

// Kind names a noise implementation in configuration.
type Kind string

const (
	KindHash    Kind = "hash"
	KindSimplex Kind = "simplex"
)

// below1 is the largest float64 strictly less than 1.
var below1 = math.Nextafter(1, 0)

// Hash is lattice value noise over a sine hash, squared to bias toward low
// values. It matches the GLSL noise in the grass vertex shader.
type Hash struct{}

// Rand hashes a lattice point into [0, 1). The upper bound comes from
// gm.Fract clamping; the shader's fract can round up to 1.0.
func Rand(x, y float64) float64 {
	return gm.Fract(math.Sin(x*12.9898+y*4.1414) * 43758.5453)
}

// Eval implements Source.
func (Hash) Eval(x, y float64) float64 {
	ix, iy := math.Floor(x), math.Floor(y)
	ux := gm.Smoothstep01(gm.Fract(x))
	uy := gm.Smoothstep01(gm.Fract(y))

	a := Rand(ix, iy)
	b := Rand(ix+1, iy)
	c := Rand(ix, iy+1)
	d := Rand(ix+1, iy+1)

	res := gm.Mix64(gm.Mix64(a, b, ux), gm.Mix64(c, d, ux), uy)
	return clamp01(res * res)
}

// Simplex wraps OpenSimplex noise and applies the same squaring as Hash.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates a seeded simplex source.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.NewNormalized(seed)}
}

// Eval implements Source.
func (s *Simplex) Eval(x, y float64) float64 {
	v := clamp01(s.n.Eval2(x, y))
	return clamp01(v * v)
}

// New returns the source for kind. seed only affects seeded kinds.
func New(kind Kind, seed int64) (Source, error) {
	switch kind {
	case KindHash, "":
		return Hash{}, nil
	case KindSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

// clamp01 keeps rounding from producing values outside [0, 1).
func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return below1
	}
	return v
}
