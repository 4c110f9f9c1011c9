// Package shading computes grass fragment colors from the height gradient,
// a directional light and a hemispheric sky fill.
package shading

import (
	"fmt"

	"github.com/Faultbox/meadow/internal/engine/frame"
	"github.com/Faultbox/meadow/pkg/math"
)

// Color is linear RGBA.
type Color [4]float32

// RGB returns the color channels as a vector.
func (c Color) RGB() math.Vec3 {
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}
}

// Mix interpolates from c to other by t, all four channels.
func (c Color) Mix(other Color, t float32) Color {
	return Color{
		math.Mix(c[0], other[0], t),
		math.Mix(c[1], other[1], t),
		math.Mix(c[2], other[2], t),
		math.Mix(c[3], other[3], t),
	}
}

// Reference palette.
var (
	DefaultBottom = Color{0.3, 0.4, 0.1, 1.0}
	DefaultTip    = Color{0.1, 0.6, 0.0, 1.0}
)

// Variant selects the lighting model.
type Variant string

const (
	// VariantDetailed applies diffuse, ambient and sky fill with thin-blade
	// back face attenuation.
	VariantDetailed Variant = "detailed"
	// VariantSimple outputs the bare gradient. Its lighting scalar is
	// computed but never applied, matching the older shader.
	VariantSimple Variant = "simple"
)

// ParseVariant validates a variant name.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantDetailed, VariantSimple:
		return v, nil
	case "":
		return VariantDetailed, nil
	default:
		return "", fmt.Errorf("unknown shading variant %q", s)
	}
}

// FaceLighting holds the per-side lighting weights.
type FaceLighting struct {
	Ambient       float32
	DiffuseWeight float32
	SkyWeight     float32
}

// Model is the fragment shading model.
type Model struct {
	Variant Variant
	Bottom  Color
	Tip     Color

	Front FaceLighting
	Back  FaceLighting

	DiffuseExponent float32
	BaseMin         float32 // brightness at the blade base
	BaseMax         float32 // brightness at the tip
}

// Default returns the reference detailed model.
func Default() Model {
	return Model{
		Variant:         VariantDetailed,
		Bottom:          DefaultBottom,
		Tip:             DefaultTip,
		Front:           FaceLighting{Ambient: 0.25, DiffuseWeight: 1.0, SkyWeight: 1.0},
		Back:            FaceLighting{Ambient: 0.10, DiffuseWeight: 0.45, SkyWeight: 0.5},
		DiffuseExponent: 0.8,
		BaseMin:         0.65,
		BaseMax:         1.0,
	}
}

// Fragment is the interpolated input of one fragment.
type Fragment struct {
	Gradient    float32 // height fraction from the sway stage
	FrontFacing bool    // supplied by the rasterizer
	Offset      float32 // sway x offset, read by the simple variant only
}

// frontNormal is the flat normal of every blade face.
var frontNormal = math.Vec3{X: 0, Y: 0, Z: 1}

// GradientColor blends bottom to tip by the clamped gradient.
func (m Model) GradientColor(t float32) Color {
	return m.Bottom.Mix(m.Tip, math.Clamp(t, 0, 1))
}

// LightAmount returns clamp(ambient + weight * diffuse, 0, 1) for one face.
// lightDir is re-normalized; a zero direction yields ambient only.
func (m Model) LightAmount(frontFacing bool, lightDir math.Vec3) float32 {
	face, n := m.Front, frontNormal
	if !frontFacing {
		face, n = m.Back, frontNormal.Negate()
	}

	l := lightDir.Negate().Normalize()
	diffuse := max(n.Dot(l), 0)
	diffuse = math.Pow(diffuse, m.DiffuseExponent)

	return math.Clamp(face.Ambient+face.DiffuseWeight*diffuse, 0, 1)
}

// SkyFill returns mix(ground, sky, t) * intensity.
func SkyFill(p frame.Params, t float32) math.Vec3 {
	return p.GroundColor.Mix(p.SkyColor, t).Scale(p.SkyIntensity)
}

// Shade returns the fragment color.
func (m Model) Shade(f Fragment, p frame.Params) Color {
	t := math.Clamp(f.Gradient, 0, 1)
	color := m.GradientColor(t)
	if m.Variant == VariantSimple {
		return color
	}

	face := m.Front
	if !f.FrontFacing {
		face = m.Back
	}

	rgb := color.RGB()
	lit := rgb.Scale(m.LightAmount(f.FrontFacing, p.LightDirection) * math.Mix(m.BaseMin, m.BaseMax, t))
	lit = lit.Add(rgb.Mul(SkyFill(p, t)).Scale(face.SkyWeight))

	return Color{lit.X, lit.Y, lit.Z, color[3]}
}

// SimpleLighting is the scalar the simple variant computes per vertex:
// max(dot(normalize(-offset, 1, 0), -lightDir), 0).
func SimpleLighting(offset float32, lightDir math.Vec3) float32 {
	n := math.Vec3{X: -offset, Y: 1, Z: 0}.Normalize()
	return max(n.Dot(lightDir.Negate()), 0)
}
