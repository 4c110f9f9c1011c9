package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/meadow/internal/engine/lighting"
	"github.com/Faultbox/meadow/internal/engine/noise"
	"github.com/Faultbox/meadow/internal/engine/shading"
	"github.com/Faultbox/meadow/internal/engine/sway"
	"github.com/Faultbox/meadow/pkg/math"
)

// FieldSeed returns the configured seed, or a time-based one when it is 0.
func (c *Config) FieldSeed() uint64 {
	if c.Field.Seed != 0 {
		return c.Field.Seed
	}
	return uint64(time.Now().UnixNano())
}

// SwayModel builds the wind model. seed only affects seeded noise kinds.
func (c *Config) SwayModel(seed uint64) (sway.Model, error) {
	src, err := noise.New(noise.Kind(c.Wind.Noise), int64(seed))
	if err != nil {
		return sway.Model{}, fmt.Errorf("wind: %w", err)
	}
	return sway.Model{
		WindSpeed:   c.Wind.Speed,
		Amplitude:   c.Wind.Amplitude,
		SampleScale: c.Wind.SampleScale,
		Noise:       src,
	}, nil
}

// ShadingModel builds the fragment shading model.
func (c *Config) ShadingModel() (shading.Model, error) {
	v, err := shading.ParseVariant(c.Shading.Variant)
	if err != nil {
		return shading.Model{}, fmt.Errorf("shading: %w", err)
	}
	m := shading.Default()
	m.Variant = v
	m.Bottom = c.Shading.BottomColor
	m.Tip = c.Shading.TipColor
	return m, nil
}

// Rig builds the light rig. With UseSunAngles the direction comes from the
// sun longitude and latitude instead of Direction. A zero or non-finite
// Direction falls back to the default sun direction.
func (c *Config) Rig() *lighting.Rig {
	l := c.Lighting
	dir := vec3(l.Direction).Normalize()
	if dir == (math.Vec3{}) || !dir.IsFinite() {
		dir = lighting.DefaultRig().Sun.Direction
	}
	sun := lighting.DirectionalLight{
		Direction: dir,
		Intensity: l.Intensity,
	}
	if l.UseSunAngles {
		sun = lighting.FromSunAngles(l.SunLongitude, l.SunLatitude, l.Intensity)
	}
	return &lighting.Rig{
		Sun: sun,
		Sky: lighting.HemisphericLight{
			Intensity:   l.SkyIntensity,
			SkyColor:    vec3(l.SkyColor),
			GroundColor: vec3(l.GroundColor),
		},
	}
}

// ClearColor returns the graphics clear color with full alpha.
func (c *Config) ClearColor() [4]float32 {
	cc := c.Graphics.ClearColor
	return [4]float32{cc[0], cc[1], cc[2], 1}
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
