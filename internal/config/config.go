// Package config handles loading and saving of meadow settings.
package config

import (
	"fmt"

	"github.com/Faultbox/meadow/internal/engine/grass"
	"github.com/Faultbox/meadow/internal/engine/noise"
	"github.com/Faultbox/meadow/internal/engine/shading"
)

// Config holds all settings.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Wind     WindConfig     `yaml:"wind"`
	Shading  ShadingConfig  `yaml:"shading"`
	Lighting LightingConfig `yaml:"lighting"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
}

// FieldConfig holds grass generation settings.
type FieldConfig struct {
	BladeCount int     `yaml:"blade_count"`
	Segments   int     `yaml:"segments"`
	PatchWidth float32 `yaml:"patch_width"`
	PatchDepth float32 `yaml:"patch_depth"`
	HeightMin  float32 `yaml:"height_min"`
	HeightMax  float32 `yaml:"height_max"`
	WidthMin   float32 `yaml:"width_min"`
	WidthMax   float32 `yaml:"width_max"`
	Seed       uint64  `yaml:"seed"`    // 0 picks a time-based seed
	Workers    int     `yaml:"workers"` // 0 uses GOMAXPROCS
}

// WindConfig holds sway settings.
type WindConfig struct {
	Speed       float32 `yaml:"speed"`
	Amplitude   float32 `yaml:"amplitude"`
	SampleScale float32 `yaml:"sample_scale"`
	Noise       string  `yaml:"noise"`      // hash or simplex
	TimeScale   float32 `yaml:"time_scale"` // animation seconds per wall second
}

// ShadingConfig holds fragment shading settings.
type ShadingConfig struct {
	Variant     string     `yaml:"variant"` // detailed or simple
	BottomColor [4]float32 `yaml:"bottom_color,flow"`
	TipColor    [4]float32 `yaml:"tip_color,flow"`
}

// LightingConfig holds the sun and sky fill.
type LightingConfig struct {
	Direction    [3]float32 `yaml:"direction,flow"`
	Intensity    float32    `yaml:"intensity"`
	UseSunAngles bool       `yaml:"use_sun_angles"`
	SunLongitude float32    `yaml:"sun_longitude"`
	SunLatitude  float32    `yaml:"sun_latitude"`
	SkyIntensity float32    `yaml:"sky_intensity"`
	SkyColor     [3]float32 `yaml:"sky_color,flow"`
	GroundColor  [3]float32 `yaml:"ground_color,flow"`
}

// GraphicsConfig holds display settings for the viewer.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	MSAA       int        `yaml:"msaa"`
	ClearColor [3]float32 `yaml:"clear_color,flow"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig holds export settings for grasstool.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns a Config with the reference scene values.
func Default() *Config {
	p := grass.DefaultParams()
	return &Config{
		Field: FieldConfig{
			BladeCount: p.BladeCount,
			Segments:   p.Segments,
			PatchWidth: p.PatchWidth,
			PatchDepth: p.PatchDepth,
			HeightMin:  p.HeightMin,
			HeightMax:  p.HeightMax,
			WidthMin:   p.WidthMin,
			WidthMax:   p.WidthMax,
		},
		Wind: WindConfig{
			Speed:       0.6,
			Amplitude:   0.6,
			SampleScale: 0.5,
			Noise:       string(noise.KindHash),
			TimeScale:   2.0,
		},
		Shading: ShadingConfig{
			Variant:     string(shading.VariantDetailed),
			BottomColor: shading.DefaultBottom,
			TipColor:    shading.DefaultTip,
		},
		Lighting: LightingConfig{
			Direction:    [3]float32{-0.6, -1.0, -0.2},
			Intensity:    1.25,
			SunLongitude: 0,
			SunLatitude:  45,
			SkyIntensity: 0.5,
			SkyColor:     [3]float32{1, 1, 1},
			GroundColor:  [3]float32{0.01, 0.01, 0.15},
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
			ClearColor: [3]float32{0.8, 0.9, 1.0},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Output: OutputConfig{
			Dir: "out",
		},
	}
}

// GrassParams converts the field section to builder parameters.
func (c *Config) GrassParams() grass.Params {
	return grass.Params{
		BladeCount: c.Field.BladeCount,
		Segments:   c.Field.Segments,
		PatchWidth: c.Field.PatchWidth,
		PatchDepth: c.Field.PatchDepth,
		HeightMin:  c.Field.HeightMin,
		HeightMax:  c.Field.HeightMax,
		WidthMin:   c.Field.WidthMin,
		WidthMax:   c.Field.WidthMax,
	}
}

// Validate checks the sections that would otherwise fail later.
func (c *Config) Validate() error {
	if err := c.GrassParams().Validate(); err != nil {
		return err
	}
	if _, err := noise.New(noise.Kind(c.Wind.Noise), 0); err != nil {
		return fmt.Errorf("wind: %w", err)
	}
	if _, err := shading.ParseVariant(c.Shading.Variant); err != nil {
		return fmt.Errorf("shading: %w", err)
	}
	if c.Wind.TimeScale < 0 {
		return fmt.Errorf("wind: time scale must not be negative")
	}
	return nil
}
