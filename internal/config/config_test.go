package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/meadow/internal/engine/grass"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Field.BladeCount != 50000 {
		t.Errorf("expected 50000 blades, got %d", cfg.Field.BladeCount)
	}
	if cfg.Field.Segments != 10 {
		t.Errorf("expected 10 segments, got %d", cfg.Field.Segments)
	}
	if cfg.Field.PatchWidth != 25 || cfg.Field.PatchDepth != 25 {
		t.Errorf("expected 25x25 patch, got %vx%v", cfg.Field.PatchWidth, cfg.Field.PatchDepth)
	}

	if cfg.Wind.Speed != 0.6 || cfg.Wind.Amplitude != 0.6 {
		t.Errorf("unexpected wind defaults: %+v", cfg.Wind)
	}
	if cfg.Wind.Noise != "hash" {
		t.Errorf("expected hash noise, got %s", cfg.Wind.Noise)
	}

	if cfg.Shading.Variant != "detailed" {
		t.Errorf("expected detailed shading, got %s", cfg.Shading.Variant)
	}

	if cfg.Lighting.SkyIntensity != 0.5 {
		t.Errorf("expected sky intensity 0.5, got %v", cfg.Lighting.SkyIntensity)
	}

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
field:
  blade_count: 1200
  segments: 6
  height_min: 0.5
  height_max: 0.9
  seed: 42

wind:
  speed: 1.1
  noise: simplex

shading:
  variant: simple
  tip_color: [0.2, 0.7, 0.1, 1.0]

lighting:
  direction: [0, -1, 0]
  ground_color: [0.1, 0.05, 0.0]

graphics:
  width: 1920
  height: 1080
  fullscreen: true

logging:
  level: "debug"
  log_file: "meadow.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Field.BladeCount != 1200 {
		t.Errorf("expected 1200 blades, got %d", cfg.Field.BladeCount)
	}
	if cfg.Field.Segments != 6 {
		t.Errorf("expected 6 segments, got %d", cfg.Field.Segments)
	}
	if cfg.Field.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Field.Seed)
	}
	// Unset keys keep defaults.
	if cfg.Field.PatchWidth != 25 {
		t.Errorf("expected default patch width 25, got %v", cfg.Field.PatchWidth)
	}

	if cfg.Wind.Speed != 1.1 {
		t.Errorf("expected wind speed 1.1, got %v", cfg.Wind.Speed)
	}
	if cfg.Wind.Noise != "simplex" {
		t.Errorf("expected simplex noise, got %s", cfg.Wind.Noise)
	}

	if cfg.Shading.Variant != "simple" {
		t.Errorf("expected simple variant, got %s", cfg.Shading.Variant)
	}
	if cfg.Shading.TipColor != [4]float32{0.2, 0.7, 0.1, 1.0} {
		t.Errorf("unexpected tip color %v", cfg.Shading.TipColor)
	}

	if cfg.Lighting.Direction != [3]float32{0, -1, 0} {
		t.Errorf("unexpected light direction %v", cfg.Lighting.Direction)
	}

	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}

	if cfg.Logging.LogFile != "meadow.log" {
		t.Errorf("expected log file 'meadow.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
field:
  blade_count: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFileEmptyPath(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Field.BladeCount != Default().Field.BladeCount {
		t.Error("empty path should return defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(*Config)
		wantConfig bool
	}{
		{"zero segments", func(c *Config) { c.Field.Segments = 0 }, true},
		{"inverted heights", func(c *Config) { c.Field.HeightMin = 2 }, true},
		{"unknown noise", func(c *Config) { c.Wind.Noise = "worley" }, false},
		{"unknown variant", func(c *Config) { c.Shading.Variant = "toon" }, false},
		{"negative time scale", func(c *Config) { c.Wind.TimeScale = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := errors.Is(err, grass.ErrInvalidParams); got != tt.wantConfig {
				t.Errorf("errors.Is(ErrInvalidParams) = %v, want %v", got, tt.wantConfig)
			}
		})
	}
}

func TestGrassParams(t *testing.T) {
	cfg := Default()
	cfg.Field.BladeCount = 10
	cfg.Field.WidthMax = 0.5

	p := cfg.GrassParams()
	if p.BladeCount != 10 || p.WidthMax != 0.5 || p.Segments != cfg.Field.Segments {
		t.Errorf("unexpected params %+v", p)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Field.BladeCount = 777
	cfg.Shading.BottomColor = [4]float32{0.5, 0.25, 0.125, 1}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Field.BladeCount != 777 {
		t.Errorf("expected 777 blades, got %d", loaded.Field.BladeCount)
	}
	if loaded.Shading.BottomColor != cfg.Shading.BottomColor {
		t.Errorf("bottom color %v, want %v", loaded.Shading.BottomColor, cfg.Shading.BottomColor)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("field:\n  blade_count: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "field flags",
			setup: func() {
				*flagBlades = 500
				*flagSegments = 4
				*flagSeed = 9
			},
			verify: func(cfg *Config) {
				if cfg.Field.BladeCount != 500 || cfg.Field.Segments != 4 || cfg.Field.Seed != 9 {
					t.Errorf("field flags not applied: %+v", cfg.Field)
				}
			},
			teardown: func() {
				*flagBlades = 0
				*flagSegments = 0
				*flagSeed = 0
			},
		},
		{
			name: "model flags",
			setup: func() {
				*flagNoise = "simplex"
				*flagVariant = "simple"
			},
			verify: func(cfg *Config) {
				if cfg.Wind.Noise != "simplex" || cfg.Shading.Variant != "simple" {
					t.Errorf("model flags not applied: %s %s", cfg.Wind.Noise, cfg.Shading.Variant)
				}
			},
			teardown: func() {
				*flagNoise = ""
				*flagVariant = ""
			},
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
field:
  blade_count: 300
  segments: 3
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagBlades = 900
	defer func() {
		*flagConfig = ""
		*flagBlades = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Blade count from the flag, segments from the file.
	if cfg.Field.BladeCount != 900 {
		t.Errorf("expected 900 blades from flag, got %d", cfg.Field.BladeCount)
	}
	if cfg.Field.Segments != 3 {
		t.Errorf("expected 3 segments from file, got %d", cfg.Field.Segments)
	}
}
