package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagBlades     = flag.Int("blades", 0, "Number of grass blades")
	flagSegments   = flag.Int("segments", 0, "Segments per blade")
	flagSeed       = flag.Uint64("seed", 0, "Random seed for blade placement")
	flagNoise      = flag.String("noise", "", "Wind noise: hash or simplex")
	flagVariant    = flag.String("variant", "", "Shading variant: detailed or simple")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBlades > 0 {
		cfg.Field.BladeCount = *flagBlades
	}
	if *flagSegments > 0 {
		cfg.Field.Segments = *flagSegments
	}
	if *flagSeed != 0 {
		cfg.Field.Seed = *flagSeed
	}
	if *flagNoise != "" {
		cfg.Wind.Noise = *flagNoise
	}
	if *flagVariant != "" {
		cfg.Shading.Variant = *flagVariant
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
