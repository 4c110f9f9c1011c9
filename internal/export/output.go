package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/Faultbox/meadow/internal/config"
	"github.com/Faultbox/meadow/internal/engine/grass"
)

// Output file names inside an export directory.
const (
	BladesFile  = "blades.csv"
	FrameFile   = "frame.csv"
	ConfigFile  = "config.yaml"
	PreviewFile = "preview.png"
)

// OutputManager writes export artifacts into one directory.
type OutputManager struct {
	dir string
}

// NewOutputManager creates the output directory.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, fmt.Errorf("export: empty output directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	return om.dir
}

// Path returns the path of a file inside the output directory.
func (om *OutputManager) Path(name string) string {
	return filepath.Join(om.dir, name)
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if err := cfg.SaveTo(om.Path(ConfigFile)); err != nil {
		return fmt.Errorf("writing %s: %w", ConfigFile, err)
	}
	return nil
}

// WriteBlades writes blades.csv.
func (om *OutputManager) WriteBlades(blades []grass.Blade) error {
	return om.create(BladesFile, func(f *os.File) error {
		return WriteBlades(f, blades)
	})
}

// WriteSamples writes frame.csv.
func (om *OutputManager) WriteSamples(samples []VertexSample) error {
	return om.create(FrameFile, func(f *os.File) error {
		return WriteSamples(f, samples)
	})
}

// WritePreview writes preview.png.
func (om *OutputManager) WritePreview(img image.Image) error {
	return om.create(PreviewFile, func(f *os.File) error {
		return WritePNG(f, img)
	})
}

func (om *OutputManager) create(name string, write func(*os.File) error) error {
	f, err := os.Create(om.Path(name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}
