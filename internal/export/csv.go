package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/Faultbox/meadow/internal/engine/grass"
)

// WriteBlades writes one CSV row per blade with a header.
func WriteBlades(w io.Writer, blades []grass.Blade) error {
	if err := gocsv.Marshal(blades, w); err != nil {
		return fmt.Errorf("writing blades: %w", err)
	}
	return nil
}

// ReadBlades parses a CSV written by WriteBlades.
func ReadBlades(r io.Reader) ([]grass.Blade, error) {
	var blades []grass.Blade
	if err := gocsv.Unmarshal(r, &blades); err != nil {
		return nil, fmt.Errorf("reading blades: %w", err)
	}
	return blades, nil
}

// WriteSamples writes sampled vertices with a header.
func WriteSamples(w io.Writer, samples []VertexSample) error {
	if err := gocsv.Marshal(samples, w); err != nil {
		return fmt.Errorf("writing frame samples: %w", err)
	}
	return nil
}
