package export

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestImageFromPixelsFlips(t *testing.T) {
	// 1x2 image: bottom row red, top row blue
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := ImageFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("ImageFromPixels: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestImageFromPixelsErrors(t *testing.T) {
	tests := []struct {
		name   string
		pixels []byte
		w, h   int
	}{
		{"short buffer", make([]byte, 7), 1, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImageFromPixels(tt.pixels, tt.w, tt.h); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWriteScreenshot(t *testing.T) {
	om, err := NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	img, err := ImageFromPixels(make([]byte, 4*4*4), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	when := time.Date(2026, 3, 1, 12, 30, 45, 0, time.UTC)
	path, err := om.WriteScreenshot(img, when)
	if err != nil {
		t.Fatalf("WriteScreenshot: %v", err)
	}
	if filepath.Base(path) != "meadow_2026-03-01_12-30-45.png" {
		t.Errorf("path = %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}
