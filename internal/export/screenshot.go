package export

import (
	"fmt"
	"image"
	"os"
	"time"
)

// ImageFromPixels converts RGBA rows read from OpenGL, bottom row first,
// into a top-down image.
func ImageFromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// ScreenshotName returns "<prefix>_<timestamp>.png".
func ScreenshotName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.png", prefix, t.Format("2006-01-02_15-04-05"))
}

// WriteScreenshot writes img under a timestamped name and returns its path.
func (om *OutputManager) WriteScreenshot(img image.Image, t time.Time) (string, error) {
	name := ScreenshotName("meadow", t)
	if err := om.create(name, func(f *os.File) error {
		return WritePNG(f, img)
	}); err != nil {
		return "", err
	}
	return om.Path(name), nil
}
