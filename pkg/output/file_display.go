package output

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// FileDisplay shows frames by writing them to an image file.
// The format follows the file extension (png, jpg, gif, tif, bmp).
type FileDisplay struct {
	path   string
	scale  float64
	logger core.Logger
}

// NewFileDisplay creates a display writing to path, resized by scale
func NewFileDisplay(path string, scale float64, logger core.Logger) *FileDisplay {
	if scale <= 0 {
		scale = 1
	}
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &FileDisplay{
		path:   path,
		scale:  scale,
		logger: logger,
	}
}

// Path returns the file the display writes to
func (d *FileDisplay) Path() string {
	return d.path
}

// Show encodes the frame top-down and overwrites the file
func (d *FileDisplay) Show(fb *renderer.FrameBuffer) error {
	var img image.Image = fb.Image()

	if d.scale != 1 {
		w, h := scaledSize(fb.Width, fb.Height, d.scale)
		img = resize.Resize(w, h, img, resize.Bilinear)
	}

	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := imaging.Save(img, d.path); err != nil {
		return fmt.Errorf("save %s: %w", d.path, err)
	}

	b := img.Bounds()
	d.logger.Printf("Render saved as %s (%dx%d)\n", d.path, b.Dx(), b.Dy())
	return nil
}

// scaledSize returns the resized dimensions, never smaller than 1x1
func scaledSize(width, height int, scale float64) (uint, uint) {
	w := math.Max(1, math.Round(float64(width)*scale))
	h := math.Max(1, math.Round(float64(height)*scale))
	return uint(w), uint(h)
}
