package renderer

import (
	"bytes"
	"image"
	"image/color"
	"slices"

	"github.com/disintegration/imaging"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// FrameBuffer is the output of a render pass: packed RGB bytes with row 0 at the
// bottom, plus the object index chosen for every pixel.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel, rows bottom to top
	Hits   []int   // Object index per pixel, scene.NoHit on a miss
}

// NewFrameBuffer creates a black frame with no hits recorded
func NewFrameBuffer(width, height int) *FrameBuffer {
	hits := make([]int, width*height)
	for i := range hits {
		hits[i] = scene.NoHit
	}
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
		Hits:   hits,
	}
}

// Bounds returns the pixel rectangle covered by the frame
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// Set writes the clamped color and hit index of pixel (x, y)
func (fb *FrameBuffer) Set(x, y int, c core.Color, hit int) {
	i := y*fb.Width + x
	r, g, b := c.RGB()
	fb.Pix[i*3] = r
	fb.Pix[i*3+1] = g
	fb.Pix[i*3+2] = b
	fb.Hits[i] = hit
}

// At returns the bytes of pixel (x, y)
func (fb *FrameBuffer) At(x, y int) (r, g, b uint8) {
	i := (y*fb.Width + x) * 3
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

// HitAt returns the object index recorded for pixel (x, y)
func (fb *FrameBuffer) HitAt(x, y int) int {
	return fb.Hits[y*fb.Width+x]
}

// Equal reports whether two frames have identical pixels and hits
func (fb *FrameBuffer) Equal(other *FrameBuffer) bool {
	if other == nil {
		return false
	}
	return fb.Width == other.Width && fb.Height == other.Height &&
		bytes.Equal(fb.Pix, other.Pix) && slices.Equal(fb.Hits, other.Hits)
}

// Image converts the frame to a top-down image for display or encoding
func (fb *FrameBuffer) Image() *image.NRGBA {
	bottomUp := image.NewNRGBA(fb.Bounds())
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.At(x, y)
			bottomUp.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return imaging.FlipV(bottomUp)
}
