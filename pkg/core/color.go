package core

import "math"

// MaxChannel is the largest displayable channel intensity
const MaxChannel = 255.0

// Color is an RGB intensity on the 0..255 display scale.
// Intermediate values may leave that range; Clamp before display.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// AddScaled returns c + other*scalar, used to accumulate lighting terms
func (c Color) AddScaled(other Color, scalar float64) Color {
	return Color{
		R: c.R + other.R*scalar,
		G: c.G + other.G*scalar,
		B: c.B + other.B*scalar,
	}
}

// Clamp returns the color with each channel limited to [0, MaxChannel]. NaN becomes 0.
func (c Color) Clamp() Color {
	return Color{clampChannel(c.R), clampChannel(c.G), clampChannel(c.B)}
}

// RGB clamps the color and converts it to display bytes
func (c Color) RGB() (r, g, b uint8) {
	clamped := c.Clamp()
	return uint8(clamped.R), uint8(clamped.G), uint8(clamped.B)
}

func clampChannel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(MaxChannel, v))
}
