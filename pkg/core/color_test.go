package core

import (
	"math"
	"testing"
)

func TestColor_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected Color
	}{
		{"in range", NewColor(10, 128, 255), NewColor(10, 128, 255)},
		{"over range", NewColor(300, 256, 1e9), NewColor(255, 255, 255)},
		{"negative", NewColor(-1, -300, 0), NewColor(0, 0, 0)},
		{"nan", NewColor(math.NaN(), 12, math.NaN()), NewColor(0, 12, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Clamp(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColor_RGB(t *testing.T) {
	r, g, b := NewColor(305, 127.9, -4).RGB()
	if r != 255 || g != 127 || b != 0 {
		t.Errorf("Expected (255,127,0), got (%d,%d,%d)", r, g, b)
	}
}

func TestColor_AddScaled(t *testing.T) {
	base := NewColor(200, 0, 100)
	acc := Color{}.AddScaled(base, 0.3).AddScaled(base, 0.4)

	expected := NewColor(140, 0, 70)
	tolerance := 1e-9
	if math.Abs(acc.R-expected.R) > tolerance ||
		math.Abs(acc.G-expected.G) > tolerance ||
		math.Abs(acc.B-expected.B) > tolerance {
		t.Errorf("Expected %v, got %v", expected, acc)
	}
}
