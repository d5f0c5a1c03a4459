package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// RandomConfig describes the uniform ranges sampled by NewRandomScene
type RandomConfig struct {
	Count      int         // Number of spheres
	CenterMin  core.Point3 // Lower corner of the center box
	CenterMax  core.Point3 // Upper corner of the center box
	RadiusMin  float64
	RadiusMax  float64
	ColorFloor float64 // Added to every channel to keep spheres bright
	ColorSpan  float64 // Width of the uniform channel range above the floor
}

// DefaultRandomConfig returns the ranges of the classic eight-sphere scene
func DefaultRandomConfig() RandomConfig {
	return RandomConfig{
		Count:      8,
		CenterMin:  core.NewPoint3(-1, -1, 0.2),
		CenterMax:  core.NewPoint3(1, 1, 3.2),
		RadiusMin:  0.4,
		RadiusMax:  0.5,
		ColorFloor: 50,
		ColorSpan:  255,
	}
}

// NewRandomScene creates a scene of randomly placed, randomly colored spheres.
// The same seed and config always produce the same scene.
func NewRandomScene(seed int64, config RandomConfig) (*Scene, error) {
	if config.Count < 0 {
		return nil, fmt.Errorf("random scene: negative sphere count %d", config.Count)
	}

	random := rand.New(rand.NewSource(seed))
	uniform := func(lo, hi float64) float64 {
		return lo + random.Float64()*(hi-lo)
	}

	s := NewScene()
	for i := 0; i < config.Count; i++ {
		center := core.NewPoint3(
			uniform(config.CenterMin.X, config.CenterMax.X),
			uniform(config.CenterMin.Y, config.CenterMax.Y),
			uniform(config.CenterMin.Z, config.CenterMax.Z),
		)
		radius := uniform(config.RadiusMin, config.RadiusMax)

		// Channels above 255 saturate, which biases the palette toward bright colors
		color := core.NewColor(
			config.ColorFloor+random.Float64()*config.ColorSpan,
			config.ColorFloor+random.Float64()*config.ColorSpan,
			config.ColorFloor+random.Float64()*config.ColorSpan,
		).Clamp()

		if err := s.AddSphere(center, radius, color); err != nil {
			return nil, fmt.Errorf("random scene (seed %d): %w", seed, err)
		}
	}

	return s, nil
}
