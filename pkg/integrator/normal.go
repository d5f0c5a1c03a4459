package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// normalMid is the channel value of a zero normal component
const normalMid = 127.0

// NormalIntegrator displays the outward surface normal as a color
type NormalIntegrator struct{}

// NewNormalIntegrator creates a normal visualisation integrator
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{}
}

// PixelColor maps each normal component n in [-1,1] to 127 + 127n.
// Lighting and shadows are ignored.
func (ni *NormalIntegrator) PixelColor(sample Sample, sc *scene.Scene) core.Color {
	if sample.Hit == nil {
		return sc.Background
	}

	n := sample.Hit.Hit.Normal
	return core.NewColor(
		normalMid+normalMid*n.X,
		normalMid+normalMid*n.Y,
		normalMid+normalMid*n.Z,
	).Clamp()
}
