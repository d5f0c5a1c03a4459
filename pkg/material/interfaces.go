package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Material interface for surfaces that reflect light toward the viewer
type Material interface {
	// Shade returns the displayed color at a surface point.
	// All inputs are per call; implementations must not keep per-pixel state.
	Shade(point core.Point3, normal core.Vec3, base core.Color, light lights.Light, camera core.Point3) core.Color
}
