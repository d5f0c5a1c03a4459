package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
)

// Light interface for lights that illuminate a shading point
type Light interface {
	Type() LightType

	// DirectionFrom returns the unit vector L used for shading the point
	DirectionFrom(point core.Point3) core.Vec3

	// Intensity returns the light color arriving at the point
	Intensity(point core.Point3) core.Color

	// ShadowRay returns the ray used to test whether the point can see the light
	ShadowRay(point core.Point3, normal core.Vec3) core.Ray
}
