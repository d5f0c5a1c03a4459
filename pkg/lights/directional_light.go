package lights

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ShadowBias offsets shadow ray origins along the normal to avoid self-intersection
const ShadowBias = 1e-4

// DirectionalLight is a light infinitely far away, reaching every point from the same direction
type DirectionalLight struct {
	Color     core.Color // Light color on the 0..255 scale
	Direction core.Vec3  // Unit light direction; shadow rays travel along it
}

// NewDirectionalLight creates a directional light, normalizing the direction
func NewDirectionalLight(color core.Color, direction core.Vec3) (*DirectionalLight, error) {
	unit, err := direction.Unit()
	if err != nil {
		return nil, fmt.Errorf("directional light: %w", err)
	}
	return &DirectionalLight{
		Color:     color,
		Direction: unit,
	}, nil
}

// DefaultLight returns a white light shining from the (-1,-1,-1) direction
func DefaultLight() *DirectionalLight {
	return &DirectionalLight{
		Color:     core.NewColor(255, 255, 255),
		Direction: core.NewVec3(-1, -1, -1).Normalize(),
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// DirectionFrom returns the reversed light direction; it is the same for every point
func (dl *DirectionalLight) DirectionFrom(point core.Point3) core.Vec3 {
	return dl.Direction.Negate()
}

// Intensity returns the light color; directional lights do not attenuate
func (dl *DirectionalLight) Intensity(point core.Point3) core.Color {
	return dl.Color
}

// ShadowRay starts just above the surface and travels along the light direction
func (dl *DirectionalLight) ShadowRay(point core.Point3, normal core.Vec3) core.Ray {
	return core.Ray{
		Origin:    point.Add(normal.Multiply(ShadowBias)),
		Direction: dl.Direction,
	}
}
