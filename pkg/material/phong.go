package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Phong holds the reflection coefficients of the Phong model
type Phong struct {
	Ambient   float64 // Weight of the base color regardless of lighting
	Diffuse   float64 // Weight of the Lambertian term
	Specular  float64 // Weight of the highlight
	Shininess float64 // Highlight exponent
}

// NewPhong creates a Phong material
func NewPhong(ambient, diffuse, specular, shininess float64) Phong {
	return Phong{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// DefaultPhong returns the coefficients used for lit surfaces
func DefaultPhong() Phong {
	return Phong{Ambient: 0.3, Diffuse: 0.4, Specular: 0.4, Shininess: 10}
}

// ShadowedPhong returns the coefficients substituted for a surface that cannot see the light
func ShadowedPhong() Phong {
	return Phong{Ambient: 0.2}
}

// Shade evaluates ambient + diffuse + specular at a surface point and clamps to [0,255]
func (p Phong) Shade(point core.Point3, normal core.Vec3, base core.Color, light lights.Light, camera core.Point3) core.Color {
	n := normal.Normalize()
	l := light.DirectionFrom(point)

	// Diffuse: cosine between the normal and the reversed light direction
	nDotL := math.Max(0, n.Dot(l))

	// Specular: light direction mirrored about the normal, compared with the view direction
	r := l.Reflect(n)
	v := camera.Subtract(point).Normalize()
	rDotV := math.Max(0, r.Dot(v))
	highlight := math.Pow(rDotV, p.Shininess)

	color := core.Color{}.
		AddScaled(base, p.Ambient).
		AddScaled(base, p.Diffuse*nDotL).
		AddScaled(light.Intensity(point), p.Specular*highlight)

	return color.Clamp()
}
