package renderer

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DefaultCameraDistance is the distance from the eye to the image plane
const DefaultCameraDistance = 3.0

// Camera is an eye on the -Z axis looking through the z=0 image plane.
// The plane spans [-1,1] in x and y regardless of the frame size.
type Camera struct {
	Distance float64
}

// NewCamera creates a camera at (0, 0, -distance)
func NewCamera(distance float64) Camera {
	return Camera{Distance: distance}
}

// Position returns the eye point
func (c Camera) Position() core.Point3 {
	return core.NewPoint3(0, 0, -c.Distance)
}

// SamplePoint maps pixel (x, y) of a width x height frame onto the image plane.
// Pixel (W/2, H/2) maps to the origin; row 0 is the bottom of the plane.
func (c Camera) SamplePoint(x, y, width, height int) core.Point3 {
	halfW := width / 2
	halfH := height / 2
	xpos := float64(x-halfW) * 2.0 / float64(width)
	ypos := float64(y-halfH) * 2.0 / float64(height)
	return core.NewPoint3(xpos, ypos, 0)
}

// GetRay builds the primary ray from the eye through a sample point.
// The error wraps core.ErrZeroVector when the eye lies on the sample point.
func (c Camera) GetRay(samplePoint core.Point3) (core.Ray, error) {
	ray, err := core.NewRayThrough(c.Position(), samplePoint)
	if err != nil {
		return core.Ray{}, fmt.Errorf("camera ray through %v: %w", samplePoint, err)
	}
	return ray, nil
}
