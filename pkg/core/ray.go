package core

import "fmt"

// Ray represents a half-line with an origin and a unit direction
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a ray from an origin and a direction, normalizing the direction
func NewRay(origin Point3, direction Vec3) (Ray, error) {
	unit, err := direction.Unit()
	if err != nil {
		return Ray{}, fmt.Errorf("ray direction %v: %w", direction, err)
	}
	return Ray{Origin: origin, Direction: unit}, nil
}

// NewRayThrough creates a ray starting at from and passing through to
func NewRayThrough(from, to Point3) (Ray, error) {
	unit, err := to.Subtract(from).Unit()
	if err != nil {
		return Ray{}, fmt.Errorf("ray from %v through %v: %w", from, to, err)
	}
	return Ray{Origin: from, Direction: unit}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
