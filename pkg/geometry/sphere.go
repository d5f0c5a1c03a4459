package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ErrInvalidRadius is returned for spheres whose radius is not a positive finite number
var ErrInvalidRadius = errors.New("sphere radius must be positive and finite")

// ErrInvalidCenter is returned for spheres whose center has a NaN or infinite coordinate
var ErrInvalidCenter = errors.New("sphere center must be finite")

// tangentTolerance is the relative discriminant band treated as an exact tangent
const tangentTolerance = 1e-9

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point3
	Radius float64
}

// NewSphere creates a new sphere, rejecting non-finite centers and degenerate radii
func NewSphere(center core.Point3, radius float64) (*Sphere, error) {
	if !center.Vec().IsFinite() {
		return nil, fmt.Errorf("sphere at %v: %w", center, ErrInvalidCenter)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("sphere at %v with radius %v: %w", center, radius, ErrInvalidRadius)
	}
	return &Sphere{
		Center: center,
		Radius: radius,
	}, nil
}

// Intersect returns the nearest hit in front of the ray origin (t >= 0)
func (s *Sphere) Intersect(ray core.Ray) (*HitRecord, bool) {
	return s.Hit(ray, 0, math.Inf(1))
}

// Hit tests if a ray intersects with the sphere within [tMin, tMax]
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 || math.IsNaN(a) {
		return nil, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		// Rounding can push an exact tangent slightly negative
		if discriminant < -tangentTolerance*a*s.Radius*s.Radius {
			return nil, false
		}
		discriminant = 0
	}
	sqrtD := math.Sqrt(discriminant)

	// Cancellation-free roots: q/a and c/q
	var q float64
	if halfB > 0 {
		q = -(halfB + sqrtD)
	} else {
		q = -halfB + sqrtD
	}
	near, far := q/a, q/a
	if q != 0 {
		far = c / q
	}
	if near > far {
		near, far = far, near
	}

	root := near
	if root < tMin || root > tMax {
		root = far
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return &HitRecord{
		T:         root,
		Point:     point,
		Normal:    normal,
		FrontFace: ray.Direction.Dot(normal) < 0,
	}, true
}
