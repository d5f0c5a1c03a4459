package geometry

import "github.com/df07/go-phong-raytracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Outward unit surface normal at intersection
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether the ray arrived from outside the surface
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
