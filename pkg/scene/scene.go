package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NoHit is the object index recorded for pixels whose ray misses every object
const NoHit = -1

// Object pairs sphere geometry with its surface appearance
type Object struct {
	Sphere   *geometry.Sphere
	Color    core.Color
	Material material.Phong
}

// Scene contains all the elements needed for rendering.
// A scene is not modified while a render pass reads it.
type Scene struct {
	Objects    []Object                 // Spheres in scene order
	Light      *lights.DirectionalLight // The single light source
	Background core.Color               // Color of pixels that hit nothing
}

// Intersection describes the object chosen for a ray by ClosestHit
type Intersection struct {
	Index    int                // Position of the object in Scene.Objects
	Object   *Object            // The object that was hit
	Hit      geometry.HitRecord // Hit point and outward normal
	Distance float64            // Distance from the reference point to the hit point
}

// NewScene creates an empty scene with the default light and a black background
func NewScene() *Scene {
	return &Scene{
		Objects:    make([]Object, 0),
		Light:      lights.DefaultLight(),
		Background: core.NewColor(0, 0, 0),
	}
}

// AddSphere appends a sphere with the default Phong coefficients
func (s *Scene) AddSphere(center core.Point3, radius float64, color core.Color) error {
	sphere, err := geometry.NewSphere(center, radius)
	if err != nil {
		return fmt.Errorf("add sphere %d: %w", len(s.Objects), err)
	}
	s.Objects = append(s.Objects, Object{
		Sphere:   sphere,
		Color:    color,
		Material: material.DefaultPhong(),
	})
	return nil
}

// ClosestHit finds the object whose hit point is strictly closest to reference.
// The first object in scene order wins ties. Returns (nil, false) when nothing is hit.
func (s *Scene) ClosestHit(ray core.Ray, reference core.Point3) (*Intersection, bool) {
	var closest *Intersection
	closestSoFar := math.Inf(1)

	for i := range s.Objects {
		obj := &s.Objects[i]
		if obj.Sphere == nil {
			continue
		}
		hit, isHit := obj.Sphere.Intersect(ray)
		if !isHit {
			continue
		}
		distance := reference.Distance(hit.Point)
		if distance < closestSoFar {
			closestSoFar = distance
			closest = &Intersection{
				Index:    i,
				Object:   obj,
				Hit:      *hit,
				Distance: distance,
			}
		}
	}

	return closest, closest != nil
}

// Occluded reports whether any object other than exclude blocks the light at the hit
func (s *Scene) Occluded(hit geometry.HitRecord, exclude int) bool {
	shadowRay := s.Light.ShadowRay(hit.Point, hit.Normal)

	for i := range s.Objects {
		if i == exclude || s.Objects[i].Sphere == nil {
			continue
		}
		if _, isHit := s.Objects[i].Sphere.Intersect(shadowRay); isHit {
			return true
		}
	}
	return false
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}
