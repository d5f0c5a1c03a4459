package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestNewDirectionalLight(t *testing.T) {
	light, err := NewDirectionalLight(core.NewColor(255, 255, 255), core.NewVec3(0, 0, -4))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if light.Direction != core.NewVec3(0, 0, -1) {
		t.Errorf("Expected normalized direction (0,0,-1), got %v", light.Direction)
	}
	if light.Type() != LightTypeDirectional {
		t.Errorf("Expected directional light type, got %s", light.Type())
	}

	_, err = NewDirectionalLight(core.NewColor(255, 255, 255), core.NewVec3(0, 0, 0))
	if !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}
}

func TestDefaultLight(t *testing.T) {
	light := DefaultLight()
	expected := -1 / math.Sqrt(3)

	tolerance := 1e-12
	if math.Abs(light.Direction.X-expected) > tolerance ||
		math.Abs(light.Direction.Y-expected) > tolerance ||
		math.Abs(light.Direction.Z-expected) > tolerance {
		t.Errorf("Expected normalize(-1,-1,-1), got %v", light.Direction)
	}
}

func TestDirectionalLight_ShadowRay(t *testing.T) {
	light := DefaultLight()
	point := core.NewPoint3(0, 0, 1.05)
	normal := core.NewVec3(0, 0, -1)

	ray := light.ShadowRay(point, normal)

	if ray.Direction != light.Direction {
		t.Errorf("Expected shadow ray along light direction %v, got %v", light.Direction, ray.Direction)
	}
	offset := ray.Origin.Distance(point)
	if math.Abs(offset-ShadowBias) > 1e-12 {
		t.Errorf("Expected origin offset %g, got %g", ShadowBias, offset)
	}
	// Offset is along the outward normal
	if ray.Origin.Z >= point.Z {
		t.Errorf("Expected origin moved along the normal, got %v", ray.Origin)
	}
}

func TestDirectionalLight_DirectionFrom(t *testing.T) {
	light := DefaultLight()

	// Shading uses the reversed direction; shadow rays use the direction itself
	for _, p := range []core.Point3{core.NewPoint3(0, 0, 0), core.NewPoint3(3, -2, 7)} {
		if got := light.DirectionFrom(p); got != light.Direction.Negate() {
			t.Errorf("Expected %v at %v, got %v", light.Direction.Negate(), p, got)
		}
	}
	ray := light.ShadowRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, -1))
	if ray.Direction.Dot(light.DirectionFrom(ray.Origin)) >= 0 {
		t.Errorf("Expected shadow ray %v opposite to the shading direction", ray.Direction)
	}
}
