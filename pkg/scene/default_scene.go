package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// NewSingleSphereScene creates one sphere straight ahead of the default camera
func NewSingleSphereScene() *Scene {
	s := NewScene()
	// Constant, valid radius: AddSphere cannot fail here
	_ = s.AddSphere(core.NewPoint3(0, 0, 1.5), 0.45, core.NewColor(200, 0, 100))
	return s
}

// NewShadowScene creates a sphere partly shadowed by a smaller sphere placed toward the light
func NewShadowScene() *Scene {
	s := NewSingleSphereScene()

	// Put the blocker on the shadow ray leaving the front of the lit sphere
	front := core.NewPoint3(0, 0, 1.05)
	blocker := front.Add(s.Light.Direction.Multiply(0.8))
	_ = s.AddSphere(blocker, 0.2, core.NewColor(80, 200, 255))

	return s
}
