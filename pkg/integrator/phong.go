package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// PhongIntegrator shades hits with each object's Phong material
type PhongIntegrator struct {
	policy ShadowPolicy
}

// NewPhongIntegrator creates a Phong integrator with the given shadow policy
func NewPhongIntegrator(policy ShadowPolicy) *PhongIntegrator {
	return &PhongIntegrator{policy: policy}
}

// Policy returns the shadow policy in use
func (pi *PhongIntegrator) Policy() ShadowPolicy {
	return pi.policy
}

// PixelColor evaluates the Phong model at the hit, or returns the background on a miss
func (pi *PhongIntegrator) PixelColor(sample Sample, sc *scene.Scene) core.Color {
	if sample.Hit == nil {
		return sc.Background
	}

	mat := sample.Hit.Object.Material
	if sample.Shadowed {
		switch pi.policy {
		case ShadowAmbient:
			mat = material.ShadowedPhong()
		case ShadowBlack:
			return sc.Background
		}
	}

	hit := sample.Hit.Hit
	return mat.Shade(hit.Point, hit.Normal, sample.Hit.Object.Color, sc.Light, sample.Camera)
}
