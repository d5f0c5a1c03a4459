package integrator

import (
	"fmt"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Mode selects how a traced hit becomes a pixel color
type Mode int

const (
	ModePhong  Mode = iota // Lit with the Phong model and a shadow test
	ModeNormal             // Surface normal mapped to RGB
)

func (m Mode) String() string {
	switch m {
	case ModePhong:
		return "phong"
	case ModeNormal:
		return "normal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "phong" or "normal" to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "phong", "p":
		return ModePhong, nil
	case "normal", "n":
		return ModeNormal, nil
	default:
		return ModePhong, fmt.Errorf("unknown shading mode %q (use phong or normal)", s)
	}
}

// ShadowPolicy decides what an occluded hit looks like in Phong mode
type ShadowPolicy int

const (
	ShadowAmbient ShadowPolicy = iota // Swap in the dim shadowed coefficients
	ShadowBlack                       // Occluded hits show the background color
	ShadowNone                        // Ignore occlusion
)

func (p ShadowPolicy) String() string {
	switch p {
	case ShadowAmbient:
		return "ambient"
	case ShadowBlack:
		return "black"
	case ShadowNone:
		return "none"
	default:
		return fmt.Sprintf("ShadowPolicy(%d)", int(p))
	}
}

// ParseShadowPolicy converts "ambient", "black" or "none" to a ShadowPolicy
func ParseShadowPolicy(s string) (ShadowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ambient":
		return ShadowAmbient, nil
	case "black":
		return ShadowBlack, nil
	case "none", "off":
		return ShadowNone, nil
	default:
		return ShadowAmbient, fmt.Errorf("unknown shadow policy %q (use ambient, black or none)", s)
	}
}

// Sample is everything an integrator needs to color one pixel.
// Hit and Shadowed are computed by the renderer and do not depend on the mode.
type Sample struct {
	Hit      *scene.Intersection // nil when the ray missed every object
	Shadowed bool                // Whether another object blocks the light at the hit
	Camera   core.Point3         // Eye position used for the view direction
}

// Integrator defines the interface for turning a traced sample into a color
type Integrator interface {
	PixelColor(sample Sample, scene *scene.Scene) core.Color
}

// New returns the integrator for a mode
func New(mode Mode, policy ShadowPolicy) Integrator {
	if mode == ModeNormal {
		return NewNormalIntegrator()
	}
	return NewPhongIntegrator(policy)
}
