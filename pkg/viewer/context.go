package viewer

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Camera distance bounds and the multiplicative step applied per key press
const (
	MinCameraDistance = 1.0
	MaxCameraDistance = 5.0
	DistanceStep      = 1.1
)

// SceneGenerator builds the named scene from a seed. scene.Create satisfies it.
type SceneGenerator func(name string, seed int64) (*scene.Scene, error)

// RenderContext is everything a render pass reads. Input handling never mutates a
// context; Apply returns a new one.
type RenderContext struct {
	Scene          *scene.Scene
	SceneName      string
	Seed           int64
	CameraDistance float64
	Mode           integrator.Mode
	Shadow         integrator.ShadowPolicy
	Width          int
	Height         int
}

// NewRenderContext generates the starting scene and clamps the camera distance
func NewRenderContext(sceneName string, seed int64, settings renderer.Settings, generate SceneGenerator) (RenderContext, error) {
	sc, err := generate(sceneName, seed)
	if err != nil {
		return RenderContext{}, fmt.Errorf("create render context: %w", err)
	}
	return RenderContext{
		Scene:          sc,
		SceneName:      sceneName,
		Seed:           seed,
		CameraDistance: ClampDistance(settings.Camera.Distance),
		Mode:           settings.Mode,
		Shadow:         settings.Shadow,
		Width:          settings.Width,
		Height:         settings.Height,
	}, nil
}

// Settings returns the renderer configuration for this context
func (rc RenderContext) Settings() renderer.Settings {
	return renderer.Settings{
		Width:  rc.Width,
		Height: rc.Height,
		Camera: renderer.NewCamera(rc.CameraDistance),
		Mode:   rc.Mode,
		Shadow: rc.Shadow,
	}
}

// Apply returns the context that results from an input event.
// Reset advances the seed by one and regenerates the scene; quit changes nothing.
func (rc RenderContext) Apply(ev Event, generate SceneGenerator) (RenderContext, error) {
	next := rc

	switch ev {
	case EventReset:
		sc, err := generate(rc.SceneName, rc.Seed+1)
		if err != nil {
			return rc, fmt.Errorf("reset scene: %w", err)
		}
		next.Seed = rc.Seed + 1
		next.Scene = sc
	case EventIncreaseDistance:
		if rc.CameraDistance < MaxCameraDistance {
			next.CameraDistance = ClampDistance(rc.CameraDistance * DistanceStep)
		}
	case EventDecreaseDistance:
		if rc.CameraDistance > MinCameraDistance {
			next.CameraDistance = ClampDistance(rc.CameraDistance / DistanceStep)
		}
	case EventNormalMode:
		next.Mode = integrator.ModeNormal
	case EventPhongMode:
		next.Mode = integrator.ModePhong
	case EventQuit:
	default:
		return rc, fmt.Errorf("unknown event %v", ev)
	}

	return next, nil
}

// ClampDistance limits a camera distance to [MinCameraDistance, MaxCameraDistance]
func ClampDistance(d float64) float64 {
	if math.IsNaN(d) {
		return renderer.DefaultCameraDistance
	}
	return math.Max(MinCameraDistance, math.Min(MaxCameraDistance, d))
}
