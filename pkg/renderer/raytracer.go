package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Settings contains the per-pass rendering configuration
type Settings struct {
	Width  int                     // Frame width in pixels
	Height int                     // Frame height in pixels
	Camera Camera                  // Eye position
	Mode   integrator.Mode         // Phong or normal visualisation
	Shadow integrator.ShadowPolicy // How occluded hits are shaded in Phong mode
}

// DefaultSettings returns a 900x900 Phong render from distance 3
func DefaultSettings() Settings {
	return Settings{
		Width:  900,
		Height: 900,
		Camera: NewCamera(DefaultCameraDistance),
		Mode:   integrator.ModePhong,
		Shadow: integrator.ShadowAmbient,
	}
}

// Raytracer casts one ray per pixel into a scene.
// It holds no per-pixel state and may be shared between goroutines.
type Raytracer struct {
	scene      *scene.Scene
	settings   Settings
	integrator integrator.Integrator
}

// NewRaytracer creates a new raytracer
func NewRaytracer(sc *scene.Scene, settings Settings) *Raytracer {
	return &Raytracer{
		scene:      sc,
		settings:   settings,
		integrator: integrator.New(settings.Mode, settings.Shadow),
	}
}

// Settings returns the configuration the raytracer was created with
func (rt *Raytracer) Settings() Settings {
	return rt.settings
}

// PixelSample is the mode-independent result of tracing one pixel
type PixelSample struct {
	X, Y        int
	SamplePoint core.Point3         // Image plane point the ray passes through
	Ray         core.Ray            // Primary ray; zero when Degenerate
	Hit         *scene.Intersection // nil on a miss
	Shadowed    bool                // Another object blocks the light at the hit
	Degenerate  bool                // The primary ray had no direction
}

// HitIndex returns the object index of the hit, or scene.NoHit
func (ps PixelSample) HitIndex() int {
	if ps.Hit == nil {
		return scene.NoHit
	}
	return ps.Hit.Index
}

// TracePixel finds the closest hit for pixel (x, y) and runs the shadow test
func (rt *Raytracer) TracePixel(x, y int) PixelSample {
	camera := rt.settings.Camera
	sample := PixelSample{
		X:           x,
		Y:           y,
		SamplePoint: camera.SamplePoint(x, y, rt.settings.Width, rt.settings.Height),
	}

	ray, err := camera.GetRay(sample.SamplePoint)
	if err != nil {
		sample.Degenerate = true
		return sample
	}
	sample.Ray = ray

	hit, isHit := rt.scene.ClosestHit(ray, sample.SamplePoint)
	if !isHit {
		return sample
	}
	sample.Hit = hit
	sample.Shadowed = rt.scene.Occluded(hit.Hit, hit.Index)

	return sample
}

// ShadePixel colors a traced sample with the configured integrator
func (rt *Raytracer) ShadePixel(sample PixelSample) core.Color {
	if sample.Degenerate {
		return rt.scene.Background
	}
	return rt.integrator.PixelColor(integrator.Sample{
		Hit:      sample.Hit,
		Shadowed: sample.Shadowed,
		Camera:   rt.settings.Camera.Position(),
	}, rt.scene)
}

// RenderBounds renders the pixels within bounds into fb.
// Callers rendering concurrently must pass disjoint bounds.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, fb *FrameBuffer) RenderStats {
	var stats RenderStats

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sample := rt.TracePixel(x, y)
			fb.Set(x, y, rt.ShadePixel(sample), sample.HitIndex())

			stats.TotalPixels++
			switch {
			case sample.Degenerate:
				stats.DegenerateRays++
			case sample.Hit != nil:
				stats.HitPixels++
				if sample.Shadowed {
					stats.ShadowedPixels++
				}
			}
		}
	}

	return stats
}

// RenderPass renders every pixel sequentially into a new frame
func (rt *Raytracer) RenderPass() (*FrameBuffer, RenderStats) {
	fb := NewFrameBuffer(rt.settings.Width, rt.settings.Height)
	stats := rt.RenderBounds(fb.Bounds(), fb)
	return fb, stats
}

// InspectResult describes what a single pixel sees
type InspectResult struct {
	X, Y        int
	SamplePoint core.Point3
	Hit         bool
	ObjectIndex int         // scene.NoHit when Hit is false
	Point       core.Point3 // Hit point
	Normal      core.Vec3   // Outward unit normal at the hit
	Distance    float64     // Distance from the sample point to the hit
	FrontFace   bool
	Shadowed    bool
	Color       [3]uint8 // Final pixel bytes in the current mode
}

// Inspect traces a single pixel and reports its hit data and final color
func (rt *Raytracer) Inspect(x, y int) (InspectResult, error) {
	if x < 0 || y < 0 || x >= rt.settings.Width || y >= rt.settings.Height {
		return InspectResult{}, fmt.Errorf("pixel (%d,%d) outside %dx%d frame", x, y, rt.settings.Width, rt.settings.Height)
	}

	sample := rt.TracePixel(x, y)
	r, g, b := rt.ShadePixel(sample).RGB()
	result := InspectResult{
		X:           x,
		Y:           y,
		SamplePoint: sample.SamplePoint,
		ObjectIndex: sample.HitIndex(),
		Color:       [3]uint8{r, g, b},
	}

	if sample.Hit != nil {
		result.Hit = true
		result.Point = sample.Hit.Hit.Point
		result.Normal = sample.Hit.Hit.Normal
		result.Distance = sample.Hit.Distance
		result.FrontFace = sample.Hit.Hit.FrontFace
		result.Shadowed = sample.Shadowed
	}

	return result, nil
}
