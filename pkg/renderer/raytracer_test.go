package renderer

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// smallSettings returns a 64x64 frame so pixel (32,32) maps to the image plane origin
func smallSettings() Settings {
	settings := DefaultSettings()
	settings.Width = 64
	settings.Height = 64
	return settings
}

func TestRaytracer_SingleSphereCenterPixel(t *testing.T) {
	rt := NewRaytracer(scene.NewSingleSphereScene(), smallSettings())

	sample := rt.TracePixel(32, 32)
	if sample.SamplePoint != core.NewPoint3(0, 0, 0) {
		t.Fatalf("Expected pixel (32,32) to map to the origin, got %v", sample.SamplePoint)
	}
	if sample.Hit == nil {
		t.Fatal("Expected center pixel to hit the sphere")
	}
	if sample.HitIndex() != 0 {
		t.Errorf("Expected object 0, got %d", sample.HitIndex())
	}
	if sample.Hit.Hit.Normal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,-1), got %v", sample.Hit.Hit.Normal)
	}
	if sample.Shadowed {
		t.Error("Expected lone sphere to be lit")
	}
}

func TestRaytracer_MissIsBackground(t *testing.T) {
	sc := scene.NewSingleSphereScene()
	sc.Background = core.NewColor(10, 20, 30)
	rt := NewRaytracer(sc, smallSettings())

	fb, stats := rt.RenderPass()

	// The bottom left corner looks well away from the sphere
	if fb.HitAt(0, 0) != scene.NoHit {
		t.Errorf("Expected NoHit at corner, got %d", fb.HitAt(0, 0))
	}
	r, g, b := fb.At(0, 0)
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("Expected background (10,20,30), got (%d,%d,%d)", r, g, b)
	}

	if stats.TotalPixels != 64*64 {
		t.Errorf("Expected %d pixels, got %d", 64*64, stats.TotalPixels)
	}
	if stats.HitPixels == 0 || stats.HitPixels == stats.TotalPixels {
		t.Errorf("Expected partial coverage, got %d of %d", stats.HitPixels, stats.TotalPixels)
	}
}

func TestRaytracer_EmptyScene(t *testing.T) {
	rt := NewRaytracer(scene.NewScene(), smallSettings())
	fb, stats := rt.RenderPass()

	if stats.HitPixels != 0 {
		t.Errorf("Expected no hits, got %d", stats.HitPixels)
	}
	for i, hit := range fb.Hits {
		if hit != scene.NoHit {
			t.Fatalf("Expected NoHit everywhere, got %d at %d", hit, i)
		}
	}
}

func TestRaytracer_ShadowDimsPixel(t *testing.T) {
	settings := smallSettings()
	lit := NewRaytracer(scene.NewSingleSphereScene(), settings)
	shadowed := NewRaytracer(scene.NewShadowScene(), settings)

	litSample := lit.TracePixel(32, 32)
	shadowSample := shadowed.TracePixel(32, 32)

	if shadowSample.HitIndex() != litSample.HitIndex() {
		t.Fatalf("Expected both to hit object %d, got %d", litSample.HitIndex(), shadowSample.HitIndex())
	}
	if !shadowSample.Shadowed {
		t.Fatal("Expected occluder to shadow the center pixel")
	}

	litColor := lit.ShadePixel(litSample)
	shadowColor := shadowed.ShadePixel(shadowSample)
	if shadowColor.R+shadowColor.G+shadowColor.B >= litColor.R+litColor.G+litColor.B {
		t.Errorf("Expected shadowed %v to be darker than lit %v", shadowColor, litColor)
	}

	_, stats := shadowed.RenderPass()
	if stats.ShadowedPixels == 0 {
		t.Error("Expected some shadowed pixels in the shadow scene")
	}
}

func TestRaytracer_Idempotent(t *testing.T) {
	sc, err := scene.NewRandomScene(3, scene.DefaultRandomConfig())
	if err != nil {
		t.Fatal(err)
	}
	rt := NewRaytracer(sc, smallSettings())

	first, firstStats := rt.RenderPass()
	second, secondStats := rt.RenderPass()

	if !first.Equal(second) {
		t.Error("Expected re-rendering an unchanged scene to be byte-identical")
	}
	if firstStats != secondStats {
		t.Errorf("Expected identical stats, got %+v and %+v", firstStats, secondStats)
	}
}

func TestRaytracer_ModeSwitchKeepsHits(t *testing.T) {
	sc, err := scene.NewRandomScene(11, scene.DefaultRandomConfig())
	if err != nil {
		t.Fatal(err)
	}

	phongSettings := smallSettings()
	normalSettings := smallSettings()
	normalSettings.Mode = integrator.ModeNormal

	phong := NewRaytracer(sc, phongSettings)
	normal := NewRaytracer(sc, normalSettings)

	for y := 0; y < phongSettings.Height; y += 7 {
		for x := 0; x < phongSettings.Width; x += 7 {
			a := phong.TracePixel(x, y)
			b := normal.TracePixel(x, y)
			if a.HitIndex() != b.HitIndex() || a.Shadowed != b.Shadowed {
				t.Fatalf("Pixel (%d,%d): hit data differs between modes", x, y)
			}
			if a.Hit != nil && (a.Hit.Hit != b.Hit.Hit || a.Hit.Distance != b.Hit.Distance) {
				t.Fatalf("Pixel (%d,%d): hit record differs between modes", x, y)
			}
		}
	}

	phongFrame, _ := phong.RenderPass()
	normalFrame, _ := normal.RenderPass()
	for i := range phongFrame.Hits {
		if phongFrame.Hits[i] != normalFrame.Hits[i] {
			t.Fatalf("Hit index %d differs between modes", i)
		}
	}
	if phongFrame.Equal(normalFrame) {
		t.Error("Expected pixel colors to differ between modes")
	}
}

func TestRaytracer_DegenerateRay(t *testing.T) {
	settings := Settings{Width: 4, Height: 4, Camera: NewCamera(0)}
	sc := scene.NewSingleSphereScene()
	sc.Background = core.NewColor(5, 5, 5)
	rt := NewRaytracer(sc, settings)

	sample := rt.TracePixel(2, 2)
	if !sample.Degenerate {
		t.Fatal("Expected the pixel under the eye to be degenerate")
	}

	fb, stats := rt.RenderPass()
	if stats.DegenerateRays != 1 {
		t.Errorf("Expected 1 degenerate ray, got %d", stats.DegenerateRays)
	}
	if stats.TotalPixels != 16 {
		t.Errorf("Expected the pass to finish all 16 pixels, got %d", stats.TotalPixels)
	}
	r, g, b := fb.At(2, 2)
	if r != 5 || g != 5 || b != 5 {
		t.Errorf("Expected background at degenerate pixel, got (%d,%d,%d)", r, g, b)
	}
}

func TestRaytracer_Inspect(t *testing.T) {
	rt := NewRaytracer(scene.NewSingleSphereScene(), smallSettings())

	result, err := rt.Inspect(32, 32)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.Hit || result.ObjectIndex != 0 {
		t.Fatalf("Expected hit on object 0, got %+v", result)
	}
	if result.Point.Distance(core.NewPoint3(0, 0, 1.05)) > 1e-9 {
		t.Errorf("Expected hit point (0,0,1.05), got %v", result.Point)
	}
	if result.Distance < 1.05-1e-9 || result.Distance > 1.05+1e-9 {
		t.Errorf("Expected distance 1.05 from the sample point, got %f", result.Distance)
	}

	fb, _ := rt.RenderPass()
	r, g, b := fb.At(32, 32)
	if result.Color != [3]uint8{r, g, b} {
		t.Errorf("Expected inspected color to match the frame, got %v vs (%d,%d,%d)", result.Color, r, g, b)
	}

	miss, err := rt.Inspect(0, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if miss.Hit || miss.ObjectIndex != scene.NoHit {
		t.Errorf("Expected miss at corner, got %+v", miss)
	}

	for _, p := range [][2]int{{-1, 0}, {0, 64}, {64, 0}} {
		if _, err := rt.Inspect(p[0], p[1]); err == nil {
			t.Errorf("Expected error for pixel %v", p)
		}
	}
}
