package viewer

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

type recordingDisplay struct {
	frames []*renderer.FrameBuffer
	err    error
}

func (d *recordingDisplay) Show(fb *renderer.FrameBuffer) error {
	if d.err != nil {
		return d.err
	}
	d.frames = append(d.frames, fb)
	return nil
}

// blockingDisplay holds the session in the rendering state until released
type blockingDisplay struct {
	entered chan struct{}
	release chan struct{}
}

func (d *blockingDisplay) Show(*renderer.FrameBuffer) error {
	d.entered <- struct{}{}
	<-d.release
	return nil
}

func newTestSession(t *testing.T, display Display) *Session {
	t.Helper()
	config := renderer.ParallelConfig{TileSize: 8, NumWorkers: 2}
	return NewSession(newTestContext(t), display, scene.Create, config, nopLogger{})
}

func TestSession_StartRendersOnce(t *testing.T) {
	display := &recordingDisplay{}
	s := newTestSession(t, display)

	if s.Frame() != nil {
		t.Error("Expected no frame before Start")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if len(display.frames) != 1 || s.Passes() != 1 {
		t.Fatalf("Expected exactly one displayed pass, got %d frames and %d passes", len(display.frames), s.Passes())
	}
	if s.Frame() != display.frames[0] {
		t.Error("Expected session frame to be the displayed frame")
	}
	if s.State() != StateIdle {
		t.Errorf("Expected idle after render, got %v", s.State())
	}
	if s.Stats().TotalPixels != 16*16 {
		t.Errorf("Expected %d pixels, got %d", 16*16, s.Stats().TotalPixels)
	}
}

func TestSession_EachEventRendersOnePass(t *testing.T) {
	display := &recordingDisplay{}
	s := newTestSession(t, display)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	events := []Event{EventNormalMode, EventIncreaseDistance, EventDecreaseDistance, EventPhongMode, EventReset}
	for i, ev := range events {
		quit, err := s.Handle(ev)
		if err != nil {
			t.Fatalf("Handle(%v): %v", ev, err)
		}
		if quit {
			t.Fatalf("Handle(%v) requested quit", ev)
		}
		if len(display.frames) != i+2 {
			t.Fatalf("Expected %d frames after %v, got %d", i+2, ev, len(display.frames))
		}
	}

	if s.Context().Seed != 101 {
		t.Errorf("Expected seed 101 after one reset, got %d", s.Context().Seed)
	}
}

func TestSession_QuitDoesNotRender(t *testing.T) {
	display := &recordingDisplay{}
	s := newTestSession(t, display)

	quit, err := s.Handle(EventQuit)
	if err != nil || !quit {
		t.Fatalf("Expected quit without error, got quit=%t err=%v", quit, err)
	}
	if len(display.frames) != 0 {
		t.Errorf("Expected no render on quit, got %d frames", len(display.frames))
	}
}

func TestSession_ModeSwitchKeepsHits(t *testing.T) {
	display := &recordingDisplay{}
	s := newTestSession(t, display)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Handle(EventNormalMode); err != nil {
		t.Fatal(err)
	}

	phong, normal := display.frames[0], display.frames[1]
	for i := range phong.Hits {
		if phong.Hits[i] != normal.Hits[i] {
			t.Fatalf("Hit %d changed with the shading mode", i)
		}
	}
}

func TestSession_EventsDuringRenderAreQueued(t *testing.T) {
	display := &blockingDisplay{entered: make(chan struct{}, 8), release: make(chan struct{})}
	s := newTestSession(t, display)

	first := make(chan error, 1)
	go func() {
		_, err := s.Handle(EventNormalMode)
		first <- err
	}()

	select {
	case <-display.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout waiting for render to reach the display")
	}
	if s.State() != StateRendering {
		t.Errorf("Expected rendering state, got %v", s.State())
	}

	// Presses arriving mid-render wait for the running pass
	const presses = 3
	var wg sync.WaitGroup
	errs := make(chan error, presses)
	for i := 0; i < presses; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Handle(EventIncreaseDistance)
			errs <- err
		}()
	}

	close(display.release)
	if err := <-first; err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("Unexpected error for a queued press: %v", err)
		}
	}

	if s.Passes() != 1+presses {
		t.Errorf("Expected %d passes, got %d", 1+presses, s.Passes())
	}
	expected := renderer.DefaultCameraDistance * math.Pow(DistanceStep, presses)
	if math.Abs(s.Context().CameraDistance-expected) > 1e-9 {
		t.Errorf("Expected distance %.4f after every press, got %.4f", expected, s.Context().CameraDistance)
	}
	if s.State() != StateIdle {
		t.Errorf("Expected idle after the queue drains, got %v", s.State())
	}
}

func TestSession_ConcurrentEventsAllRender(t *testing.T) {
	display := &recordingDisplay{}
	s := newTestSession(t, display)

	const presses = 4
	var wg sync.WaitGroup
	for i := 0; i < presses; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Handle(EventIncreaseDistance); err != nil {
				t.Errorf("Handle: %v", err)
			}
		}()
	}
	wg.Wait()

	if s.Passes() != presses || len(display.frames) != presses {
		t.Errorf("Expected %d passes and frames, got %d and %d", presses, s.Passes(), len(display.frames))
	}
	expected := renderer.DefaultCameraDistance * math.Pow(DistanceStep, presses)
	if math.Abs(s.Context().CameraDistance-expected) > 1e-9 {
		t.Errorf("Expected distance %.4f, got %.4f", expected, s.Context().CameraDistance)
	}
}

func TestSession_DisplayError(t *testing.T) {
	display := &recordingDisplay{err: errors.New("window closed")}
	s := newTestSession(t, display)

	if err := s.Start(); err == nil {
		t.Fatal("Expected display error")
	}
	if s.State() != StateIdle {
		t.Errorf("Expected idle after failed render, got %v", s.State())
	}
	if s.Passes() != 0 || s.Frame() != nil {
		t.Error("Expected a failed pass not to be recorded")
	}
}

func TestSession_Inspect(t *testing.T) {
	s := newTestSession(t, &recordingDisplay{})

	if _, err := s.Inspect(8, 8); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if _, err := s.Inspect(16, 0); err == nil {
		t.Error("Expected error outside the frame")
	}
}
