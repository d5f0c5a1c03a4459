package viewer

import (
	"fmt"
	"sync"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// State is the render state of a session
type State int

const (
	StateIdle State = iota
	StateRendering
)

func (s State) String() string {
	if s == StateRendering {
		return "rendering"
	}
	return "idle"
}

// Display consumes a completed frame. The frame is read-only once handed over.
type Display interface {
	Show(fb *renderer.FrameBuffer) error
}

// Session owns the current render context and drives full render passes.
// Every trigger renders the whole frame once and hands it to the display.
// Triggers arriving during a pass wait for it and are then handled one at a time.
type Session struct {
	renderMu sync.Mutex // held for a whole trigger, serializes passes
	mu       sync.Mutex // guards the fields below
	state    State
	ctx      RenderContext
	frame    *renderer.FrameBuffer
	stats    renderer.RenderStats
	passes   int
	display  Display
	generate SceneGenerator
	config   renderer.ParallelConfig
	logger   core.Logger
}

// NewSession creates an idle session; call Start to render the first frame
func NewSession(ctx RenderContext, display Display, generate SceneGenerator, config renderer.ParallelConfig, logger core.Logger) *Session {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Session{
		state:    StateIdle,
		ctx:      ctx,
		display:  display,
		generate: generate,
		config:   config,
		logger:   logger,
	}
}

// Start renders and displays the initial frame
func (s *Session) Start() error {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	s.mu.Lock()
	s.state = StateRendering
	ctx := s.ctx
	s.mu.Unlock()

	return s.render(ctx)
}

// Handle applies an input event. Quit returns true without rendering; every other
// event renders one full pass before returning, after any pass already running.
func (s *Session) Handle(ev Event) (quit bool, err error) {
	if ev == EventQuit {
		return true, nil
	}

	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	s.mu.Lock()
	next, err := s.ctx.Apply(ev, s.generate)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	s.ctx = next
	s.state = StateRendering
	s.mu.Unlock()

	s.logger.Printf("%s: scene %s seed %d, distance %.3f, %s mode\n",
		ev, next.SceneName, next.Seed, next.CameraDistance, next.Mode)
	return false, s.render(next)
}

// render runs one pass for ctx and returns the session to idle
func (s *Session) render(ctx RenderContext) error {
	pr := renderer.NewParallelRaytracer(ctx.Scene, ctx.Settings(), s.config, s.logger)
	fb, stats, err := pr.RenderPass()
	if err == nil {
		err = s.display.Show(fb)
		if err != nil {
			err = fmt.Errorf("display frame: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	if err != nil {
		return err
	}
	s.frame = fb
	s.stats = stats
	s.passes++
	return nil
}

// Context returns the current render context
func (s *Session) Context() RenderContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

// State returns whether a render is in progress
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Frame returns the last displayed frame, or nil before the first pass
func (s *Session) Frame() *renderer.FrameBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Stats returns the statistics of the last completed pass
func (s *Session) Stats() renderer.RenderStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Passes returns the number of passes completed and displayed
func (s *Session) Passes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.passes
}

// Inspect traces a single pixel against the current context
func (s *Session) Inspect(x, y int) (renderer.InspectResult, error) {
	ctx := s.Context()
	return renderer.NewRaytracer(ctx.Scene, ctx.Settings()).Inspect(x, y)
}
