package ui

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/viewer"
)

// Window displays rendered frames and turns typed keys into session events
type Window struct {
	app        fyne.App
	window     fyne.Window
	image      *canvas.Image
	status     *widget.Label
	statusChan chan viewer.StatusMessage
	events     chan viewer.Event
}

// NewWindow creates a window sized for a width x height frame
func NewWindow(a fyne.App, title string, width, height int) *Window {
	w := a.NewWindow(title)

	img := canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, width, height)))
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(fyne.NewSize(float32(width), float32(height)))

	status := widget.NewLabel("Starting...")
	w.SetContent(container.NewBorder(nil, status, nil, nil, img))

	return &Window{
		app:        a,
		window:     w,
		image:      img,
		status:     status,
		statusChan: make(chan viewer.StatusMessage, 16),
		events:     make(chan viewer.Event, 64),
	}
}

// Logger returns a logger whose messages also appear in the status line
func (w *Window) Logger() core.Logger {
	return viewer.NewStatusLogger(w.statusChan)
}

// Show implements viewer.Display by replacing the canvas image.
// It is called from the event goroutine; fyne v2.5 allows widget updates off
// the main goroutine. From v2.6 this and setStatus must go through fyne.Do.
func (w *Window) Show(fb *renderer.FrameBuffer) error {
	if fb == nil {
		return errors.New("no frame to show")
	}
	w.image.Image = fb.Image()
	w.image.Refresh()
	return nil
}

// Run renders the first frame, wires the keyboard and blocks until the window closes
func (w *Window) Run(session *viewer.Session) {
	done := make(chan struct{})
	defer close(done)
	go w.pumpStatus(done)

	w.window.Canvas().SetOnTypedRune(func(r rune) {
		w.HandleKey(session, r)
	})
	w.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			w.app.Quit()
		}
	})

	go func() {
		if err := session.Start(); err != nil {
			w.setStatus(fmt.Sprintf("Render failed: %v", err))
		}
		w.processEvents(session, done)
	}()

	w.window.ShowAndRun()
}

// HandleKey queues the event for a key. Rendering happens on the event
// goroutine so the window stays responsive; queued keys are handled in order.
func (w *Window) HandleKey(session *viewer.Session, r rune) {
	ev, ok := viewer.EventForKey(r)
	if !ok {
		return
	}
	if ev == viewer.EventQuit {
		w.app.Quit()
		return
	}
	w.events <- ev
}

// processEvents renders one pass per queued event until done is closed
func (w *Window) processEvents(session *viewer.Session, done <-chan struct{}) {
	for {
		select {
		case ev := <-w.events:
			w.handleEvent(session, ev)
		case <-done:
			return
		}
	}
}

func (w *Window) handleEvent(session *viewer.Session, ev viewer.Event) {
	if _, err := session.Handle(ev); err != nil {
		w.setStatus(fmt.Sprintf("Render failed: %v", err))
	}
}

func (w *Window) pumpStatus(done <-chan struct{}) {
	for {
		select {
		case msg := <-w.statusChan:
			w.setStatus(msg.Message)
		case <-done:
			return
		}
	}
}

// setStatus may be called from any goroutine on fyne v2.5, see Show
func (w *Window) setStatus(text string) {
	w.status.SetText(strings.TrimSpace(text))
}
