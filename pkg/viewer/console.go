package viewer

import (
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// StatusMessage represents a status line with timestamp
type StatusMessage struct {
	Message   string
	Timestamp time.Time
	Level     string // "info", "warning", "error"
}

// StatusLogger implements core.Logger by sending messages to a status channel
type StatusLogger struct {
	statusChan chan<- StatusMessage
}

// NewStatusLogger creates a logger feeding a window status line
func NewStatusLogger(statusChan chan<- StatusMessage) core.Logger {
	return &StatusLogger{
		statusChan: statusChan,
	}
}

// Printf implements core.Logger interface
func (sl *StatusLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for the terminal
	fmt.Print(message)

	// Send to the status line if a channel is available (non-blocking)
	if sl.statusChan != nil {
		select {
		case sl.statusChan <- StatusMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		}:
		default:
			// Channel full, skip (don't block the render)
		}
	}
}
