package viewer

import (
	"fmt"
	"strings"
)

// Event is an input action that changes the render context
type Event int

const (
	EventReset Event = iota
	EventIncreaseDistance
	EventDecreaseDistance
	EventPhongMode
	EventNormalMode
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventReset:
		return "reset"
	case EventIncreaseDistance:
		return "increase-distance"
	case EventDecreaseDistance:
		return "decrease-distance"
	case EventPhongMode:
		return "phong"
	case EventNormalMode:
		return "normal"
	case EventQuit:
		return "quit"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// KeyBinding maps a typed character to an event
type KeyBinding struct {
	Key         rune
	Event       Event
	Description string
}

// Bindings lists the keys in banner order. '=' is an unshifted alias for '+'.
var Bindings = []KeyBinding{
	{'+', EventIncreaseDistance, "increase camera distance"},
	{'-', EventDecreaseDistance, "decrease camera distance"},
	{'p', EventPhongMode, "show Phong shading"},
	{'n', EventNormalMode, "show surface normals"},
	{'q', EventQuit, "quit program"},
	{'r', EventReset, "draw new spheres"},
}

var aliases = map[rune]Event{
	'=': EventIncreaseDistance,
	'_': EventDecreaseDistance,
	'P': EventPhongMode,
	'N': EventNormalMode,
	'Q': EventQuit,
	'R': EventReset,
}

// EventForKey returns the event bound to a typed character
func EventForKey(key rune) (Event, bool) {
	for _, b := range Bindings {
		if b.Key == key {
			return b.Event, true
		}
	}
	ev, ok := aliases[key]
	return ev, ok
}

// Banner returns the command menu printed at startup
func Banner() string {
	var sb strings.Builder
	sb.WriteString("Program commands:\n")
	for _, b := range Bindings {
		fmt.Fprintf(&sb, "   '%c' - %s\n", b.Key, b.Description)
	}
	return sb.String()
}
