package track

import (
	"fmt"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// EventType identifies the kind of a recorded event.
// The set is closed: new kinds are added as constants here.
type EventType uint8

// Event types, in channel declaration order.
const (
	Select EventType = iota
	Translate
	Rotate
	Scale
	MousePress
	MouseMove
	MouseRelease
	Scrub

	numEventTypes
)

var eventTypeNames = [numEventTypes]string{
	Select:       "select",
	Translate:    "translate",
	Rotate:       "rotate",
	Scale:        "scale",
	MousePress:   "mouse-press",
	MouseMove:    "mouse-move",
	MouseRelease: "mouse-release",
	Scrub:        "scrub",
}

// String returns the lower-case name of the type.
func (t EventType) String() string {
	if !t.IsKnown() {
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
	return eventTypeNames[t]
}

// IsKnown reports whether t is one of the declared event types.
func (t EventType) IsKnown() bool {
	return t < numEventTypes
}

// HasPayload reports whether events of type t carry recorded samples.
func (t EventType) HasPayload() bool {
	switch t {
	case Translate, Rotate, Scale:
		return true
	default:
		return false
	}
}

// Color returns the default timeline color for events of type t.
func (t EventType) Color() gg.RGBA {
	switch t {
	case Select:
		return gg.FromColor(colornames.Gold)
	case Translate:
		return gg.FromColor(colornames.Steelblue)
	case Rotate:
		return gg.FromColor(colornames.Mediumseagreen)
	case Scale:
		return gg.FromColor(colornames.Tomato)
	case MousePress:
		return gg.FromColor(colornames.Slategray)
	case MouseMove:
		return gg.FromColor(colornames.Lightslategray)
	case MouseRelease:
		return gg.FromColor(colornames.Darkslategray)
	case Scrub:
		return gg.FromColor(colornames.Orchid)
	default:
		return gg.FromColor(colornames.Black)
	}
}

// ParseEventType returns the type whose String form is s.
func ParseEventType(s string) (EventType, error) {
	for t, name := range eventTypeNames {
		if name == s {
			return EventType(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEventType, s)
}

// EventTypes returns all declared types in declaration order.
func EventTypes() []EventType {
	out := make([]EventType, numEventTypes)
	for i := range out {
		out[i] = EventType(i)
	}
	return out
}
