package track

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Event is a time-bounded recorded gesture.
// It is active at time t when Start() <= t < Start()+Length().
type Event struct {
	typ     EventType
	start   int
	length  int
	color   gg.RGBA
	payload Payload

	sealed   bool
	released bool
}

func newEvent(t EventType, start int) *Event {
	return &Event{
		typ:     t,
		start:   start,
		length:  1,
		color:   t.Color(),
		payload: newPayload(t),
	}
}

// Type returns the event type.
func (e *Event) Type() EventType { return e.typ }

// Start returns the absolute time of the first covered frame.
func (e *Event) Start() int { return e.start }

// Length returns the number of covered frames. It is always >= 1.
func (e *Event) Length() int { return e.length }

// End returns the first time after the event.
func (e *Event) End() int { return e.start + e.length }

// Color returns the timeline color.
func (e *Event) Color() gg.RGBA { return e.color }

// Sealed reports whether the event was closed.
func (e *Event) Sealed() bool { return e.sealed }

// Active reports whether the event covers time t.
func (e *Event) Active(t int) bool {
	return e.start <= t && t < e.start+e.length
}

// Samples returns the number of recorded samples.
func (e *Event) Samples() int {
	if e.payload == nil {
		return 0
	}
	return e.payload.Len()
}

// Payload returns the owned sample data, or nil for event types that do
// not record samples.
func (e *Event) Payload() Payload { return e.payload }

// SampleAt returns the sample recorded exactly at absolute time t.
func (e *Event) SampleAt(t int) (Sample, bool) {
	if e.payload == nil {
		return nil, false
	}
	return e.payload.at(t)
}

// Latest returns the most recent sample recorded at or before absolute
// time t, together with its time.
func (e *Event) Latest(t int) (int, Sample, bool) {
	if e.payload == nil {
		return 0, nil, false
	}
	return e.payload.floor(t)
}

func (e *Event) append(t int, s Sample) error {
	if e.released {
		return ErrInvalidHandle
	}
	if e.sealed {
		return ErrEventSealed
	}
	if t < e.start {
		return fmt.Errorf("%w: %d < %d", ErrSampleOutOfRange, t, e.start)
	}
	if s == nil || e.payload == nil || !e.payload.put(t, s) {
		return fmt.Errorf("%w: %T on %s event", ErrSampleTypeMismatch, s, e.typ)
	}
	if n := t - e.start + 1; n > e.length {
		e.length = n
	}
	return nil
}

// release frees the payload according to the rule for the event type.
// The event is unusable afterwards whatever the outcome.
func (e *Event) release() error {
	p := e.payload
	e.payload = nil
	e.released = true

	switch {
	case !e.typ.IsKnown():
		return fmt.Errorf("%w: %s", ErrUnknownEventType, e.typ)
	case p == nil && !e.typ.HasPayload():
		return nil
	case p == nil || p.EventType() != e.typ:
		return fmt.Errorf("%w: %s event holds %T", ErrPayloadMismatch, e.typ, p)
	}
	p.release()
	return nil
}
