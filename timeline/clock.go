package timeline

import (
	"errors"
	"fmt"

	"github.com/gogpu/replay"
)

var (
	// ErrInvalidRange is returned when Min > Max.
	ErrInvalidRange = errors.New("timeline: range min greater than max")
	// ErrInvalidStride is returned for strides below 1.
	ErrInvalidStride = errors.New("timeline: stride must be at least 1")
	// ErrInvalidZoom is returned for non-positive zoom factors.
	ErrInvalidZoom = errors.New("timeline: zoom must be positive")
)

// Range is the closed interval of valid times.
type Range struct {
	Min, Max int
}

// Contains reports whether t lies inside r.
func (r Range) Contains(t int) bool {
	return r.Min <= t && t <= r.Max
}

// Clamp returns t limited to r.
func (r Range) Clamp(t int) int {
	return max(r.Min, min(t, r.Max))
}

// Len returns the number of frames in r.
func (r Range) Len() int {
	return r.Max - r.Min + 1
}

// Reason says which operation produced a Change.
type Reason uint8

// Change reasons.
const (
	ReasonStep Reason = iota
	ReasonSeek
	ReasonStop
	ReasonRange
	ReasonRestart
)

// String returns a lower-case name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonStep:
		return "step"
	case ReasonSeek:
		return "seek"
	case ReasonStop:
		return "stop"
	case ReasonRange:
		return "range"
	case ReasonRestart:
		return "restart"
	default:
		return fmt.Sprintf("Reason(%d)", uint8(r))
	}
}

// Change describes one transition of the current time.
// Restart changes may have Prev == Cur.
type Change struct {
	Prev, Cur int
	Reason    Reason
}

// ChangeFunc observes time changes.
type ChangeFunc func(Change)

// State is a copy of the clock's fields.
type State struct {
	Time    int
	Range   Range
	Playing bool
	Stride  int

	// Pan and Zoom are display hints for timeline views. Zoom is the
	// number of pixels per frame and converts pointer motion into time.
	Pan  float64
	Zoom float64
}

// Clock is the shared timeline state.
type Clock struct {
	state     State
	observers []ChangeFunc
}

// Option configures a Clock during creation.
type Option func(*State)

// WithStride sets the number of frames advanced per tick while playing.
// Values below 1 are ignored.
func WithStride(n int) Option {
	return func(s *State) {
		if n >= 1 {
			s.Stride = n
		}
	}
}

// WithZoom sets the pixels-per-frame hint. Non-positive values are ignored.
func WithZoom(z float64) Option {
	return func(s *State) {
		if z > 0 {
			s.Zoom = z
		}
	}
}

// WithPan sets the pan hint.
func WithPan(p float64) Option {
	return func(s *State) { s.Pan = p }
}

// New creates a stopped clock positioned at r.Min.
// A reversed range is normalized by swapping its bounds.
func New(r Range, opts ...Option) *Clock {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	st := State{
		Time:   r.Min,
		Range:  r,
		Stride: 1,
		Zoom:   1,
	}
	for _, opt := range opts {
		opt(&st)
	}
	return &Clock{state: st}
}

// Time returns the current time.
func (c *Clock) Time() int { return c.state.Time }

// Range returns the valid range.
func (c *Clock) Range() Range { return c.state.Range }

// Playing reports whether the clock advances on Advance.
func (c *Clock) Playing() bool { return c.state.Playing }

// Stride returns the frames advanced per tick.
func (c *Clock) Stride() int { return c.state.Stride }

// Pan returns the pan hint.
func (c *Clock) Pan() float64 { return c.state.Pan }

// Zoom returns the pixels-per-frame hint.
func (c *Clock) Zoom() float64 { return c.state.Zoom }

// State returns a copy of all fields.
func (c *Clock) State() State { return c.state }

// Subscribe registers fn to run after every time change.
func (c *Clock) Subscribe(fn ChangeFunc) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

// Play toggles playback. Starting playback stops the clock, which rewinds
// it to Range.Min, and then emits a ReasonRestart change so observers can
// reset; playback never resumes from the current time. Calling Play while
// playing pauses in place.
func (c *Clock) Play() {
	if c.state.Playing {
		c.state.Playing = false
		replay.Logger().Debug("timeline: paused", "time", c.state.Time)
		return
	}
	c.Stop()
	c.state.Playing = true
	replay.Logger().Info("timeline: playback restarted", "time", c.state.Time)
	c.emit(Change{Prev: c.state.Time, Cur: c.state.Time, Reason: ReasonRestart})
}

// Pause stops playback without moving the current time.
func (c *Clock) Pause() {
	c.state.Playing = false
}

// Stop halts playback and rewinds to Range.Min.
func (c *Clock) Stop() {
	c.state.Playing = false
	c.set(c.state.Range.Min, ReasonStop)
}

// Step moves the current time by delta. Past Range.Max the time wraps to
// Range.Min, and below Range.Min it wraps to Range.Max.
func (c *Clock) Step(delta int) {
	r := c.state.Range
	t := c.state.Time + delta
	switch {
	case t > r.Max:
		t = r.Min
	case t < r.Min:
		t = r.Max
	}
	c.set(t, ReasonStep)
}

// Advance steps by the stride when playing and reports whether it did.
func (c *Clock) Advance() bool {
	if !c.state.Playing {
		return false
	}
	c.Step(c.state.Stride)
	return true
}

// SetCurrentTime moves to t clamped into the range.
func (c *Clock) SetCurrentTime(t int) {
	c.set(c.state.Range.Clamp(t), ReasonSeek)
}

// SetRange replaces the valid range and clamps the current time into it.
func (c *Clock) SetRange(lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lo, hi)
	}
	c.state.Range = Range{Min: lo, Max: hi}
	c.set(c.state.Range.Clamp(c.state.Time), ReasonRange)
	return nil
}

// SetStride changes the frames advanced per tick.
func (c *Clock) SetStride(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidStride, n)
	}
	c.state.Stride = n
	return nil
}

// SetPan changes the pan hint.
func (c *Clock) SetPan(p float64) {
	c.state.Pan = p
}

// SetZoom changes the pixels-per-frame hint.
func (c *Clock) SetZoom(z float64) error {
	if z <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidZoom, z)
	}
	c.state.Zoom = z
	return nil
}

func (c *Clock) set(t int, reason Reason) {
	prev := c.state.Time
	if t == prev {
		return
	}
	c.state.Time = t
	c.emit(Change{Prev: prev, Cur: t, Reason: reason})
}

func (c *Clock) emit(ch Change) {
	for _, fn := range c.observers {
		fn(ch)
	}
}
