package engine

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/gogpu/replay"
	"github.com/gogpu/replay/timeline"
	"github.com/gogpu/replay/tool"
	"github.com/gogpu/replay/track"
)

// ErrPastRangeEnd is returned by Recorder.Append when the clock has moved
// beyond the last recordable frame. The caller aborts the gesture.
var ErrPastRangeEnd = errors.New("engine: recording past range end")

// offsetter is implemented by tools that expose a grab offset.
type offsetter interface {
	Offset() gg.Vec2
}

// Recorder writes the samples produced by the active tool into the store.
// At most one event is open at a time.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	store   *track.Store
	clock   *timeline.Clock
	enabled bool

	handle track.Handle
	entity replay.EntityID
}

// NewRecorder creates an enabled recorder.
func NewRecorder(store *track.Store, clock *timeline.Clock) *Recorder {
	return &Recorder{store: store, clock: clock, enabled: true}
}

// Enabled reports whether gestures are recorded.
func (r *Recorder) Enabled() bool { return r.enabled }

// SetEnabled turns recording on or off. An event already open stays open
// until its gesture ends.
func (r *Recorder) SetEnabled(on bool) { r.enabled = on }

// Recording reports whether an event is open.
func (r *Recorder) Recording() bool { return r.handle.Valid() }

// Handle returns the open event, or the zero handle.
func (r *Recorder) Handle() track.Handle { return r.handle }

// Allows reports whether a sample may be recorded at time t: recording
// stops one frame before the end of the range.
func (r *Recorder) Allows(t int) bool {
	return t <= r.clock.Range().Max-1
}

// Start opens an event for a gesture that t has just begun. Nothing is
// opened when recording is disabled, the tool does not record, or the
// clock is already past the last recordable frame.
func (r *Recorder) Start(t tool.Tool) error {
	if !r.enabled || !tool.Recordable(t) || t.Target() == nil {
		return nil
	}
	if r.Recording() {
		return tool.ErrToolActive
	}
	now := r.clock.Time()
	if !r.Allows(now) {
		replay.Logger().Warn("engine: recording suppressed at range end",
			"tool", t.Kind(), "time", now)
		return nil
	}

	id := t.Target().ID()
	h, err := r.store.OpenEvent(id, t.EventType(), now)
	if err != nil {
		return err
	}
	if o, ok := t.(offsetter); ok {
		if err := r.store.SetOffset(h, o.Offset()); err != nil {
			return err
		}
	}
	r.handle = h
	r.entity = id
	return nil
}

// Append records s at the current time.
func (r *Recorder) Append(s track.Sample) error {
	if !r.Recording() {
		return nil
	}
	now := r.clock.Time()
	if !r.Allows(now) {
		return ErrPastRangeEnd
	}
	return r.store.AppendSample(r.handle, now, s)
}

// Finish seals the open event.
func (r *Recorder) Finish() error {
	if !r.Recording() {
		return nil
	}
	err := r.store.CloseEvent(r.handle)
	r.handle = track.Handle{}
	return err
}

// Abort ends the open event early. An event with no samples is discarded
// so the store looks as if the gesture never began; one with samples is
// sealed with what it has.
func (r *Recorder) Abort() error {
	if !r.Recording() {
		return nil
	}
	h := r.handle
	r.handle = track.Handle{}

	if h.Event().Samples() == 0 {
		replay.Logger().Debug("engine: empty recording discarded", "entity", r.entity)
		return r.store.DiscardEvent(h)
	}
	replay.Logger().Debug("engine: partial recording kept",
		"entity", r.entity, "samples", h.Event().Samples())
	return r.store.CloseEvent(h)
}
