package timeline

import (
	"errors"
	"testing"
)

type recorder struct {
	changes []Change
}

func (r *recorder) observe(c Change) { r.changes = append(r.changes, c) }

func newTestClock(t *testing.T, opts ...Option) (*Clock, *recorder) {
	t.Helper()
	c := New(Range{Min: 0, Max: 10}, opts...)
	rec := &recorder{}
	c.Subscribe(rec.observe)
	return c, rec
}

func TestNewDefaults(t *testing.T) {
	c := New(Range{Min: 5, Max: 2})
	if c.Range() != (Range{Min: 2, Max: 5}) {
		t.Errorf("Range() = %+v, want normalized {2 5}", c.Range())
	}
	if c.Time() != 2 || c.Playing() || c.Stride() != 1 || c.Zoom() != 1 {
		t.Errorf("State() = %+v", c.State())
	}

	c = New(Range{Max: 10}, WithStride(3), WithZoom(8), WithPan(2), WithStride(0), WithZoom(-1))
	if c.Stride() != 3 || c.Zoom() != 8 || c.Pan() != 2 {
		t.Errorf("options not applied: %+v", c.State())
	}
}

func TestStepWraps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"forward", 3, 2, 5},
		{"to max", 9, 1, 10},
		{"past max wraps to min", 10, 1, 0},
		{"far past max wraps to min", 8, 7, 0},
		{"backward", 3, -2, 1},
		{"below min wraps to max", 0, -1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClock(t)
			c.SetCurrentTime(tt.start)
			c.Step(tt.delta)
			if c.Time() != tt.want {
				t.Errorf("Step(%d) from %d = %d, want %d", tt.delta, tt.start, c.Time(), tt.want)
			}
		})
	}
}

func TestChangeOnlyWhenTimeDiffers(t *testing.T) {
	c, rec := newTestClock(t)
	c.Stop()
	c.SetCurrentTime(0)
	c.Step(0)
	if len(rec.changes) != 0 {
		t.Fatalf("no-op operations emitted %v", rec.changes)
	}

	c.Step(4)
	c.SetCurrentTime(2)
	want := []Change{
		{Prev: 0, Cur: 4, Reason: ReasonStep},
		{Prev: 4, Cur: 2, Reason: ReasonSeek},
	}
	if len(rec.changes) != len(want) {
		t.Fatalf("changes = %v, want %v", rec.changes, want)
	}
	for i := range want {
		if rec.changes[i] != want[i] {
			t.Errorf("changes[%d] = %+v, want %+v", i, rec.changes[i], want[i])
		}
	}
}

func TestSetCurrentTimeClamps(t *testing.T) {
	c, _ := newTestClock(t)
	c.SetCurrentTime(50)
	if c.Time() != 10 {
		t.Errorf("Time() = %d, want 10", c.Time())
	}
	c.SetCurrentTime(-3)
	if c.Time() != 0 {
		t.Errorf("Time() = %d, want 0", c.Time())
	}
}

func TestSetRange(t *testing.T) {
	c, rec := newTestClock(t)
	c.SetCurrentTime(8)

	if err := c.SetRange(2, 5); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	if c.Time() != 5 {
		t.Errorf("Time() = %d, want clamped 5", c.Time())
	}
	last := rec.changes[len(rec.changes)-1]
	if last.Reason != ReasonRange || last.Cur != 5 {
		t.Errorf("last change = %+v, want range change to 5", last)
	}

	if err := c.SetRange(7, 6); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetRange(7, 6) = %v, want ErrInvalidRange", err)
	}
	if c.Range() != (Range{Min: 2, Max: 5}) {
		t.Errorf("invalid SetRange changed range to %+v", c.Range())
	}
}

func TestStop(t *testing.T) {
	c, rec := newTestClock(t)
	c.Play()
	c.SetCurrentTime(6)
	c.Stop()
	if c.Playing() || c.Time() != 0 {
		t.Errorf("after Stop: playing=%v time=%d", c.Playing(), c.Time())
	}
	last := rec.changes[len(rec.changes)-1]
	if last.Reason != ReasonStop {
		t.Errorf("last reason = %s, want stop", last.Reason)
	}
}

func TestPlayRestartsFromMin(t *testing.T) {
	c, rec := newTestClock(t)
	c.SetCurrentTime(7)
	rec.changes = nil

	c.Play()
	if !c.Playing() {
		t.Fatal("Play() should start playback")
	}
	if c.Time() != 0 {
		t.Errorf("Time() = %d, want restart at 0", c.Time())
	}
	want := []Reason{ReasonStop, ReasonRestart}
	if len(rec.changes) != len(want) {
		t.Fatalf("changes = %+v, want reasons %v", rec.changes, want)
	}
	for i, r := range want {
		if rec.changes[i].Reason != r {
			t.Errorf("changes[%d].Reason = %s, want %s", i, rec.changes[i].Reason, r)
		}
	}

	// Toggling pauses in place.
	c.Step(3)
	c.Play()
	if c.Playing() || c.Time() != 3 {
		t.Errorf("after toggle: playing=%v time=%d, want paused at 3", c.Playing(), c.Time())
	}
}

func TestPlayAtMinStillNotifiesRestart(t *testing.T) {
	c, rec := newTestClock(t)
	c.Play()
	if len(rec.changes) != 1 || rec.changes[0].Reason != ReasonRestart {
		t.Errorf("changes = %+v, want single restart", rec.changes)
	}
}

func TestAdvance(t *testing.T) {
	c, _ := newTestClock(t, WithStride(4))
	if c.Advance() {
		t.Error("Advance() while stopped should not move")
	}
	c.Play()
	for _, want := range []int{4, 8, 0, 4} {
		if !c.Advance() {
			t.Fatal("Advance() while playing returned false")
		}
		if c.Time() != want {
			t.Errorf("Time() = %d, want %d", c.Time(), want)
		}
	}
	c.Pause()
	if c.Advance() || c.Time() != 4 {
		t.Errorf("Advance() after Pause moved to %d", c.Time())
	}
}

func TestSetStrideAndZoom(t *testing.T) {
	c, _ := newTestClock(t)
	if err := c.SetStride(0); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("SetStride(0) = %v, want ErrInvalidStride", err)
	}
	if err := c.SetStride(2); err != nil || c.Stride() != 2 {
		t.Errorf("SetStride(2) = %v, stride %d", err, c.Stride())
	}
	if err := c.SetZoom(0); !errors.Is(err, ErrInvalidZoom) {
		t.Errorf("SetZoom(0) = %v, want ErrInvalidZoom", err)
	}
	if err := c.SetZoom(2.5); err != nil || c.Zoom() != 2.5 {
		t.Errorf("SetZoom(2.5) = %v, zoom %g", err, c.Zoom())
	}
	c.SetPan(-4)
	if c.Pan() != -4 {
		t.Errorf("Pan() = %g, want -4", c.Pan())
	}
}

func TestRangeHelpers(t *testing.T) {
	r := Range{Min: -2, Max: 3}
	if r.Len() != 6 {
		t.Errorf("Len() = %d, want 6", r.Len())
	}
	if !r.Contains(-2) || !r.Contains(3) || r.Contains(4) {
		t.Error("Contains() wrong at bounds")
	}
	if r.Clamp(9) != 3 || r.Clamp(-9) != -2 || r.Clamp(1) != 1 {
		t.Error("Clamp() wrong")
	}
}
