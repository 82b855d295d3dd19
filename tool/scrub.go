package tool

import (
	"math"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/timeline"
	"github.com/gogpu/replay/track"
)

// Scrub moves the clock by horizontal pointer motion. One frame is Zoom
// pixels wide. Scrub never records; the replay engine follows the clock.
type Scrub struct {
	gesture
	clock *timeline.Clock
	start int
	moved float64
}

// NewScrub returns a scrub tool bound to env.Clock.
func NewScrub(env Env) Tool {
	return &Scrub{clock: env.Clock}
}

func (s *Scrub) Kind() Kind                 { return KindScrub }
func (s *Scrub) EventType() track.EventType { return track.Scrub }

// Begin ignores e; scrubbing is not tied to an entity.
func (s *Scrub) Begin(e *replay.Entity, in Input) error {
	if s.clock == nil {
		return ErrNoClock
	}
	if err := s.begin(KindScrub, e, in); err != nil {
		return err
	}
	s.start = s.clock.Time()
	s.moved = 0
	return nil
}

// Update seeks the clock and reports no recordable change.
func (s *Scrub) Update(in Input) (track.Sample, bool) {
	if !s.active {
		return nil, false
	}
	s.moved += in.Delta.X
	s.clock.SetCurrentTime(s.start + int(math.Round(s.moved/s.clock.Zoom())))
	return nil, false
}

func (s *Scrub) Finish() error { return s.end(KindScrub) }

// Abort returns the clock to the time captured by Begin.
func (s *Scrub) Abort() {
	if s.active {
		s.clock.SetCurrentTime(s.start)
	}
	s.abort(KindScrub)
}
