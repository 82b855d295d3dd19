package tool

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/replay"
	"github.com/gogpu/replay/track"
)

const (
	// minGrab is the pointer distance below which the scale ratio is
	// derived from horizontal drag instead of distance to the pivot.
	minGrab = 1.0
	// dragPerUnit is the horizontal drag, in pixels, that doubles scale.
	dragPerUnit = 100.0
	// minScale keeps recorded factors positive.
	minScale = 0.01
)

// Scale resizes an entity uniformly. The recorded value is the absolute
// scale: origin times the ratio of the pointer distance to the entity
// position now and when the gesture began.
type Scale struct {
	gesture
	pivot  gg.Point
	origin gg.Vec2
	grab   float64
	moved  gg.Vec2
}

// NewScale returns an idle scale tool.
func NewScale(Env) Tool { return &Scale{} }

func (s *Scale) Kind() Kind                 { return KindScale }
func (s *Scale) EventType() track.EventType { return track.Scale }

func (s *Scale) Begin(e *replay.Entity, in Input) error {
	if e == nil {
		return ErrNoTarget
	}
	if err := s.begin(KindScale, e, in); err != nil {
		return err
	}
	st := e.State()
	s.pivot = st.Position
	s.origin = st.Scale
	s.grab = in.Absolute.Distance(s.pivot)
	s.moved = gg.Vec2{}
	return nil
}

func (s *Scale) Update(in Input) (track.Sample, bool) {
	if !s.active {
		return nil, false
	}
	s.moved = s.moved.Add(in.Delta)

	var factor float64
	if s.grab < minGrab {
		factor = 1 + s.moved.X/dragPerUnit
	} else {
		factor = in.Absolute.Distance(s.pivot) / s.grab
	}
	factor = max(factor, minScale)

	v := s.origin.Mul(factor)
	s.target.SetScale(v)
	return track.ScaleSample(v), true
}

func (s *Scale) Finish() error { return s.end(KindScale) }

// Abort restores the scale captured by Begin.
func (s *Scale) Abort() {
	if s.active {
		s.target.SetScale(s.origin)
	}
	s.abort(KindScale)
}
