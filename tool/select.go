package tool

import (
	"github.com/gogpu/replay"
	"github.com/gogpu/replay/track"
)

// Select changes the scene selection. It never records.
type Select struct {
	gesture
	scene *replay.Scene
}

// NewSelect returns a select tool bound to env.Scene.
func NewSelect(env Env) Tool {
	return &Select{scene: env.Scene}
}

func (s *Select) Kind() Kind                 { return KindSelect }
func (s *Select) EventType() track.EventType { return track.Select }

// Begin selects e, or clears the selection when e is nil.
func (s *Select) Begin(e *replay.Entity, in Input) error {
	if err := s.begin(KindSelect, e, in); err != nil {
		return err
	}
	if s.scene == nil {
		return nil
	}
	if e == nil {
		s.scene.Select(replay.NilEntity)
	} else {
		s.scene.Select(e.ID())
	}
	return nil
}

// Update always reports no recordable change.
func (s *Select) Update(Input) (track.Sample, bool) { return nil, false }

func (s *Select) Finish() error { return s.end(KindSelect) }

// Abort leaves the selection as it is.
func (s *Select) Abort() { s.abort(KindSelect) }
