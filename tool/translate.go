package tool

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/replay"
	"github.com/gogpu/replay/track"
)

// Translate drags an entity. The recorded value is the absolute position
// origin + accumulated pointer delta.
type Translate struct {
	gesture
	origin gg.Point
	offset gg.Vec2
	moved  gg.Vec2
}

// NewTranslate returns an idle translate tool.
func NewTranslate(Env) Tool { return &Translate{} }

func (t *Translate) Kind() Kind                 { return KindTranslate }
func (t *Translate) EventType() track.EventType { return track.Translate }

// Offset returns the grab offset between the pointer and the entity
// position captured by Begin.
func (t *Translate) Offset() gg.Vec2 { return t.offset }

func (t *Translate) Begin(e *replay.Entity, in Input) error {
	if e == nil {
		return ErrNoTarget
	}
	if err := t.begin(KindTranslate, e, in); err != nil {
		return err
	}
	t.origin = e.State().Position
	t.offset = gg.PointToVec2(in.Absolute.Sub(t.origin))
	t.moved = gg.Vec2{}
	return nil
}

func (t *Translate) Update(in Input) (track.Sample, bool) {
	if !t.active {
		return nil, false
	}
	t.moved = t.moved.Add(in.Delta)
	p := t.origin.Add(t.moved.ToPoint())
	t.target.SetPosition(p)
	return track.PositionSample(p), true
}

func (t *Translate) Finish() error { return t.end(KindTranslate) }

// Abort moves the entity back to where the gesture started.
func (t *Translate) Abort() {
	if t.active {
		t.target.SetPosition(t.origin)
	}
	t.abort(KindTranslate)
}
