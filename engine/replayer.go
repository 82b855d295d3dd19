package engine

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/replay"
	"github.com/gogpu/replay/timeline"
	"github.com/gogpu/replay/track"
)

// Replayer rebuilds entity state from the store whenever the clock moves.
//
// The state at time t depends on t alone. For every field that has a
// channel in an entity's track, the winning value is the sample with the
// greatest time <= t among the events that started by t; a sample at
// exactly t always wins and gaps hold the last recorded value. Equal
// sample times go to the event recorded later in the channel. Fields
// without a sample yet fall back to the entity's rest state. Scrubbing to
// t forward or backward therefore yields identical state.
type Replayer struct {
	scene *replay.Scene
	store *track.Store
	clock *timeline.Clock

	refs []track.Ref
}

// NewReplayer creates a replayer. Subscribe Replayer.OnChange to the
// clock to follow it.
func NewReplayer(scene *replay.Scene, store *track.Store, clock *timeline.Clock) *Replayer {
	return &Replayer{scene: scene, store: store, clock: clock}
}

// OnChange is the timeline.ChangeFunc driving replay.
func (r *Replayer) OnChange(c timeline.Change) {
	if c.Reason == timeline.ReasonRestart {
		r.Reset()
		return
	}
	r.Apply(c.Cur)
}

// Reset restores every entity to its rest state, independent of tracks.
func (r *Replayer) Reset() {
	r.scene.Reset()
	replay.Logger().Debug("engine: scene reset")
}

// Apply reconstructs every tracked entity at time t. Times at or before
// the start of the range reset the scene instead.
func (r *Replayer) Apply(t int) {
	if t <= r.clock.Range().Min {
		r.Reset()
		return
	}
	for _, tr := range r.store.Tracks() {
		e, ok := r.scene.Entity(tr.Entity())
		if !ok {
			replay.Logger().Debug("engine: track without entity", "entity", tr.Entity())
			continue
		}
		r.applyTrack(tr, e, t)
	}
}

// pick is the current winner for one field. Candidates are ranked by
// sample time, then by channel index, so the result does not depend on
// the order in which they are offered.
type pick struct {
	time   int
	index  int
	sample track.Sample
}

func (p *pick) offer(index, at int, s track.Sample) {
	if p.sample != nil && (at < p.time || (at == p.time && index < p.index)) {
		return
	}
	*p = pick{time: at, index: index, sample: s}
}

func (r *Replayer) applyTrack(tr *track.Track, e *replay.Entity, t int) {
	r.refs = r.store.Overlapping(tr, t, r.refs[:0])
	r.refs = r.store.Settled(tr, t, r.refs)

	var pos, rot, scl pick
	for _, ref := range r.refs {
		at, s, ok := ref.Event.Latest(t)
		if !ok {
			continue
		}
		switch ref.Type {
		case track.Translate:
			pos.offer(ref.Index, at, s)
		case track.Rotate:
			rot.offer(ref.Index, at, s)
		case track.Scale:
			scl.offer(ref.Index, at, s)
		}
	}

	rest := e.Initial()
	if _, ok := tr.Channel(track.Translate); ok {
		p := rest.Position
		if v, ok := pos.sample.(track.PositionSample); ok {
			p = gg.Point(v)
		}
		e.SetPosition(p)
	}
	if _, ok := tr.Channel(track.Rotate); ok {
		a := rest.Rotation
		if v, ok := rot.sample.(track.AngleSample); ok {
			a = float64(v)
		}
		e.SetRotation(a)
	}
	if _, ok := tr.Channel(track.Scale); ok {
		s := rest.Scale
		if v, ok := scl.sample.(track.ScaleSample); ok {
			s = gg.Vec2(v)
		}
		e.SetScale(s)
	}
}
