package engine

import (
	"errors"
	"fmt"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/timeline"
	"github.com/gogpu/replay/tool"
	"github.com/gogpu/replay/track"
)

// Engine is the context object tying the scene, store, clock, tools,
// recorder and replayer together. Create one per document at startup and
// drive it from a single goroutine.
//
// A frame runs in a fixed order: pointer calls (which record), then
// Frame (recording guard and clock advance), then the replay triggered by
// the clock, then the host draws from Scene and Store.
type Engine struct {
	scene    *replay.Scene
	store    *track.Store
	clock    *timeline.Clock
	recorder *Recorder
	replayer *Replayer

	tools  map[tool.Kind]tool.Tool
	active tool.Tool
	held   []tool.Tool
}

// New creates an engine for scene with a select tool active.
func New(scene *replay.Scene, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if scene == nil {
		scene = replay.NewScene()
	}

	store := track.NewStore()
	clock := timeline.New(o.rng, timeline.WithStride(o.stride), timeline.WithZoom(o.zoom))
	e := &Engine{
		scene:    scene,
		store:    store,
		clock:    clock,
		recorder: NewRecorder(store, clock),
		replayer: NewReplayer(scene, store, clock),
		tools:    make(map[tool.Kind]tool.Tool),
	}
	e.recorder.SetEnabled(o.record)

	// The guard runs before replay so an aborted gesture never sees the
	// rewound state.
	clock.Subscribe(e.guard)
	clock.Subscribe(e.replayer.OnChange)

	e.active = e.tool(tool.KindSelect)
	e.replayer.Apply(clock.Time())

	replay.Logger().Info("engine: created",
		"range_min", clock.Range().Min, "range_max", clock.Range().Max,
		"stride", clock.Stride(), "recording", o.record)
	return e
}

// Scene returns the entities.
func (e *Engine) Scene() *replay.Scene { return e.scene }

// Store returns the recorded tracks.
func (e *Engine) Store() *track.Store { return e.store }

// Clock returns the timeline clock.
func (e *Engine) Clock() *timeline.Clock { return e.clock }

// Recorder returns the recorder.
func (e *Engine) Recorder() *Recorder { return e.recorder }

// Replayer returns the replayer.
func (e *Engine) Replayer() *Replayer { return e.replayer }

// ActiveTool returns the tool receiving pointer input.
func (e *Engine) ActiveTool() tool.Tool { return e.active }

func (e *Engine) tool(kind tool.Kind) tool.Tool {
	t, ok := e.tools[kind]
	if !ok {
		t = tool.MustNew(kind, tool.Env{Scene: e.scene, Clock: e.clock})
		e.tools[kind] = t
	}
	return t
}

// SetActiveTool switches tools. A gesture in progress on the previous tool
// is aborted first.
func (e *Engine) SetActiveTool(kind tool.Kind) error {
	if !tool.IsRegistered(kind) {
		return fmt.Errorf("%w: %s", tool.ErrUnknownKind, kind)
	}
	if e.active != nil && e.active.Kind() == kind {
		return nil
	}
	if e.active != nil && e.active.Active() {
		replay.Logger().Info("engine: gesture aborted by tool switch",
			"from", e.active.Kind(), "to", kind)
		e.Abort()
	}
	e.active = e.tool(kind)
	return nil
}

// HoldTool temporarily activates kind until ReleaseTool, as for a
// hold-to-scrub key. Holds nest.
func (e *Engine) HoldTool(kind tool.Kind) error {
	prev := e.active
	if err := e.SetActiveTool(kind); err != nil {
		return err
	}
	e.held = append(e.held, prev)
	return nil
}

// ReleaseTool ends the innermost HoldTool and reactivates the tool that
// was active before it.
func (e *Engine) ReleaseTool() error {
	if len(e.held) == 0 {
		return tool.ErrToolIdle
	}
	prev := e.held[len(e.held)-1]
	e.held = e.held[:len(e.held)-1]
	return e.SetActiveTool(prev.Kind())
}

// PointerDown begins a gesture with the active tool on the entity id.
// Select and Scrub accept replay.NilEntity.
func (e *Engine) PointerDown(id replay.EntityID, in tool.Input) error {
	var target *replay.Entity
	if id.IsValid() {
		ent, ok := e.scene.Entity(id)
		if !ok {
			replay.Logger().Warn("engine: pointer down on unknown entity", "entity", id)
			return fmt.Errorf("%w: %s", track.ErrInvalidEntity, id)
		}
		target = ent
	}

	if err := e.active.Begin(target, in); err != nil {
		return err
	}
	if err := e.recorder.Start(e.active); err != nil {
		e.active.Abort()
		return err
	}
	return nil
}

// PointerMove feeds a pointer sample to the active gesture and records
// the produced value. Moving past the last recordable frame aborts the
// gesture instead of failing.
func (e *Engine) PointerMove(in tool.Input) error {
	if !e.active.Active() {
		return nil
	}
	s, ok := e.active.Update(in)
	if !ok {
		return nil
	}
	err := e.recorder.Append(s)
	if errors.Is(err, ErrPastRangeEnd) {
		e.abortPastEnd()
		return nil
	}
	return err
}

// PointerUp finishes the active gesture.
func (e *Engine) PointerUp() error {
	if !e.active.Active() {
		return nil
	}
	err := e.active.Finish()
	return errors.Join(err, e.recorder.Finish())
}

// Abort cancels the gesture in progress, if any. Samples already
// recorded are kept, so the scene is replayed at the current time once
// the tool has rolled back its live edit.
func (e *Engine) Abort() {
	if e.active == nil || !e.active.Active() {
		return
	}
	e.active.Abort()
	if err := e.recorder.Abort(); err != nil {
		replay.Logger().Warn("engine: abort recording", "err", err)
	}
	e.replayer.Apply(e.clock.Time())
}

// Frame runs one tick: stops a recording that would pass the end of the
// range, then advances the clock when playing. Replay follows from the
// clock notification.
func (e *Engine) Frame() {
	if e.recorder.Recording() && e.clock.Playing() {
		next := e.clock.Time() + e.clock.Stride()
		if !e.recorder.Allows(next) {
			e.abortPastEnd()
		}
	}
	e.clock.Advance()
}

// Clear destroys every recorded event and restores the scene to its rest
// state.
func (e *Engine) Clear() error {
	e.Abort()
	err := e.store.ClearAll()
	e.replayer.Reset()
	return err
}

func (e *Engine) abortPastEnd() {
	replay.Logger().Warn("engine: recording reached range end, gesture aborted",
		"tool", e.active.Kind(), "time", e.clock.Time(), "range_max", e.clock.Range().Max)
	e.Abort()
}

// guard aborts a recording when the clock rewinds under it.
func (e *Engine) guard(c timeline.Change) {
	if !e.recorder.Recording() {
		return
	}
	switch c.Reason {
	case timeline.ReasonStop, timeline.ReasonRestart:
		replay.Logger().Info("engine: gesture aborted by reset", "reason", c.Reason)
		e.Abort()
	}
}
