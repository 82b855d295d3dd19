package tool

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/replay"
	"github.com/gogpu/replay/timeline"
	"github.com/gogpu/replay/track"
)

var (
	// ErrToolActive is returned by Begin on a tool that is already active.
	ErrToolActive = errors.New("tool: gesture already in progress")
	// ErrToolIdle is returned by Finish on a tool that is not active.
	ErrToolIdle = errors.New("tool: no gesture in progress")
	// ErrNoTarget is returned when a transform tool begins without an entity.
	ErrNoTarget = errors.New("tool: no target entity")
	// ErrNoClock is returned when Scrub begins without a clock.
	ErrNoClock = errors.New("tool: no clock")
	// ErrUnknownKind is returned for kinds without a registered factory.
	ErrUnknownKind = errors.New("tool: unknown kind")
)

// Kind names a tool variant.
type Kind uint8

// Tool kinds.
const (
	KindSelect Kind = iota
	KindTranslate
	KindRotate
	KindScale
	KindScrub
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindTranslate:
		return "translate"
	case KindRotate:
		return "rotate"
	case KindScale:
		return "scale"
	case KindScrub:
		return "scrub"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind returns the kind whose String form is s.
func ParseKind(s string) (Kind, error) {
	for k := KindSelect; k <= KindScrub; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Input is one pointer sample supplied by the input layer.
type Input struct {
	// Absolute is the pointer position in scene coordinates.
	Absolute gg.Point
	// Relative is the pointer position inside the widget that received it.
	Relative gg.Point
	// Delta is the motion since the previous sample.
	Delta gg.Vec2
}

// Env gives tools access to the shared state they may change.
type Env struct {
	Scene *replay.Scene
	Clock *timeline.Clock
}

// Tool is the capability set shared by every gesture variant.
type Tool interface {
	// Kind returns the variant.
	Kind() Kind
	// EventType returns the event type recorded for this tool.
	EventType() track.EventType
	// Active reports whether a gesture is in progress.
	Active() bool
	// Target returns the entity captured by Begin, or nil.
	Target() *replay.Entity

	// Begin starts a gesture on e with the initial pointer sample.
	Begin(e *replay.Entity, in Input) error
	// Update consumes a pointer sample. It returns the value to record and
	// true when the update produced a recordable change.
	Update(in Input) (track.Sample, bool)
	// Finish completes the gesture.
	Finish() error
	// Abort discards the in-progress change. It is a no-op when idle.
	Abort()
}

// Recordable reports whether gestures of t write events.
func Recordable(t Tool) bool {
	return t.EventType().HasPayload()
}
