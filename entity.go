package replay

import (
	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// EntityID is an opaque, stable identifier for a scene object.
// The zero value (the nil UUID) never names a valid entity.
type EntityID uuid.UUID

// NilEntity is the invalid entity identifier.
var NilEntity EntityID

// NewEntityID returns a fresh random identifier.
func NewEntityID() EntityID {
	return EntityID(uuid.New())
}

// ParseEntityID parses the canonical UUID text form.
func ParseEntityID(s string) (EntityID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilEntity, err
	}
	return EntityID(id), nil
}

// IsValid reports whether id can name an entity.
func (id EntityID) IsValid() bool {
	return id != NilEntity
}

// String returns the canonical UUID text form.
func (id EntityID) String() string {
	return uuid.UUID(id).String()
}

// State is the mutable, replayable part of an entity.
type State struct {
	Position gg.Point
	Rotation float64 // radians
	Scale    gg.Vec2
}

// DefaultState is the state of an entity at the origin with unit scale.
func DefaultState() State {
	return State{Scale: gg.V2(1, 1)}
}

// Transform returns the affine transform placing the entity in the scene:
// translate, then rotate, then scale.
func (s State) Transform() gg.Matrix {
	return gg.Translate(s.Position.X, s.Position.Y).
		Multiply(gg.Rotate(s.Rotation)).
		Multiply(gg.Scale(s.Scale.X, s.Scale.Y))
}

// Entity is a scene object whose state is driven by gestures and replay.
//
// Initial holds the rest state that reset restores; Current is what the
// renderer draws.
type Entity struct {
	id      EntityID
	name    string
	color   gg.RGBA
	initial State
	current State
}

// ID returns the entity identifier.
func (e *Entity) ID() EntityID { return e.id }

// Name returns the display name given at creation.
func (e *Entity) Name() string { return e.name }

// Color returns the display color.
func (e *Entity) Color() gg.RGBA { return e.color }

// Initial returns the rest state.
func (e *Entity) Initial() State { return e.initial }

// State returns the current state.
func (e *Entity) State() State { return e.current }

// SetPosition overwrites the current position.
func (e *Entity) SetPosition(p gg.Point) { e.current.Position = p }

// SetRotation overwrites the current orientation in radians.
func (e *Entity) SetRotation(angle float64) { e.current.Rotation = angle }

// SetScale overwrites the current scale factors.
func (e *Entity) SetScale(s gg.Vec2) { e.current.Scale = s }

// SetState overwrites the whole current state.
func (e *Entity) SetState(s State) { e.current = s }

// Reset restores the current state to the rest state.
func (e *Entity) Reset() { e.current = e.initial }

// Commit makes the current state the new rest state.
func (e *Entity) Commit() { e.initial = e.current }
