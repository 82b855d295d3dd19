package replay

import (
	"github.com/gogpu/gg"
)

// SelectionFunc is called after the selected entity changes.
// prev or cur may be NilEntity.
type SelectionFunc func(prev, cur EntityID)

// Scene is the set of entities the engine records and replays.
// Entities keep their insertion order, which is also the replay order.
//
// Scene is not safe for concurrent use. Hand other goroutines a
// Snapshot instead.
type Scene struct {
	entities []*Entity
	index    map[EntityID]*Entity

	selected  EntityID
	observers []SelectionFunc
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{index: make(map[EntityID]*Entity)}
}

// Add creates an entity whose rest and current state are s.
func (sc *Scene) Add(name string, s State, color gg.RGBA) *Entity {
	e := &Entity{
		id:      NewEntityID(),
		name:    name,
		color:   color,
		initial: s,
		current: s,
	}
	sc.entities = append(sc.entities, e)
	sc.index[e.id] = e
	Logger().Debug("replay: entity added", "entity", e.id, "name", name)
	return e
}

// Entity looks up an entity by id.
func (sc *Scene) Entity(id EntityID) (*Entity, bool) {
	e, ok := sc.index[id]
	return e, ok
}

// Entities returns all entities in insertion order.
// The returned slice must not be modified.
func (sc *Scene) Entities() []*Entity {
	return sc.entities
}

// Len returns the number of entities.
func (sc *Scene) Len() int {
	return len(sc.entities)
}

// Reset restores every entity to its rest state.
func (sc *Scene) Reset() {
	for _, e := range sc.entities {
		e.Reset()
	}
}

// Selected returns the selected entity id, or NilEntity.
func (sc *Scene) Selected() EntityID {
	return sc.selected
}

// Select changes the selection. Observers run synchronously, in
// registration order, only when the selection actually changes.
// Selecting an unknown id clears the selection.
func (sc *Scene) Select(id EntityID) {
	if _, ok := sc.index[id]; !ok {
		id = NilEntity
	}
	if id == sc.selected {
		return
	}
	prev := sc.selected
	sc.selected = id
	for _, fn := range sc.observers {
		fn(prev, id)
	}
}

// OnSelect registers fn to be called after every selection change.
func (sc *Scene) OnSelect(fn SelectionFunc) {
	if fn != nil {
		sc.observers = append(sc.observers, fn)
	}
}

// EntitySnapshot is an immutable copy of one entity for drawing.
type EntitySnapshot struct {
	ID       EntityID
	Name     string
	Color    gg.RGBA
	State    State
	Selected bool
}

// Snapshot copies the drawable state of every entity.
func (sc *Scene) Snapshot() []EntitySnapshot {
	out := make([]EntitySnapshot, len(sc.entities))
	for i, e := range sc.entities {
		out[i] = EntitySnapshot{
			ID:       e.id,
			Name:     e.name,
			Color:    e.color,
			State:    e.current,
			Selected: e.id == sc.selected,
		}
	}
	return out
}
