package track

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/replay"
)

// Handle refers to an event opened by Store.OpenEvent.
// The zero Handle is invalid.
type Handle struct {
	track *Track
	ch    *Channel
	ev    *Event
}

// Valid reports whether h still refers to a live event.
func (h Handle) Valid() bool {
	return h.ev != nil && !h.ev.released
}

// Event returns the referenced event, or nil for the zero handle.
func (h Handle) Event() *Event { return h.ev }

// Ref is one result of a time query.
type Ref struct {
	Type  EventType
	Event *Event
	// Index is the position of Event in its channel, i.e. its
	// chronological rank among events of the same type.
	Index int
}

// Store owns every track, channel and event.
//
// Store is not safe for concurrent use.
type Store struct {
	tracks   []*Track
	byEntity map[replay.EntityID]*Track
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byEntity: make(map[replay.EntityID]*Track)}
}

// Tracks returns every track in creation order.
// The returned slice must not be modified.
func (s *Store) Tracks() []*Track { return s.tracks }

// Track returns the track owned by entity, if any.
func (s *Store) Track(entity replay.EntityID) (*Track, bool) {
	t, ok := s.byEntity[entity]
	return t, ok
}

// Len returns the number of tracks.
func (s *Store) Len() int { return len(s.tracks) }

// OpenEvent appends a new event of type typ starting at start to the
// entity's track, creating the track and channel on first use. The event
// has length 1 and an empty payload.
func (s *Store) OpenEvent(entity replay.EntityID, typ EventType, start int) (Handle, error) {
	if !entity.IsValid() {
		return Handle{}, ErrInvalidEntity
	}
	if !typ.IsKnown() {
		return Handle{}, fmt.Errorf("%w: %s", ErrUnknownEventType, typ)
	}

	t, ok := s.byEntity[entity]
	if !ok {
		t = &Track{entity: entity}
		s.byEntity[entity] = t
		s.tracks = append(s.tracks, t)
	}
	ch := t.channel(typ)
	ev := newEvent(typ, start)
	ch.events = append(ch.events, ev)

	replay.Logger().Debug("track: event opened",
		"entity", entity, "type", typ, "start", start)
	return Handle{track: t, ch: ch, ev: ev}, nil
}

// AppendSample records sample at absolute time t and grows the event to
// cover t. Recording twice at the same time overwrites the earlier value.
// Samples before the event start are rejected without mutation.
func (s *Store) AppendSample(h Handle, t int, sample Sample) error {
	if h.ev == nil {
		return ErrInvalidHandle
	}
	return h.ev.append(t, sample)
}

// SetColor overrides the timeline color of an open or sealed event.
func (s *Store) SetColor(h Handle, c gg.RGBA) error {
	if !h.Valid() {
		return ErrInvalidHandle
	}
	h.ev.color = c
	return nil
}

// SetOffset stores the grab offset of a translate event.
func (s *Store) SetOffset(h Handle, off gg.Vec2) error {
	if !h.Valid() {
		return ErrInvalidHandle
	}
	d, ok := h.ev.payload.(*TranslateData)
	if !ok {
		return fmt.Errorf("%w: offset on %s event", ErrSampleTypeMismatch, h.ev.typ)
	}
	d.Offset = off
	return nil
}

// CloseEvent seals the event. Its length no longer changes.
func (s *Store) CloseEvent(h Handle) error {
	if !h.Valid() {
		return ErrInvalidHandle
	}
	h.ev.sealed = true
	replay.Logger().Debug("track: event closed",
		"entity", h.track.entity, "type", h.ev.typ,
		"start", h.ev.start, "length", h.ev.length, "samples", h.ev.Samples())
	return nil
}

// DiscardEvent releases the event and removes it from its channel.
// An emptied channel is dropped from the track.
func (s *Store) DiscardEvent(h Handle) error {
	if !h.Valid() || !h.ch.remove(h.ev) {
		return ErrInvalidHandle
	}
	err := h.ev.release()
	if h.ch.Len() == 0 && h.track.channels[h.ch.typ] == h.ch {
		h.track.channels[h.ch.typ] = nil
	}
	return err
}

// Overlapping appends to dst every event of t active at time, in channel
// declaration order and then recording order, and returns the extended
// slice. Passing a reused buffer keeps the per-frame query allocation free.
func (s *Store) Overlapping(t *Track, time int, dst []Ref) []Ref {
	if t == nil {
		return dst
	}
	for _, c := range t.channels {
		if c == nil {
			continue
		}
		for i, ev := range c.events {
			if ev.Active(time) {
				dst = append(dst, Ref{Type: c.typ, Event: ev, Index: i})
			}
		}
	}
	return dst
}

// Settled appends to dst every event of t that ended at or before time,
// in the same order as Overlapping.
func (s *Store) Settled(t *Track, time int, dst []Ref) []Ref {
	if t == nil {
		return dst
	}
	for _, c := range t.channels {
		if c == nil {
			continue
		}
		for i, ev := range c.events {
			if ev.End() <= time {
				dst = append(dst, Ref{Type: c.typ, Event: ev, Index: i})
			}
		}
	}
	return dst
}

// Clear releases every event payload in every channel of t and then drops
// the channels. A payload that cannot be released is reported in the
// returned error but does not stop the pass over the other channels.
func (s *Store) Clear(t *Track) error {
	if t == nil {
		return ErrInvalidEntity
	}

	var errs []error
	released := 0
	for i, c := range t.channels {
		if c == nil {
			continue
		}
		for _, ev := range c.events {
			if err := ev.release(); err != nil {
				errs = append(errs, err)
				continue
			}
			released++
		}
		c.events = nil
		t.channels[i] = nil
	}

	err := errors.Join(errs...)
	if err != nil {
		replay.Logger().Warn("track: payloads leaked during clear",
			"entity", t.entity, "leaked", len(errs), "err", err)
	}
	replay.Logger().Debug("track: cleared", "entity", t.entity, "released", released)
	return err
}

// ClearEntity clears the track owned by entity.
func (s *Store) ClearEntity(entity replay.EntityID) error {
	t, ok := s.byEntity[entity]
	if !ok {
		return fmt.Errorf("%w: %s has no track", ErrInvalidEntity, entity)
	}
	return s.Clear(t)
}

// ClearAll clears every track and then discards the tracks.
func (s *Store) ClearAll() error {
	var errs []error
	for _, t := range s.tracks {
		if err := s.Clear(t); err != nil {
			errs = append(errs, err)
		}
	}
	n := len(s.tracks)
	s.tracks = nil
	clear(s.byEntity)
	replay.Logger().Info("track: all tracks cleared", "tracks", n)
	return errors.Join(errs...)
}
