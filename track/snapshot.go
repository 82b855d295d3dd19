package track

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/replay"
)

// EventInfo is the drawable part of an event.
type EventInfo struct {
	Type   EventType
	Start  int
	Length int
	Color  gg.RGBA
}

// End returns the first time after the event.
func (e EventInfo) End() int { return e.Start + e.Length }

// TrackInfo lists the events of one entity, channel by channel.
type TrackInfo struct {
	Entity replay.EntityID
	Events []EventInfo
}

// Snapshot is an immutable copy of the store for timeline views.
// It is safe to hand to another goroutine.
type Snapshot struct {
	Tracks []TrackInfo
}

// Snapshot copies the drawable state of every track.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{Tracks: make([]TrackInfo, 0, len(s.tracks))}
	for _, t := range s.tracks {
		info := TrackInfo{Entity: t.entity, Events: make([]EventInfo, 0, t.Events())}
		for _, c := range t.channels {
			if c == nil {
				continue
			}
			for _, ev := range c.events {
				info.Events = append(info.Events, EventInfo{
					Type:   ev.typ,
					Start:  ev.start,
					Length: ev.length,
					Color:  ev.color,
				})
			}
		}
		snap.Tracks = append(snap.Tracks, info)
	}
	return snap
}

// Span returns the smallest interval [first, end) covering every event.
// ok is false when the snapshot holds no events.
func (s Snapshot) Span() (first, end int, ok bool) {
	for _, t := range s.Tracks {
		for _, ev := range t.Events {
			if !ok || ev.Start < first {
				first = ev.Start
			}
			if !ok || ev.End() > end {
				end = ev.End()
			}
			ok = true
		}
	}
	return first, end, ok
}
