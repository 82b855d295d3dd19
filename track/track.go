package track

import "github.com/gogpu/replay"

// Channel is the ordered sequence of events of one type in a track.
type Channel struct {
	typ    EventType
	events []*Event
}

// Type returns the event type shared by every event in the channel.
func (c *Channel) Type() EventType { return c.typ }

// Events returns the events in recording order.
// The returned slice must not be modified.
func (c *Channel) Events() []*Event { return c.events }

// Len returns the number of events.
func (c *Channel) Len() int { return len(c.events) }

func (c *Channel) remove(ev *Event) bool {
	for i, e := range c.events {
		if e == ev {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return true
		}
	}
	return false
}

// Track holds every channel recorded for one entity.
// Indexing channels by type keeps at most one channel per type and
// iterates them in declaration order.
type Track struct {
	entity   replay.EntityID
	channels [numEventTypes]*Channel
}

// Entity returns the owning entity.
func (t *Track) Entity() replay.EntityID { return t.entity }

// Channel returns the channel for typ, if one was created.
func (t *Track) Channel(typ EventType) (*Channel, bool) {
	if !typ.IsKnown() {
		return nil, false
	}
	c := t.channels[typ]
	return c, c != nil
}

// Channels returns the existing channels in declaration order.
func (t *Track) Channels() []*Channel {
	out := make([]*Channel, 0, len(t.channels))
	for _, c := range t.channels {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of existing channels.
func (t *Track) Len() int {
	n := 0
	for _, c := range t.channels {
		if c != nil {
			n++
		}
	}
	return n
}

// Events returns the total number of events across channels.
func (t *Track) Events() int {
	n := 0
	for _, c := range t.channels {
		if c != nil {
			n += len(c.events)
		}
	}
	return n
}

func (t *Track) channel(typ EventType) *Channel {
	c := t.channels[typ]
	if c == nil {
		c = &Channel{typ: typ}
		t.channels[typ] = c
	}
	return c
}
