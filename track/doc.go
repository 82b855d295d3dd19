// Package track stores gesture recordings as per-entity tracks of typed,
// time-bounded events and answers time queries over them.
//
// # Model
//
// Every entity owns at most one [Track]. A Track holds at most one
// [Channel] per [EventType], and a Channel holds [Event] values in the
// order they were recorded. An Event covers the half-open interval
// [Start, Start+Length) of the shared integer timeline and owns a payload
// of samples keyed by absolute time:
//
//	store := track.NewStore()
//	h, _ := store.OpenEvent(id, track.Translate, 10)
//	_ = store.AppendSample(h, 10, track.PositionSample(gg.Pt(100, 100)))
//	_ = store.AppendSample(h, 11, track.PositionSample(gg.Pt(105, 100)))
//	_ = store.CloseEvent(h)
//
// # Payload release
//
// Payloads form a closed set of variants, one per recordable EventType.
// [Store.Clear] visits every channel and releases every payload before
// dropping the channels; a payload that does not match its event type is
// reported as an error instead of being dropped silently.
//
// # Concurrency
//
// Store is not safe for concurrent use. All mutation belongs on the frame
// goroutine; other goroutines read a [Snapshot].
package track
