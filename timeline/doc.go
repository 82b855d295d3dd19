// Package timeline holds the shared playback clock.
//
// A [Clock] owns the current integer time, the valid [Range], the
// play/stop state and the stride used while playing. Every operation that
// changes the current time notifies subscribers synchronously, after the
// mutation, in subscription order:
//
//	c := timeline.New(timeline.Range{Min: 0, Max: 250})
//	c.Subscribe(func(ch timeline.Change) {
//	    fmt.Println(ch.Prev, "->", ch.Cur)
//	})
//	c.Step(1) // prints 0 -> 1
//
// Stepping wraps around the range instead of clamping. Seeking and range
// changes clamp. Starting playback always restarts from Range.Min.
//
// Clock is not safe for concurrent use.
package timeline
