package engine

import "github.com/gogpu/replay/timeline"

// Option configures an Engine during creation.
//
// Example:
//
//	eng := engine.New(scene,
//	    engine.WithRange(0, 500),
//	    engine.WithStride(2),
//	)
type Option func(*options)

type options struct {
	rng    timeline.Range
	stride int
	zoom   float64
	record bool
}

func defaultOptions() options {
	return options{
		rng:    timeline.Range{Min: 0, Max: 250},
		stride: 1,
		zoom:   4,
		record: true,
	}
}

// WithRange sets the timeline range. A reversed range is normalized.
func WithRange(lo, hi int) Option {
	return func(o *options) {
		o.rng = timeline.Range{Min: lo, Max: hi}
	}
}

// WithStride sets the frames advanced per tick while playing.
func WithStride(n int) Option {
	return func(o *options) {
		o.stride = n
	}
}

// WithZoom sets the pixels-per-frame hint used by the scrub tool.
func WithZoom(z float64) Option {
	return func(o *options) {
		o.zoom = z
	}
}

// WithRecording enables or disables recording at startup.
func WithRecording(on bool) Option {
	return func(o *options) {
		o.record = on
	}
}
