package track

import "github.com/gogpu/gg"

// Payload is the sample data owned by a recordable event.
// The set of implementations is closed: TranslateData, RotateData and
// ScaleData. Each one releases its own storage.
type Payload interface {
	// EventType returns the event type this payload belongs to.
	EventType() EventType
	// Len returns the number of recorded samples.
	Len() int
	// Times returns the recorded sample times in ascending order.
	Times() []int

	put(t int, s Sample) bool
	at(t int) (Sample, bool)
	floor(t int) (int, Sample, bool)
	release()
}

// newPayload returns an empty payload for t, or nil when t records no
// samples.
func newPayload(t EventType) Payload {
	switch t {
	case Translate:
		return &TranslateData{samples: newSeries[gg.Point]()}
	case Rotate:
		return &RotateData{samples: newSeries[float64]()}
	case Scale:
		return &ScaleData{samples: newSeries[gg.Vec2]()}
	default:
		return nil
	}
}

// TranslateData holds the positions recorded by a translate gesture.
type TranslateData struct {
	// Offset is the grab offset between the cursor and the entity origin
	// when the gesture began.
	Offset  gg.Vec2
	samples series[gg.Point]
}

func (d *TranslateData) EventType() EventType { return Translate }
func (d *TranslateData) Len() int             { return d.samples.len() }
func (d *TranslateData) Times() []int         { return d.samples.times() }

func (d *TranslateData) put(t int, s Sample) bool {
	v, ok := s.(PositionSample)
	if ok {
		d.samples.put(t, gg.Point(v))
	}
	return ok
}

func (d *TranslateData) at(t int) (Sample, bool) {
	v, ok := d.samples.at(t)
	return PositionSample(v), ok
}

func (d *TranslateData) floor(t int) (int, Sample, bool) {
	k, v, ok := d.samples.floor(t)
	return k, PositionSample(v), ok
}

func (d *TranslateData) release() {
	d.samples.release()
	d.Offset = gg.Vec2{}
}

// RotateData holds the orientations recorded by a rotate gesture.
type RotateData struct {
	samples series[float64]
}

func (d *RotateData) EventType() EventType { return Rotate }
func (d *RotateData) Len() int             { return d.samples.len() }
func (d *RotateData) Times() []int         { return d.samples.times() }

func (d *RotateData) put(t int, s Sample) bool {
	v, ok := s.(AngleSample)
	if ok {
		d.samples.put(t, float64(v))
	}
	return ok
}

func (d *RotateData) at(t int) (Sample, bool) {
	v, ok := d.samples.at(t)
	return AngleSample(v), ok
}

func (d *RotateData) floor(t int) (int, Sample, bool) {
	k, v, ok := d.samples.floor(t)
	return k, AngleSample(v), ok
}

func (d *RotateData) release() { d.samples.release() }

// ScaleData holds the scale factors recorded by a scale gesture.
type ScaleData struct {
	samples series[gg.Vec2]
}

func (d *ScaleData) EventType() EventType { return Scale }
func (d *ScaleData) Len() int             { return d.samples.len() }
func (d *ScaleData) Times() []int         { return d.samples.times() }

func (d *ScaleData) put(t int, s Sample) bool {
	v, ok := s.(ScaleSample)
	if ok {
		d.samples.put(t, gg.Vec2(v))
	}
	return ok
}

func (d *ScaleData) at(t int) (Sample, bool) {
	v, ok := d.samples.at(t)
	return ScaleSample(v), ok
}

func (d *ScaleData) floor(t int) (int, Sample, bool) {
	k, v, ok := d.samples.floor(t)
	return k, ScaleSample(v), ok
}

func (d *ScaleData) release() { d.samples.release() }
