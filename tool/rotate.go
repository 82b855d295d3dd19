package tool

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/replay"
	"github.com/gogpu/replay/track"
)

// Rotate turns an entity around its position. The recorded value is the
// absolute orientation: origin plus the angle swept by the pointer.
type Rotate struct {
	gesture
	pivot  gg.Point
	origin float64
	last   float64
	swept  float64
}

// NewRotate returns an idle rotate tool.
func NewRotate(Env) Tool { return &Rotate{} }

func (r *Rotate) Kind() Kind                 { return KindRotate }
func (r *Rotate) EventType() track.EventType { return track.Rotate }

func (r *Rotate) Begin(e *replay.Entity, in Input) error {
	if e == nil {
		return ErrNoTarget
	}
	if err := r.begin(KindRotate, e, in); err != nil {
		return err
	}
	st := e.State()
	r.pivot = st.Position
	r.origin = st.Rotation
	r.last = r.bearing(in.Absolute)
	r.swept = 0
	return nil
}

func (r *Rotate) Update(in Input) (track.Sample, bool) {
	if !r.active {
		return nil, false
	}
	a := r.bearing(in.Absolute)
	r.swept += wrapAngle(a - r.last)
	r.last = a

	angle := r.origin + r.swept
	r.target.SetRotation(angle)
	return track.AngleSample(angle), true
}

func (r *Rotate) Finish() error { return r.end(KindRotate) }

// Abort restores the orientation captured by Begin.
func (r *Rotate) Abort() {
	if r.active {
		r.target.SetRotation(r.origin)
	}
	r.abort(KindRotate)
}

func (r *Rotate) bearing(p gg.Point) float64 {
	return gg.PointToVec2(p.Sub(r.pivot)).Atan2()
}

// wrapAngle maps a into (-Pi, Pi] so that sweeping across the negative
// x axis does not jump by a full turn.
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
