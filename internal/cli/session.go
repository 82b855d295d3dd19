package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/engine"
	"github.com/gogpu/replay/tool"
)

// gesture is one scripted pointer drag.
type gesture struct {
	kind   tool.Kind
	target int // index into the demo entities
	start  int // frame at which the pointer goes down
	frames int
	input  func(e *replay.Entity, i int) tool.Input
}

// demoScene places three boxes in a row.
func demoScene() *replay.Scene {
	sc := replay.NewScene()
	for i, c := range []gg.RGBA{
		gg.FromColor(colornames.Steelblue),
		gg.FromColor(colornames.Mediumseagreen),
		gg.FromColor(colornames.Tomato),
	} {
		st := replay.DefaultState()
		st.Position = gg.Pt(100+float64(i)*150, 160)
		sc.Add(fmt.Sprintf("box%d", i+1), st, c)
	}
	return sc
}

// demoScript drags the first box right, spins the second a half turn and
// grows the third, overlapping in time.
func demoScript(r int) []gesture {
	third := max(r/3, 1)
	return []gesture{
		{
			kind: tool.KindTranslate, target: 0, start: 1, frames: third,
			input: func(_ *replay.Entity, i int) tool.Input {
				return tool.Input{Delta: gg.V2(3, math.Sin(float64(i)/4)*2)}
			},
		},
		{
			kind: tool.KindRotate, target: 1, start: third / 2, frames: third,
			input: func(e *replay.Entity, i int) tool.Input {
				a := math.Pi * float64(i+1) / float64(third)
				p := e.Initial().Position
				return tool.Input{Absolute: gg.Pt(p.X+50*math.Cos(a), p.Y+50*math.Sin(a))}
			},
		},
		{
			kind: tool.KindScale, target: 2, start: third, frames: third,
			input: func(e *replay.Entity, i int) tool.Input {
				p := e.Initial().Position
				return tool.Input{Absolute: gg.Pt(p.X+20+float64(i), p.Y), Delta: gg.V2(1, 0)}
			},
		},
	}
}

// record plays each gesture of script live while the clock runs. Each
// gesture restarts playback, advances to its start frame and drags for
// its frame count.
func record(eng *engine.Engine, script []gesture) error {
	clock := eng.Clock()
	ents := eng.Scene().Entities()
	var errs []error

	for _, g := range script {
		if g.target >= len(ents) {
			errs = append(errs, fmt.Errorf("gesture %s: no entity %d", g.kind, g.target))
			continue
		}
		e := ents[g.target]
		if err := eng.SetActiveTool(g.kind); err != nil {
			errs = append(errs, err)
			continue
		}

		clock.Pause()
		clock.Play()
		for n := clock.Range().Len(); clock.Time() < g.start && n > 0; n-- {
			eng.Frame()
		}

		first := g.input(e, 0)
		if first.Absolute == (gg.Point{}) {
			first.Absolute = e.State().Position
		}
		if err := eng.PointerDown(e.ID(), first); err != nil {
			errs = append(errs, fmt.Errorf("gesture %s: %w", g.kind, err))
			continue
		}
		for i := 1; i <= g.frames; i++ {
			if err := eng.PointerMove(g.input(e, i)); err != nil {
				errs = append(errs, fmt.Errorf("gesture %s: %w", g.kind, err))
				break
			}
			eng.Frame()
		}
		if err := eng.PointerUp(); err != nil {
			errs = append(errs, fmt.Errorf("gesture %s: %w", g.kind, err))
		}
		clock.Pause()
	}
	return errors.Join(errs...)
}

// symmetric replays the recording forward and then backward over the
// whole range and returns the first time whose states differ, or -1.
func symmetric(eng *engine.Engine) int {
	clock := eng.Clock()
	r := clock.Range()
	forward := make([][]replay.State, 0, r.Len())
	for t := r.Min; t <= r.Max; t++ {
		seek(eng, t)
		forward = append(forward, states(eng.Scene()))
	}
	for t := r.Max; t >= r.Min; t-- {
		seek(eng, t)
		want := forward[t-r.Min]
		for i, s := range states(eng.Scene()) {
			if s != want[i] {
				return t
			}
		}
	}
	return -1
}

// seek moves the clock to t and replays even when the time did not change.
func seek(eng *engine.Engine, t int) {
	eng.Clock().SetCurrentTime(t)
	eng.Replayer().Apply(eng.Clock().Time())
}

func states(sc *replay.Scene) []replay.State {
	out := make([]replay.State, 0, sc.Len())
	for _, e := range sc.Entities() {
		out = append(out, e.State())
	}
	return out
}
