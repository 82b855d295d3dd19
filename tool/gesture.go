package tool

import "github.com/gogpu/replay"

// gesture is the idle/active state shared by every tool.
type gesture struct {
	active bool
	target *replay.Entity
	first  Input
}

func (g *gesture) Active() bool           { return g.active }
func (g *gesture) Target() *replay.Entity { return g.target }

func (g *gesture) begin(kind Kind, e *replay.Entity, in Input) error {
	if g.active {
		return ErrToolActive
	}
	g.active = true
	g.target = e
	g.first = in

	l := replay.Logger().With("tool", kind)
	if e != nil {
		l = l.With("entity", e.ID())
	}
	l.Debug("tool: gesture began")
	return nil
}

func (g *gesture) end(kind Kind) error {
	if !g.active {
		return ErrToolIdle
	}
	g.active = false
	g.target = nil
	replay.Logger().Debug("tool: gesture finished", "tool", kind)
	return nil
}

func (g *gesture) abort(kind Kind) {
	if !g.active {
		return
	}
	g.active = false
	g.target = nil
	replay.Logger().Debug("tool: gesture aborted", "tool", kind)
}
