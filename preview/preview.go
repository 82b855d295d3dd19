package preview

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/timeline"
	"github.com/gogpu/replay/track"
)

// ErrInvalidSize is returned by New for images too small to hold the
// stage and the timeline strip.
var ErrInvalidSize = errors.New("preview: invalid image size")

// ErrClosed is returned by Draw after Close.
var ErrClosed = errors.New("preview: renderer closed")

// Option configures a Renderer.
type Option func(*options)

type options struct {
	box        float64
	rowHeight  float64
	background gg.RGBA
	strip      gg.RGBA
	playhead   gg.RGBA
}

func defaultOptions() options {
	return options{
		box:        40,
		rowHeight:  12,
		background: gg.FromColor(colornames.White),
		strip:      gg.FromColor(colornames.Whitesmoke),
		playhead:   gg.FromColor(colornames.Crimson),
	}
}

// WithBoxSize sets the edge length of an entity box at unit scale.
func WithBoxSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.box = px
		}
	}
}

// WithRowHeight sets the height of one track row in the timeline strip.
func WithRowHeight(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.rowHeight = px
		}
	}
}

// WithBackground sets the stage background color.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// Renderer draws replay snapshots with the gg software rasterizer.
// It is not safe for concurrent use.
type Renderer struct {
	dc     *gg.Context
	opts   options
	closed bool
}

// New creates a renderer producing width x height images.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width < 1 || height < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{dc: gg.NewContext(width, height), opts: o}, nil
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	r.closed = true
	return r.dc.Close()
}

// Width returns the image width.
func (r *Renderer) Width() int { return r.dc.Width() }

// Height returns the image height.
func (r *Renderer) Height() int { return r.dc.Height() }

// StripHeight returns the height of the timeline strip for n tracks. The
// strip never takes more than half of the image.
func (r *Renderer) StripHeight(n int) float64 {
	h := r.opts.rowHeight * float64(max(n, 1))
	return min(h, float64(r.dc.Height())/2)
}

// Draw renders one frame: the stage from entities and the strip from
// tracks and the clock state.
func (r *Renderer) Draw(entities []replay.EntitySnapshot, tracks track.Snapshot, st timeline.State) error {
	if r.closed {
		return ErrClosed
	}
	stage := float64(r.dc.Height()) - r.StripHeight(len(tracks.Tracks))

	r.dc.ClearWithColor(r.opts.background)
	var errs []error
	for _, e := range entities {
		errs = append(errs, r.drawEntity(e))
	}
	errs = append(errs, r.drawStrip(tracks, st, stage))
	return errors.Join(errs...)
}

func (r *Renderer) drawEntity(e replay.EntitySnapshot) error {
	dc := r.dc
	s := e.State
	half := r.opts.box / 2

	dc.Push()
	defer dc.Pop()
	dc.Translate(s.Position.X, s.Position.Y)
	dc.Rotate(s.Rotation)
	dc.Scale(s.Scale.X, s.Scale.Y)

	dc.SetColor(e.Color.Color())
	dc.DrawRectangle(-half, -half, r.opts.box, r.opts.box)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("preview: fill %s: %w", e.ID, err)
	}
	if !e.Selected {
		return nil
	}
	dc.SetColor(colornames.Black)
	dc.SetLineWidth(2)
	dc.DrawRectangle(-half, -half, r.opts.box, r.opts.box)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("preview: outline %s: %w", e.ID, err)
	}
	return nil
}

// FrameX maps time t to the horizontal pixel of the strip.
func (r *Renderer) FrameX(t int, rng timeline.Range) float64 {
	return float64(t-rng.Min) * float64(r.dc.Width()) / float64(rng.Len())
}

func (r *Renderer) drawStrip(tracks track.Snapshot, st timeline.State, top float64) error {
	dc := r.dc
	w := float64(dc.Width())
	h := float64(dc.Height()) - top

	dc.SetColor(r.opts.strip.Color())
	dc.DrawRectangle(0, top, w, h)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("preview: strip: %w", err)
	}

	row := h / float64(max(len(tracks.Tracks), 1))
	for i, t := range tracks.Tracks {
		y := top + float64(i)*row
		for _, ev := range t.Events {
			x0 := r.FrameX(ev.Start, st.Range)
			x1 := r.FrameX(ev.End(), st.Range)
			dc.SetColor(ev.Color.Color())
			dc.DrawRectangle(x0, y+1, max(x1-x0, 1), max(row-2, 1))
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("preview: event bar: %w", err)
			}
		}
	}

	x := r.FrameX(st.Time, st.Range)
	dc.SetColor(r.opts.playhead.Color())
	dc.SetLineWidth(1)
	dc.DrawLine(x, top, x, top+h)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("preview: playhead: %w", err)
	}
	return nil
}

// Image returns the last drawn frame.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the last drawn frame to w.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the last drawn frame to path.
func (r *Renderer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}
