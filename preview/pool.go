package preview

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/timeline"
	"github.com/gogpu/replay/track"
)

// ErrPoolClosed is returned by Submit after Close.
var ErrPoolClosed = errors.New("preview: pool closed")

// newRenderer builds the renderer of each worker.
var newRenderer = New

// Frame is everything needed to draw one image away from the goroutine
// that owns the engine.
type Frame struct {
	Entities []replay.EntitySnapshot
	Tracks   track.Snapshot
	Clock    timeline.State
	// Path is the PNG file written for the frame.
	Path string
}

// Pool renders frames on a fixed set of workers. Each worker owns a
// Renderer; a worker whose queue is empty steals from the others.
//
// Pool is safe for concurrent use.
type Pool struct {
	renderers []*Renderer
	queues    []chan Frame
	done      chan struct{}
	wg        sync.WaitGroup
	pending   sync.WaitGroup
	running   atomic.Bool

	// submitMu orders Submit against Close: a frame is either queued
	// before done is closed or rejected.
	submitMu sync.Mutex

	mu   sync.Mutex
	errs []error
}

// NewPool starts workers renderers of the given size. If workers is 0 or
// negative, GOMAXPROCS is used.
func NewPool(workers, width, height int, opts ...Option) (*Pool, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		renderers: make([]*Renderer, workers),
		queues:    make([]chan Frame, workers),
		done:      make(chan struct{}),
	}
	for i := range workers {
		r, err := newRenderer(width, height, opts...)
		if err != nil {
			for _, made := range p.renderers[:i] {
				err = errors.Join(err, made.Close())
			}
			return nil, err
		}
		p.renderers[i] = r
		p.queues[i] = make(chan Frame, queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p, nil
}

// Workers returns the number of workers.
func (p *Pool) Workers() int { return len(p.queues) }

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(id)
			return
		case f := <-own:
			p.render(id, f)
		default:
			if f, ok := p.steal(id); ok {
				p.render(id, f)
				continue
			}
			select {
			case <-p.done:
				p.drain(id)
				return
			case f := <-own:
				p.render(id, f)
			}
		}
	}
}

func (p *Pool) drain(id int) {
	for {
		select {
		case f := <-p.queues[id]:
			p.render(id, f)
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) (Frame, bool) {
	for i, q := range p.queues {
		if i == id {
			continue
		}
		select {
		case f := <-q:
			return f, true
		default:
		}
	}
	return Frame{}, false
}

func (p *Pool) render(id int, f Frame) {
	defer p.pending.Done()
	r := p.renderers[id]
	err := r.Draw(f.Entities, f.Tracks, f.Clock)
	if err == nil {
		err = r.SavePNG(f.Path)
	}
	if err != nil {
		p.mu.Lock()
		p.errs = append(p.errs, fmt.Errorf("frame %d: %w", f.Clock.Time, err))
		p.mu.Unlock()
		return
	}
	replay.Logger().Debug("preview: frame written", "time", f.Clock.Time, "path", f.Path, "worker", id)
}

// Submit queues f on the worker with the shortest queue. It blocks while
// that queue is full.
func (p *Pool) Submit(f Frame) error {
	p.submitMu.Lock()
	defer p.submitMu.Unlock()
	if !p.running.Load() {
		return ErrPoolClosed
	}
	idx := 0
	for i := 1; i < len(p.queues); i++ {
		if len(p.queues[i]) < len(p.queues[idx]) {
			idx = i
		}
	}

	// Workers keep consuming until done is closed, which cannot happen
	// while submitMu is held.
	p.pending.Add(1)
	p.queues[idx] <- f
	return nil
}

// Wait blocks until every submitted frame is written and returns the
// errors collected since the previous Wait.
func (p *Pool) Wait() error {
	p.pending.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	err := errors.Join(p.errs...)
	p.errs = nil
	return err
}

// Close finishes queued frames, stops the workers and releases the
// renderers. Close is safe to call multiple times.
func (p *Pool) Close() error {
	p.submitMu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.submitMu.Unlock()
		return nil
	}
	close(p.done)
	p.submitMu.Unlock()

	p.wg.Wait()
	for i := range p.queues {
		p.drain(i)
	}

	errs := []error{p.Wait()}
	for _, r := range p.renderers {
		errs = append(errs, r.Close())
	}
	return errors.Join(errs...)
}
