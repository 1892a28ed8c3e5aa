package replay

import (
	"errors"
	"sync"

	"github.com/aretw0/brush/pkg/domain"
)

// ErrExhausted is returned by Advance once every frame has been played.
var ErrExhausted = errors.New("trace exhausted")

type frame struct {
	states []domain.NodeState
	axes   map[string]float32
	// end is the tick index one past the last tick this frame is held for.
	end int
}

// Player plays a Trace back as both a ports.TrackingSource and a ports.InputSource.
// Before the first Advance it reports no nodes and every axis at 0.
type Player struct {
	mu     sync.RWMutex
	frames []frame
	ticks  int
	cursor int // tick index
	index  int // frame holding cursor
}

// NewPlayer prepares trace for playback. Repeated frames are stored once.
func NewPlayer(trace *Trace) *Player {
	p := &Player{cursor: -1}
	for _, f := range trace.Frames {
		p.ticks += f.ticks()
		p.frames = append(p.frames, frame{states: f.states(), axes: f.Axes, end: p.ticks})
	}
	return p
}

// Advance moves to the next tick.
func (p *Player) Advance() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor+1 >= p.ticks {
		p.cursor = p.ticks
		p.index = len(p.frames)
		return ErrExhausted
	}
	p.cursor++
	for p.index < len(p.frames) && p.cursor >= p.frames[p.index].end {
		p.index++
	}
	return nil
}

// Position returns the 0-based index of the current tick, -1 before the first Advance.
func (p *Player) Position() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.cursor >= p.ticks {
		return p.ticks - 1
	}
	return p.cursor
}

// Len returns the number of ticks in the trace.
func (p *Player) Len() int {
	return p.ticks
}

// NodeStates returns the samples of the current frame.
func (p *Player) NodeStates() []domain.NodeState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	fr, ok := p.current()
	if !ok {
		return nil
	}
	return append([]domain.NodeState(nil), fr.states...)
}

// Axis returns the raw value of control in the current frame.
func (p *Player) Axis(control string) float32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	fr, ok := p.current()
	if !ok {
		return 0
	}
	return fr.axes[control]
}

func (p *Player) current() (frame, bool) {
	if p.cursor < 0 || p.cursor >= p.ticks {
		return frame{}, false
	}
	return p.frames[p.index], true
}
