package memory

import (
	"sync"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/go-gl/mathgl/mgl32"
)

// Tracker implements ports.TrackingSource with samples set by the caller.
// Safe for concurrent use.
type Tracker struct {
	mu     sync.RWMutex
	states map[domain.Node]domain.NodeState
	order  []domain.Node
}

// NewTracker creates a tracker reporting no nodes.
func NewTracker() *Tracker {
	return &Tracker{
		states: make(map[domain.Node]domain.NodeState),
	}
}

// Set replaces the sample reported for its node.
func (t *Tracker) Set(state domain.NodeState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.states[state.Node]; !ok {
		t.order = append(t.order, state.Node)
	}
	t.states[state.Node] = state
}

// Track reports node with both position and rotation resolved.
func (t *Tracker) Track(node domain.Node, position mgl32.Vec3, rotation mgl32.Quat) {
	t.Set(domain.NewNodeState(node).WithPosition(position).WithRotation(rotation))
}

// Lose keeps node listed with neither position nor rotation resolved.
func (t *Tracker) Lose(node domain.Node) {
	t.Set(domain.NewNodeState(node))
}

// Remove drops node from the node list entirely.
func (t *Tracker) Remove(node domain.Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, node)
	for i, n := range t.order {
		if n == node {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// NodeStates returns the current samples in insertion order.
func (t *Tracker) NodeStates() []domain.NodeState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	states := make([]domain.NodeState, 0, len(t.order))
	for _, n := range t.order {
		states = append(states, t.states[n])
	}
	return states
}

// Controls implements ports.InputSource with axis values set by the caller.
// Safe for concurrent use.
type Controls struct {
	mu   sync.RWMutex
	axes map[string]float32
}

// NewControls creates an input source where every control reads 0.
func NewControls() *Controls {
	return &Controls{
		axes: make(map[string]float32),
	}
}

// SetAxis sets the raw value of control.
func (c *Controls) SetAxis(control string, value float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.axes[control] = value
}

// Axis returns the raw value of control.
func (c *Controls) Axis(control string) float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.axes[control]
}
