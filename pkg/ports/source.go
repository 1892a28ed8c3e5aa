package ports

import "github.com/aretw0/brush/pkg/domain"

// TrackingSource reports the tracked nodes known to the host platform.
// It is queried fresh every tick and must not block.
type TrackingSource interface {
	// NodeStates returns one entry per tracked node visible this tick.
	// A node may be missing entirely, or present with only some fields resolved.
	NodeStates() []domain.NodeState
}

// InputSource reports raw values of named input controls.
type InputSource interface {
	// Axis returns the raw normalized analog value of the control.
	// Unknown controls report 0.
	Axis(control string) float32
}
