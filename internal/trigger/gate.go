// Package trigger turns a raw analog trigger value into a pressed decision.
package trigger

import (
	"fmt"

	"github.com/aretw0/brush/pkg/domain"
)

// Gate decides whether a trigger counts as pressed.
type Gate struct {
	threshold float32
}

// NewGate creates a gate with the given activation threshold, which must lie in [0, 1).
func NewGate(threshold float32) (Gate, error) {
	// Written so that NaN is rejected too.
	if !(threshold >= 0 && threshold < 1) {
		return Gate{}, fmt.Errorf("%w: got %v", domain.ErrInvalidThreshold, threshold)
	}
	return Gate{threshold: threshold}, nil
}

// DefaultGate returns a gate using domain.DefaultActivationThreshold.
func DefaultGate() Gate {
	return Gate{threshold: domain.DefaultActivationThreshold}
}

// Threshold returns the activation threshold.
func (g Gate) Threshold() float32 {
	return g.threshold
}

// Evaluate reports whether raw exceeds the threshold.
// Without tracking the trigger always reads as released, so a stroke never outlives
// the controller leaving tracking range.
func (g Gate) Evaluate(raw float32, tracking bool) bool {
	if !tracking {
		return false
	}
	return raw > g.threshold
}
