package brush

import (
	"context"
	"fmt"

	"github.com/aretw0/brush/pkg/domain"
)

// Rig ticks one brush per hand. Brushes share nothing; each runs its own
// lifecycle, in the order they were given.
type Rig struct {
	brushes []*Brush
}

// NewRig groups brushes. Two brushes for the same hand are rejected.
func NewRig(brushes ...*Brush) (*Rig, error) {
	seen := make(map[domain.Hand]bool, len(brushes))
	for _, b := range brushes {
		if seen[b.Hand()] {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateHand, b.Hand())
		}
		seen[b.Hand()] = true
	}
	return &Rig{brushes: brushes}, nil
}

// Tick ticks every brush once and returns their frames in order.
func (r *Rig) Tick(ctx context.Context) []domain.Frame {
	frames := make([]domain.Frame, 0, len(r.brushes))
	for _, b := range r.brushes {
		frames = append(frames, b.Tick(ctx))
	}
	return frames
}

// Brush returns the brush following hand.
func (r *Rig) Brush(hand domain.Hand) (*Brush, bool) {
	for _, b := range r.brushes {
		if b.Hand() == hand {
			return b, true
		}
	}
	return nil, false
}

// Brushes returns the brushes in tick order.
func (r *Rig) Brushes() []*Brush {
	return append([]*Brush(nil), r.brushes...)
}
