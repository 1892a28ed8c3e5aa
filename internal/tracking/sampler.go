// Package tracking resolves the pose of a tracked node from the host tracking source.
package tracking

import (
	"github.com/aretw0/brush/pkg/domain"
	"github.com/aretw0/brush/pkg/ports"
)

// Sampler keeps the last known pose of a node.
// Position and rotation are sticky: a field that fails to resolve keeps its previous value.
type Sampler struct {
	source ports.TrackingSource
	pose   domain.HandPose
}

// NewSampler creates a sampler starting at the origin with identity rotation.
func NewSampler(source ports.TrackingSource) *Sampler {
	return &Sampler{
		source: source,
		pose:   domain.NewHandPose(),
	}
}

// Sample refreshes the stored pose of node from the current node list.
// The returned status is true only if the position resolved this tick;
// rotation success does not affect it.
func (s *Sampler) Sample(node domain.Node) (domain.HandPose, bool) {
	for _, state := range s.source.NodeStates() {
		if state.Node != node {
			continue
		}

		position, gotPosition := state.TryPosition()
		rotation, gotRotation := state.TryRotation()

		if gotPosition {
			s.pose.Position = position
		}
		if gotRotation {
			s.pose.Rotation = rotation
		}

		return s.pose, gotPosition
	}

	return s.pose, false
}

// Pose returns the last known pose without sampling.
func (s *Sampler) Pose() domain.HandPose {
	return s.pose
}
