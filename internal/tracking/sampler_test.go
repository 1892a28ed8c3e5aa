package tracking_test

import (
	"testing"

	"github.com/aretw0/brush/internal/tracking"
	"github.com/aretw0/brush/pkg/adapters/memory"
	"github.com/aretw0/brush/pkg/domain"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var (
	p0 = mgl32.Vec3{0, 1, 0}
	p1 = mgl32.Vec3{0.2, 1.1, -0.3}
	q0 = mgl32.QuatIdent()
	q1 = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
)

func TestSampler_InitialPose(t *testing.T) {
	s := tracking.NewSampler(memory.NewTracker())

	pose, ok := s.Sample(domain.NodeRightHand)
	assert.False(t, ok, "missing node is not tracking")
	assert.Equal(t, domain.NewHandPose(), pose)
}

func TestSampler_BothResolved(t *testing.T) {
	tracker := memory.NewTracker()
	tracker.Track(domain.NodeRightHand, p1, q1)
	s := tracking.NewSampler(tracker)

	pose, ok := s.Sample(domain.NodeRightHand)
	assert.True(t, ok)
	assert.Equal(t, domain.HandPose{Position: p1, Rotation: q1}, pose)
}

func TestSampler_IndependentFields(t *testing.T) {
	tracker := memory.NewTracker()
	s := tracking.NewSampler(tracker)
	tracker.Track(domain.NodeRightHand, p0, q0)
	s.Sample(domain.NodeRightHand)

	t.Run("rotation only", func(t *testing.T) {
		tracker.Set(domain.NewNodeState(domain.NodeRightHand).WithRotation(q1))
		pose, ok := s.Sample(domain.NodeRightHand)
		assert.False(t, ok, "status follows position only")
		assert.Equal(t, p0, pose.Position, "position is sticky")
		assert.Equal(t, q1, pose.Rotation)
	})

	t.Run("position only", func(t *testing.T) {
		tracker.Set(domain.NewNodeState(domain.NodeRightHand).WithPosition(p1))
		pose, ok := s.Sample(domain.NodeRightHand)
		assert.True(t, ok)
		assert.Equal(t, p1, pose.Position)
		assert.Equal(t, q1, pose.Rotation, "rotation is sticky")
	})

	t.Run("neither", func(t *testing.T) {
		before := s.Pose()
		tracker.Lose(domain.NodeRightHand)
		pose, ok := s.Sample(domain.NodeRightHand)
		assert.False(t, ok)
		assert.Equal(t, before, pose)
	})

	t.Run("node missing", func(t *testing.T) {
		before := s.Pose()
		tracker.Remove(domain.NodeRightHand)
		pose, ok := s.Sample(domain.NodeRightHand)
		assert.False(t, ok)
		assert.Equal(t, before, pose)
	})
}

func TestSampler_IgnoresOtherNodes(t *testing.T) {
	tracker := memory.NewTracker()
	tracker.Track(domain.NodeLeftHand, p1, q1)
	s := tracking.NewSampler(tracker)

	pose, ok := s.Sample(domain.NodeRightHand)
	assert.False(t, ok)
	assert.Equal(t, domain.NewHandPose(), pose)
}
