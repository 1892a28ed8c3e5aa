package memory_test

import (
	"testing"

	"github.com/aretw0/brush/pkg/adapters/memory"
	"github.com/aretw0/brush/pkg/domain"
	contract "github.com/aretw0/brush/pkg/ports/tests"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTracker_Contract(t *testing.T) {
	tracker := memory.NewTracker()
	tracker.Track(domain.NodeRightHand, mgl32.Vec3{0, 1, 0}, mgl32.QuatIdent())
	tracker.Track(domain.NodeHead, mgl32.Vec3{0, 1.7, 0}, mgl32.QuatIdent())

	contract.TrackingSourceContractTest(t, tracker, domain.NodeRightHand)
}

func TestTracker_LoseAndRemove(t *testing.T) {
	tracker := memory.NewTracker()
	tracker.Track(domain.NodeLeftHand, mgl32.Vec3{1, 1, 1}, mgl32.QuatIdent())
	tracker.Track(domain.NodeRightHand, mgl32.Vec3{2, 2, 2}, mgl32.QuatIdent())

	tracker.Lose(domain.NodeLeftHand)
	states := tracker.NodeStates()
	assert.Len(t, states, 2)
	assert.Equal(t, domain.NodeLeftHand, states[0].Node, "insertion order is kept")
	_, ok := states[0].TryPosition()
	assert.False(t, ok)

	tracker.Remove(domain.NodeLeftHand)
	states = tracker.NodeStates()
	assert.Len(t, states, 1)
	assert.Equal(t, domain.NodeRightHand, states[0].Node)
}

func TestControls_Axis(t *testing.T) {
	c := memory.NewControls()
	assert.Zero(t, c.Axis(domain.ControlRightTrigger))
	c.SetAxis(domain.ControlRightTrigger, 0.5)
	assert.Equal(t, float32(0.5), c.Axis(domain.ControlRightTrigger))
}
