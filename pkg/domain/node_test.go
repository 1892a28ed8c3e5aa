package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHand(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Hand
	}{
		{"left", domain.LeftHand},
		{"LeftHand", domain.LeftHand},
		{" right ", domain.RightHand},
		{"RightHand", domain.RightHand},
	}
	for _, tt := range tests {
		got, err := domain.ParseHand(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := domain.ParseHand("tail")
	assert.ErrorIs(t, err, domain.ErrUnknownHand)
}

func TestHand_Mapping(t *testing.T) {
	assert.Equal(t, domain.NodeLeftHand, domain.LeftHand.Node())
	assert.Equal(t, "Left Trigger", domain.LeftHand.Control())
	assert.Equal(t, domain.NodeRightHand, domain.RightHand.Node())
	assert.Equal(t, "Right Trigger", domain.RightHand.Control())
}

func TestNodeState_Optional(t *testing.T) {
	s := domain.NewNodeState(domain.NodeRightHand)
	_, ok := s.TryPosition()
	assert.False(t, ok)
	_, ok = s.TryRotation()
	assert.False(t, ok)

	s = s.WithRotation(mgl32.QuatRotate(1, mgl32.Vec3{0, 1, 0}))
	_, ok = s.TryPosition()
	assert.False(t, ok, "rotation must not imply position")
	_, ok = s.TryRotation()
	assert.True(t, ok)

	p, ok := s.WithPosition(mgl32.Vec3{1, 2, 3}).TryPosition()
	assert.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, p)
}

func TestChainHooks(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnStrokeBegin: func(context.Context, *domain.StrokeEvent) { calls = append(calls, "a.begin") },
	}
	b := domain.LifecycleHooks{
		OnStrokeBegin:  func(context.Context, *domain.StrokeEvent) { calls = append(calls, "b.begin") },
		OnTrackingLost: func(context.Context, *domain.TrackingEvent) { calls = append(calls, "b.lost") },
	}

	h := domain.ChainHooks(a, b)
	assert.Nil(t, h.OnStrokeEnd, "hooks nobody sets stay nil")

	h.OnStrokeBegin(context.Background(), &domain.StrokeEvent{})
	h.OnTrackingLost(context.Background(), &domain.TrackingEvent{})
	assert.Equal(t, []string{"a.begin", "b.begin", "b.lost"}, calls)
}
