package ports

import (
	"context"
	"testing"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStrokeSinkContract runs a suite of tests to verify that a StrokeSink implementation
// adheres to the defined interface contract.
func RunStrokeSinkContract(t *testing.T, sink StrokeSink) {
	ctx := context.Background()
	p0 := domain.HandPose{Position: mgl32.Vec3{0, 1, 0}, Rotation: mgl32.QuatIdent()}
	p1 := domain.HandPose{Position: mgl32.Vec3{0, 1, 0.5}, Rotation: mgl32.QuatIdent()}

	t.Run("Begin returns a session", func(t *testing.T) {
		session := sink.Begin(ctx, p0)
		require.NotNil(t, session, "Begin must return a session")
		session.Extend(ctx, p0)
		session.Extend(ctx, p1)
		session.End(ctx, p1)
	})

	t.Run("Sessions are independent", func(t *testing.T) {
		first := sink.Begin(ctx, p0)
		require.NotNil(t, first)
		first.Extend(ctx, p0)
		first.End(ctx, p0)

		second := sink.Begin(ctx, p1)
		require.NotNil(t, second)
		assert.NotSame(t, first, second, "a new stroke must not reuse a finished session")
		second.Extend(ctx, p1)
		second.End(ctx, p1)
	})

	t.Run("End with the begin pose", func(t *testing.T) {
		// A stroke released on the same pose it started from is still valid.
		session := sink.Begin(ctx, p0)
		require.NotNil(t, session)
		session.Extend(ctx, p0)
		session.End(ctx, p0)
	})
}
