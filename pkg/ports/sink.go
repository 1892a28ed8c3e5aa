package ports

import (
	"context"

	"github.com/aretw0/brush/pkg/domain"
)

// StrokeSink is the stroke factory. The stroke lifecycle calls Begin on the rising
// edge of the trigger and drives the returned session until the falling edge.
type StrokeSink interface {
	// Begin creates a new stroke whose first brush tip point is pose.
	// It must return a non-nil session.
	Begin(ctx context.Context, pose domain.HandPose) StrokeSession
}

// StrokeSession receives the points of a single stroke.
// No call is made on a session after End.
type StrokeSession interface {
	// Extend moves the brush tip of the stroke to pose.
	Extend(ctx context.Context, pose domain.HandPose)

	// End finishes the stroke at pose.
	End(ctx context.Context, pose domain.HandPose)
}
