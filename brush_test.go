package brush_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/brush"
	"github.com/aretw0/brush/pkg/adapters/memory"
	"github.com/aretw0/brush/pkg/domain"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	tracker  *memory.Tracker
	controls *memory.Controls
	strokes  *memory.Recorder
	brush    *brush.Brush
}

func newFixture(t *testing.T, opts ...brush.Option) *fixture {
	t.Helper()
	f := &fixture{
		tracker:  memory.NewTracker(),
		controls: memory.NewControls(),
		strokes:  memory.NewRecorder(),
	}
	b, err := brush.New(f.tracker, f.controls, f.strokes, opts...)
	require.NoError(t, err)
	f.brush = b
	return f
}

func at(x, y, z float32) domain.HandPose {
	return domain.HandPose{Position: mgl32.Vec3{x, y, z}, Rotation: mgl32.QuatIdent()}
}

func (f *fixture) track(p domain.HandPose) {
	f.tracker.Track(domain.NodeRightHand, p.Position, p.Rotation)
}

func TestBrush_New_MissingCollaborators(t *testing.T) {
	tracker := memory.NewTracker()
	controls := memory.NewControls()
	rec := memory.NewRecorder()

	_, err := brush.New(tracker, controls, nil)
	assert.ErrorIs(t, err, domain.ErrStrokeFactoryMissing)

	_, err = brush.New(nil, controls, rec)
	assert.ErrorIs(t, err, domain.ErrTrackingSourceMissing)

	_, err = brush.New(tracker, nil, rec)
	assert.ErrorIs(t, err, domain.ErrInputSourceMissing)

	var noRecorder *memory.Recorder
	_, err = brush.New(tracker, controls, noRecorder)
	assert.ErrorIs(t, err, domain.ErrStrokeFactoryMissing, "a typed nil sink is still missing")

	var noTracker *memory.Tracker
	_, err = brush.New(noTracker, controls, rec)
	assert.ErrorIs(t, err, domain.ErrTrackingSourceMissing)

	var noControls *memory.Controls
	_, err = brush.New(tracker, noControls, rec)
	assert.ErrorIs(t, err, domain.ErrInputSourceMissing)

	_, err = brush.New(tracker, controls, rec, brush.WithActivationThreshold(1.5))
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)
}

func TestBrush_Defaults(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, domain.RightHand, f.brush.Hand())
	assert.Equal(t, domain.DefaultActivationThreshold, f.brush.Threshold())
	assert.Equal(t, domain.StateIdle, f.brush.State())
}

// Trigger pressed with valid tracking from Idle: Begin and Extend on the same tick.
func TestBrush_PressBeginsAndExtends(t *testing.T) {
	f := newFixture(t)
	p0 := at(0, 1, 0)
	f.track(p0)
	f.controls.SetAxis(domain.ControlRightTrigger, 0.5)

	frame := f.brush.Tick(context.Background())

	assert.True(t, frame.Pressed)
	assert.Equal(t, domain.TransitionBegin, frame.Transition)
	assert.Equal(t, domain.StateDrawing, frame.State)
	assert.Equal(t, uint64(1), frame.StrokeID)
	assert.Equal(t, []memory.Call{
		{Kind: memory.CallBegin, Stroke: 1, Pose: p0},
		{Kind: memory.CallExtend, Stroke: 1, Pose: p0},
	}, f.strokes.Calls())
}

// Axis below the threshold never creates a session.
func TestBrush_BelowThreshold(t *testing.T) {
	f := newFixture(t)
	f.track(at(0, 1, 0))
	f.controls.SetAxis(domain.ControlRightTrigger, 0.05)

	frame := f.brush.Tick(context.Background())

	assert.False(t, frame.Pressed)
	assert.Equal(t, domain.TransitionNone, frame.Transition)
	assert.Empty(t, f.strokes.Calls())
}

// Tracking lost mid-stroke ends the stroke at the last known pose, and the
// next tracked press starts a brand-new stroke.
func TestBrush_TrackingLossEndsStroke(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.controls.SetAxis(domain.ControlRightTrigger, 0.5)

	f.track(at(0, 1, 0))
	f.brush.Tick(ctx)
	last := at(0.1, 1, 0)
	f.track(last)
	f.brush.Tick(ctx)

	f.tracker.Lose(domain.NodeRightHand)
	frame := f.brush.Tick(ctx)
	assert.False(t, frame.Tracking)
	assert.False(t, frame.Pressed, "trigger reads released without tracking")
	assert.Equal(t, domain.TransitionEnd, frame.Transition)
	assert.Equal(t, domain.StateIdle, f.brush.State())
	assert.Equal(t, last, frame.Pose)

	calls := f.strokes.Calls()
	assert.Equal(t, memory.Call{Kind: memory.CallEnd, Stroke: 1, Pose: last}, calls[len(calls)-1])

	f.track(at(0.5, 1, 0))
	frame = f.brush.Tick(ctx)
	assert.Equal(t, domain.TransitionBegin, frame.Transition)
	assert.Equal(t, uint64(2), frame.StrokeID)

	strokes := f.strokes.Strokes()
	require.Len(t, strokes, 2)
	assert.True(t, strokes[0].Ended)
	assert.Equal(t, at(0.5, 1, 0), strokes[1].Start)
}

func TestBrush_NoTrackingNeverPressed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, raw := range []float32{0, 0.2, 0.5, 1} {
		f.controls.SetAxis(domain.ControlRightTrigger, raw)

		f.tracker.Remove(domain.NodeRightHand)
		assert.False(t, f.brush.Tick(ctx).Pressed, "missing node, raw=%v", raw)

		f.tracker.Set(domain.NewNodeState(domain.NodeRightHand).WithRotation(mgl32.QuatIdent()))
		assert.False(t, f.brush.Tick(ctx).Pressed, "rotation only, raw=%v", raw)
	}
	assert.Empty(t, f.strokes.Calls())
}

func TestBrush_RotationOnlyKeepsPosition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.track(at(1, 2, 3))
	f.brush.Tick(ctx)

	q := mgl32.QuatRotate(mgl32.DegToRad(45), mgl32.Vec3{1, 0, 0})
	f.tracker.Set(domain.NewNodeState(domain.NodeRightHand).WithRotation(q))
	frame := f.brush.Tick(ctx)

	assert.False(t, frame.Tracking)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, frame.Pose.Position)
	assert.Equal(t, q, frame.Pose.Rotation)
}

func TestBrush_LeftHandUsesLeftControls(t *testing.T) {
	f := newFixture(t, brush.WithHand(domain.LeftHand))
	ctx := context.Background()

	f.tracker.Track(domain.NodeRightHand, mgl32.Vec3{}, mgl32.QuatIdent())
	f.controls.SetAxis(domain.ControlRightTrigger, 1)
	assert.Equal(t, domain.TransitionNone, f.brush.Tick(ctx).Transition)

	f.tracker.Track(domain.NodeLeftHand, mgl32.Vec3{-1, 1, 0}, mgl32.QuatIdent())
	f.controls.SetAxis(domain.ControlLeftTrigger, 1)
	frame := f.brush.Tick(ctx)
	assert.Equal(t, domain.TransitionBegin, frame.Transition)
	assert.Equal(t, domain.LeftHand, frame.Hand)
}

func TestBrush_TrackingHooks(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	var events []domain.TrackingEvent
	record := func(_ context.Context, e *domain.TrackingEvent) { events = append(events, *e) }

	f := newFixture(t,
		brush.WithClock(clock),
		brush.WithLifecycleHooks(domain.LifecycleHooks{
			OnTrackingLost:     record,
			OnTrackingRestored: record,
		}),
	)
	ctx := context.Background()

	f.brush.Tick(ctx) // never tracked: no edge
	f.track(at(0, 1, 0))
	f.brush.Tick(ctx)
	f.tracker.Lose(domain.NodeRightHand)
	f.brush.Tick(ctx)
	f.brush.Tick(ctx) // still lost: no duplicate
	clock.Advance(time.Second)
	f.track(at(0, 1, 1))
	f.brush.Tick(ctx)

	require.Len(t, events, 2)
	assert.Equal(t, domain.EventTrackingLost, events[0].Type)
	assert.Equal(t, at(0, 1, 0), events[0].LastKnown)
	assert.Equal(t, domain.EventTrackingRestored, events[1].Type)
	assert.Equal(t, clock.Now(), events[1].Timestamp)
}

func TestBrush_TickCounter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var last domain.Frame
	for i := 0; i < 5; i++ {
		last = f.brush.Tick(ctx)
	}
	assert.Equal(t, uint64(5), last.Tick)
}
