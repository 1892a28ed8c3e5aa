package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/brush/internal/logging"
	"github.com/aretw0/brush/pkg/domain"
	"github.com/aretw0/brush/pkg/ports"
)

// Lifecycle is the stroke state machine. It owns at most one stroke session,
// and holding a session is exactly what it means to be drawing.
// Not safe for concurrent use.
type Lifecycle struct {
	sink   ports.StrokeSink
	hand   domain.Hand
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time

	session  ports.StrokeSession
	strokeID uint64
	points   int
	lastID   uint64
}

// LifecycleOption configures a Lifecycle.
type LifecycleOption func(*Lifecycle)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) LifecycleOption {
	return func(l *Lifecycle) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) LifecycleOption {
	return func(l *Lifecycle) {
		l.hooks = hooks
	}
}

// WithHand labels events and logs with the hand driving the lifecycle.
func WithHand(hand domain.Hand) LifecycleOption {
	return func(l *Lifecycle) {
		l.hand = hand
	}
}

// WithClock overrides the timestamp source for events.
func WithClock(now func() time.Time) LifecycleOption {
	return func(l *Lifecycle) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLifecycle creates an idle lifecycle dispatching to sink.
func NewLifecycle(sink ports.StrokeSink, opts ...LifecycleOption) *Lifecycle {
	l := &Lifecycle{
		sink:   sink,
		hand:   domain.RightHand,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State reports whether a stroke is in progress.
func (l *Lifecycle) State() domain.DrawState {
	if l.session != nil {
		return domain.StateDrawing
	}
	return domain.StateIdle
}

// StrokeID returns the id of the stroke in progress, 0 if idle.
func (l *Lifecycle) StrokeID() uint64 {
	return l.strokeID
}

// Step advances the state machine by one tick.
//
// On the rising edge of pressed the sink is asked for a new session, and the same
// pose is immediately delivered to it again as the first Extend. While pressed, every
// tick extends the stroke. On the falling edge the stroke ends at pose, which may be
// stale if tracking was just lost.
func (l *Lifecycle) Step(ctx context.Context, pose domain.HandPose, pressed bool) domain.Transition {
	switch {
	case pressed && l.session == nil:
		if !l.begin(ctx, pose) {
			return domain.TransitionNone
		}
		l.extend(ctx, pose)
		return domain.TransitionBegin

	case pressed:
		l.extend(ctx, pose)
		return domain.TransitionExtend

	case l.session != nil:
		l.end(ctx, pose)
		return domain.TransitionEnd
	}

	return domain.TransitionNone
}

func (l *Lifecycle) begin(ctx context.Context, pose domain.HandPose) bool {
	session := l.sink.Begin(ctx, pose)
	if session == nil {
		l.logger.Error("stroke sink returned no session", "hand", l.hand.String())
		return false
	}

	l.lastID++
	l.session = session
	l.strokeID = l.lastID
	l.points = 0

	l.logger.Debug("stroke_begin", "hand", l.hand.String(), "stroke_id", l.strokeID)
	if l.hooks.OnStrokeBegin != nil {
		l.hooks.OnStrokeBegin(ctx, l.event(domain.EventStrokeBegin, pose))
	}
	return true
}

func (l *Lifecycle) extend(ctx context.Context, pose domain.HandPose) {
	l.session.Extend(ctx, pose)
	l.points++

	if l.hooks.OnStrokeExtend != nil {
		l.hooks.OnStrokeExtend(ctx, l.event(domain.EventStrokeExtend, pose))
	}
}

func (l *Lifecycle) end(ctx context.Context, pose domain.HandPose) {
	l.session.End(ctx, pose)

	l.logger.Debug("stroke_end", "hand", l.hand.String(), "stroke_id", l.strokeID, "points", l.points)
	if l.hooks.OnStrokeEnd != nil {
		l.hooks.OnStrokeEnd(ctx, l.event(domain.EventStrokeEnd, pose))
	}

	l.session = nil
	l.strokeID = 0
	l.points = 0
}

func (l *Lifecycle) event(typ domain.EventType, pose domain.HandPose) *domain.StrokeEvent {
	return &domain.StrokeEvent{
		EventBase: domain.EventBase{
			Timestamp: l.now(),
			Type:      typ,
			Hand:      l.hand.String(),
		},
		StrokeID: l.strokeID,
		Pose:     pose,
		Points:   l.points,
	}
}
