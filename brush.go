package brush

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/aretw0/brush/internal/logging"
	"github.com/aretw0/brush/internal/runtime"
	"github.com/aretw0/brush/internal/tracking"
	"github.com/aretw0/brush/internal/trigger"
	"github.com/aretw0/brush/pkg/domain"
	"github.com/aretw0/brush/pkg/ports"
	"github.com/jonboulle/clockwork"
)

// Brush is the high-level entry point for the brush library.
// It runs the per-tick pipeline for one hand: sample the pose, gate the trigger,
// step the stroke lifecycle. Not safe for concurrent use.
type Brush struct {
	hand      domain.Hand
	threshold float32
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	clock     clockwork.Clock

	input     ports.InputSource
	sampler   *tracking.Sampler
	gate      trigger.Gate
	lifecycle *runtime.Lifecycle

	ticks    uint64
	tracking bool
	lost     bool
}

// Option defines a functional option for configuring the Brush.
type Option func(*Brush)

// WithHand selects the tracked node and trigger control (default: RightHand).
func WithHand(hand domain.Hand) Option {
	return func(b *Brush) {
		b.hand = hand
	}
}

// WithActivationThreshold sets the raw axis value the trigger must exceed (default: 0.1).
func WithActivationThreshold(threshold float32) Option {
	return func(b *Brush) {
		b.threshold = threshold
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(b *Brush) {
		b.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the brush.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Brush) {
		b.logger = logger
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock clockwork.Clock) Option {
	return func(b *Brush) {
		b.clock = clock
	}
}

// New creates a brush reading poses from tracker and trigger values from input,
// and drawing strokes into sink. A missing collaborator is a configuration error
// reported here, never at tick time.
func New(tracker ports.TrackingSource, input ports.InputSource, sink ports.StrokeSink, opts ...Option) (*Brush, error) {
	if isNil(sink) {
		return nil, domain.ErrStrokeFactoryMissing
	}
	if isNil(tracker) {
		return nil, domain.ErrTrackingSourceMissing
	}
	if isNil(input) {
		return nil, domain.ErrInputSourceMissing
	}

	b := &Brush{
		hand:      domain.RightHand,
		threshold: domain.DefaultActivationThreshold,
		input:     input,
	}
	for _, opt := range opts {
		opt(b)
	}

	gate, err := trigger.NewGate(b.threshold)
	if err != nil {
		return nil, fmt.Errorf("invalid brush config: %w", err)
	}
	b.gate = gate

	if b.logger == nil {
		b.logger = logging.NewNop()
	}
	// The lifecycle tags its own records with the hand.
	base := b.logger
	b.logger = b.logger.With("hand", b.hand.String())

	if b.clock == nil {
		b.clock = clockwork.NewRealClock()
	}

	b.sampler = tracking.NewSampler(tracker)
	b.lifecycle = runtime.NewLifecycle(sink,
		runtime.WithHand(b.hand),
		runtime.WithLogger(base),
		runtime.WithLifecycleHooks(b.hooks),
		runtime.WithClock(b.clock.Now),
	)

	return b, nil
}

// isNil also catches typed nils, such as a nil *memory.Recorder stored in the interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Tick runs one Sample -> Gate -> Lifecycle pass and reports what happened.
func (b *Brush) Tick(ctx context.Context) domain.Frame {
	b.ticks++

	pose, tracked := b.sampler.Sample(b.hand.Node())
	b.trackingEdge(ctx, pose, tracked)

	pressed := b.gate.Evaluate(b.input.Axis(b.hand.Control()), tracked)

	strokeID := b.lifecycle.StrokeID()
	transition := b.lifecycle.Step(ctx, pose, pressed)
	if strokeID == 0 {
		strokeID = b.lifecycle.StrokeID()
	}

	return domain.Frame{
		Tick:       b.ticks,
		Hand:       b.hand,
		Pose:       pose,
		Tracking:   tracked,
		Pressed:    pressed,
		State:      b.lifecycle.State(),
		Transition: transition,
		StrokeID:   strokeID,
	}
}

func (b *Brush) trackingEdge(ctx context.Context, pose domain.HandPose, tracked bool) {
	defer func() { b.tracking = tracked }()

	switch {
	case b.tracking && !tracked:
		b.lost = true
		b.logger.Warn("tracking lost", "node", string(b.hand.Node()), "drawing", b.lifecycle.State() == domain.StateDrawing)
		if b.hooks.OnTrackingLost != nil {
			b.hooks.OnTrackingLost(ctx, b.trackingEvent(domain.EventTrackingLost, pose))
		}
	case b.lost && tracked:
		b.lost = false
		b.logger.Info("tracking restored", "node", string(b.hand.Node()))
		if b.hooks.OnTrackingRestored != nil {
			b.hooks.OnTrackingRestored(ctx, b.trackingEvent(domain.EventTrackingRestored, pose))
		}
	}
}

func (b *Brush) trackingEvent(typ domain.EventType, pose domain.HandPose) *domain.TrackingEvent {
	return &domain.TrackingEvent{
		EventBase: domain.EventBase{
			Timestamp: b.clock.Now(),
			Type:      typ,
			Hand:      b.hand.String(),
		},
		Node:      b.hand.Node(),
		LastKnown: pose,
	}
}

// Hand returns the hand the brush follows.
func (b *Brush) Hand() domain.Hand {
	return b.hand
}

// State returns the current lifecycle state.
func (b *Brush) State() domain.DrawState {
	return b.lifecycle.State()
}

// Pose returns the last known pose of the brush tip.
func (b *Brush) Pose() domain.HandPose {
	return b.sampler.Pose()
}

// Threshold returns the activation threshold in use.
func (b *Brush) Threshold() float32 {
	return b.gate.Threshold()
}
