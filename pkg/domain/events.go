package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStrokeBegin      EventType = "stroke_begin"
	EventStrokeExtend     EventType = "stroke_extend"
	EventStrokeEnd        EventType = "stroke_end"
	EventTrackingLost     EventType = "tracking_lost"
	EventTrackingRestored EventType = "tracking_restored"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Hand      string    `json:"hand"`
}

// StrokeEvent reports a lifecycle transition of a stroke.
type StrokeEvent struct {
	EventBase
	StrokeID uint64   `json:"stroke_id"`
	Pose     HandPose `json:"-"`
	// Points is the number of Extend calls delivered to the stroke so far.
	Points int `json:"points"`
}

// TrackingEvent reports an edge in tracking validity.
type TrackingEvent struct {
	EventBase
	Node Node `json:"node"`
	// LastKnown is the pose retained while tracking is unavailable.
	LastKnown HandPose `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnStrokeBegin      func(context.Context, *StrokeEvent)
	OnStrokeExtend     func(context.Context, *StrokeEvent)
	OnStrokeEnd        func(context.Context, *StrokeEvent)
	OnTrackingLost     func(context.Context, *TrackingEvent)
	OnTrackingRestored func(context.Context, *TrackingEvent)
}

// ChainHooks returns hooks that call each of the given hooks in order.
func ChainHooks(hooks ...LifecycleHooks) LifecycleHooks {
	stroke := func(pick func(LifecycleHooks) func(context.Context, *StrokeEvent)) func(context.Context, *StrokeEvent) {
		var fns []func(context.Context, *StrokeEvent)
		for _, h := range hooks {
			if fn := pick(h); fn != nil {
				fns = append(fns, fn)
			}
		}
		if len(fns) == 0 {
			return nil
		}
		return func(ctx context.Context, e *StrokeEvent) {
			for _, fn := range fns {
				fn(ctx, e)
			}
		}
	}
	tracking := func(pick func(LifecycleHooks) func(context.Context, *TrackingEvent)) func(context.Context, *TrackingEvent) {
		var fns []func(context.Context, *TrackingEvent)
		for _, h := range hooks {
			if fn := pick(h); fn != nil {
				fns = append(fns, fn)
			}
		}
		if len(fns) == 0 {
			return nil
		}
		return func(ctx context.Context, e *TrackingEvent) {
			for _, fn := range fns {
				fn(ctx, e)
			}
		}
	}

	return LifecycleHooks{
		OnStrokeBegin:      stroke(func(h LifecycleHooks) func(context.Context, *StrokeEvent) { return h.OnStrokeBegin }),
		OnStrokeExtend:     stroke(func(h LifecycleHooks) func(context.Context, *StrokeEvent) { return h.OnStrokeExtend }),
		OnStrokeEnd:        stroke(func(h LifecycleHooks) func(context.Context, *StrokeEvent) { return h.OnStrokeEnd }),
		OnTrackingLost:     tracking(func(h LifecycleHooks) func(context.Context, *TrackingEvent) { return h.OnTrackingLost }),
		OnTrackingRestored: tracking(func(h LifecycleHooks) func(context.Context, *TrackingEvent) { return h.OnTrackingRestored }),
	}
}
