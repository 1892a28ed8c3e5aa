package domain

import "errors"

// ErrStrokeFactoryMissing is returned when a brush is built without a StrokeSink.
var ErrStrokeFactoryMissing = errors.New("stroke factory not configured")

// ErrTrackingSourceMissing is returned when a brush is built without a tracking source.
var ErrTrackingSourceMissing = errors.New("tracking source not configured")

// ErrInputSourceMissing is returned when a brush is built without an input source.
var ErrInputSourceMissing = errors.New("input source not configured")

// ErrInvalidThreshold is returned when an activation threshold lies outside [0, 1).
var ErrInvalidThreshold = errors.New("activation threshold must be in [0, 1)")

// ErrUnknownHand is returned when a hand name cannot be parsed.
var ErrUnknownHand = errors.New("unknown hand")

// ErrDuplicateHand is returned when a rig is given two brushes for the same hand.
var ErrDuplicateHand = errors.New("hand already has a brush")
