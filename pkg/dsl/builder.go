package dsl

import (
	"fmt"

	"github.com/aretw0/brush/pkg/adapters/replay"
)

// Builder manages the trace construction.
type Builder struct {
	name   string
	frames []*FrameBuilder
}

// New creates a new trace builder.
func New(name string) *Builder {
	return &Builder{name: name}
}

// Frame appends a new frame to the trace.
func (b *Builder) Frame() *FrameBuilder {
	fb := &FrameBuilder{builder: b, frame: replay.FrameSpec{Axes: map[string]float32{}}}
	b.frames = append(b.frames, fb)
	return fb
}

// Build compiles the frames into a validated trace.
func (b *Builder) Build() (*replay.Trace, error) {
	trace := &replay.Trace{Name: b.name, Frames: make([]replay.FrameSpec, 0, len(b.frames))}
	for _, fb := range b.frames {
		trace.Frames = append(trace.Frames, fb.Build())
	}

	if err := trace.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build trace %q: %w", b.name, err)
	}
	return trace, nil
}
