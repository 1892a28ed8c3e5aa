package dsl

import (
	"github.com/aretw0/brush/pkg/adapters/replay"
	"github.com/aretw0/brush/pkg/domain"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameBuilder provides a fluent API for configuring a frame.
type FrameBuilder struct {
	frame   replay.FrameSpec
	builder *Builder
}

// Note attaches a free-form description to the frame.
func (f *FrameBuilder) Note(note string) *FrameBuilder {
	f.frame.Note = note
	return f
}

// Track reports a fresh position for node.
func (f *FrameBuilder) Track(node domain.Node, position mgl32.Vec3) *FrameBuilder {
	s := f.sample(node)
	s.Position = []float32{position[0], position[1], position[2]}
	return f
}

// Rotate reports a fresh rotation for node.
func (f *FrameBuilder) Rotate(node domain.Node, rotation mgl32.Quat) *FrameBuilder {
	s := f.sample(node)
	s.Rotation = []float32{rotation.W, rotation.V[0], rotation.V[1], rotation.V[2]}
	return f
}

// Pose reports both position and rotation for node.
func (f *FrameBuilder) Pose(node domain.Node, pose domain.HandPose) *FrameBuilder {
	return f.Track(node, pose.Position).Rotate(node, pose.Rotation)
}

// Lose lists node without a position, so it is seen but not tracked.
func (f *FrameBuilder) Lose(node domain.Node) *FrameBuilder {
	f.sample(node).Position = nil
	return f
}

// Axis sets the raw value of an input control.
func (f *FrameBuilder) Axis(control string, value float32) *FrameBuilder {
	f.frame.Axes[control] = value
	return f
}

// Press sets the trigger of hand to value.
func (f *FrameBuilder) Press(hand domain.Hand, value float32) *FrameBuilder {
	return f.Axis(hand.Control(), value)
}

// Repeat holds the frame for n ticks.
func (f *FrameBuilder) Repeat(n int) *FrameBuilder {
	f.frame.Repeat = n
	return f
}

// Frame starts the next frame of the same trace.
func (f *FrameBuilder) Frame() *FrameBuilder {
	return f.builder.Frame()
}

// Build returns a copy of the underlying replay.FrameSpec.
func (f *FrameBuilder) Build() replay.FrameSpec {
	out := f.frame
	out.Nodes = append([]replay.Sample(nil), f.frame.Nodes...)
	out.Axes = make(map[string]float32, len(f.frame.Axes))
	for k, v := range f.frame.Axes {
		out.Axes[k] = v
	}
	return out
}

func (f *FrameBuilder) sample(node domain.Node) *replay.Sample {
	for i := range f.frame.Nodes {
		if f.frame.Nodes[i].Node == node {
			return &f.frame.Nodes[i]
		}
	}
	f.frame.Nodes = append(f.frame.Nodes, replay.Sample{Node: node})
	return &f.frame.Nodes[len(f.frame.Nodes)-1]
}
