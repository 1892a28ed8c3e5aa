package domain

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Node identifies a tracked device in the host tracking system.
type Node string

const (
	NodeLeftHand  Node = "left_hand"
	NodeRightHand Node = "right_hand"
	NodeHead      Node = "head"
)

// Hand selects which controller a brush follows.
type Hand int

const (
	LeftHand Hand = iota
	RightHand
)

// Node returns the tracked node for the hand.
func (h Hand) Node() Node {
	if h == LeftHand {
		return NodeLeftHand
	}
	return NodeRightHand
}

// Control returns the name of the trigger control mapped to the hand.
func (h Hand) Control() string {
	if h == LeftHand {
		return ControlLeftTrigger
	}
	return ControlRightTrigger
}

func (h Hand) String() string {
	if h == LeftHand {
		return "left"
	}
	return "right"
}

// ParseHand accepts "left"/"right" as well as "LeftHand"/"RightHand".
func ParseHand(s string) (Hand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "lefthand", "left_hand":
		return LeftHand, nil
	case "right", "righthand", "right_hand":
		return RightHand, nil
	}
	return RightHand, fmt.Errorf("%w: %q", ErrUnknownHand, s)
}

// HandPose is the last known pose of a tracked node.
// Position and Rotation go stale independently of each other.
type HandPose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewHandPose returns a pose at the origin with identity rotation.
func NewHandPose() HandPose {
	return HandPose{Rotation: mgl32.QuatIdent()}
}

// NodeState is a single sample reported by the tracking source.
// Position and rotation are optional and resolve independently.
type NodeState struct {
	Node Node

	position    mgl32.Vec3
	rotation    mgl32.Quat
	hasPosition bool
	hasRotation bool
}

// NewNodeState creates a sample for node with neither position nor rotation resolved.
func NewNodeState(node Node) NodeState {
	return NodeState{Node: node}
}

// WithPosition returns a copy of the sample with a resolved position.
func (s NodeState) WithPosition(p mgl32.Vec3) NodeState {
	s.position = p
	s.hasPosition = true
	return s
}

// WithRotation returns a copy of the sample with a resolved rotation.
func (s NodeState) WithRotation(q mgl32.Quat) NodeState {
	s.rotation = q
	s.hasRotation = true
	return s
}

// TryPosition reports the sampled position, if any.
func (s NodeState) TryPosition() (mgl32.Vec3, bool) {
	return s.position, s.hasPosition
}

// TryRotation reports the sampled rotation, if any.
func (s NodeState) TryRotation() (mgl32.Quat, bool) {
	return s.rotation, s.hasRotation
}
