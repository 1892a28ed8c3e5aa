package domain

// DrawState is the state of a stroke lifecycle.
type DrawState string

const (
	StateIdle    DrawState = "idle"
	StateDrawing DrawState = "drawing"
)

// Frame captures the outcome of a single tick for one hand.
type Frame struct {
	// Tick is the 1-based index of the tick within the owning brush.
	Tick uint64

	Hand Hand

	// Pose is the pose used by the lifecycle this tick (possibly stale).
	Pose HandPose

	// Tracking is true if the position resolved this tick.
	Tracking bool

	// Pressed is the gated trigger decision.
	Pressed bool

	// State is the lifecycle state after the tick.
	State DrawState

	Transition Transition

	// StrokeID is the id of the stroke touched this tick, 0 if none.
	StrokeID uint64
}
