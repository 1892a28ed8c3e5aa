package domain

// Transition names what the stroke lifecycle did during a tick.
type Transition string

const (
	TransitionNone   Transition = "none"   // Idle -> Idle
	TransitionBegin  Transition = "begin"  // Idle -> Drawing (Begin + first Extend)
	TransitionExtend Transition = "extend" // Drawing -> Drawing
	TransitionEnd    Transition = "end"    // Drawing -> Idle
)
