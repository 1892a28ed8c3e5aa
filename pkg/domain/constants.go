package domain

// DefaultActivationThreshold is the raw axis value the trigger must exceed to count as pressed.
const DefaultActivationThreshold float32 = 0.1

// Input control names, as exposed by the host input system.
const (
	ControlLeftTrigger  = "Left Trigger"
	ControlRightTrigger = "Right Trigger"
)
