/*
Package domain contains the core domain models of the brush engine.

It defines the value types that flow through a tick (poses, tracked node samples,
trigger decisions) and the observable outcome of each tick. This package is kept
pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Hand: Which controller a brush follows (left or right).
  - HandPose: The last known position and rotation of the brush tip.
  - NodeState: One entry of the tracking source, with optional position and rotation.
  - DrawState: Idle or Drawing, the two states of the stroke lifecycle.
  - Frame: A snapshot of what happened during a single tick.
*/
package domain
