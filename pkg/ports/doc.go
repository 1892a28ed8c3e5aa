/*
Package ports defines the driven ports (interfaces) for the brush engine.

These interfaces decouple the stroke lifecycle from the host platform, allowing the
engine to run against a live tracking system, a recorded replay, or in-memory fakes.

# Key Interfaces

  - TrackingSource: Reports the current node list of the tracking system.
  - InputSource: Reports raw analog values of named input controls.
  - StrokeSink: Creates stroke sessions (the stroke factory).
  - StrokeSession: Receives the points of a single stroke until it ends.
*/
package ports
