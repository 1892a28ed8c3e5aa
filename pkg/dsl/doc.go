/*
Package dsl provides a Go DSL for programmatically constructing replay traces.

It allows tests and tools to script tracking sessions with a fluent builder instead of
writing YAML or JSON trace files by hand.

Example usage:

	b := dsl.New("tap")

	b.Frame().Track(domain.NodeRightHand, mgl32.Vec3{0, 1, 0})
	b.Frame().Track(domain.NodeRightHand, mgl32.Vec3{0, 1, 0}).Press(domain.RightHand, 0.8).Repeat(3)
	b.Frame().Lose(domain.NodeRightHand).Press(domain.RightHand, 0.8)

	trace, err := b.Build()
	// ... pass replay.NewPlayer(trace) to brush.New(...)
*/
package dsl
