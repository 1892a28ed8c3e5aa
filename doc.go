/*
Package brush turns hand-tracked controller input into freehand 3D strokes.

Each tick, a Brush samples the pose of its hand, decides whether the trigger is
pressed, and steps a two-state lifecycle (Idle, Drawing) that drives a StrokeSink:
Begin on press, Extend while held, End on release. Losing tracking always reads as a
release, so a stroke can never be left open by a controller that drifted out of range.

# Usage

The host supplies the tracking system, the input system and the stroke factory.

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/brush"
		"github.com/aretw0/brush/pkg/adapters/memory"
		"github.com/aretw0/brush/pkg/domain"
	)

	func main() {
		tracker := memory.NewTracker()
		controls := memory.NewControls()
		strokes := memory.NewRecorder()

		b, err := brush.New(tracker, controls, strokes, brush.WithHand(domain.RightHand))
		if err != nil {
			log.Fatal(err)
		}

		// Called once per frame by the host
		ctx := context.Background()
		for {
			frame := b.Tick(ctx)
			if frame.Transition == domain.TransitionEnd {
				log.Println("stroke finished:", frame.StrokeID)
			}
		}
	}

Two hands are run as two independent brushes grouped in a Rig, and pkg/runner drives
either at a fixed cadence.
*/
package brush
