package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/aretw0/brush/pkg/adapters/replay"
	"github.com/aretw0/brush/pkg/domain"
	"github.com/aretw0/brush/pkg/dsl"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	targetDir := "examples/traces"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating traces in: %s\n", targetDir)

	for name, build := range map[string]func() *dsl.Builder{
		"circle":  circle,
		"dropout": dropout,
		"twohand": twoHand,
	} {
		trace, err := build().Build()
		check(err)
		path := filepath.Join(targetDir, name+".yaml")
		check(replay.Save(path, trace))
		fmt.Printf("  %s (%d ticks)\n", path, trace.Ticks())
	}
}

// circle draws one full circle with the right hand at 90 samples per turn.
func circle() *dsl.Builder {
	b := dsl.New("circle")
	center := mgl32.Vec3{0, 1.2, -0.4}
	b.Frame().Note("hover").Track(domain.NodeRightHand, center).Rotate(domain.NodeRightHand, mgl32.QuatIdent()).Repeat(10)

	const steps = 90
	for i := 0; i <= steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		p := center.Add(mgl32.Vec3{float32(0.2 * math.Cos(a)), float32(0.2 * math.Sin(a)), 0})
		b.Frame().Track(domain.NodeRightHand, p).Press(domain.RightHand, 0.9)
	}

	b.Frame().Note("release").Track(domain.NodeRightHand, center).Repeat(10)
	return b
}

// dropout loses tracking in the middle of a stroke while the trigger stays held.
func dropout() *dsl.Builder {
	b := dsl.New("dropout")
	start := mgl32.Vec3{0, 1, -0.3}
	b.Frame().Track(domain.NodeRightHand, start).Rotate(domain.NodeRightHand, mgl32.QuatIdent())
	for i := 0; i < 20; i++ {
		b.Frame().Track(domain.NodeRightHand, start.Add(mgl32.Vec3{0.01 * float32(i), 0, 0})).Press(domain.RightHand, 0.7)
	}
	b.Frame().Note("tracking lost, trigger held").Lose(domain.NodeRightHand).Press(domain.RightHand, 0.7).Repeat(15)
	for i := 0; i < 20; i++ {
		b.Frame().Track(domain.NodeRightHand, start.Add(mgl32.Vec3{0, 0.01 * float32(i), 0})).Press(domain.RightHand, 0.7)
	}
	b.Frame().Note("release").Track(domain.NodeRightHand, start).Repeat(5)
	return b
}

// twoHand draws two overlapping strokes, one per hand.
func twoHand() *dsl.Builder {
	b := dsl.New("twohand")
	left := mgl32.Vec3{-0.3, 1, -0.3}
	right := mgl32.Vec3{0.3, 1, -0.3}
	for i := 0; i < 60; i++ {
		step := mgl32.Vec3{0, 0.005 * float32(i), 0}
		f := b.Frame().
			Track(domain.NodeLeftHand, left.Add(step)).
			Track(domain.NodeRightHand, right.Sub(step)).
			Track(domain.NodeHead, mgl32.Vec3{0, 1.6, 0})
		if i >= 5 && i < 40 {
			f.Press(domain.LeftHand, 0.6)
		}
		if i >= 20 && i < 55 {
			f.Press(domain.RightHand, 0.6)
		}
	}
	return b
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
