package tui

import (
	"fmt"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/muesli/termenv"
)

// FrameFormatter renders per-tick frames as single event lines.
type FrameFormatter struct {
	out *termenv.Output
}

// NewFrameFormatter styles lines for out. Pass a termenv.Ascii output to disable colour.
func NewFrameFormatter(out *termenv.Output) *FrameFormatter {
	return &FrameFormatter{out: out}
}

// Format returns the line for frame, or "" when the frame has nothing to report
// (idle ticks and plain extends).
func (f *FrameFormatter) Format(frame domain.Frame) string {
	var label termenv.Style
	switch frame.Transition {
	case domain.TransitionBegin:
		label = f.out.String("BEGIN").Foreground(f.out.Color("2")).Bold()
	case domain.TransitionEnd:
		label = f.out.String("END  ").Foreground(f.out.Color("1")).Bold()
	default:
		return ""
	}

	p := frame.Pose.Position
	line := fmt.Sprintf("%s %-5s stroke=%d tick=%d pos=(%.3f, %.3f, %.3f)",
		label, frame.Hand, frame.StrokeID, frame.Tick, p[0], p[1], p[2])
	if !frame.Tracking {
		line += f.out.String(" [untracked]").Faint().String()
	}
	return line
}
