package memory

import (
	"context"
	"sync"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/aretw0/brush/pkg/ports"
)

// CallKind names a StrokeSink operation.
type CallKind string

const (
	CallBegin  CallKind = "begin"
	CallExtend CallKind = "extend"
	CallEnd    CallKind = "end"
)

// Call is one recorded sink operation.
type Call struct {
	Kind CallKind
	// Stroke is the 1-based index of the stroke in the recorder.
	Stroke int
	Pose   domain.HandPose
}

// Stroke is a recorded stroke.
type Stroke struct {
	ID     int
	Start  domain.HandPose
	Points []domain.HandPose
	Finish domain.HandPose
	Ended  bool
}

// Length is the path length through the extended points.
func (s Stroke) Length() float32 {
	var total float32
	for i := 1; i < len(s.Points); i++ {
		total += s.Points[i].Position.Sub(s.Points[i-1].Position).Len()
	}
	return total
}

// Recorder implements ports.StrokeSink by recording every call.
// Safe for concurrent use.
type Recorder struct {
	mu      sync.RWMutex
	calls   []Call
	strokes []*Stroke
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Begin records a new stroke.
func (r *Recorder) Begin(ctx context.Context, pose domain.HandPose) ports.StrokeSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Stroke{ID: len(r.strokes) + 1, Start: pose}
	r.strokes = append(r.strokes, s)
	r.calls = append(r.calls, Call{Kind: CallBegin, Stroke: s.ID, Pose: pose})
	return &recordedSession{recorder: r, stroke: s}
}

// Calls returns a copy of the call log.
func (r *Recorder) Calls() []Call {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Call(nil), r.calls...)
}

// Strokes returns copies of all strokes, finished or not.
func (r *Recorder) Strokes() []Stroke {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Stroke, 0, len(r.strokes))
	for _, s := range r.strokes {
		c := *s
		c.Points = append([]domain.HandPose(nil), s.Points...)
		out = append(out, c)
	}
	return out
}

// Active returns the number of strokes that have begun but not ended.
func (r *Recorder) Active() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, s := range r.strokes {
		if !s.Ended {
			n++
		}
	}
	return n
}

type recordedSession struct {
	recorder *Recorder
	stroke   *Stroke
}

func (s *recordedSession) Extend(ctx context.Context, pose domain.HandPose) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()
	s.stroke.Points = append(s.stroke.Points, pose)
	s.recorder.calls = append(s.recorder.calls, Call{Kind: CallExtend, Stroke: s.stroke.ID, Pose: pose})
}

func (s *recordedSession) End(ctx context.Context, pose domain.HandPose) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()
	s.stroke.Finish = pose
	s.stroke.Ended = true
	s.recorder.calls = append(s.recorder.calls, Call{Kind: CallEnd, Stroke: s.stroke.ID, Pose: pose})
}
