// Package ndjson implements a StrokeSink that streams stroke calls as newline-delimited JSON.
package ndjson

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/aretw0/brush/pkg/ports"
)

// Record is the JSON shape of one stroke call.
type Record struct {
	Type     string     `json:"type"`
	Hand     string     `json:"hand"`
	Stroke   uint64     `json:"stroke"`
	Position [3]float32 `json:"position"`
	Rotation [4]float32 `json:"rotation"`
}

// Sink writes one Record per Begin, Extend and End call.
// Safe for concurrent use; sinks for different hands may share a writer.
type Sink struct {
	hand string

	mu      *sync.Mutex
	enc     *json.Encoder
	strokes uint64
	err     error
}

// NewSink creates a sink for hand writing to w.
func NewSink(w io.Writer, hand domain.Hand) *Sink {
	return &Sink{
		hand: hand.String(),
		mu:   &sync.Mutex{},
		enc:  json.NewEncoder(w),
	}
}

// ForHand returns a sink for another hand sharing the same writer.
func (s *Sink) ForHand(hand domain.Hand) *Sink {
	return &Sink{
		hand: hand.String(),
		mu:   s.mu,
		enc:  s.enc,
	}
}

// Err returns the first write error, if any.
// Write errors never interrupt the stroke lifecycle.
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Begin writes a begin record and returns the stroke session.
func (s *Sink) Begin(ctx context.Context, pose domain.HandPose) ports.StrokeSession {
	s.mu.Lock()
	s.strokes++
	id := s.strokes
	s.mu.Unlock()

	s.write("begin", id, pose)
	return &session{sink: s, id: id}
}

func (s *Sink) write(typ string, id uint64, pose domain.HandPose) {
	rec := Record{
		Type:     typ,
		Hand:     s.hand,
		Stroke:   id,
		Position: pose.Position,
		Rotation: [4]float32{pose.Rotation.W, pose.Rotation.V[0], pose.Rotation.V[1], pose.Rotation.V[2]},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(rec); err != nil && s.err == nil {
		s.err = err
	}
}

type session struct {
	sink *Sink
	id   uint64
}

func (s *session) Extend(ctx context.Context, pose domain.HandPose) {
	s.sink.write("extend", s.id, pose)
}

func (s *session) End(ctx context.Context, pose domain.HandPose) {
	s.sink.write("end", s.id, pose)
}
