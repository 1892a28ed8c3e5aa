// Package http exposes brush status and metrics over HTTP.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"sync"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HandStatus is the last observed frame of a hand, as served by /status.
type HandStatus struct {
	Hand     string           `json:"hand"`
	Tick     uint64           `json:"tick"`
	State    domain.DrawState `json:"state"`
	Tracking bool             `json:"tracking"`
	Pressed  bool             `json:"pressed"`
	StrokeID uint64           `json:"stroke_id,omitempty"`
	Position [3]float32       `json:"position"`
}

// StatusBoard keeps the latest frame of each hand.
// Frames are recorded by the ticking goroutine and read by HTTP handlers,
// so it is safe for concurrent use.
type StatusBoard struct {
	mu    sync.RWMutex
	hands map[string]HandStatus
}

// NewStatusBoard creates an empty board.
func NewStatusBoard() *StatusBoard {
	return &StatusBoard{hands: make(map[string]HandStatus)}
}

// Record stores frame as the latest status of its hand.
func (b *StatusBoard) Record(frame domain.Frame) {
	s := HandStatus{
		Hand:     frame.Hand.String(),
		Tick:     frame.Tick,
		State:    frame.State,
		Tracking: frame.Tracking,
		Pressed:  frame.Pressed,
		Position: frame.Pose.Position,
	}
	if frame.State == domain.StateDrawing {
		s.StrokeID = frame.StrokeID
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.hands[s.Hand] = s
}

// Snapshot returns the status of every hand, sorted by hand name.
func (b *StatusBoard) Snapshot() []HandStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]HandStatus, 0, len(b.hands))
	for _, s := range b.hands {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hand < out[j].Hand })
	return out
}

// NewHandler creates the HTTP handler serving /metrics, /healthz and /status.
func NewHandler(board *StatusBoard, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(board.Snapshot()); err != nil {
			slog.Error("Failed to encode status", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}
