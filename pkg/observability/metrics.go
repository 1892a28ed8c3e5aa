package observability

import (
	"context"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by lifecycle hooks.
type Metrics struct {
	Strokes      *prometheus.CounterVec
	Points       *prometheus.CounterVec
	TrackingLost *prometheus.CounterVec
	Drawing      *prometheus.GaugeVec
	StrokeLength *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Strokes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brush_strokes_total",
				Help: "Total number of strokes begun",
			},
			[]string{"hand"},
		),
		Points: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brush_stroke_points_total",
				Help: "Total number of points delivered to strokes",
			},
			[]string{"hand"},
		),
		TrackingLost: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brush_tracking_lost_total",
				Help: "Number of times a hand lost tracking",
			},
			[]string{"hand"},
		),
		Drawing: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "brush_drawing",
				Help: "1 while the hand has a stroke in progress",
			},
			[]string{"hand"},
		),
		StrokeLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "brush_stroke_points",
				Help:    "Points per finished stroke",
				Buckets: prometheus.ExponentialBuckets(2, 2, 10),
			},
			[]string{"hand"},
		),
	}

	for _, c := range []prometheus.Collector{m.Strokes, m.Points, m.TrackingLost, m.Drawing, m.StrokeLength} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks recording into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStrokeBegin: func(ctx context.Context, e *domain.StrokeEvent) {
			m.Strokes.WithLabelValues(e.Hand).Inc()
			m.Drawing.WithLabelValues(e.Hand).Set(1)
		},
		OnStrokeExtend: func(ctx context.Context, e *domain.StrokeEvent) {
			m.Points.WithLabelValues(e.Hand).Inc()
		},
		OnStrokeEnd: func(ctx context.Context, e *domain.StrokeEvent) {
			m.Drawing.WithLabelValues(e.Hand).Set(0)
			m.StrokeLength.WithLabelValues(e.Hand).Observe(float64(e.Points))
		},
		OnTrackingLost: func(ctx context.Context, e *domain.TrackingEvent) {
			m.TrackingLost.WithLabelValues(e.Hand).Inc()
		},
	}
}
