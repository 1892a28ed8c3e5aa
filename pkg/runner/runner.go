package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/brush/internal/logging"
	"github.com/jonboulle/clockwork"
)

// ErrDone is returned by a TickFunc when there is nothing left to tick.
// The call that returns it does not count as a tick.
var ErrDone = errors.New("runner: done")

// TickFunc performs one tick.
type TickFunc func(ctx context.Context) error

// Stats summarizes a run.
type Stats struct {
	Ticks   uint64
	Elapsed time.Duration
}

// Runner fires a TickFunc at a fixed cadence.
type Runner struct {
	// Clock drives the ticker. If nil, the real clock is used.
	Clock clockwork.Clock

	// Rate is the tick rate in Hz. 0 ticks back to back.
	Rate float64

	// MaxTicks stops the run after that many ticks. 0 means unlimited.
	MaxTicks uint64

	// HandleSignals cancels the run on SIGINT/SIGTERM.
	HandleSignals bool

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// NewRunner creates a Runner ticking at DefaultRate on the real clock.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Clock:  clockwork.NewRealClock(),
		Rate:   DefaultRate,
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Interval returns the time between ticks, 0 when ticking back to back.
func (r *Runner) Interval() time.Duration {
	if r.Rate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / r.Rate)
}

// Run ticks fn until ctx is done, MaxTicks is reached or fn returns ErrDone.
// Cancellation is only observed between ticks. A context error is returned as is;
// any other error from fn stops the run and is returned wrapped.
func (r *Runner) Run(ctx context.Context, fn TickFunc) (Stats, error) {
	clock := r.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	if r.HandleSignals {
		signals := NewSignalManager(ctx)
		defer signals.Stop()
		ctx = signals.Context()
	}

	var stats Stats
	start := clock.Now()
	defer func() {
		logger.Debug("runner stopped", "ticks", stats.Ticks)
	}()

	var tick <-chan time.Time
	if interval := r.Interval(); interval > 0 {
		ticker := clock.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.Chan()
	}

	logger.Debug("runner started", "rate", r.Rate, "max_ticks", r.MaxTicks)

	for {
		if r.MaxTicks > 0 && stats.Ticks >= r.MaxTicks {
			stats.Elapsed = clock.Since(start)
			return stats, nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				stats.Elapsed = clock.Since(start)
				return stats, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			stats.Elapsed = clock.Since(start)
			return stats, err
		}

		if err := fn(ctx); err != nil {
			stats.Elapsed = clock.Since(start)
			if errors.Is(err, ErrDone) {
				return stats, nil
			}
			return stats, fmt.Errorf("tick %d failed: %w", stats.Ticks+1, err)
		}
		stats.Ticks++
	}
}
