package runner

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
)

// DefaultRate is the tick rate in Hz used when none is configured.
const DefaultRate = 90

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithClock configures the clock driving the ticker.
func WithClock(clock clockwork.Clock) Option {
	return func(r *Runner) {
		r.Clock = clock
	}
}

// WithRate sets the tick rate in Hz. A rate of 0 ticks as fast as possible.
func WithRate(hz float64) Option {
	return func(r *Runner) {
		r.Rate = hz
	}
}

// WithMaxTicks stops the runner after n ticks. 0 means unlimited.
func WithMaxTicks(n uint64) Option {
	return func(r *Runner) {
		r.MaxTicks = n
	}
}

// WithSignals makes the runner stop on SIGINT/SIGTERM.
func WithSignals(enabled bool) Option {
	return func(r *Runner) {
		r.HandleSignals = enabled
	}
}
