/*
Package runner drives brushes at a fixed cadence.

The engine itself never schedules anything: a host calls Brush.Tick from its own frame
callback. When there is no such host (replays, demos, headless simulations) the Runner
plays that role, firing a tick function on a clockwork ticker until the context is
cancelled, a tick budget is spent, or the tick function reports ErrDone.

# Usage

	r := runner.NewRunner(
		runner.WithRate(90),
		runner.WithLogger(logger),
	)

	stats, err := r.Run(ctx, func(ctx context.Context) error {
		rig.Tick(ctx)
		return nil
	})
*/
package runner
