package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/brush"
	"github.com/aretw0/brush/internal/config"
	"github.com/aretw0/brush/internal/logging"
	"github.com/aretw0/brush/internal/presentation/tui"
	httpAdapter "github.com/aretw0/brush/pkg/adapters/http"
	"github.com/aretw0/brush/pkg/adapters/memory"
	"github.com/aretw0/brush/pkg/adapters/ndjson"
	"github.com/aretw0/brush/pkg/adapters/replay"
	"github.com/aretw0/brush/pkg/domain"
	"github.com/aretw0/brush/pkg/observability"
	"github.com/aretw0/brush/pkg/ports"
	"github.com/aretw0/brush/pkg/runner"
	"github.com/jonboulle/clockwork"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
)

// ReplayOptions controls a replay run.
type ReplayOptions struct {
	TracePath string

	// JSON streams stroke calls as NDJSON on Stdout and skips the summary.
	JSON bool

	// Styled enables colour and the banner. Usually IsTerminal(Stdout).
	Styled bool

	Stdout io.Writer
	Logger *slog.Logger

	// Clock drives the runner. If nil, the real clock is used.
	Clock clockwork.Clock

	// HandleSignals cancels the replay on SIGINT/SIGTERM.
	HandleSignals bool
}

// HandResult is what one brush produced during a replay.
type HandResult struct {
	Hand    domain.Hand
	Strokes []memory.Stroke
	// Open is set when the trace ended with the brush still drawing.
	Open bool
}

// ReplayResult summarizes a replay run.
type ReplayResult struct {
	Trace string
	Stats runner.Stats
	Hands []HandResult
}

// RunReplay plays a recorded trace through one brush per configured hand.
func RunReplay(ctx context.Context, cfg config.Config, opts ReplayOptions) (*ReplayResult, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	trace, err := replay.Load(opts.TracePath)
	if err != nil {
		return nil, err
	}
	player := replay.NewPlayer(trace)

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	hooks := metrics.Hooks()

	board := httpAdapter.NewStatusBoard()
	if cfg.MetricsAddr != "" {
		stop, err := serveMetrics(cfg.MetricsAddr, httpAdapter.NewHandler(board, reg), logger)
		if err != nil {
			return nil, err
		}
		defer stop()
	}

	rig, recorders, stream, err := buildRig(cfg, player, hooks, logger, opts)
	if err != nil {
		return nil, err
	}

	if opts.Styled && !opts.JSON {
		tui.PrintBanner(opts.Stdout, brush.Version)
	}
	profile := termenv.Ascii
	if opts.Styled {
		profile = termenv.ANSI256
	}
	formatter := tui.NewFrameFormatter(termenv.NewOutput(opts.Stdout, termenv.WithProfile(profile)))

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithRate(cfg.TickRate),
		runner.WithMaxTicks(cfg.MaxTicks),
		runner.WithSignals(opts.HandleSignals),
	)
	if opts.Clock != nil {
		r.Clock = opts.Clock
	}

	logger.Info("replay started", "trace", trace.Name, "ticks", trace.Ticks(), "brushes", len(rig.Brushes()))
	stats, err := r.Run(ctx, func(ctx context.Context) error {
		if err := player.Advance(); err != nil {
			if errors.Is(err, replay.ErrExhausted) {
				return runner.ErrDone
			}
			return err
		}
		for _, frame := range rig.Tick(ctx) {
			board.Record(frame)
			if opts.JSON {
				continue
			}
			if line := formatter.Format(frame); line != "" {
				fmt.Fprintln(opts.Stdout, line)
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	if err != nil {
		logger.Info("replay interrupted", "ticks", stats.Ticks)
	}
	if stream != nil {
		if werr := stream.Err(); werr != nil {
			logger.Warn("ndjson output incomplete", "err", werr)
		}
	}

	result := &ReplayResult{Trace: trace.Name, Stats: stats}
	for _, b := range rig.Brushes() {
		hr := HandResult{Hand: b.Hand(), Open: b.State() == domain.StateDrawing}
		if rec, ok := recorders[b.Hand()]; ok {
			hr.Strokes = rec.Strokes()
		}
		result.Hands = append(result.Hands, hr)
	}
	logger.Info("replay finished", "ticks", stats.Ticks, "elapsed", stats.Elapsed)

	if !opts.JSON {
		render := tui.NewRenderer(opts.Styled)
		out, rerr := render(Summary(result))
		if rerr != nil {
			return result, fmt.Errorf("failed to render summary: %w", rerr)
		}
		fmt.Fprint(opts.Stdout, out)
	}
	return result, nil
}

// buildRig creates one brush per configured hand. In JSON mode all brushes share one
// NDJSON stream; otherwise each records into memory for the summary.
func buildRig(cfg config.Config, player *replay.Player, hooks domain.LifecycleHooks, logger *slog.Logger, opts ReplayOptions) (*brush.Rig, map[domain.Hand]*memory.Recorder, *ndjson.Sink, error) {
	recorders := make(map[domain.Hand]*memory.Recorder)
	var stream *ndjson.Sink
	var brushes []*brush.Brush

	for _, bc := range cfg.Brushes {
		hand, err := domain.ParseHand(bc.Hand)
		if err != nil {
			return nil, nil, nil, err
		}

		var sink ports.StrokeSink
		if opts.JSON {
			if stream == nil {
				stream = ndjson.NewSink(opts.Stdout, hand)
				sink = stream
			} else {
				sink = stream.ForHand(hand)
			}
		} else {
			rec := memory.NewRecorder()
			recorders[hand] = rec
			sink = rec
		}

		brushOpts := []brush.Option{
			brush.WithHand(hand),
			brush.WithActivationThreshold(bc.Threshold()),
			brush.WithLifecycleHooks(hooks),
			brush.WithLogger(logger),
		}
		if opts.Clock != nil {
			brushOpts = append(brushOpts, brush.WithClock(opts.Clock))
		}
		b, err := brush.New(player, player, sink, brushOpts...)
		if err != nil {
			return nil, nil, nil, err
		}
		brushes = append(brushes, b)
	}

	rig, err := brush.NewRig(brushes...)
	if err != nil {
		return nil, nil, nil, err
	}
	return rig, recorders, stream, nil
}

// serveMetrics binds addr before returning so that address errors surface immediately.
func serveMetrics(addr string, handler http.Handler, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("metrics server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown incomplete", "err", err)
			_ = srv.Close()
		}
	}, nil
}
