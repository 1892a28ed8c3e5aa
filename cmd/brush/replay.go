package main

import (
	"fmt"
	"os"

	"github.com/aretw0/brush/internal/cli"
	"github.com/aretw0/brush/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replayCmd = &cobra.Command{
	Use:   "replay <trace>",
	Short: "Play a recorded tracking trace through the brushes",
	Long: `Replays a YAML or JSON trace at the configured tick rate, one brush per configured hand.
Stroke transitions are printed as they happen, followed by a summary.
With --json every sink call is written to stdout as NDJSON instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if cmd.Flags().Changed("rate") {
			cfg.TickRate, _ = cmd.Flags().GetFloat64("rate")
		}
		if cmd.Flags().Changed("max-ticks") {
			cfg.MaxTicks, _ = cmd.Flags().GetUint64("max-ticks")
		}
		if cmd.Flags().Changed("metrics-addr") {
			cfg.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
		}
		jsonMode, _ := cmd.Flags().GetBool("json")

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		_, err = cli.RunReplay(cmd.Context(), cfg, cli.ReplayOptions{
			TracePath:     args[0],
			JSON:          jsonMode,
			Styled:        term.IsTerminal(int(os.Stdout.Fd())),
			Stdout:        os.Stdout,
			Logger:        logging.New(cfg.Level()),
			HandleSignals: true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().Bool("json", false, "Write sink calls as NDJSON to stdout")
	replayCmd.Flags().Float64("rate", 90, "Tick rate in Hz (0 = as fast as possible)")
	replayCmd.Flags().Uint64("max-ticks", 0, "Stop after this many ticks (0 = whole trace)")
	replayCmd.Flags().String("metrics-addr", "", "Serve /metrics, /healthz and /status on this address")
}
