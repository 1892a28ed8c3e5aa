package main

import (
	"fmt"
	"os"

	"github.com/aretw0/brush/internal/config"
	"github.com/aretw0/brush/pkg/adapters/replay"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config>",
	Short: "Check a configuration file (and optionally a trace)",
	Long:  `Loads brush.yaml and reports unknown keys, unknown or duplicate hands and out of range values.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tracePath, _ := cmd.Flags().GetString("trace")
		if err := runValidate(args[0], tracePath); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Configuration is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringP("trace", "t", "", "Also validate this trace file")
}

func runValidate(configPath, tracePath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	fmt.Printf("%d brush(es), %.0f Hz\n", len(cfg.Brushes), cfg.TickRate)

	if tracePath == "" {
		return nil
	}
	trace, err := replay.Load(tracePath)
	if err != nil {
		return err
	}
	fmt.Printf("trace %q: %d ticks\n", trace.Name, trace.Ticks())
	return nil
}
