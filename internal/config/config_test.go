package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/brush/internal/config"
	"github.com/aretw0/brush/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brush.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Brushes, 2)
	assert.Equal(t, "left", cfg.Brushes[0].Hand)
	assert.Equal(t, "right", cfg.Brushes[1].Hand)
	assert.Equal(t, domain.DefaultActivationThreshold, cfg.Brushes[0].Threshold())
	assert.Equal(t, 90.0, cfg.TickRate)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
brushes:
  - hand: left
    activation_threshold: 0.25
  - hand: RightHand
tick_rate: 72
max_ticks: 500
log_level: debug
metrics_addr: ":2112"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Brushes, 2)
	assert.Equal(t, float32(0.25), cfg.Brushes[0].Threshold())
	assert.Equal(t, domain.DefaultActivationThreshold, cfg.Brushes[1].Threshold())
	assert.Equal(t, 72.0, cfg.TickRate)
	assert.Equal(t, uint64(500), cfg.MaxTicks)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, ":2112", cfg.MetricsAddr)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "max_ticks: 10\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Brushes, cfg.Brushes)
	assert.Equal(t, 90.0, cfg.TickRate)
	assert.Equal(t, uint64(10), cfg.MaxTicks)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":       "tick_rte: 90\n",
		"unknown hand":      "brushes:\n  - hand: foot\n",
		"duplicate hand":    "brushes:\n  - hand: left\n  - hand: left\n",
		"threshold too big": "brushes:\n  - hand: left\n    activation_threshold: 1.0\n",
		"threshold nan":     "brushes:\n  - hand: left\n    activation_threshold: .nan\n",
		"negative rate":     "tick_rate: -1\n",
		"bad level":         "log_level: loud\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, content))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := config.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = config.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}
