package cli

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/glitchtop/internal/config"
	"github.com/rileyhilliard/glitchtop/internal/errors"
	"github.com/rileyhilliard/glitchtop/internal/logger"
	"github.com/rileyhilliard/glitchtop/internal/metrics"
	"github.com/rileyhilliard/glitchtop/internal/theme"
)

func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func() bool { return tty }
}

func TestDashboardOptions(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	cfg := config.DefaultConfig()
	cfg.Theme = "braille"
	cfg.GlitchEnabled = false
	cfg.GlitchThreshold = 65
	cfg.ThemeCycleEnabled = true
	cfg.ThemeCycleInterval = 5 * time.Second
	cfg.RefreshRate = 2
	cfg.TopProcesses = 7

	opts := dashboardOptions(cfg, false, logger.Noop(), clock)

	assert.IsType(t, &metrics.Collector{}, opts.Source)
	assert.Equal(t, theme.Braille, opts.Themes.Active())
	assert.True(t, opts.Themes.CycleEnabled())
	assert.Equal(t, 5*time.Second, opts.Themes.CycleInterval())
	assert.False(t, opts.Glitch.Enabled())
	assert.Equal(t, 65.0, opts.GlitchThreshold)
	assert.Equal(t, 500*time.Millisecond, opts.Interval)
	assert.Equal(t, 7, opts.TopProcesses)
	assert.Equal(t, now, opts.Now())
}

func TestDashboardOptions_Demo(t *testing.T) {
	opts := dashboardOptions(config.DefaultConfig(), true, logger.Noop(), time.Now)
	assert.IsType(t, &metrics.Synthetic{}, opts.Source)
}

func TestDashboardOptions_UnknownThemeFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme = "vaporwave"
	log := logger.NewBufferLogger()

	opts := dashboardOptions(cfg, true, log, time.Now)

	assert.Equal(t, theme.Default, opts.Themes.Active())
	assert.True(t, log.HasLevel("warn"))
}

func TestDashboardCommand_RequiresTerminal(t *testing.T) {
	isolate(t)
	withTerminal(t, false)

	err := dashboardCommand(newDashboardCmd(t), false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDisplay))
}

func TestDashboardCommand_ThemeWarningBeforeRedirect(t *testing.T) {
	isolate(t)
	withTerminal(t, false)
	t.Setenv("GLITCHTOP_THEME", "vaporwave")

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	err := dashboardCommand(newDashboardCmd(t), false)
	require.Error(t, err)
	assert.Contains(t, buf.String(), `unknown theme "vaporwave"`)
}

func TestSettleTheme(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme = "vaporwave"
	log := logger.NewBufferLogger()

	settleTheme(cfg, log)
	assert.Equal(t, string(theme.Default), cfg.Theme)
	assert.Equal(t, 1, log.Count("warn"))

	settleTheme(cfg, log)
	assert.Equal(t, 1, log.Count("warn"), "a settled theme warns only once")
}

func TestRedirectLogs(t *testing.T) {
	t.Run("to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "glitchtop.log")

		restore, err := redirectLogs(path)
		require.NoError(t, err)
		log.Print("collector started")
		restore()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "glitchtop")
		assert.Contains(t, string(data), "collector started")
	})

	t.Run("discard when unset", func(t *testing.T) {
		restore, err := redirectLogs("")
		require.NoError(t, err)
		log.Print("nobody sees this")
		restore()
	})

	t.Run("unwritable path", func(t *testing.T) {
		_, err := redirectLogs(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}
