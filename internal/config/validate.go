package config

import (
	"fmt"

	"github.com/rileyhilliard/glitchtop/internal/errors"
	"github.com/rileyhilliard/glitchtop/internal/logger"
	"github.com/rileyhilliard/glitchtop/internal/theme"
)

// Validate checks the config for errors and returns structured error messages.
// An unknown theme is not an error; see ResolveTheme.
func Validate(cfg *Config) error {
	if cfg.GlitchThreshold <= 0 || cfg.GlitchThreshold > 100 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("glitch_threshold must be above 0 and at most 100, got %g", cfg.GlitchThreshold),
			"It's the average CPU percent that starts the corruption. 80 is the default.")
	}

	if cfg.ThemeCycleInterval <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("theme_cycle_interval must be positive, got %s", cfg.ThemeCycleInterval),
			"Use a duration like 10s, or a number of seconds.")
	}

	if cfg.RefreshRate <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("refresh_rate must be positive, got %g", cfg.RefreshRate),
			"It's in ticks per second. 4 is the default.")
	}

	if cfg.TopProcesses < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("top_processes must be at least 1, got %d", cfg.TopProcesses),
			"Set it to how many rows the process panel should show.")
	}

	if cfg.GPUTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("gpu_timeout must be positive, got %s", cfg.GPUTimeout),
			"Use a duration like 1s.")
	}

	return nil
}

// ResolveTheme maps cfg.Theme onto a registered theme, warning and falling
// back to the default theme when the name is unknown.
func ResolveTheme(cfg *Config, log logger.Logger) theme.Name {
	if theme.Valid(cfg.Theme) {
		return theme.Name(cfg.Theme)
	}
	if log != nil {
		log.Warn("unknown theme %q, falling back to %s", cfg.Theme, theme.Default)
	}
	return theme.Default
}
