package config

import "time"

// Config holds every recognised glitchtop option. Zero values are never
// used directly: DefaultConfig and the loader's viper defaults fill each key.
type Config struct {
	// Theme is the starting theme name. Unknown names fall back to the
	// default theme with a warning rather than failing validation.
	Theme string `yaml:"theme" mapstructure:"theme"`

	// GlitchEnabled toggles the corruption effect globally.
	GlitchEnabled bool `yaml:"glitch_enabled" mapstructure:"glitch_enabled"`

	// GlitchThreshold is the average CPU percent above which the CPU panel
	// starts corrupting.
	GlitchThreshold float64 `yaml:"glitch_threshold" mapstructure:"glitch_threshold"`

	// ThemeCycleEnabled rotates through the registered themes automatically.
	ThemeCycleEnabled bool `yaml:"theme_cycle_enabled" mapstructure:"theme_cycle_enabled"`

	// ThemeCycleInterval is how long each theme stays active while cycling.
	// Bare numbers are read as seconds.
	ThemeCycleInterval time.Duration `yaml:"theme_cycle_interval" mapstructure:"theme_cycle_interval"`

	// RefreshRate is the number of dashboard ticks per second.
	RefreshRate float64 `yaml:"refresh_rate" mapstructure:"refresh_rate"`

	// TopProcesses is how many processes the process panel lists.
	TopProcesses int `yaml:"top_processes" mapstructure:"top_processes"`

	// GPUTimeout bounds the nvidia-smi query on each tick.
	GPUTimeout time.Duration `yaml:"gpu_timeout" mapstructure:"gpu_timeout"`
}

// Interval converts RefreshRate to the delay between ticks.
func (c *Config) Interval() time.Duration {
	if c.RefreshRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / c.RefreshRate)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme:              "standard",
		GlitchEnabled:      true,
		GlitchThreshold:    80,
		ThemeCycleEnabled:  false,
		ThemeCycleInterval: 10 * time.Second,
		RefreshRate:        4,
		TopProcesses:       5,
		GPUTimeout:         time.Second,
	}
}
