package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/glitchtop/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the project-local config file name.
	ConfigFileName = ".glitchtop.yaml"
	// GlobalConfigDir is the directory for the user config, relative to home.
	GlobalConfigDir = ".config/glitchtop"
	// GlobalConfigFile is the user config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. GLITCHTOP_THEME.
	EnvPrefix = "GLITCHTOP"
)

// Keys that accept either a duration string or a bare number of seconds.
var secondsKeys = []string{"theme_cycle_interval", "gpu_timeout"}

// NewViper returns a viper instance with every key defaulted and
// environment overrides enabled. Callers may bind flags to it before
// passing it to LoadViper.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads config from the specified path, layered over defaults and
// environment overrides.
func Load(path string) (*Config, error) {
	return LoadViper(NewViper(), path)
}

// LoadViper reads the config file at path (if any) into v and decodes the
// merged result. An empty path decodes defaults, env and bound flags only.
func LoadViper(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found: "+path,
					"Check the path passed to --config")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .glitchtop.yaml in current directory
// 3. ~/.config/glitchtop/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if global := GlobalPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// GlobalPath returns the user config location, or "" when the home
// directory is unknown.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// LoadOrDefault loads config from the found path, or returns defaults
// (with env overrides) if no file exists.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	if err := normalizeSeconds(v); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		where := "your config"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+where)
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("glitch_enabled", def.GlitchEnabled)
	v.SetDefault("glitch_threshold", def.GlitchThreshold)
	v.SetDefault("theme_cycle_enabled", def.ThemeCycleEnabled)
	v.SetDefault("theme_cycle_interval", def.ThemeCycleInterval.String())
	v.SetDefault("refresh_rate", def.RefreshRate)
	v.SetDefault("top_processes", def.TopProcesses)
	v.SetDefault("gpu_timeout", def.GPUTimeout.String())
}

// normalizeSeconds rewrites bare numbers under secondsKeys into durations
// so "theme_cycle_interval: 10" means ten seconds, not ten nanoseconds.
func normalizeSeconds(v *viper.Viper) error {
	for _, key := range secondsKeys {
		d, ok, err := secondsValue(v.Get(key))
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid duration for "+key,
				"Use a duration like 10s or a number of seconds")
		}
		if ok {
			v.Set(key, d)
		}
	}
	return nil
}

func secondsValue(raw interface{}) (time.Duration, bool, error) {
	switch val := raw.(type) {
	case int:
		return time.Duration(val) * time.Second, true, nil
	case int64:
		return time.Duration(val) * time.Second, true, nil
	case float64:
		return time.Duration(val * float64(time.Second)), true, nil
	case string:
		s := strings.TrimSpace(val)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Duration(f * float64(time.Second)), true, nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, false, err
		}
		return d, true, nil
	}
	return 0, false, nil
}
