package app

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/edrd/dudu/internal/ui"
)

// envPrefix namespaces every environment variable the app reads.
const envPrefix = "DUDU"

// Config holds application-wide configuration.
// It is read from the environment only; nothing is written back.
type Config struct {
	// Debug enables debug logging and resty request dumps (DUDU_DEBUG)
	Debug bool `mapstructure:"debug"`

	// Theme is "system", "light" or "dark" (DUDU_THEME)
	Theme string `mapstructure:"theme"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug: false,
		Theme: ui.ThemeSystem,
	}
}

// LoadConfig reads DUDU_* environment variables over the defaults.
func LoadConfig() (*Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("theme", defaults.Theme)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := ui.ValidateThemeMode(cfg.Theme); err != nil {
		return nil, fmt.Errorf("invalid %s_THEME: %w", envPrefix, err)
	}

	return &cfg, nil
}
