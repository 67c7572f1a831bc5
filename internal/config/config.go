package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// WindowConfig holds settings for the desktop orbit window.
type WindowConfig struct {
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
	Scale  float64 `mapstructure:"scale"`
}

// Config holds all runtime configuration for a bbdl session.
// Values are populated from .bbdl.yaml, BBDL_* env vars, and CLI flags.
type Config struct {
	RotationInterval  time.Duration `mapstructure:"rotation_interval"`
	HighlightInterval time.Duration `mapstructure:"highlight_interval"`
	DebounceDelay     time.Duration `mapstructure:"debounce_delay"`
	Dataset           string        `mapstructure:"dataset"`
	Journal           string        `mapstructure:"journal"`
	NoSplash          bool          `mapstructure:"no_splash"`
	EnforceGate       bool          `mapstructure:"enforce_gate"`
	Verbose           bool          `mapstructure:"verbose"`
	Window            WindowConfig  `mapstructure:"window"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("rotation_interval", 50*time.Millisecond)
	viper.SetDefault("highlight_interval", 3*time.Second)
	viper.SetDefault("debounce_delay", 500*time.Millisecond)
	viper.SetDefault("dataset", "")
	viper.SetDefault("journal", "")
	viper.SetDefault("no_splash", false)
	viper.SetDefault("enforce_gate", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("window.width", 800)
	viper.SetDefault("window.height", 800)
	viper.SetDefault("window.scale", 1.0)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the timers and renderers cannot work with.
func (c Config) Validate() error {
	switch {
	case c.RotationInterval <= 0:
		return fmt.Errorf("%w: rotation_interval must be positive, got %s", ErrInvalid, c.RotationInterval)
	case c.HighlightInterval <= 0:
		return fmt.Errorf("%w: highlight_interval must be positive, got %s", ErrInvalid, c.HighlightInterval)
	case c.DebounceDelay < 0:
		return fmt.Errorf("%w: debounce_delay must not be negative, got %s", ErrInvalid, c.DebounceDelay)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window.scale must be positive, got %g", ErrInvalid, c.Window.Scale)
	}
	return nil
}
