// Package config loads wincon settings through viper: built-in defaults, an
// optional YAML file, and WINCON_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete wincon configuration.
type Config struct {
	Alt     AltConfig     `mapstructure:"alt"`
	Capture CaptureConfig `mapstructure:"capture"`
	Events  EventsConfig  `mapstructure:"events"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AltConfig controls `wincon alt`.
type AltConfig struct {
	// Width and Height size the alternate buffer. Zero keeps the
	// dimension of the current window.
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	// Restore shows the previously active buffer again when the child exits.
	Restore bool `mapstructure:"restore"`
}

// CaptureConfig controls `wincon capture`.
type CaptureConfig struct {
	// Trim drops blank rows at the bottom of the capture.
	Trim bool `mapstructure:"trim"`
	// MaxLines keeps only the last MaxLines rows. Zero keeps all.
	MaxLines int `mapstructure:"max_lines"`
}

// EventsConfig controls `wincon events`.
type EventsConfig struct {
	// Timeout stops reading after this long. Zero waits until Esc.
	Timeout time.Duration `mapstructure:"timeout"`
	// Max stops after this many records. Zero is unlimited.
	Max int `mapstructure:"max"`
}

// LoggingConfig controls the debug log.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	// File receives JSON log lines. Empty logs to stderr.
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Alt: AltConfig{
			Width:   0,
			Height:  9000,
			Restore: true,
		},
		Capture: CaptureConfig{
			Trim:     true,
			MaxLines: 0,
		},
		Events: EventsConfig{
			Timeout: 0,
			Max:     0,
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	d := Default()
	viper.SetDefault("alt.width", d.Alt.Width)
	viper.SetDefault("alt.height", d.Alt.Height)
	viper.SetDefault("alt.restore", d.Alt.Restore)
	viper.SetDefault("capture.trim", d.Capture.Trim)
	viper.SetDefault("capture.max_lines", d.Capture.MaxLines)
	viper.SetDefault("events.timeout", d.Events.Timeout)
	viper.SetDefault("events.max", d.Events.Max)
	viper.SetDefault("logging.level", d.Logging.Level)
	viper.SetDefault("logging.file", d.Logging.File)
}

// Load reads the configuration from viper and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var problems []string
	if c.Alt.Width < 0 || c.Alt.Width > maxCells {
		problems = append(problems, fmt.Sprintf("alt.width must be between 0 and %d, got %d", maxCells, c.Alt.Width))
	}
	if c.Alt.Height < 0 || c.Alt.Height > maxCells {
		problems = append(problems, fmt.Sprintf("alt.height must be between 0 and %d, got %d", maxCells, c.Alt.Height))
	}
	if c.Capture.MaxLines < 0 {
		problems = append(problems, fmt.Sprintf("capture.max_lines must not be negative, got %d", c.Capture.MaxLines))
	}
	if c.Events.Timeout < 0 {
		problems = append(problems, fmt.Sprintf("events.timeout must not be negative, got %s", c.Events.Timeout))
	}
	if c.Events.Max < 0 {
		problems = append(problems, fmt.Sprintf("events.max must not be negative, got %d", c.Events.Max))
	}
	if !IsValidLevel(c.Logging.Level) {
		problems = append(problems, fmt.Sprintf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// maxCells is the largest buffer dimension a COORD can hold.
const maxCells = 32767

// IsValidLevel reports whether level names a log level.
func IsValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wincon")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "wincon")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wincon"
	}
	return filepath.Join(home, ".config", "wincon")
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
