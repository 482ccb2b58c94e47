// Package config builds the streak configuration from the config file, the
// first-run prompt and command-line flags
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ayoisaiah/streak/sprint"
	"github.com/ayoisaiah/streak/sprintlog"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Sprint        SprintConfig       `mapstructure:"sprint"`
		Log           LogConfig          `mapstructure:"log"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// SprintConfig describes the sprints started by the editor.
	SprintConfig struct {
		Speed sprint.Speed `mapstructure:"speed"`
		// Duration is in minutes. It is parsed separately from the rest of
		// the file since invalid input falls back to a default.
		Duration int     `mapstructure:"-"`
		Decay    float64 `mapstructure:"decay"`
	}

	// LogConfig locates the markdown sprint log.
	LogConfig struct {
		Vault  string `mapstructure:"vault"`
		Folder string `mapstructure:"folder"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Sound   string `mapstructure:"sound"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
		NoColor   bool `mapstructure:"-"`
	}

	// CLIConfig holds values that only come from the command line.
	CLIConfig struct {
		StartTime time.Time
		Document  string
		NoStart   bool
		JSON      bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const (
	Version = "v0.3.0"

	// DefaultMinutes is used when a duration is missing or not a number.
	DefaultMinutes = 20
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a Config by applying opts in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}

// SprintSettings converts the configuration into the settings of one sprint.
func (c *Config) SprintSettings() sprint.Config {
	return sprint.Config{
		Minutes: c.Sprint.Duration,
		Speed:   c.Sprint.Speed,
		Decay:   c.Sprint.Decay,
	}
}

// LogFilePath is the location of the markdown sprint log. An empty vault
// refers to the working directory.
func (c *Config) LogFilePath() string {
	vault := c.Log.Vault
	if vault == "" {
		vault = "."
	}

	p := sprintlog.Path(vault, c.Log.Folder)

	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}

	return abs
}
