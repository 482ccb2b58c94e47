package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/streak/internal/osutil"
	"github.com/ayoisaiah/streak/sprint"
	"github.com/ayoisaiah/streak/sprintlog"
)

const (
	keySprintDuration       = "sprint.duration"
	keySprintSpeed          = "sprint.speed"
	keySprintDecay          = "sprint.decay"
	keyLogVault             = "log.vault"
	keyLogFolder            = "log.folder"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keySessionCmd           = "settings.cmd"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from the yaml
// file at configPath, writing the defaults there if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the defaults and any values chosen in the first-run
// prompt so that they end up in the written file.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keySprintDuration, 5)
	v.SetDefault(keySprintSpeed, string(sprint.Medium))
	v.SetDefault(keySprintDecay, 0.0)
	v.SetDefault(keyLogVault, "")
	v.SetDefault(keyLogFolder, sprintlog.DefaultFolder)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDarkTheme, true)

	if c.Sprint.Duration != 0 {
		v.Set(keySprintDuration, c.Sprint.Duration)
	}

	if c.Sprint.Speed != "" {
		v.Set(keySprintSpeed, string(c.Sprint.Speed))
	}

	if c.Log.Vault != "" {
		v.Set(keyLogVault, c.Log.Vault)
	}
}

// loadViperConfig copies the resolved values into c.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	minutes, err := ParseMinutes(v.GetString(keySprintDuration))
	if err != nil {
		return err
	}

	c.Sprint.Duration = minutes

	return nil
}
