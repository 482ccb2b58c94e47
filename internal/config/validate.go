package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/streak/sprint"
)

// maxMinutes caps a sprint at 12 hours.
const maxMinutes = 720

var soundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Validate performs validation checks on the Config struct and its fields.
// The speed name is normalised as a side effect.
func (c *Config) Validate() error {
	if err := c.validateSprint(); err != nil {
		return errConfigValidation.Wrap(err)
	}

	if strings.TrimSpace(c.Log.Folder) == "" {
		return errConfigValidation.Wrap(errEmptyFolder)
	}

	if err := c.validateSound(); err != nil {
		return errConfigValidation.Wrap(err)
	}

	if c.Settings.Cmd != "" {
		if _, err := shellquote.Split(c.Settings.Cmd); err != nil {
			return errConfigValidation.Wrap(
				errInvalidSessionCmd.Fmt(c.Settings.Cmd).Wrap(err),
			)
		}
	}

	return nil
}

func (c *Config) validateSprint() error {
	if c.Sprint.Duration <= 0 {
		return errInvalidDuration.Fmt(c.Sprint.Duration)
	}

	if c.Sprint.Duration > maxMinutes {
		return errDurationTooLong.Fmt(maxMinutes, c.Sprint.Duration)
	}

	if c.Sprint.Decay < 0 {
		return errInvalidDecay.Fmt(c.Sprint.Decay)
	}

	// an explicit decay makes the speed irrelevant
	if c.Sprint.Decay > 0 && c.Sprint.Speed == "" {
		return nil
	}

	speed, err := sprint.ParseSpeed(string(c.Sprint.Speed))
	if err != nil {
		return err
	}

	c.Sprint.Speed = speed

	return nil
}

func (c *Config) validateSound() error {
	sound := c.Notifications.Sound
	if sound == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(sound))
	if !slices.Contains(soundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(sound)
	}

	return err
}
