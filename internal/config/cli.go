package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/streak/internal/timeutil"
	"github.com/ayoisaiah/streak/sprint"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Now           time.Time
	Duration      string
	Speed         string
	Vault         string
	Folder        string
	Sound         string
	SessionCmd    string
	Since         string
	Document      string
	Decay         float64
	DecaySet      bool
	NoStart       bool
	DisableNotify bool
	NoColor       bool
	JSON          bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flags that were not set leave the file configuration untouched.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Now:           time.Now(),
			Duration:      ctx.String("duration"),
			Speed:         ctx.String("speed"),
			Vault:         ctx.String("vault"),
			Folder:        ctx.String("folder"),
			Sound:         ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			Since:         ctx.String("since"),
			Document:      ctx.Args().First(),
			Decay:         ctx.Float64("decay"),
			DecaySet:      ctx.IsSet("decay"),
			NoStart:       ctx.Bool("no-start"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
			JSON:          ctx.Bool("json"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Duration != "" {
		minutes, err := ParseMinutes(opts.Duration)
		if err != nil {
			return err
		}

		c.Sprint.Duration = minutes
	}

	if opts.Speed != "" {
		c.Sprint.Speed = sprint.Speed(opts.Speed)
	}

	if opts.DecaySet {
		c.Sprint.Decay = opts.Decay
	}

	if opts.Vault != "" {
		c.Log.Vault = opts.Vault
	}

	if opts.Folder != "" {
		c.Log.Folder = opts.Folder
	}

	applyCLISound(c, opts)

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	c.Display.NoColor = opts.NoColor

	c.CLI.Document = opts.Document
	c.CLI.NoStart = opts.NoStart
	c.CLI.JSON = opts.JSON

	if opts.Since != "" {
		startTime, err := timeutil.FromStr(opts.Since, opts.Now)
		if err != nil {
			return errInvalidSince.Wrap(err)
		}

		c.CLI.StartTime = startTime
	}

	return nil
}

// applyCLISound handles the --sound flag where "off" disables the sound
// from the config file.
func applyCLISound(c *Config, opts CLIOptions) {
	switch opts.Sound {
	case "":
	case "off":
		c.Notifications.Sound = ""
	default:
		c.Notifications.Sound = opts.Sound
	}
}
