package app

import "github.com/urfave/cli/v2"

var (
	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"m"},
		Usage:   "Sprint length in minutes (default: 5)",
	}

	speedFlag = &cli.StringFlag{
		Name:    "speed",
		Aliases: []string{"s"},
		Usage:   "How fast health drains: slow, medium, fast or very-fast (default: medium)",
	}

	decayFlag = &cli.Float64Flag{
		Name:  "decay",
		Usage: "Health lost every 10ms tick. Overrides --speed when greater than zero",
	}

	vaultFlag = &cli.StringFlag{
		Name:  "vault",
		Usage: "Directory containing the sprint log folder (default: the working directory)",
	}

	folderFlag = &cli.StringFlag{
		Name:  "folder",
		Usage: "Folder of the sprint log within the vault (default: _assets/data)",
	}

	noStartFlag = &cli.BoolFlag{
		Name:  "no-start",
		Usage: "Open the editor without starting a sprint. Press ctrl+r to start one",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sprints from this date (e.g. '2024-01-01', '2 weeks ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a sprint ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each sprint",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound file (mp3, ogg, flac or wav) played when a sprint ends. Disable sound by setting to 'off'",
	}
)
