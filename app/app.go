// Package app wires the streak command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/streak/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the streak app instance.
func Get() *cli.App {
	streakApp := &cli.App{
		Name: "streak",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Streak is a writing sprint timer for the command-line. Write before
		your health runs out and every sprint that lasts the full time is
		added to a markdown log of your writing streak.`,
		UsageText:            "[COMMAND] [OPTIONS] [FILE]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "log",
				Usage:  "List the sprints recorded in the markdown log",
				Flags:  []cli.Flag{sinceFlag, jsonFlag, vaultFlag, folderFlag},
				Action: logAction,
			},
			{
				Name:   "stats",
				Usage:  "Summarise your sprints by day and by document",
				Flags:  []cli.Flag{sinceFlag, jsonFlag, vaultFlag, folderFlag},
				Action: statsAction,
			},
			{
				Name:   "history",
				Usage:  "List the detailed sprint history kept in the database",
				Flags:  []cli.Flag{sinceFlag, jsonFlag},
				Action: historyAction,
			},
			{
				Name:   "delete-history",
				Usage:  "Delete sprint history from the database. The markdown log is not changed",
				Flags:  []cli.Flag{sinceFlag},
				Action: deleteHistoryAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running sprint",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			durationFlag,
			speedFlag,
			decayFlag,
			vaultFlag,
			folderFlag,
			noStartFlag,
			disableNotificationFlag,
			soundFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return streakApp
}
