package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/streak/internal/pathutil"
	"github.com/ayoisaiah/streak/sprint"
)

const asciiLogo = `
███████╗████████╗██████╗ ███████╗ █████╗ ██╗  ██╗
██╔════╝╚══██╔══╝██╔══██╗██╔════╝██╔══██╗██║ ██╔╝
███████╗   ██║   ██████╔╝█████╗  ███████║█████╔╝
╚════██║   ██║   ██╔══██╗██╔══╝  ██╔══██║██╔═██╗
███████║   ██║   ██║  ██║███████╗██║  ██║██║  ██╗
╚══════╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Speed    sprint.Speed
	Vault    string
	Duration int
}

// WithPromptConfig returns an Option that asks for the main settings the
// first time the app runs. Nothing is asked once a config file exists or when
// running under STREAK_ENV=testing.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		if pathutil.IsTesting() {
			return nil
		}

		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return err
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Streak for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'streak edit-config' to change any settings.`, " ").
		Render()

	speedOpts := make([]huh.Option[sprint.Speed], 0, len(sprint.Speeds()))
	for _, s := range sprint.Speeds() {
		speedOpts = append(
			speedOpts,
			huh.NewOption(string(s), s).Selected(s == sprint.Medium),
		)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Sprint length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
					huh.NewOption("20 minutes", 20),
					huh.NewOption("30 minutes", 30),
				).
				Value(&opts.Duration),
		),
		huh.NewGroup(
			huh.NewSelect[sprint.Speed]().
				Title("How quickly should health drain?").
				Options(speedOpts...).
				Value(&opts.Speed),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Notes directory (leave empty for the current directory)").
				Value(&opts.Vault),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, errPrompt.Wrap(err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Sprint.Duration = opts.Duration
	c.Sprint.Speed = opts.Speed
	c.Log.Vault = opts.Vault
}
