package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/streak/editor"
	"github.com/ayoisaiah/streak/internal/config"
	"github.com/ayoisaiah/streak/internal/logging"
	"github.com/ayoisaiah/streak/internal/models"
	"github.com/ayoisaiah/streak/internal/osutil"
	"github.com/ayoisaiah/streak/internal/pathutil"
	"github.com/ayoisaiah/streak/internal/ui"
	"github.com/ayoisaiah/streak/report"
	"github.com/ayoisaiah/streak/sprintlog"
	"github.com/ayoisaiah/streak/stats"
	"github.com/ayoisaiah/streak/store"
)

const (
	envNoColor       = "NO_COLOR"
	envStreakNoColor = "STREAK_NO_COLOR"
	envDebug         = "STREAK_DEBUG"

	noHistoryMsg = "No history found for the specified time range"

	logCloserKey = "logCloser"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig builds and validates the configuration. The first-run prompt
// is only shown when interactive is true.
func loadConfig(ctx *cli.Context, interactive bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if interactive {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Dump(slog.Default(), "loaded configuration", cfg)

	return cfg, nil
}

// loadLog reads the markdown sprint log selected by the configuration.
func loadLog(ctx *cli.Context) (*config.Config, *sprintlog.Log, error) {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return nil, nil, err
	}

	l, err := sprintlog.New(cfg.LogFilePath(), nil).Load()
	if err != nil {
		return nil, nil, err
	}

	return cfg, l, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// historyHelper opens the history database and reads the records since the
// --since date.
func historyHelper(ctx *cli.Context) ([]models.Sprint, store.DB, *config.Config, error) {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, nil, err
	}

	sprints, err := db.GetSprints(cfg.CLI.StartTime, time.Time{})
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	return sprints, db, cfg, nil
}

// historyAction lists the records in the history database.
func historyAction(ctx *cli.Context) error {
	sprints, db, cfg, err := historyHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if cfg.CLI.JSON {
		return writeJSON(config.Stdout, sprints)
	}

	if len(sprints) == 0 {
		pterm.Info.Println(noHistoryMsg)
		return nil
	}

	ui.PrintSection("Sprint history", config.Stdout)
	printHistory(config.Stdout, sprints)

	return nil
}

// deleteHistoryAction deletes records from the history database after
// confirmation.
func deleteHistoryAction(ctx *cli.Context) error {
	sprints, db, _, err := historyHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if len(sprints) == 0 {
		pterm.Info.Println(noHistoryMsg)
		return nil
	}

	return deleteHistory(config.Stdout, config.Stdin, db, sprints)
}

// logAction prints the sprints recorded in the markdown log.
func logAction(ctx *cli.Context) error {
	cfg, l, err := loadLog(ctx)
	if err != nil {
		return err
	}

	entries := stats.Filter(l, cfg.CLI.StartTime, time.Time{})

	if cfg.CLI.JSON {
		return writeJSON(config.Stdout, entries)
	}

	if len(entries) == 0 {
		pterm.Info.Println(stats.NoSprintsMsg)
		return nil
	}

	ui.PrintSection(cfg.LogFilePath(), config.Stdout)
	stats.PrintEntries(config.Stdout, entries)

	return nil
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	cfg, l, err := loadLog(ctx)
	if err != nil {
		return err
	}

	s := stats.Compute(l, cfg.CLI.StartTime, time.Time{})

	if cfg.CLI.JSON {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(config.Stdout, string(b))

		return err
	}

	s.Render(config.Stdout)

	return nil
}

// statusAction handles the status command and prints the status of the
// running sprint.
func statusAction(_ *cli.Context) error {
	return editor.ReportStatus(config.Stdout, pathutil.StatusFilePath())
}

// editConfigAction handles the edit-config command which opens the streak
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editorCmd := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editorCmd, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// defaultAction opens the editor and starts a sprint.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		if err := db.Close(); err != nil {
			report.Error(err)
		}
	}()

	ui.DarkTheme = cfg.Display.DarkTheme

	logPath := cfg.LogFilePath()

	m, err := editor.New(editor.Options{
		Config:     cfg,
		Log:        sprintlog.New(logPath, nil),
		StatusPath: pathutil.StatusFilePath(),
		Hooks:      editor.DefaultHooks(db),
	})
	if err != nil {
		return err
	}

	slog.InfoContext(
		ctx.Context,
		"opening editor",
		slog.String("document", cfg.CLI.Document),
		slog.String("log", logPath),
	)

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}

	if m.Recorded() {
		report.Logged(logPath)
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/streak/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if STREAK_NO_COLOR is set
	if _, exists := os.LookupEnv(envStreakNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	level := slog.LevelInfo
	if _, exists := os.LookupEnv(envDebug); exists {
		level = slog.LevelDebug
	}

	closer, err := logging.Setup(logging.Options{
		Path:  pathutil.LogFilePath(),
		Level: level,
	})
	if err != nil {
		return err
	}

	ctx.App.Metadata = map[string]any{logCloserKey: closer}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting streak")

	if closer, ok := ctx.App.Metadata[logCloserKey].(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
