// Package editor is the terminal host for writing sprints: a markdown
// textarea with health and time bars above it
package editor

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/streak/internal/config"
	"github.com/ayoisaiah/streak/internal/timeutil"
	"github.com/ayoisaiah/streak/sprint"
	"github.com/ayoisaiah/streak/sprintlog"
)

// Options configures a Model.
type Options struct {
	Config *config.Config
	Log    sprint.Log
	// FS reads and saves the document. Nil means sprintlog.DiskFS.
	FS         sprintlog.FS
	Logger     *slog.Logger
	Now        func() time.Time
	StatusPath string
	Hooks      Hooks
}

// startMsg starts a sprint once the program is running.
type startMsg struct{}

// Model is the bubbletea model of the editor.
type Model struct {
	session   *sprint.Session
	sched     *scheduler
	presenter *presenter
	fs        sprintlog.FS
	logger    *slog.Logger
	cfg       *config.Config
	err       error
	doc       fileDoc
	keys      keyMap
	styles    styles
	health    progress.Model
	clock     progress.Model
	help      help.Model
	text      textarea.Model
	saved     string
	width     int
}

// New loads the document named in the configuration, if any, and returns the
// editor model.
func New(opts Options) (*Model, error) {
	if opts.FS == nil {
		opts.FS = sprintlog.DiskFS{}
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := &Model{
		cfg:    opts.Config,
		fs:     opts.FS,
		logger: opts.Logger,
		keys:   defaultKeys(),
		styles: newStyles(opts.Config.Display.DarkTheme),
		help:   help.New(),
		sched:  &scheduler{},
		health: progress.New(
			progress.WithSolidFill(healthColor),
			progress.WithoutPercentage(),
		),
		clock: progress.New(
			progress.WithSolidFill(timeColor),
			progress.WithoutPercentage(),
		),
	}

	m.presenter = &presenter{
		now:        opts.Now,
		logger:     opts.Logger,
		hooks:      opts.Hooks,
		statusPath: opts.StatusPath,
		notify:     opts.Config.Notifications.Enabled,
		sound:      opts.Config.Notifications.Sound,
		sessionCmd: opts.Config.Settings.Cmd,
	}

	m.session = sprint.New(
		m.presenter,
		opts.Log,
		m.sched,
		sprint.WithClock(opts.Now),
		sprint.WithLogger(opts.Logger),
	)

	m.text = textarea.New()
	m.text.ShowLineNumbers = false
	m.text.CharLimit = 0
	m.text.MaxHeight = 0
	m.text.Placeholder = "Start writing..."

	if path := opts.Config.CLI.Document; path != "" {
		content, err := loadDocument(opts.FS, path)
		if err != nil {
			return nil, err
		}

		m.doc = newFileDoc(path)
		m.text.SetValue(content)
		m.saved = content
	}

	m.text.Focus()

	return m, nil
}

// Session exposes the sprint driven by the editor.
func (m *Model) Session() *sprint.Session {
	return m.session
}

// Recorded reports whether any sprint was written to the log.
func (m *Model) Recorded() bool {
	return m.presenter.recorded
}

func (m *Model) Init() tea.Cmd {
	if m.cfg.CLI.NoStart {
		return textarea.Blink
	}

	return tea.Batch(textarea.Blink, func() tea.Msg {
		return startMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)

	return m, tea.Batch(cmd, m.sched.take(), m.presenter.take())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tickMsg:
		return m.sched.handle(msg)

	case startMsg:
		m.startSprint()
		return nil

	case hookDoneMsg:
		if msg.err != nil {
			m.logger.Error(
				"post-sprint hook failed",
				slog.String("hook", msg.name),
				slog.Any("error", msg.err),
			)

			m.err = fmt.Errorf("%s: %w", msg.name, msg.err)
		}

		return nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)

	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Cleanup()

		if m.dirty() && m.hasDocument() {
			m.save()
		}

		return tea.Quit

	case key.Matches(msg, m.keys.Sprint):
		m.startSprint()
		return nil

	case key.Matches(msg, m.keys.Stop):
		m.session.Stop()
		return nil

	case key.Matches(msg, m.keys.Save):
		m.save()
		return nil
	}

	before := m.text.Length()

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)

	if isInsertion(msg) && m.text.Length() > before {
		m.session.InputActivity()
	}

	return cmd
}

// isInsertion reports whether a key press types into the document, as
// opposed to moving the cursor or deleting text.
func isInsertion(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyEnter, tea.KeyTab:
		return true
	}

	return false
}

func (m *Model) startSprint() {
	cfg := m.cfg.SprintSettings()

	var doc sprint.Document

	title, path := "", ""

	if m.hasDocument() {
		doc = m.doc
		title, path = m.doc.title, m.doc.path
	}

	m.presenter.prepare(cfg, title, path)

	words := wordCounter(func() string {
		return m.text.Value()
	})

	err := m.session.Start(cfg, words, doc)
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
}

func (m *Model) hasDocument() bool {
	return m.doc.path != ""
}

func (m *Model) dirty() bool {
	return m.text.Value() != m.saved
}

func (m *Model) save() {
	if !m.hasDocument() {
		m.err = errNoDocument
		return
	}

	content := m.text.Value()

	if err := m.fs.WriteText(m.doc.path, content); err != nil {
		m.logger.Error("saving document failed", slog.Any("error", err))
		m.err = err

		return
	}

	m.saved = content
	m.err = nil
}

func (m *Model) resize(width, height int) {
	m.width = width

	barWidth := min(width-padding*4, maxWidth)

	m.health.Width = barWidth
	m.clock.Width = barWidth
	m.help.Width = width

	// header, two bars, stats line, help and padding
	const chrome = 10

	m.text.SetWidth(barWidth)
	m.text.SetHeight(max(height-chrome, 3))
}

func (m *Model) statsLine() string {
	p := m.presenter.progress

	clock := p.TimeText
	if clock == "" {
		clock = timeutil.FormatClock(m.cfg.SprintSettings().Duration())
	}

	return fmt.Sprintf("S:%d W:%d %s", p.Successes, p.Words, clock)
}

func (m *Model) headerView() string {
	title := "untitled"
	if m.hasDocument() {
		title = m.doc.title
	}

	if m.dirty() {
		title += "*"
	}

	s := m.styles.Title.Render(title)

	switch m.presenter.message {
	case successText:
		s += "  " + m.styles.Success.Render(successText)
	case failText:
		s += "  " + m.styles.Fail.Render(failText)
	}

	return s
}

func (m *Model) barsView() string {
	p := m.presenter.progress

	healthPct, timePct := 1.0, 1.0

	if m.presenter.active {
		healthPct = clamp(p.HealthPercent / 100)
		timePct = clamp(p.TimePercent / 100)
	}

	return m.health.ViewAs(healthPct) + "\n" + m.clock.ViewAs(timePct)
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n\n")
	s.WriteString(m.barsView())
	s.WriteString("\n")
	s.WriteString(m.styles.Stats.Render(m.statsLine()))
	s.WriteString("\n\n")
	s.WriteString(m.text.View())
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(m.styles.Error.Render(m.err.Error()))
		s.WriteString("\n")
	} else if r := m.presenter.result; r != nil && r.Err != nil {
		s.WriteString(m.styles.Error.Render("sprint not logged: " + r.Err.Error()))
		s.WriteString("\n")
	}

	s.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	return m.styles.Base.Render(s.String())
}

func clamp(f float64) float64 {
	return min(max(f, 0), 1)
}
