package editor

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/streak/internal/models"
	"github.com/ayoisaiah/streak/sprint"
)

const (
	successText = "Success!"
	failText    = "Fail!"
)

// presenter renders sprint progress into the editor model. Side effects
// that must not block the event loop are queued as commands.
type presenter struct {
	now        func() time.Time
	logger     *slog.Logger
	result     *sprint.Result
	status     Status
	hooks      Hooks
	statusPath string
	message    string
	sound      string
	sessionCmd string
	cmds       []tea.Cmd
	progress   sprint.Progress
	notify     bool
	active     bool
	recorded   bool
}

// prepare records what the next sprint is about for the status file.
func (p *presenter) prepare(cfg sprint.Config, title, path string) {
	p.status = Status{
		Speed:   cfg.Speed,
		Minutes: cfg.Minutes,
		Title:   title,
		Path:    path,
	}
}

func (p *presenter) Setup() {
	p.active = true
	p.message = ""
	p.result = nil
	p.progress = sprint.Progress{}
}

func (p *presenter) Update(pr sprint.Progress) {
	written := p.progress.TimeText

	p.progress = pr

	// the clock text changes once a second
	if p.statusPath == "" || pr.TimeText == written {
		return
	}

	p.status.UpdatedAt = p.now()
	p.status.TimeLeft = pr.TimeText
	p.status.HealthPercent = pr.HealthPercent
	p.status.TimePercent = pr.TimePercent
	p.status.Words = pr.Words
	p.status.Successes = pr.Successes

	if err := writeStatusFile(p.statusPath, &p.status); err != nil {
		p.logger.Warn("writing status file failed", slog.Any("error", err))
	}
}

func (p *presenter) Finish(r sprint.Result) {
	p.result = &r
	p.message = failText
	p.recorded = p.recorded || r.Err == nil

	if r.Success() {
		p.message = successText
		// include the sprint that just succeeded
		p.progress.Successes++
	}

	p.queueHooks(r)
}

func (p *presenter) Teardown() {
	p.active = false

	if p.statusPath == "" {
		return
	}

	if err := removeStatusFile(p.statusPath); err != nil {
		p.logger.Warn("removing status file failed", slog.Any("error", err))
	}
}

func (p *presenter) queueHooks(r sprint.Result) {
	h := p.hooks

	if h.History != nil {
		rec := models.FromResult(r)

		p.cmds = append(p.cmds, func() tea.Msg {
			return hookDoneMsg{name: "history", err: h.History.SaveSprint(&rec)}
		})
	}

	if p.notify && h.Notify != nil {
		title, msg := notification(r)

		p.cmds = append(p.cmds, func() tea.Msg {
			return hookDoneMsg{name: "notification", err: h.Notify(title, msg)}
		})
	}

	if p.notify && p.sound != "" && h.Play != nil {
		sound := p.sound

		p.cmds = append(p.cmds, func() tea.Msg {
			return hookDoneMsg{name: "sound", err: h.Play(sound)}
		})
	}

	if p.sessionCmd != "" && h.Run != nil {
		command := p.sessionCmd

		p.cmds = append(p.cmds, func() tea.Msg {
			return hookDoneMsg{
				name: "session command",
				err:  h.Run(context.Background(), command, r),
			}
		})
	}
}

// take returns the queued commands, once.
func (p *presenter) take() tea.Cmd {
	if len(p.cmds) == 0 {
		return nil
	}

	cmd := tea.Batch(p.cmds...)
	p.cmds = nil

	return cmd
}
