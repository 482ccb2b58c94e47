package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/streak/sprint"
)

// tickMsg carries the generation of the schedule that produced it.
type tickMsg struct {
	gen int
}

// scheduler drives sprint ticks through the bubbletea event loop so they
// are delivered serially with key presses. Every Schedule or Cancel starts a
// new generation; a tick from an older generation is dropped on arrival.
type scheduler struct {
	fn       func()
	pending  tea.Cmd
	interval time.Duration
	gen      int
}

type tickHandle struct {
	s   *scheduler
	gen int
}

func (h *tickHandle) Cancel() {
	if h.s.gen != h.gen {
		return
	}

	h.s.gen++
	h.s.fn = nil
	h.s.pending = nil
}

func (s *scheduler) Schedule(interval time.Duration, fn func()) sprint.Handle {
	s.gen++
	s.fn = fn
	s.interval = interval
	s.pending = s.next(s.gen)

	return &tickHandle{s: s, gen: s.gen}
}

func (s *scheduler) next(gen int) tea.Cmd {
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// handle runs the scheduled function for a current tick and returns the
// command for the following one.
func (s *scheduler) handle(msg tickMsg) tea.Cmd {
	if msg.gen != s.gen || s.fn == nil {
		return nil
	}

	s.fn()

	// fn may have cancelled the schedule
	if msg.gen != s.gen || s.fn == nil {
		return nil
	}

	return s.next(msg.gen)
}

// take returns the first tick of a new schedule, once.
func (s *scheduler) take() tea.Cmd {
	cmd := s.pending
	s.pending = nil

	return cmd
}
