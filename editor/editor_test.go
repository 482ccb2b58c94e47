package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/streak/internal/config"
	"github.com/ayoisaiah/streak/internal/models"
	"github.com/ayoisaiah/streak/sprint"
	"github.com/ayoisaiah/streak/sprintlog"
)

var (
	errNoSpeaker = errors.New("no audio device")
	testNow      = time.Date(2024, time.March, 9, 7, 30, 0, 0, time.Local)
)

type fakeRecorder struct {
	sprints []*models.Sprint
}

func (r *fakeRecorder) SaveSprint(s *models.Sprint) error {
	r.sprints = append(r.sprints, s)
	return nil
}

type notice struct {
	title   string
	message string
}

type harness struct {
	m        *Model
	log      *sprintlog.Store
	history  *fakeRecorder
	notices  *[]notice
	dir      string
	status   string
	document string
}

func newHarness(t *testing.T, configure func(*config.Config)) *harness {
	t.Helper()

	dir := t.TempDir()

	cfg := &config.Config{
		Sprint: config.SprintConfig{
			Speed:    sprint.Medium,
			Duration: 1,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
	}

	if configure != nil {
		configure(cfg)
	}

	h := &harness{
		dir:     dir,
		status:  filepath.Join(dir, "status.json"),
		log:     sprintlog.New(filepath.Join(dir, "writingstreak.md"), nil),
		history: &fakeRecorder{},
		notices: &[]notice{},
	}

	notices := h.notices

	m, err := New(Options{
		Config:     cfg,
		Log:        h.log,
		Now:        func() time.Time { return testNow },
		StatusPath: h.status,
		Hooks: Hooks{
			History: h.history,
			Notify: func(title, message string) error {
				*notices = append(*notices, notice{title, message})
				return nil
			},
		},
	})
	require.NoError(t, err)

	h.m = m
	h.document = cfg.CLI.Document

	return h
}

// send delivers msg to the model and runs every command it produces
// except scheduled ticks.
func (h *harness) send(msg tea.Msg) {
	_, cmd := h.m.Update(msg)
	h.run(cmd)
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	done := make(chan tea.Msg, 1)

	go func() {
		done <- cmd()
	}()

	var msg tea.Msg

	select {
	case msg = <-done:
	case <-time.After(50 * time.Millisecond):
		// cursor blinks and similar long timers
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case hookDoneMsg:
		h.send(msg)
	}
}

// tick fires the current scheduled tick.
func (h *harness) tick() {
	h.send(tickMsg{gen: h.m.sched.gen})
}

func (h *harness) tickUntilDone(t *testing.T) {
	t.Helper()

	for range 10 {
		if h.m.Session().Status() != sprint.Running {
			return
		}

		h.tick()
	}

	t.Fatal("sprint did not finish")
}

func typeText(h *harness, s string) {
	for _, r := range s {
		if r == ' ' {
			h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}

		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func withDocument(path, content string) func(*config.Config) {
	return func(c *config.Config) {
		c.CLI.Document = path

		if content != "" {
			_ = os.WriteFile(path, []byte(content), 0o600)
		}
	}
}

func TestNewLoadsDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.md")

	h := newHarness(t, withDocument(path, "once upon a time"))

	assert.Equal(t, "once upon a time", h.m.text.Value())
	assert.Equal(t, "draft", h.m.doc.title)
	assert.False(t, h.m.dirty())
}

func TestNewWithMissingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.md")

	h := newHarness(t, withDocument(path, ""))

	assert.Empty(t, h.m.text.Value())
	assert.Equal(t, "new", h.m.doc.title)
	assert.NoFileExists(t, path)
}

func TestStartMsgStartsSprint(t *testing.T) {
	h := newHarness(t, nil)

	_, cmd := h.m.Update(startMsg{})

	assert.Equal(t, sprint.Running, h.m.Session().Status())
	assert.NotNil(t, cmd)
	assert.True(t, h.m.presenter.active)
}

func TestInvalidSettingsAreShown(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Sprint.Duration = 0
	})

	h.send(startMsg{})

	assert.Equal(t, sprint.Idle, h.m.Session().Status())
	require.Error(t, h.m.err)
	assert.ErrorIs(t, h.m.err, sprint.ErrInvalidDuration)
	assert.Contains(t, h.m.View(), h.m.err.Error())
}

func TestTickUpdatesStatusFile(t *testing.T) {
	h := newHarness(t, nil)

	h.send(startMsg{})
	h.tick()

	s, err := ReadStatus(h.status)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "00:59", s.TimeLeft)
	assert.Equal(t, sprint.Medium, s.Speed)
	assert.Equal(t, 1, s.Minutes)
	assert.True(t, testNow.Equal(s.UpdatedAt))
	assert.Contains(t, h.m.View(), "S:0 W:0 00:59")
}

func TestTypingRestoresHealth(t *testing.T) {
	h := newHarness(t, nil)

	h.send(startMsg{})
	h.tick()

	before := h.m.Session().Health()

	typeText(h, "hi there")

	assert.InDelta(t, before+8*sprint.HealthGain, h.m.Session().Health(), 1e-9)
	assert.Equal(t, 8, h.m.Session().Keystrokes())
	assert.Equal(t, "hi there", h.m.text.Value())
}

func TestNavigationIsNotInput(t *testing.T) {
	h := newHarness(t, nil)

	typeText(h, "abc")
	h.send(startMsg{})

	h.send(tea.KeyMsg{Type: tea.KeyLeft})
	h.send(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, 0, h.m.Session().Keystrokes())
	assert.Equal(t, "ac", h.m.text.Value())
}

func TestTypingBeforeSprintIsIgnored(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.CLI.NoStart = true
	})

	typeText(h, "draft")

	assert.Equal(t, sprint.Idle, h.m.Session().Status())
	assert.Equal(t, 0, h.m.Session().Keystrokes())
	assert.Contains(t, h.m.View(), "S:0 W:0 01:00")
}

func TestFailedSprintRunsHooks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapter-one.md")

	h := newHarness(t, func(c *config.Config) {
		withDocument(path, "It was a dark night")(c)
		c.Sprint.Decay = 35
	})

	h.send(startMsg{})
	typeText(h, " and")
	h.tickUntilDone(t)

	assert.Equal(t, sprint.Idle, h.m.Session().Status())

	l, err := h.log.Load()
	require.NoError(t, err)
	require.Equal(t, 1, l.Len())

	entry := l.All()[0]
	assert.False(t, entry.Success)
	assert.Equal(t, 1, entry.WordsWritten)
	assert.Equal(t, "chapter-one", entry.Title)
	assert.Equal(t, path, entry.Path)

	require.Len(t, h.history.sprints, 1)
	assert.False(t, h.history.sprints[0].Success)
	assert.Equal(t, 1, h.history.sprints[0].Words)

	require.Len(t, *h.notices, 1)
	assert.Equal(t, "Sprint failed", (*h.notices)[0].title)
	assert.Equal(t, "1 words in 1 minutes", (*h.notices)[0].message)

	assert.True(t, h.m.Recorded())
	assert.Equal(t, failText, h.m.presenter.message)
	assert.Contains(t, h.m.View(), failText)
	assert.NoFileExists(t, h.status)
}

func TestDisabledNotificationsAreSkipped(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Sprint.Decay = 50
		c.Notifications.Enabled = false
	})

	h.send(startMsg{})
	h.tickUntilDone(t)

	assert.Empty(t, *h.notices)
	assert.Len(t, h.history.sprints, 1)
}

func TestStopAbandonsSprint(t *testing.T) {
	h := newHarness(t, nil)

	h.send(startMsg{})
	h.tick()
	h.send(tea.KeyMsg{Type: tea.KeyCtrlX})

	assert.Equal(t, sprint.Idle, h.m.Session().Status())
	assert.NoFileExists(t, h.status)
	assert.NoFileExists(t, h.log.Path())
	assert.Empty(t, h.history.sprints)
	assert.False(t, h.m.Recorded())

	stale := h.m.sched.gen - 1
	_, cmd := h.m.Update(tickMsg{gen: stale})
	assert.Nil(t, cmd)
}

func TestNewSprintKeyRestarts(t *testing.T) {
	h := newHarness(t, nil)

	h.send(startMsg{})
	h.tick()
	h.tick()

	h.send(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, sprint.Running, h.m.Session().Status())
	assert.Equal(t, time.Minute, h.m.Session().TimeLeft())
}

func TestSaveWritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")

	h := newHarness(t, withDocument(path, ""))

	typeText(h, "hello")
	assert.True(t, h.m.dirty())

	h.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
	assert.False(t, h.m.dirty())
	assert.NoError(t, h.m.err)
}

func TestSaveWithoutDocument(t *testing.T) {
	h := newHarness(t, nil)

	typeText(h, "hello")
	h.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.ErrorIs(t, h.m.err, errNoDocument)
}

func TestQuitSavesAndStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")

	h := newHarness(t, withDocument(path, ""))

	h.send(startMsg{})
	typeText(h, "bye")

	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	assert.Equal(t, sprint.Idle, h.m.Session().Status())
	assert.NoFileExists(t, h.status)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bye", string(b))
}

func TestHookFailureIsShown(t *testing.T) {
	h := newHarness(t, nil)

	h.send(hookDoneMsg{name: "sound", err: errNoSpeaker})

	assert.ErrorIs(t, h.m.err, errNoSpeaker)
	assert.Contains(t, h.m.View(), "sound: no audio device")
}
