package sprint

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/streak/internal/timeutil"
	"github.com/ayoisaiah/streak/sprintlog"
)

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// Session is a single writing sprint. It is not safe for concurrent use: all
// methods, including scheduled ticks, must be called from one goroutine.
//
// Between ticks health may exceed MaxHealth since input events are not
// clamped when they arrive (overheal). Every tick restores
// 0 <= health <= MaxHealth and 0 <= timeLeft <= duration before the state is
// presented.
type Session struct {
	startedAt  time.Time
	presenter  Presenter
	log        Log
	scheduler  Scheduler
	words      WordCounter
	doc        Document
	handle     Handle
	logger     *slog.Logger
	now        func() time.Time
	cfg        Config
	duration   time.Duration
	timeLeft   time.Duration
	decay      float64
	health     float64
	startWords int
	endWords   int
	successes  int
	keystrokes int
	status     Status
	setUp      bool
}

// New returns an idle session that reports to p, records outcomes in l and
// ticks through sched.
func New(p Presenter, l Log, sched Scheduler, opts ...Option) *Session {
	s := &Session{
		presenter: p,
		log:       l,
		scheduler: sched,
		now:       time.Now,
		logger:    slog.Default(),
		health:    MaxHealth,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Status returns the current state of the session.
func (s *Session) Status() Status {
	return s.status
}

// Health returns the current health value.
func (s *Session) Health() float64 {
	return s.health
}

// TimeLeft returns the time remaining in the sprint.
func (s *Session) TimeLeft() time.Duration {
	return s.timeLeft
}

// Successes returns the number of successful sprints logged today, as read
// when the sprint started.
func (s *Session) Successes() int {
	return s.successes
}

// Keystrokes returns the number of input events seen in this sprint.
func (s *Session) Keystrokes() int {
	return s.keystrokes
}

// Config returns the configuration of the current or last sprint.
func (s *Session) Config() Config {
	return s.cfg
}

// Start begins a new sprint. A sprint that is already running is cleaned up
// first without being logged.
func (s *Session) Start(cfg Config, words WordCounter, doc Document) error {
	err := cfg.validate()
	if err != nil {
		return err
	}

	s.Cleanup()

	s.cfg = cfg
	s.duration = cfg.Duration()
	s.decay = cfg.DecayPerTick()
	s.timeLeft = s.duration
	s.health = MaxHealth
	s.words = words
	s.doc = doc
	s.keystrokes = 0
	s.endWords = 0
	s.startedAt = s.now()
	s.successes = s.todaysSuccesses()
	s.startWords = s.wordCount()

	s.presenter.Setup()
	s.setUp = true

	s.status = Running

	s.handle = s.scheduler.Schedule(TickLength, func() {
		_ = s.Tick()
	})

	s.logger.Info(
		"sprint started",
		slog.Int("minutes", cfg.Minutes),
		slog.Float64("decay", s.decay),
		slog.Int("start_words", s.startWords),
	)

	return nil
}

// Tick advances the sprint by one TickLength. When the previous tick used
// up the remaining time the sprint succeeds; otherwise, when it used up the
// remaining health, the sprint fails.
func (s *Session) Tick() error {
	if s.status != Running {
		return ErrNotRunning
	}

	if s.timeLeft <= 0 {
		s.finish(Succeeded)
		return nil
	}

	if s.health <= 0 {
		s.finish(Failed)
		return nil
	}

	s.health -= s.decay
	s.timeLeft -= TickLength

	s.health = min(max(s.health, 0), MaxHealth)
	s.timeLeft = min(max(s.timeLeft, 0), s.duration)

	s.presenter.Update(s.progress())

	return nil
}

// InputActivity restores HealthGain for a user input event.
func (s *Session) InputActivity() {
	if s.status != Running {
		return
	}

	s.health += HealthGain
	s.keystrokes++
}

// Stop abandons the running sprint without recording it.
func (s *Session) Stop() {
	if s.status == Running {
		s.logger.Info("sprint stopped", slog.Duration("time_left", s.timeLeft))
	}

	s.Cleanup()
}

// Cleanup cancels the tick, tears down the presenter and resets the timer
// and health. It is safe to call at any time, including repeatedly.
func (s *Session) Cleanup() {
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}

	s.timeLeft = s.duration
	s.health = MaxHealth
	s.status = Idle

	if s.setUp {
		s.setUp = false
		s.presenter.Teardown()
	}
}

func (s *Session) progress() Progress {
	var timePct float64
	if s.duration > 0 {
		timePct = float64(s.timeLeft) / float64(s.duration) * 100
	}

	return Progress{
		HealthPercent: s.health / 100 * 100,
		TimePercent:   timePct,
		TimeText:      timeutil.FormatClock(s.timeLeft),
		Successes:     s.successes,
		Words:         s.wordCount() - s.startWords,
	}
}

// finish records the outcome, notifies the presenter and cleans up. A failure
// to record the outcome does not prevent the transition.
func (s *Session) finish(status Status) {
	s.status = status
	s.endWords = s.wordCount()

	end := s.now()

	title, _ := s.title()
	path, _ := s.path()

	res := Result{
		Status:     status,
		StartedAt:  s.startedAt,
		EndedAt:    end,
		Speed:      s.cfg.Speed,
		Decay:      s.decay,
		Health:     s.health,
		Keystrokes: s.keystrokes,
		Entry: sprintlog.NewEntry(
			end,
			s.cfg.Minutes,
			s.endWords-s.startWords,
			status == Succeeded,
			title,
			path,
		),
	}

	if s.log != nil {
		res.Err = s.log.Append(res.Entry)
	}

	if res.Err != nil {
		s.logger.Error(
			"recording sprint failed",
			slog.String("status", status.String()),
			slog.Any("error", res.Err),
		)
	} else {
		s.logger.Info(
			"sprint finished",
			slog.String("status", status.String()),
			slog.Int("words", res.Entry.WordsWritten),
			slog.Int("keystrokes", s.keystrokes),
		)
	}

	s.presenter.Finish(res)

	s.Cleanup()
}

func (s *Session) todaysSuccesses() int {
	if s.log == nil {
		return 0
	}

	l, err := s.log.Load()
	if err != nil {
		s.logger.Warn("reading sprint log failed", slog.Any("error", err))
		return 0
	}

	return sprintlog.SuccessCountForDate(l, s.now().Format(time.DateOnly))
}

func (s *Session) wordCount() int {
	if s.words == nil {
		return 0
	}

	return s.words.WordCount()
}

func (s *Session) title() (string, bool) {
	if s.doc == nil {
		return "", false
	}

	return s.doc.Title()
}

func (s *Session) path() (string, bool) {
	if s.doc == nil {
		return "", false
	}

	return s.doc.Path()
}
