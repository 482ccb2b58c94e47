package sprint

import (
	"time"

	"github.com/ayoisaiah/streak/sprintlog"
)

// WordCounter reports the number of words in the active document.
type WordCounter interface {
	WordCount() int
}

// Document identifies the document being written. Both methods report false
// when no document is active.
type Document interface {
	Title() (string, bool)
	Path() (string, bool)
}

// Log is where sprint outcomes are recorded.
type Log interface {
	Load() (*sprintlog.Log, error)
	Append(e sprintlog.Entry) error
}

// Handle cancels a scheduled tick.
type Handle interface {
	Cancel()
}

// Scheduler invokes fn every interval until the returned handle is
// cancelled. fn must run on the same goroutine that drives the session.
type Scheduler interface {
	Schedule(interval time.Duration, fn func()) Handle
}

// Progress is a snapshot of a running sprint for display.
type Progress struct {
	TimeText      string
	HealthPercent float64
	TimePercent   float64
	Successes     int
	Words         int
}

// Result describes a finished sprint.
type Result struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Err        error // set when the entry could not be written to the log
	Speed      Speed
	Entry      sprintlog.Entry
	Status     Status
	Decay      float64
	Health     float64
	Keystrokes int
}

// Success reports whether the sprint ended with time running out.
func (r Result) Success() bool {
	return r.Status == Succeeded
}

// Presenter renders a session.
type Presenter interface {
	Setup()
	Update(p Progress)
	Finish(r Result)
	Teardown()
}
