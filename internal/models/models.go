// Package models defines the records kept in the history database
package models

import (
	"time"

	"github.com/ayoisaiah/streak/sprint"
)

// Sprint is the structured history record of one finished sprint. The
// markdown log keeps a lossy, human-readable copy of the same outcome.
type Sprint struct {
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"`
	Speed      sprint.Speed  `json:"speed"`
	Title      string        `json:"title"`
	Path       string        `json:"path"`
	Duration   time.Duration `json:"duration"`
	Decay      float64       `json:"decay"`
	Health     float64       `json:"health"`
	Words      int           `json:"words"`
	Keystrokes int           `json:"keystrokes"`
	Success    bool          `json:"success"`
}

// FromResult builds a history record from a finished sprint.
func FromResult(r sprint.Result) Sprint {
	return Sprint{
		StartTime:  r.StartedAt,
		EndTime:    r.EndedAt,
		Speed:      r.Speed,
		Title:      r.Entry.Title,
		Path:       r.Entry.Path,
		Duration:   time.Duration(r.Entry.DurationMinutes) * time.Minute,
		Decay:      r.Decay,
		Health:     r.Health,
		Words:      r.Entry.WordsWritten,
		Keystrokes: r.Keystrokes,
		Success:    r.Success(),
	}
}

// Outcome names the result of the sprint.
func (s Sprint) Outcome() string {
	if s.Success {
		return "success"
	}

	return "fail"
}
