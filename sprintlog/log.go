// Package sprintlog reads and writes the human-readable writing sprint log
package sprintlog

import (
	"sort"
	"time"
)

// Entry is the outcome of one completed sprint.
type Entry struct {
	Date            string `json:"date"`
	Start           string `json:"start"`
	Title           string `json:"title"`
	Path            string `json:"path"`
	DurationMinutes int    `json:"duration_minutes"`
	WordsWritten    int    `json:"words_written"`
	Success         bool   `json:"success"`
}

// NewEntry builds an entry stamped with the date and time of t.
func NewEntry(t time.Time, minutes, words int, success bool, title, path string) Entry {
	return Entry{
		Date:            t.Format(dateLayout),
		Start:           t.Format(timeLayout),
		DurationMinutes: minutes,
		WordsWritten:    words,
		Success:         success,
		Title:           SanitizeTitle(title),
		Path:            SanitizePath(path),
	}
}

func (e Entry) validate() error {
	if _, err := time.Parse(dateLayout, e.Date); err != nil {
		return errIncompleteEntry.Fmt("date").Wrap(err)
	}

	if _, err := time.Parse(timeLayout, e.Start); err != nil {
		return errIncompleteEntry.Fmt("start time").Wrap(err)
	}

	return checkFields(e)
}

// Log groups entries by date in the order they appear in the file.
type Log struct {
	entries map[string][]Entry
	dates   []string
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{
		entries: make(map[string][]Entry),
	}
}

func (l *Log) ensure(date string) {
	if _, ok := l.entries[date]; ok {
		return
	}

	l.entries[date] = []Entry{}
	l.dates = append(l.dates, date)
}

func (l *Log) add(e Entry) {
	l.ensure(e.Date)
	l.entries[e.Date] = append(l.entries[e.Date], e)
}

// Dates returns the dates that have a section in the log, in file order.
func (l *Log) Dates() []string {
	return append([]string(nil), l.dates...)
}

// Entries returns the entries recorded under date.
func (l *Log) Entries(date string) []Entry {
	return append([]Entry(nil), l.entries[date]...)
}

// All returns every entry in file order.
func (l *Log) All() []Entry {
	var all []Entry

	for _, d := range l.dates {
		all = append(all, l.entries[d]...)
	}

	return all
}

// Len returns the total number of entries.
func (l *Log) Len() int {
	var n int
	for _, d := range l.dates {
		n += len(l.entries[d])
	}

	return n
}

// SuccessCountForDate counts the successful sprints recorded under date.
func SuccessCountForDate(l *Log, date string) int {
	if l == nil {
		return 0
	}

	var n int

	for _, e := range l.entries[date] {
		if e.Success {
			n++
		}
	}

	return n
}

// WordsForDate sums the words written across all sprints on date.
func WordsForDate(l *Log, date string) int {
	if l == nil {
		return 0
	}

	var n int
	for _, e := range l.entries[date] {
		n += e.WordsWritten
	}

	return n
}

// DaySummary aggregates the sprints of a single day.
type DaySummary struct {
	Date      string `json:"date"`
	Sprints   int    `json:"sprints"`
	Successes int    `json:"successes"`
	Failures  int    `json:"failures"`
	Words     int    `json:"words"`
	Minutes   int    `json:"minutes"`
}

// Summaries returns one summary per dated section, sorted by date.
func Summaries(l *Log) []DaySummary {
	if l == nil {
		return nil
	}

	out := make([]DaySummary, 0, len(l.dates))

	for _, d := range l.dates {
		s := DaySummary{Date: d}

		for _, e := range l.entries[d] {
			s.Sprints++
			s.Words += e.WordsWritten
			s.Minutes += e.DurationMinutes

			if e.Success {
				s.Successes++
			} else {
				s.Failures++
			}
		}

		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	return out
}
