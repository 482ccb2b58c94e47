// Package stats reports writing sprint statistics from the sprint log
package stats

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/streak/sprintlog"
)

const noDocument = "(no document)"

type (
	// Totals sums every sprint in the reporting period.
	Totals struct {
		Sprints   int `json:"sprints"`
		Successes int `json:"successes"`
		Failures  int `json:"failures"`
		Words     int `json:"words"`
		Minutes   int `json:"minutes"`
	}

	// DocumentStat aggregates the sprints written in a single document.
	DocumentStat struct {
		Title     string `json:"title"`
		Path      string `json:"path"`
		Sprints   int    `json:"sprints"`
		Successes int    `json:"successes"`
		Words     int    `json:"words"`
		Minutes   int    `json:"minutes"`
	}

	// Stats is the report for a period.
	Stats struct {
		StartTime time.Time              `json:"start_time"`
		EndTime   time.Time              `json:"end_time"`
		Days      []sprintlog.DaySummary `json:"days"`
		Documents []DocumentStat         `json:"documents"`
		Totals    Totals                 `json:"totals"`
		// LongestStreak is the longest run of consecutive days with at
		// least one successful sprint.
		LongestStreak int `json:"longest_streak"`
		// CurrentStreak is the run ending on the last day of the period. A
		// last day without a success yet does not break it.
		CurrentStreak int `json:"current_streak"`
	}
)

// Compute builds the report for the days between start and end inclusive.
// A zero start covers the whole log.
func Compute(l *sprintlog.Log, start, end time.Time) *Stats {
	s := &Stats{
		StartTime: start,
		EndTime:   end,
		Days:      []sprintlog.DaySummary{},
		Documents: []DocumentStat{},
	}

	from, to := "", end.Format(time.DateOnly)
	if !start.IsZero() {
		from = start.Format(time.DateOnly)
	}

	docs := make(map[string]*DocumentStat)

	for _, day := range sprintlog.Summaries(l) {
		if day.Date < from || day.Date > to {
			continue
		}

		s.Days = append(s.Days, day)

		s.Totals.Sprints += day.Sprints
		s.Totals.Successes += day.Successes
		s.Totals.Failures += day.Failures
		s.Totals.Words += day.Words
		s.Totals.Minutes += day.Minutes

		for _, e := range l.Entries(day.Date) {
			addToDocument(docs, e)
		}
	}

	if s.StartTime.IsZero() && len(s.Days) > 0 {
		s.StartTime, _ = time.ParseInLocation(
			time.DateOnly,
			s.Days[0].Date,
			end.Location(),
		)
	}

	for _, d := range docs {
		s.Documents = append(s.Documents, *d)
	}

	sort.SliceStable(s.Documents, func(i, j int) bool {
		a, b := s.Documents[i], s.Documents[j]
		if a.Title == b.Title {
			return natural.Less(a.Path, b.Path)
		}

		return natural.Less(a.Title, b.Title)
	})

	s.LongestStreak, s.CurrentStreak = streaks(s.Days, to)

	return s
}

func addToDocument(docs map[string]*DocumentStat, e sprintlog.Entry) {
	key := e.Path
	if key == "" {
		key = e.Title
	}

	d, ok := docs[key]
	if !ok {
		title := e.Title
		if title == "" && e.Path == "" {
			title = noDocument
		}

		d = &DocumentStat{Title: title, Path: e.Path}
		docs[key] = d
	}

	d.Sprints++
	d.Words += e.WordsWritten
	d.Minutes += e.DurationMinutes

	if e.Success {
		d.Successes++
	}
}

// streaks walks the successful days in date order. last is the final day of
// the period.
func streaks(days []sprintlog.DaySummary, last string) (longest, current int) {
	var (
		run  int
		prev time.Time
	)

	for _, d := range days {
		if d.Successes == 0 {
			continue
		}

		date, err := time.Parse(time.DateOnly, d.Date)
		if err != nil {
			continue
		}

		if !prev.IsZero() && date.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}

		prev = date
		longest = max(longest, run)
	}

	if prev.IsZero() {
		return longest, 0
	}

	end, err := time.Parse(time.DateOnly, last)
	if err != nil {
		return longest, 0
	}

	switch end.Sub(prev) {
	case 0, 24 * time.Hour:
		current = run
	}

	return longest, current
}

// ToJSON encodes the report.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}
