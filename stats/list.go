package stats

import (
	"io"
	"strconv"
	"time"

	"github.com/ayoisaiah/streak/internal/ui"
	"github.com/ayoisaiah/streak/sprintlog"
)

// Filter returns the entries logged between start and end inclusive, oldest
// day first. A zero start or end leaves that side open.
func Filter(l *sprintlog.Log, start, end time.Time) []sprintlog.Entry {
	var out []sprintlog.Entry

	from, to := "", "9999-12-31"
	if !start.IsZero() {
		from = start.Format(time.DateOnly)
	}

	if !end.IsZero() {
		to = end.Format(time.DateOnly)
	}

	for _, day := range sprintlog.Summaries(l) {
		if day.Date < from || day.Date > to {
			continue
		}

		out = append(out, l.Entries(day.Date)...)
	}

	return out
}

// PrintEntries writes a table of log entries.
func PrintEntries(w io.Writer, entries []sprintlog.Entry) {
	data := [][]string{
		{"#", "DATE", "START", "MINUTES", "WORDS", "DOCUMENT", "STATUS"},
	}

	for i, e := range entries {
		doc := e.Title
		if doc == "" {
			doc = e.Path
		}

		data = append(data, []string{
			strconv.Itoa(i + 1),
			e.Date,
			e.Start,
			strconv.Itoa(e.DurationMinutes),
			strconv.Itoa(e.WordsWritten),
			doc,
			ui.Outcome(e.Success),
		})
	}

	ui.PrintTable(data, w)
}
