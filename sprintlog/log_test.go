package sprintlog

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManualEdits(t *testing.T) {
	b, err := os.ReadFile("testdata/manual_edits.md")
	require.NoError(t, err)

	l := Parse(string(b))

	want := map[string][]Entry{
		"2024-03-01": {
			{
				Date:            "2024-03-01",
				Start:           "08:00:00",
				DurationMinutes: 5,
				WordsWritten:    100,
				Success:         true,
				Title:           "Morning pages",
				Path:            "journal/Morning pages.md",
			},
			{
				Date:            "2024-03-01",
				Start:           "08:30:00",
				DurationMinutes: 5,
				WordsWritten:    75,
				Title:           "Morning pages",
				Path:            "journal/Morning pages.md",
			},
		},
		"2024-03-02": {
			{
				Date:            "2024-03-02",
				Start:           "22:45:10",
				DurationMinutes: 15,
				WordsWritten:    410,
				Success:         true,
				Title:           "Novel (draft)",
				Path:            "book/Novel (draft).md",
			},
			{
				Date:            "2024-03-02",
				Start:           "22:50:00",
				DurationMinutes: 5,
				WordsWritten:    5,
				Success:         true,
				Title:           "Last",
				Path:            "last.md",
			},
		},
	}

	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, l.Dates())

	for date, entries := range want {
		if diff := cmp.Diff(entries, l.Entries(date)); diff != "" {
			t.Errorf("entries for %s mismatch (-want +got):\n%s", date, diff)
		}
	}

	assert.Equal(t, 4, l.Len())
}

func TestParseEntryBeforeHeaderIsDropped(t *testing.T) {
	content := "- **Start:** 10:00:00, **Duration:** 5 min, **Wordcount:** 1 words, **Success:** true, **Doc:** [A](a.md)\n"

	l := Parse(content)

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Dates())
}

func TestParseCRLF(t *testing.T) {
	content := "# Writing Sprint Log\r\n\r\n## 2024-01-01\r\n" +
		"- **Start:** 10:00:00, **Duration:** 5 min, **Wordcount:** 1 words, **Success:** true, **Doc:** [A](a.md)\r\n"

	l := Parse(content)

	require.Len(t, l.Entries("2024-01-01"), 1)
	assert.Equal(t, "a.md", l.Entries("2024-01-01")[0].Path)
}

func TestParseRepeatedHeaderMergesSection(t *testing.T) {
	content := "## 2024-01-01\n" +
		"- **Start:** 10:00:00, **Duration:** 5 min, **Wordcount:** 1 words, **Success:** true, **Doc:** [A](a.md)\n" +
		"## 2024-01-02\n" +
		"- **Start:** 11:00:00, **Duration:** 5 min, **Wordcount:** 2 words, **Success:** true, **Doc:** [B](b.md)\n" +
		"## 2024-01-01\n" +
		"- **Start:** 12:00:00, **Duration:** 5 min, **Wordcount:** 3 words, **Success:** false, **Doc:** [C](c.md)\n"

	l := Parse(content)

	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, l.Dates())
	assert.Len(t, l.Entries("2024-01-01"), 2)
	assert.Equal(t, 3, l.Len())
}

func TestParseEmpty(t *testing.T) {
	l := Parse("")

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.All())
}

func TestSuccessCountForDate(t *testing.T) {
	l := NewLog()
	l.add(Entry{Date: "2024-01-01", Success: true, WordsWritten: 100})
	l.add(Entry{Date: "2024-01-01", Success: false, WordsWritten: 20})
	l.add(Entry{Date: "2024-01-01", Success: true, WordsWritten: 60})
	l.add(Entry{Date: "2024-01-02", Success: true, WordsWritten: 5})

	assert.Equal(t, 2, SuccessCountForDate(l, "2024-01-01"))
	assert.Equal(t, 0, SuccessCountForDate(l, "2023-12-31"))
	assert.Equal(t, 0, SuccessCountForDate(nil, "2024-01-01"))
	assert.Equal(t, 180, WordsForDate(l, "2024-01-01"))
	assert.Equal(t, 0, WordsForDate(l, "2023-12-31"))
}

func TestSummaries(t *testing.T) {
	l := NewLog()
	l.add(Entry{Date: "2024-01-02", Success: true, WordsWritten: 5, DurationMinutes: 5})
	l.add(Entry{Date: "2024-01-01", Success: true, WordsWritten: 100, DurationMinutes: 25})
	l.add(Entry{Date: "2024-01-01", Success: false, WordsWritten: -10, DurationMinutes: 25})

	want := []DaySummary{
		{Date: "2024-01-01", Sprints: 2, Successes: 1, Failures: 1, Words: 90, Minutes: 50},
		{Date: "2024-01-02", Sprints: 1, Successes: 1, Words: 5, Minutes: 5},
	}

	if diff := cmp.Diff(want, Summaries(l)); diff != "" {
		t.Errorf("summaries mismatch (-want +got):\n%s", diff)
	}
}

func TestNewEntry(t *testing.T) {
	ts := time.Date(2024, time.February, 29, 7, 5, 9, 0, time.Local)

	e := NewEntry(ts, 5, 42, true, "Draft", "Draft.md")

	assert.Equal(t, "2024-02-29", e.Date)
	assert.Equal(t, "07:05:09", e.Start)
	assert.NoError(t, e.validate())
}
