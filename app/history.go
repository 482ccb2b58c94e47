package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/streak/internal/models"
	"github.com/ayoisaiah/streak/internal/timeutil"
	"github.com/ayoisaiah/streak/internal/ui"
	"github.com/ayoisaiah/streak/store"
)

const historyDateFormat = "Jan 02, 2006 03:04 PM"

// printHistory prints a table of history records.
func printHistory(w io.Writer, sprints []models.Sprint) {
	tableBody := make([][]string, len(sprints))

	for i := range sprints {
		s := &sprints[i]

		doc := s.Title
		if doc == "" {
			doc = "-"
		}

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			s.StartTime.Format(historyDateFormat),
			timeutil.FormatClock(s.EndTime.Sub(s.StartTime)),
			string(s.Speed),
			strconv.Itoa(s.Words),
			strconv.Itoa(s.Keystrokes),
			doc,
			ui.Outcome(s.Success),
		}
	}

	tableBody = append([][]string{
		{"#", "START DATE", "LENGTH", "SPEED", "WORDS", "KEYSTROKES", "DOCUMENT", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// deleteHistory deletes the specified records. It requests for confirmation
// before proceeding with the operation.
func deleteHistory(
	w io.Writer,
	r io.Reader,
	db store.DB,
	sprints []models.Sprint,
) error {
	if len(sprints) == 0 {
		return nil
	}

	printHistory(w, sprints)

	warning := pterm.Warning.Sprint(
		"The above sprints will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(w, warning)

	reader := bufio.NewReader(r)

	_, _ = reader.ReadString('\n')

	return db.DeleteSprints(sprints)
}
