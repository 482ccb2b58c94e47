package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/streak/internal/ui"
)

const (
	barChartChar = "▇"
	// NoSprintsMsg is shown when nothing was logged in the period.
	NoSprintsMsg = "No sprints found for the specified time range"
	dateFormat   = "January 02, 2006"
)

func (s *Stats) summary() string {
	header := fmt.Sprintf("%s\n", ui.Highlight("Summary"))

	rate := 0
	if s.Totals.Sprints > 0 {
		rate = s.Totals.Successes * 100 / s.Totals.Sprints
	}

	lines := []string{
		fmt.Sprintln("Sprints:", ui.Green(s.Totals.Sprints)),
		fmt.Sprintln("Successful:", ui.Green(s.Totals.Successes)),
		fmt.Sprintln("Failed:", ui.Red(s.Totals.Failures)),
		fmt.Sprintf("Success rate: %s\n", ui.Green(strconv.Itoa(rate)+"%")),
		fmt.Sprintln("Words written:", ui.Green(s.Totals.Words)),
		fmt.Sprintln("Minutes sprinted:", ui.Green(s.Totals.Minutes)),
		fmt.Sprintln("Longest streak (days):", ui.Yellow(s.LongestStreak)),
		fmt.Sprintln("Current streak (days):", ui.Yellow(s.CurrentStreak)),
	}

	return header + strings.Join(lines, "")
}

func (s *Stats) daysTable() [][]string {
	data := [][]string{
		{"DATE", "SPRINTS", "SUCCESS", "FAIL", "WORDS", "MINUTES"},
	}

	for _, d := range s.Days {
		data = append(data, []string{
			d.Date,
			strconv.Itoa(d.Sprints),
			strconv.Itoa(d.Successes),
			strconv.Itoa(d.Failures),
			strconv.Itoa(d.Words),
			strconv.Itoa(d.Minutes),
		})
	}

	return data
}

func (s *Stats) documentsTable() [][]string {
	data := [][]string{
		{"DOCUMENT", "PATH", "SPRINTS", "SUCCESS", "WORDS"},
	}

	for _, d := range s.Documents {
		data = append(data, []string{
			d.Title,
			d.Path,
			strconv.Itoa(d.Sprints),
			strconv.Itoa(d.Successes),
			strconv.Itoa(d.Words),
		})
	}

	return data
}

// wordsChart plots the words written per day.
func (s *Stats) wordsChart() string {
	if len(s.Days) == 0 {
		return ""
	}

	bars := make(pterm.Bars, 0, len(s.Days))

	for _, d := range s.Days {
		label := d.Date

		date, err := time.Parse(time.DateOnly, d.Date)
		if err == nil {
			label = date.Format("Jan 02")
		}

		bars = append(bars, pterm.Bar{
			Label: label,
			Value: max(d.Words, 0),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return fmt.Sprintf("\n%s\n", ui.Highlight("Words per day")) + chart
}

// Render writes the report to w.
func (s *Stats) Render(w io.Writer) {
	if len(s.Days) == 0 {
		fmt.Fprintln(w, NoSprintsMsg)
		return
	}

	period := fmt.Sprintf(
		"Reporting period: %s - %s",
		s.StartTime.Format(dateFormat),
		s.EndTime.Format(dateFormat),
	)

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(period)

	fmt.Fprint(w, header)
	fmt.Fprintln(w, s.summary())

	ui.PrintTable(s.daysTable(), w)
	ui.PrintTable(s.documentsTable(), w)

	fmt.Fprintln(w, strings.TrimSpace(s.wordsChart()))
}
