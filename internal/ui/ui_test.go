package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var buf bytes.Buffer

	PrintTable([][]string{
		{"Date", "Sprints"},
		{"2024-01-01", "3"},
	}, &buf)

	out := buf.String()
	assert.Contains(t, out, "Date")
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "3")
}

func TestOutcome(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	assert.Equal(t, "success", Outcome(true))
	assert.Equal(t, "fail", Outcome(false))
}
