package editor

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 1
	maxWidth = 100

	healthColor = "#E8575C"
	timeColor   = "#12EAEA"
)

type styles struct {
	Base    lipgloss.Style
	Title   lipgloss.Style
	Stats   lipgloss.Style
	Success lipgloss.Style
	Fail    lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
}

func newStyles(dark bool) styles {
	text := lipgloss.Color("#1F1F1F")
	hint := lipgloss.Color("#6C6C6C")

	if dark {
		text = lipgloss.Color("#F5F5F5")
		hint = lipgloss.Color("#9A9A9A")
	}

	return styles{
		Base:    lipgloss.NewStyle().Padding(padding, padding*2),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(text),
		Stats:   lipgloss.NewStyle().Foreground(text),
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B0DB43")),
		Fail:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(healthColor)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(healthColor)),
		Hint:    lipgloss.NewStyle().Foreground(hint),
	}
}
