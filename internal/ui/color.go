// Package ui holds the terminal colours and tables shared by the commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light colour variants that read well on a dark
// terminal background.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Outcome colours a sprint result.
func Outcome(success bool) string {
	if success {
		return Green("success")
	}

	return Red("fail")
}
