package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// section renders a titled block of the help template.
func section(title, body string) string {
	return fmt.Sprintf("%s\n%s\n\n", pterm.Yellow(title), body)
}

func helpText() string {
	flagNames := fmt.Sprintf(
		"{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s",
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	sections := []string{
		section("DESCRIPTION", "\t\t{{.Usage}}"),
		section("USAGE", "\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}"),
		section("VERSION", "\t\t{{.Version}}"),
		section(
			"COMMANDS",
			"{{range .Commands}}{{if not .HideHelp}}   "+
				pterm.Green("{{join .Names `, `}}")+
				"{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
		),
		section(
			"OPTIONS",
			"{{range .VisibleFlags}}\t\t"+flagNames+"\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		),
		section("EDITOR KEYS", "\t\t"+keysHelp()),
		section("ENVIRONMENTAL VARIABLES", "\t\t"+envHelp()),
		section("WEBSITE", "\t\thttps://github.com/ayoisaiah/streak"),
	}

	return strings.Join(sections, "")
}

func keysHelp() string {
	return `ctrl+r: start a new sprint, ctrl+x: stop the sprint, ctrl+s: save the file, ctrl+c: quit`
}

func envHelp() string {
	return `
STREAK_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

STREAK_DEBUG: set to any value to write debug messages to the log file.

STREAK_ENV: use separate configuration and data files for the named environment.`
}
