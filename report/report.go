// Package report prints user-facing messages to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/streak/internal/osutil"
)

// Logged confirms that a sprint outcome was written to the log.
func Logged(path string) {
	pterm.Info.Printfln("sprint recorded in %s", path)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
