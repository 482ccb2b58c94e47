package main

import (
	"os"

	"github.com/ayoisaiah/streak/app"
	"github.com/ayoisaiah/streak/internal/pathutil"
	"github.com/ayoisaiah/streak/report"
)

func run(args []string) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
