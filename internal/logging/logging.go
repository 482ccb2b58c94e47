// Package logging routes structured logs to a size-rotated file
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/streak/internal/osutil"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Options controls the logger created by Setup.
type Options struct {
	// Path is the log file. Rotated copies are kept alongside it.
	Path  string
	Level slog.Level
}

// Setup installs a JSON slog handler writing to opts.Path as the default
// logger. The returned closer flushes and closes the file.
func Setup(opts Options) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission); err != nil {
		return nil, err
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	slog.SetDefault(New(w, opts.Level))

	return w, nil
}

// New returns a JSON logger that writes to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Dump logs a deep representation of v at debug level.
func Dump(l *slog.Logger, msg string, v any) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	l.Debug(msg, slog.String("value", spew.Sdump(v)))
}
