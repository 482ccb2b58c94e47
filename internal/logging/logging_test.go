package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, slog.LevelInfo)
	l.Info("sprint started", slog.Int("minutes", 5))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	assert.Equal(t, "sprint started", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.InDelta(t, 5, rec["minutes"], 0)
}

func TestDumpRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	Dump(New(&buf, slog.LevelInfo), "config", struct{ A int }{1})
	assert.Zero(t, buf.Len())

	Dump(New(&buf, slog.LevelDebug), "config", struct{ A int }{1})
	assert.Contains(t, buf.String(), `"msg":"config"`)
	assert.Contains(t, buf.String(), "A: (int) 1")
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "log", "streak.log")

	closer, err := Setup(Options{Path: path, Level: slog.LevelInfo})
	require.NoError(t, err)

	slog.Info("hello")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}
