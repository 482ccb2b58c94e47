package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

type brokenFS struct{}

func (brokenFS) ReadText(string) (string, bool, error) { return "", false, errDiskFull }
func (brokenFS) WriteText(string, string) error        { return errDiskFull }
func (brokenFS) CreateIfAbsent(string, string) error   { return errDiskFull }

func TestFileDoc(t *testing.T) {
	d := newFileDoc("/home/ada/notes/The Engine.md")

	title, ok := d.Title()
	require.True(t, ok)
	assert.Equal(t, "The Engine", title)

	path, ok := d.Path()
	require.True(t, ok)
	assert.Equal(t, "/home/ada/notes/The Engine.md", path)
}

func TestWordCounter(t *testing.T) {
	text := "one two"
	w := wordCounter(func() string { return text })

	assert.Equal(t, 2, w.WordCount())

	text += "  three\nfour"
	assert.Equal(t, 4, w.WordCount())
}

func TestLoadDocumentError(t *testing.T) {
	_, err := loadDocument(brokenFS{}, "notes.md")

	assert.ErrorIs(t, err, errReadDocument)
	assert.ErrorIs(t, err, errDiskFull)
}
