package editor

import (
	"path/filepath"

	"github.com/ayoisaiah/streak/internal/pathutil"
	"github.com/ayoisaiah/streak/sprint"
	"github.com/ayoisaiah/streak/sprintlog"
)

// fileDoc identifies the markdown file open in the editor.
type fileDoc struct {
	path  string
	title string
}

func newFileDoc(path string) fileDoc {
	return fileDoc{
		path:  path,
		title: pathutil.StripExtension(filepath.Base(path)),
	}
}

func (d fileDoc) Title() (string, bool) {
	return d.title, true
}

func (d fileDoc) Path() (string, bool) {
	return d.path, true
}

// loadDocument reads the file at path. A missing file is an empty document
// that is created on the first save.
func loadDocument(fsys sprintlog.FS, path string) (string, error) {
	content, _, err := fsys.ReadText(path)
	if err != nil {
		return "", errReadDocument.Fmt(path).Wrap(err)
	}

	return content, nil
}

// wordCounter counts the words in whatever text returns.
type wordCounter func() string

func (w wordCounter) WordCount() int {
	return sprint.CountWords(w())
}
