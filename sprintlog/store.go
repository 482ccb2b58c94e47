package sprintlog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ayoisaiah/streak/internal/osutil"
)

const (
	// FileName is the name of the log file inside the log folder.
	FileName = "writingstreak.md"
	// DefaultFolder is where the log lives relative to the notes directory.
	DefaultFolder = "_assets/data"
)

// FS is the persistence the log store reads from and writes to.
type FS interface {
	// ReadText returns the file content, or false if the file does not exist.
	ReadText(path string) (string, bool, error)
	WriteText(path, content string) error
	// CreateIfAbsent creates the file with the initial content unless it
	// already exists.
	CreateIfAbsent(path, initial string) error
}

// DiskFS stores the log on the local filesystem. Writes go through a
// temporary file that is renamed over the destination.
type DiskFS struct{}

func (DiskFS) ReadText(path string) (string, bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return string(b), true, nil
}

func (DiskFS) WriteText(path, content string) error {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, osutil.DirPermission)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".writingstreak-*")
	if err != nil {
		return err
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	_, err = tmp.WriteString(content)
	if err != nil {
		_ = tmp.Close()
		return err
	}

	err = tmp.Close()
	if err != nil {
		return err
	}

	err = os.Chmod(tmp.Name(), osutil.FilePermission)
	if err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func (DiskFS) CreateIfAbsent(path, initial string) error {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(
		path,
		os.O_WRONLY|os.O_CREATE|os.O_EXCL,
		osutil.FilePermission,
	)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}

	if err != nil {
		return err
	}

	_, err = f.WriteString(initial)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Path returns the location of the log file for a notes directory and a log
// folder relative to it.
func Path(vault, folder string) string {
	if folder == "" {
		folder = DefaultFolder
	}

	return filepath.Join(vault, folder, FileName)
}

// Store appends sprint outcomes to the log file and reads them back. It
// assumes it is the only writer of the file.
type Store struct {
	fs   FS
	path string
	mu   sync.Mutex
}

// New returns a Store for the log file at path. A nil fsys means DiskFS.
func New(path string, fsys FS) *Store {
	if fsys == nil {
		fsys = DiskFS{}
	}

	return &Store{
		fs:   fsys,
		path: path,
	}
}

// Path returns the location of the log file.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the whole log. A missing file yields an empty log.
func (s *Store) Load() (*Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, _, err := s.fs.ReadText(s.path)
	if err != nil {
		return nil, errReadLog.Wrap(err)
	}

	return Parse(content), nil
}

// Append records an entry under its date, creating the file and the date
// section as needed. The rest of the file is left untouched.
func (s *Store) Append(e Entry) error {
	err := e.validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	content, exists, err := s.fs.ReadText(s.path)
	if err != nil {
		return errReadLog.Wrap(err)
	}

	if !exists {
		err = s.fs.CreateIfAbsent(s.path, Preamble)
		if err != nil {
			return errWriteLog.Wrap(err)
		}

		content = Preamble
	}

	err = s.fs.WriteText(s.path, insertEntry(content, e))
	if err != nil {
		return errWriteLog.Wrap(err)
	}

	return nil
}

// insertEntry places the entry line at the end of its date section, or in a
// new section at the end of the content.
func insertEntry(content string, e Entry) string {
	line := FormatEntry(e)

	lines := strings.SplitAfter(content, "\n")

	headerIdx := -1

	for i, l := range lines {
		if date, ok := ParseHeader(strings.TrimRight(l, "\r\n")); ok &&
			date == e.Date {
			headerIdx = i
			break
		}
	}

	if headerIdx == -1 {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}

		sep := "\n"
		if content == "" || strings.HasSuffix(content, "\n\n") {
			sep = ""
		}

		return content + sep + FormatHeader(e.Date) + "\n" + line
	}

	end := len(lines)

	for i := headerIdx + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], headerPrefix) {
			end = i
			break
		}
	}

	// keep blank lines that separate this section from the next one
	at := end
	for at > headerIdx+1 && strings.TrimSpace(lines[at-1]) == "" {
		at--
	}

	if !strings.HasSuffix(lines[at-1], "\n") {
		lines[at-1] += "\n"
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, line)
	out = append(out, lines[at:]...)

	return strings.Join(out, "")
}
