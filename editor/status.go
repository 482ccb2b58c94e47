package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/streak/internal/osutil"
	"github.com/ayoisaiah/streak/sprint"
)

// Status is the snapshot of a running sprint shared with `streak status`.
type Status struct {
	UpdatedAt     time.Time    `json:"updated_at"`
	Speed         sprint.Speed `json:"speed"`
	TimeLeft      string       `json:"time_left"`
	Title         string       `json:"title"`
	Path          string       `json:"path"`
	HealthPercent float64      `json:"health_percent"`
	TimePercent   float64      `json:"time_percent"`
	Minutes       int          `json:"minutes"`
	Words         int          `json:"words"`
	Successes     int          `json:"successes"`
}

// Line renders the status in the same form as the editor's stats line.
func (s *Status) Line() string {
	doc := s.Title
	if doc == "" {
		doc = "untitled"
	}

	return fmt.Sprintf(
		"[Sprint %s] S:%d W:%d %s (health %d%%)",
		doc,
		s.Successes,
		s.Words,
		s.TimeLeft,
		int(s.HealthPercent),
	)
}

func writeStatusFile(path string, s *Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, osutil.FilePermission)
}

func removeStatusFile(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

// ReadStatus loads the status file at path. It returns nil without an error
// when no sprint is running.
func ReadStatus(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// ReportStatus prints the running sprint, if any, to w.
func ReportStatus(w io.Writer, path string) error {
	s, err := ReadStatus(path)
	if err != nil || s == nil {
		return err
	}

	_, err = fmt.Fprintln(w, s.Line())

	return err
}
