package store

import (
	"time"

	"github.com/ayoisaiah/streak/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// SaveSprint stores a finished sprint, keyed by its end time
	SaveSprint(s *models.Sprint) error
	// GetSprints returns the sprints that ended within [start, end]. A zero
	// time leaves that side of the range open.
	GetSprints(start, end time.Time) ([]models.Sprint, error)
	// DeleteSprints deletes one or more saved sprints
	DeleteSprints(sprints []models.Sprint) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
