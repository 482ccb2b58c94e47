// Package store keeps the structured history of finished sprints in BoltDB.
// Holding the database open also stops a second instance from running.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/streak/internal/apperr"
	"github.com/ayoisaiah/streak/internal/models"
	"github.com/ayoisaiah/streak/internal/osutil"
	"github.com/ayoisaiah/streak/internal/timeutil"
)

const (
	sprintBucket = "sprints"
	openTimeout  = 1 * time.Second
)

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is streak already running? Only one instance can be active at a time",
	}

	errMissingEndTime = &apperr.Error{
		Message: "sprint record has no end time",
	}
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

// NewClient opens the database at dbPath, creating the buckets if needed.
func NewClient(dbPath string) (*Client, error) {
	c := &Client{path: dbPath}

	if err := c.Open(); err != nil {
		return nil, err
	}

	err := c.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sprintBucket))
		return err
	})
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	return c, nil
}

// Open (re)connects to the database file.
func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

func (c *Client) SaveSprint(s *models.Sprint) error {
	if s.EndTime.IsZero() {
		return errMissingEndTime
	}

	value, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sprintBucket)).Put(timeutil.ToKey(s.EndTime), value)
	})
}

func (c *Client) GetSprints(start, end time.Time) ([]models.Sprint, error) {
	var sprints []models.Sprint

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sprintBucket)).Cursor()

		var k, v []byte
		if start.IsZero() {
			k, v = cur.First()
		} else {
			k, v = cur.Seek(timeutil.ToKey(start))
		}

		var maxKey []byte
		if !end.IsZero() {
			maxKey = timeutil.ToKey(end)
		}

		for ; k != nil; k, v = cur.Next() {
			if maxKey != nil && bytes.Compare(k, maxKey) > 0 {
				break
			}

			var s models.Sprint

			if err := json.Unmarshal(v, &s); err != nil {
				return err
			}

			sprints = append(sprints, s)
		}

		return nil
	})

	return sprints, err
}

func (c *Client) DeleteSprints(sprints []models.Sprint) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sprintBucket))

		for i := range sprints {
			if err := b.Delete(timeutil.ToKey(sprints[i].EndTime)); err != nil {
				return err
			}
		}

		return nil
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.DBFilePermission,
		&bolt.Options{Timeout: openTimeout},
	)
	if err != nil {
		// a held file lock surfaces as a timeout
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}
