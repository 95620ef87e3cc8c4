// Package history persists user progress as a JSON file.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/nikogura/namescore/pkg/progress"
	"github.com/pkg/errors"
)

// FormatVersion is written into every history file.
const FormatVersion = "1.0.0"

// Document is the on-disk form of the history file.
type Document struct {
	Progress  progress.Progress `json:"progress"`
	UpdatedAt time.Time         `json:"updated_at"`
	Version   string            `json:"version"`
}

// Store reads and writes a single history file.
type Store struct {
	path string
}

// NewStore creates a store backed by path.
func NewStore(path string) (store *Store, err error) {
	if path == "" {
		err = errors.New("history path is required")
		return store, err
	}

	store = &Store{path: path}
	return store, err
}

// Path is the file backing the store.
func (s *Store) Path() (path string) {
	path = s.path
	return path
}

// Load reads progress from disk. A missing file is empty progress.
func (s *Store) Load() (p progress.Progress, err error) {
	var data []byte
	data, err = os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			p = progress.Progress{
				UnlockedBadgeIDs: []progress.BadgeID{},
				History:          []progress.HistoryItem{},
			}
			err = nil
			return p, err
		}
		err = errors.Wrapf(err, "failed to read history file %s", s.path)
		return p, err
	}

	var doc Document
	err = json.Unmarshal(data, &doc)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse history file %s", s.path)
		return p, err
	}

	p = doc.Progress
	return p, err
}

// Save writes progress to disk, replacing the previous file.
func (s *Store) Save(p progress.Progress) (err error) {
	doc := Document{
		Progress:  p,
		UpdatedAt: time.Now().UTC(),
		Version:   FormatVersion,
	}

	var data []byte
	data, err = json.MarshalIndent(doc, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal history")
		return err
	}

	err = os.MkdirAll(filepath.Dir(s.path), 0700)
	if err != nil {
		err = errors.Wrap(err, "failed to create history directory")
		return err
	}

	// Write beside the target and rename so a crash never leaves a truncated file.
	tmp := s.path + ".tmp"
	err = os.WriteFile(tmp, data, 0600)
	if err != nil {
		err = errors.Wrap(err, "failed to write history file")
		return err
	}

	err = os.Rename(tmp, s.path)
	if err != nil {
		_ = os.Remove(tmp)
		err = errors.Wrap(err, "failed to replace history file")
		return err
	}

	return err
}

// Record applies events in order and saves the result once.
// It returns the new progress and every badge the events unlocked.
func (s *Store) Record(events ...progress.Event) (p progress.Progress, unlocked []progress.BadgeID, err error) {
	p, err = s.Load()
	if err != nil {
		return p, unlocked, err
	}

	unlocked = []progress.BadgeID{}
	for _, ev := range events {
		var fresh []progress.BadgeID
		p, fresh = progress.Apply(p, ev)
		unlocked = append(unlocked, fresh...)
	}

	err = s.Save(p)
	if err != nil {
		return p, unlocked, err
	}

	return p, unlocked, err
}
