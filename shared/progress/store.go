// Package progress persists how far the player got and which avatar they
// fly, using gdata for the platform-specific storage location.
package progress

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const itemKey = "progress"

// Saved is the on-disk progress record.
type Saved struct {
	LevelIndex int    `json:"levelIndex"`
	Level      string `json:"level"`
	Avatar     Avatar `json:"avatar"`
}

// ItemStore is the subset of *gdata.Manager the store needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes Saved records. A nil *Store is valid and stores
// nothing, so callers can run without persistence.
type Store struct {
	items  ItemStore
	logger *log.Logger
}

// Open returns a store backed by gdata under appName.
func Open(appName string, logger *log.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, err
	}
	return NewStore(m, logger), nil
}

func NewStore(items ItemStore, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{items: items, logger: logger}
}

// Load returns the saved progress, or nil when nothing was saved yet.
func (s *Store) Load() (*Saved, error) {
	if s == nil {
		return nil, nil
	}
	data, err := s.items.LoadItem(itemKey)
	if err != nil {
		s.logger.Warn("could not load progress", "error", err)
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved Saved
	if err := json.Unmarshal(data, &saved); err != nil {
		s.logger.Warn("could not parse saved progress", "error", err)
		return nil, err
	}
	return &saved, nil
}

func (s *Store) Save(p Saved) error {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(itemKey, data); err != nil {
		s.logger.Warn("could not save progress", "error", err)
		return err
	}
	s.logger.Debug("progress saved", "level", p.Level, "index", p.LevelIndex)
	return nil
}

// HasSave reports whether any progress is stored.
func (s *Store) HasSave() bool {
	if s == nil {
		return false
	}
	data, err := s.items.LoadItem(itemKey)
	return err == nil && len(data) > 0
}

// Clear forgets the stored progress.
func (s *Store) Clear() error {
	if s == nil {
		return nil
	}
	return s.items.SaveItem(itemKey, nil)
}
