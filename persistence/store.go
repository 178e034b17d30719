// Package persistence keeps editor settings and replay recordings in the
// per-user data directory.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/1984drum/2dp-engine/replay"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

var ErrNotFound = errors.New("item not found")

// Settings is what the playground remembers between runs.
type Settings struct {
	Profile      string `json:"profile"`
	Level        string `json:"level"`
	ViewWidth    int    `json:"viewWidth"`
	ViewHeight   int    `json:"viewHeight"`
	DebugSensors bool   `json:"debugSensors"`
	ShowRasters  bool   `json:"showRasters"`
}

// items is the subset of *gdata.Manager the store uses.
type items interface {
	SaveItem(itemKey string, data []byte) error
	LoadItem(itemKey string) ([]byte, error)
	ItemExists(itemKey string) bool
	DeleteItem(itemKey string) error
}

// Store reads and writes persisted items.
type Store struct {
	items items
}

// Open opens the data directory of appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open data dir for %s: %w", appName, err)
	}
	return &Store{items: m}, nil
}

// LoadSettings returns the saved settings, or ErrNotFound before the first
// save.
func (s *Store) LoadSettings() (*Settings, error) {
	data, err := s.load(settingsKey)
	if err != nil {
		return nil, err
	}
	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

func (s *Store) SaveSettings(settings *Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveRecording stores rec under name, replacing any earlier recording with
// the same name.
func (s *Store) SaveRecording(name string, rec *replay.Recording) error {
	data, err := replay.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(recordingKey(name), data); err != nil {
		return fmt.Errorf("save recording %q: %w", name, err)
	}
	return nil
}

func (s *Store) LoadRecording(name string) (*replay.Recording, error) {
	data, err := s.load(recordingKey(name))
	if err != nil {
		return nil, err
	}
	rec, err := replay.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("recording %q: %w", name, err)
	}
	return rec, nil
}

func (s *Store) DeleteRecording(name string) error {
	key := recordingKey(name)
	if !s.items.ItemExists(key) {
		return nil
	}
	if err := s.items.DeleteItem(key); err != nil {
		return fmt.Errorf("delete recording %q: %w", name, err)
	}
	return nil
}

func (s *Store) load(key string) ([]byte, error) {
	if !s.items.ItemExists(key) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	data, err := s.items.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return data, nil
}

// recordingKey maps a recording name onto a file-safe item key.
func recordingKey(name string) string {
	var b strings.Builder
	b.WriteString("recording_")
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
