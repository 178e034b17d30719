package persistence

import (
	"errors"
	"testing"

	"github.com/1984drum/2dp-engine/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	data    map[string][]byte
	saveErr error
}

func newMemItems() *memItems { return &memItems{data: map[string][]byte{}} }

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *memItems) LoadItem(key string) ([]byte, error) { return m.data[key], nil }

func (m *memItems) ItemExists(key string) bool {
	_, ok := m.data[key]
	return ok
}

func (m *memItems) DeleteItem(key string) error {
	delete(m.data, key)
	return nil
}

func TestSettings(t *testing.T) {
	mem := newMemItems()
	s := &Store{items: mem}

	_, err := s.LoadSettings()
	assert.ErrorIs(t, err, ErrNotFound)

	want := &Settings{Profile: "modular", Level: "levels/one.tmx", ViewWidth: 960, ViewHeight: 540, DebugSensors: true}
	require.NoError(t, s.SaveSettings(want))
	assert.Contains(t, string(mem.data["settings"]), `"profile":"modular"`)

	got, err := s.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	mem.data["settings"] = []byte("{not json")
	_, err = s.LoadSettings()
	assert.Error(t, err)

	mem.saveErr = errors.New("disk full")
	assert.ErrorIs(t, s.SaveSettings(want), mem.saveErr)
}

func TestRecordings(t *testing.T) {
	mem := newMemItems()
	s := &Store{items: mem}

	rec := &replay.Recording{
		Level:   "one",
		Profile: "classic",
		Seed:    3,
		Frames:  []replay.Frame{{Right: true, PlayerX: 101.5, PlayerY: 100}, {Jump: true, PlayerX: 103}},
	}
	require.NoError(t, s.SaveRecording("Run #1", rec))
	assert.Contains(t, mem.data, "recording_run__1")

	got, err := s.LoadRecording("run #1")
	require.NoError(t, err)
	assert.Equal(t, rec.Frames, got.Frames)
	assert.Equal(t, replay.FormatVersion, got.Version)

	require.NoError(t, s.DeleteRecording("Run #1"))
	_, err = s.LoadRecording("Run #1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.DeleteRecording("missing"))

	mem.data["recording_bad"] = []byte{0xc1}
	_, err = s.LoadRecording("bad")
	assert.Error(t, err)
}
