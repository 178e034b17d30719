package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	classic, err := Profile("")
	require.NoError(t, err)
	assert.Equal(t, "classic", classic.Name)

	modular, err := Profile("Modular")
	require.NoError(t, err)
	assert.Equal(t, 0.35, modular.Player.JumpCutFactor)
	assert.Equal(t, 1.5, modular.Player.AirBrakeMultiplier)
	assert.Equal(t, Classic.Player.JumpForce, modular.Player.JumpForce)

	_, err = Profile("arcade")
	assert.Error(t, err)
}

func TestProfilesAreCopies(t *testing.T) {
	p, err := Profile("classic")
	require.NoError(t, err)
	p.Player.MaxSpeed = 99
	assert.Equal(t, 3.0, Classic.Player.MaxSpeed)
}

func TestProfilesValidate(t *testing.T) {
	assert.NoError(t, Classic.Validate())
	assert.NoError(t, Modular.Validate())
}

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTuningFile(t *testing.T) {
	path := writeTuning(t, `
Name = "custom"

[Player]
MaxSpeed = 3.5

[Player.AirBoost]
Enabled = true

[Camera]
DeadZoneWidth = 80
`)

	tuning, err := LoadTuningFile(path, Classic)
	require.NoError(t, err)
	assert.Equal(t, "custom", tuning.Name)
	assert.Equal(t, 3.5, tuning.Player.MaxSpeed)
	assert.True(t, tuning.Player.AirBoost.Enabled)
	assert.Equal(t, 80.0, tuning.Camera.DeadZoneWidth)
	assert.Equal(t, Classic.Camera.DeadZoneHeight, tuning.Camera.DeadZoneHeight, "untouched keys keep the base value")
	assert.Equal(t, 3.0, Classic.Player.MaxSpeed, "base profile is not mutated")
}

func TestLoadTuningFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTuningFile(filepath.Join(t.TempDir(), "nope.toml"), Classic)
		assert.Error(t, err)
	})
	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadTuningFile(writeTuning(t, "[Player]\nMaxSped = 4\n"), Classic)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MaxSped")
	})
	t.Run("invalid value", func(t *testing.T) {
		_, err := LoadTuningFile(writeTuning(t, "[Terrain]\nBlockSize = 0\n"), Classic)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "block size")
	})
}

func TestResolve(t *testing.T) {
	tuning, err := Resolve("modular", "")
	require.NoError(t, err)
	assert.Equal(t, "modular", tuning.Name)

	tuning, err = Resolve("modular", writeTuning(t, "[World]\nSpawnX = 300\n"))
	require.NoError(t, err)
	assert.Equal(t, 300.0, tuning.World.SpawnX)
	assert.Equal(t, 0.35, tuning.Player.JumpCutFactor)

	_, err = Resolve("arcade", "")
	assert.Error(t, err)
}

func TestLockAspect(t *testing.T) {
	w, h := LockAspect(1920, 1200)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	w, h = LockAspect(2000, 900)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 900, h)

	assert.Equal(t, Viewport.Resolutions[Viewport.DefaultResolutionIndex], ResolutionFor(42))
}
