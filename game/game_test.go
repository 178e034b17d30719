package game

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/1984drum/2dp-engine/collision"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/config"
	"github.com/1984drum/2dp-engine/persistence"
	"github.com/1984drum/2dp-engine/scenes"
	"github.com/stretchr/testify/assert"
)

func TestActionEdges(t *testing.T) {
	var c Controls

	c.Current[ActionJump] = true
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, c.Action(ActionJump))

	c.Previous = c.Current
	assert.Equal(t, ActionState{Pressed: true}, c.Action(ActionJump))

	c.Current[ActionJump] = false
	assert.Equal(t, ActionState{JustReleased: true}, c.Action(ActionJump))
}

func TestIntents(t *testing.T) {
	var c Controls
	c.Current[ActionMoveRight] = true
	c.Current[ActionJump] = true
	c.Current[ActionPause] = true

	assert.Equal(t, components.InputData{Right: true, Jump: true}, c.Intents())
}

func TestEveryActionIsBound(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		assert.NotEmpty(t, Input.Bindings[id].Keys, "action %d", id)
	}
}

func TestDownsample(t *testing.T) {
	r := collision.NewRaster(10, 6)
	r.Set(5, 1)
	r.Fill(image.Rect(0, 4, 2, 6))
	c := color.RGBA{R: 1, G: 2, B: 3, A: 4}

	w, h, pix := downsample(r, 4, c)
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)

	solid := func(x, y int) bool { return pix[(y*w+x)*4+3] != 0 }
	assert.True(t, solid(1, 0))
	assert.True(t, solid(0, 1))
	assert.False(t, solid(0, 0))
	assert.False(t, solid(2, 1))
	assert.Equal(t, []byte{1, 2, 3, 4}, pix[4:8])

	_, _, empty := downsample(collision.NewRaster(8, 8), 4, c)
	assert.Equal(t, make([]byte, 16), empty)
}

func TestSlopeColor(t *testing.T) {
	phys := config.Classic.Physics
	deg := math.Pi / 180

	tests := []struct {
		name  string
		angle float64
		want  color.RGBA
	}{
		{"level ground is green", 0, color.RGBA{R: 74, G: 222, B: 128, A: 255}},
		{"half way to the red threshold", 30 * deg, color.RGBA{R: 162, G: 213, B: 74, A: 255}},
		{"red threshold is amber", 60 * deg, color.RGBA{R: 250, G: 204, B: 21, A: 255}},
		{"between red and max stays amber", 70 * deg, color.RGBA{R: 250, G: 204, B: 21, A: 255}},
		{"past the max ground angle", 80 * deg, color.RGBA{R: 51, A: 51}},
		{"negative angles match positive", -30 * deg, color.RGBA{R: 162, G: 213, B: 74, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slopeColor(tt.angle, phys)
			assert.InDelta(t, tt.want.R, got.R, 1)
			assert.InDelta(t, tt.want.G, got.G, 1)
			assert.InDelta(t, tt.want.B, got.B, 1)
			assert.Equal(t, tt.want.A, got.A)
		})
	}
}

func TestDebugFlagsRoundTrip(t *testing.T) {
	newSim := func() *scenes.Simulation {
		return scenes.NewSimulation(config.Classic, scenes.Options{ViewWidth: 320, ViewHeight: 180, Seed: 1}, nil)
	}

	t.Run("saved flags are applied on start", func(t *testing.T) {
		sim := newSim()
		g := NewGame(sim, Options{DebugSensors: true, ShowRasters: true}, nil)

		assert.True(t, g.host().DebugSensors)
		assert.True(t, g.host().ShowRasters)
		assert.True(t, sim.Tuning().Debug.Sensors)
	})

	t.Run("toggled flags are written back", func(t *testing.T) {
		sim := newSim()
		g := NewGame(sim, Options{}, nil)
		assert.False(t, sim.Tuning().Debug.Sensors)

		g.controls.Current[ActionDebug] = true
		g.controls.Current[ActionRasters] = true
		g.handleActions()
		assert.True(t, sim.Tuning().Debug.Sensors)

		settings := &persistence.Settings{Profile: "classic"}
		g.SaveFlags(settings)
		assert.Equal(t, persistence.Settings{Profile: "classic", DebugSensors: true, ShowRasters: true}, *settings)

		// Only the sensor toggle is pressed again
		g.controls.Previous = g.controls.Current
		g.controls.Previous[ActionDebug] = false
		g.handleActions()
		g.SaveFlags(settings)
		assert.False(t, settings.DebugSensors)
		assert.True(t, settings.ShowRasters)
	})
}
