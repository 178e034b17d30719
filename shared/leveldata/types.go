// Package leveldata turns level files into the typed inputs a simulation
// needs at scene-load time. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"github.com/1984drum/2dp-engine/collision"
	"github.com/yohamta/donburi/features/math"
)

// Scene holds everything parsed from a level file.
type Scene struct {
	Name   string
	Width  int
	Height int

	// Rasters are world-sized. The platform raster is in the platform's
	// local frame; the simulation translates it every tick.
	Rasters map[collision.Layer]*collision.Raster

	Spawn    math.Vec2
	HasSpawn bool
	Goal     math.Vec2
	HasGoal  bool

	Boulders []BoulderSpawn
	Enemies  []EnemySpawn

	PlatformPath   []math.Vec2
	PlatformOffset math.Vec2
	PlatformSpeed  float64
}

// BoulderSpawn places a boulder. Zero Radius or Mass means the tuning default.
type BoulderSpawn struct {
	X, Y   float64
	Radius float64
	Mass   float64
}

// EnemySpawn places a patrolling enemy. Zero Speed picks a random speed.
type EnemySpawn struct {
	X, Y  float64
	Speed float64
}

// Raster returns the raster for layer l, or nil when the level has none.
func (s *Scene) Raster(l collision.Layer) *collision.Raster {
	if s.Rasters == nil {
		return nil
	}
	return s.Rasters[l]
}
