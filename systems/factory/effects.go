package factory

import (
	"math/rand"

	"github.com/1984drum/2dp-engine/archetypes"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SpawnDebris throws dc.PerBlock particles from (x, y) with random velocities
// and returns how many were created.
func SpawnDebris(w donburi.World, rng *rand.Rand, dc config.DebrisConfig, x, y float64) int {
	for i := 0; i < dc.PerBlock; i++ {
		entry := archetypes.Debris.Spawn(w)
		components.Debris.SetValue(entry, components.DebrisData{
			X:    x,
			Y:    y,
			VX:   (rng.Float64() - 0.5) * dc.Spread,
			VY:   (rng.Float64() - 0.5) * dc.Spread,
			Life: 1,
			Fade: gween.New(1, 0, float32(dc.LifeFrames), ease.Linear),
		})
	}
	return dc.PerBlock
}
