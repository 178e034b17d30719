package systems

import (
	"github.com/1984drum/2dp-engine/components"
	"github.com/yohamta/donburi/features/math"
)

// SpawnPoint returns the level spawn point, or the configured default start
// when no level is loaded.
func SpawnPoint(ctx *Context) math.Vec2 {
	if entry, ok := components.Level.First(ctx.World); ok {
		return components.Level.Get(entry).Spawn
	}
	return math.Vec2{X: ctx.Tuning.World.SpawnX, Y: ctx.Tuning.World.SpawnY}
}
