package factory

import (
	"github.com/1984drum/2dp-engine/archetypes"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlatform spawns the moving platform driver. It starts moving when
// the path has at least two points.
func CreatePlatform(w donburi.World, pc config.PlatformConfig, path []math.Vec2, offset math.Vec2) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	components.Platform.SetValue(platform, components.PlatformData{
		Path:      append([]math.Vec2(nil), path...),
		Direction: 1,
		Speed:     pc.DefaultSpeed,
		Active:    len(path) >= 2,
		OffsetX:   offset.X,
		OffsetY:   offset.Y,
	})
	return platform
}
