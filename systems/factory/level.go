package factory

import (
	"github.com/1984drum/2dp-engine/archetypes"
	"github.com/1984drum/2dp-engine/components"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World, level components.LevelData) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, level)
	return entry
}
