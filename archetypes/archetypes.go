package archetypes

import (
	"slices"

	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Player,
		components.Input,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Body,
		components.Enemy,
		components.Object,
	)
	Boulder = newArchetype(
		tags.Boulder,
		components.Body,
		components.Boulder,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
	)
	Debris = newArchetype(
		tags.Debris,
		components.Debris,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(slices.Concat(a.components, cs)...))
}
