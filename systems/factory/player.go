package factory

import (
	"github.com/1984drum/2dp-engine/archetypes"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/config"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player with its top-left corner at (x, y).
func CreatePlayer(w donburi.World, space *resolv.Space, pc config.PlayerConfig, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, pc.Width, pc.Height)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player

	components.Body.SetValue(player, components.BodyData{
		Kind:   components.KindPlayer,
		X:      x,
		Y:      y,
		Width:  pc.Width,
		Height: pc.Height,
	})
	components.Player.SetValue(player, components.PlayerData{JumpReady: true})
	components.Input.SetValue(player, components.InputData{})

	obj.SetShape(resolv.NewRectangle(0, 0, pc.Width, pc.Height))
	if space != nil {
		space.Add(obj)
	}

	return player
}
