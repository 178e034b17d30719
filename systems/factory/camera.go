package factory

import (
	"github.com/1984drum/2dp-engine/archetypes"
	"github.com/1984drum/2dp-engine/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
