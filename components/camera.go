package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // top-left of the viewport in world space
	Target   math.Vec2 // where the dead zone logic is steering Position
	Shake    math.Vec2 // view-only offset, never fed back into Position
}

var Camera = donburi.NewComponentType[CameraData]()
