package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type BoulderData struct {
	Radius          float64
	Mass            float64
	AngularVelocity float64
	Shape           []math.Vec2 // silhouette relative to the center, fixed at creation
	Destroyed       bool
}

var Boulder = donburi.NewComponentType[BoulderData]()
