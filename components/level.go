package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Name    string
	Spawn   math.Vec2
	Goal    math.Vec2
	HasGoal bool
}

var Level = donburi.NewComponentType[LevelData]()
