package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Direction    float64 // -1 or 1
	Speed        float64
	TurnCooldown float64 // frames before another turn decision is allowed
}

var Enemy = donburi.NewComponentType[EnemyData]()
