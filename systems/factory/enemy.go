package factory

import (
	"math/rand"

	"github.com/1984drum/2dp-engine/archetypes"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/config"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns a patrolling enemy with its top-left corner at (x, y).
// A non-positive speed picks one uniformly from the configured range. The
// initial direction is random.
func CreateEnemy(w donburi.World, space *resolv.Space, rng *rand.Rand, ec config.EnemyConfig, x, y, speed float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	if speed <= 0 {
		speed = ec.MinSpeed + rng.Float64()*(ec.MaxSpeed-ec.MinSpeed)
	}
	direction := 1.0
	if rng.Intn(2) == 0 {
		direction = -1
	}

	obj := resolv.NewObject(x, y, ec.Width, ec.Height)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy

	components.Body.SetValue(enemy, components.BodyData{
		Kind:   components.KindEnemy,
		X:      x,
		Y:      y,
		Width:  ec.Width,
		Height: ec.Height,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Direction: direction,
		Speed:     speed,
	})

	obj.SetShape(resolv.NewRectangle(0, 0, ec.Width, ec.Height))
	if space != nil {
		space.Add(obj)
	}

	return enemy
}
