package systems

import (
	"math"

	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies runs the patrol state machine for every enemy. Enemies walk
// at a constant speed and turn around at walls, enemy walls, ledges and the
// world edge; each turn starts a cooldown that suppresses further turns.
func UpdateEnemies(ctx *Context) {
	ec := &ctx.Tuning.Enemy
	platform := platformState(ctx)
	var toRemove []*donburi.Entry

	for entry := range tags.Enemy.Iter(ctx.World) {
		body := components.Body.Get(entry)
		enemy := components.Enemy.Get(entry)

		enemy.TurnCooldown = ctx.countDown(enemy.TurnCooldown)

		carryOnPlatform(body, platform)

		body.VX = enemy.Direction * enemy.Speed
		applyGravity(ctx, body, 1)

		if hitWall := SweepHorizontal(ctx, body); hitWall && enemy.TurnCooldown == 0 {
			turnEnemy(enemy, ec.WallTurnCooldown)
			body.VX = 0
		}

		body.Y += body.VY * ctx.Scale
		if body.VY < 0 {
			CheckCeiling(ctx, body)
		}

		ground := ResolveGrounding(ctx, body, nil)
		if ground.Landed {
			GroundedEvents.Publish(ctx.World, GroundedEvent{
				Entity:     entry.Entity(),
				Kind:       body.Kind,
				OnPlatform: ground.OnPlatform,
				SlopeAngle: ground.SlopeAngle,
			})
		}
		if ground.Grounded && enemy.TurnCooldown == 0 {
			checkLedge(ctx, body, enemy)
		}

		if body.Y > ctx.WorldHeight() {
			toRemove = append(toRemove, entry)
			continue
		}
		syncObject(ctx, entry)
	}

	for _, entry := range toRemove {
		RemoveBody(ctx, entry, "fell out of world")
	}
}

// checkLedge turns the enemy around when the column just ahead of its
// leading edge has no footing, or lies outside the world.
func checkLedge(ctx *Context, body *components.BodyData, enemy *components.EnemyData) {
	ec := &ctx.Tuning.Enemy
	aheadX := body.X - 1
	if enemy.Direction > 0 {
		aheadX = body.X + body.Width + 1
	}

	if aheadX < 0 || aheadX >= ctx.WorldWidth() {
		turnEnemy(enemy, ec.WorldTurnCooldown)
		return
	}

	feetY := math.Floor(body.Y + body.Height)
	for y := feetY - ec.LedgeScanAbove; y < feetY+ec.LedgeScanBelow; y++ {
		if anyLayer(ctx.Oracle, aheadX, y, footingLayers) {
			return
		}
	}
	turnEnemy(enemy, ec.LedgeTurnCooldown)
}

func turnEnemy(enemy *components.EnemyData, cooldown float64) {
	enemy.Direction = -enemy.Direction
	enemy.TurnCooldown = cooldown
}

// RemoveBody takes an entity out of the world and the actor broadphase.
func RemoveBody(ctx *Context, entry *donburi.Entry, reason string) {
	if !entry.Valid() {
		return
	}
	kind := components.Body.Get(entry).Kind
	if entry.HasComponent(components.Object) {
		if space := ctx.Space(); space != nil {
			space.Remove(components.Object.Get(entry).Object)
		}
	}
	ctx.Log.WithField("kind", kind).Debugf("removing body: %s", reason)
	RemovedEvents.Publish(ctx.World, RemovedEvent{Entity: entry.Entity(), Kind: kind, Reason: reason})
	entry.Remove()
}
