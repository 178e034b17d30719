package systems

import (
	"image"
	"testing"

	"github.com/1984drum/2dp-engine/collision"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestEnemyTurnsAtLedge(t *testing.T) {
	ctx := newTestContext(t, 300, 200)
	fill(ctx, collision.Ground, image.Rect(0, 100, 100, 200))

	entry := newEnemy(ctx, 69, 60, 1, 2)
	body := components.Body.Get(entry)
	enemy := components.Enemy.Get(entry)
	body.Grounded = true

	UpdateEnemies(ctx)

	assert.Equal(t, -1.0, enemy.Direction)
	assert.Equal(t, ctx.Tuning.Enemy.LedgeTurnCooldown, enemy.TurnCooldown)
	assert.True(t, body.Grounded)
	assert.Equal(t, 60.0, body.Y)
}

func TestEnemyTurnsAtEnemyWall(t *testing.T) {
	ctx := newTestContext(t, 300, 200)
	floorAt(ctx, 100)
	fill(ctx, collision.EnemyWall, image.Rect(120, 0, 130, 100))

	entry := newEnemy(ctx, 88, 60, 1, 3)
	body := components.Body.Get(entry)
	enemy := components.Enemy.Get(entry)
	body.Grounded = true

	UpdateEnemies(ctx)

	assert.Equal(t, -1.0, enemy.Direction)
	assert.Equal(t, ctx.Tuning.Enemy.WallTurnCooldown, enemy.TurnCooldown)
	assert.Equal(t, 90.0, body.X)
	assert.Equal(t, 0.0, body.VX)
}

func TestEnemyTurnsAtWorldEdge(t *testing.T) {
	ctx := newTestContext(t, 300, 200)
	floorAt(ctx, 100)

	entry := newEnemy(ctx, 268, 60, 1, 2)
	body := components.Body.Get(entry)
	enemy := components.Enemy.Get(entry)
	body.Grounded = true

	UpdateEnemies(ctx)

	assert.Equal(t, 270.0, body.X)
	assert.Equal(t, -1.0, enemy.Direction)
	assert.Equal(t, ctx.Tuning.Enemy.WorldTurnCooldown, enemy.TurnCooldown)
}

func TestEnemyCooldownSuppressesTurns(t *testing.T) {
	ctx := newTestContext(t, 300, 200)
	fill(ctx, collision.Ground, image.Rect(0, 100, 100, 200))

	entry := newEnemy(ctx, 69, 60, 1, 2)
	body := components.Body.Get(entry)
	enemy := components.Enemy.Get(entry)
	body.Grounded = true
	enemy.TurnCooldown = 10

	UpdateEnemies(ctx)

	assert.Equal(t, 1.0, enemy.Direction)
	assert.Equal(t, 9.0, enemy.TurnCooldown)
}

func TestEnemyPatrolsBetweenLedges(t *testing.T) {
	ctx := newTestContext(t, 400, 200)
	fill(ctx, collision.Ground, image.Rect(100, 100, 300, 200))

	entry := newEnemy(ctx, 150, 60, 1, 2)
	body := components.Body.Get(entry)
	body.Grounded = true

	for i := 0; i < 600; i++ {
		UpdateEnemies(ctx)
		require.True(t, body.Grounded, "tick %d", i)
		// The lookahead column is one pixel past the leading edge.
		require.GreaterOrEqual(t, body.X, 100.0-body.Width/2)
		require.LessOrEqual(t, body.X+body.Width, 300.0+body.Width/2)
	}
}

func TestEnemyRemovedBelowWorld(t *testing.T) {
	ctx := newTestContext(t, 300, 200)
	entry := newEnemy(ctx, 100, 201, 1, 2)
	keep := newEnemy(ctx, 200, 20, 1, 2)

	var removed []RemovedEvent
	RemovedEvents.Subscribe(ctx.World, func(w donburi.World, e RemovedEvent) {
		removed = append(removed, e)
	})

	UpdateEnemies(ctx)
	ProcessEvents(ctx)

	assert.False(t, entry.Valid())
	assert.True(t, keep.Valid())
	assert.Equal(t, 1, countTagged(ctx.World, tags.Enemy))
	require.Len(t, removed, 1)
	assert.Equal(t, components.KindEnemy, removed[0].Kind)
}
