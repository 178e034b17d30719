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

func breakableBlocks(ctx *Context, cells ...image.Point) {
	size := ctx.Tuning.Terrain.BlockSize
	for _, c := range cells {
		fill(ctx, collision.Breakable, image.Rect(c.X*size, c.Y*size, (c.X+1)*size, (c.Y+1)*size))
	}
}

func TestBoulderReboundsBelowDestroySpeed(t *testing.T) {
	ctx := newTestContext(t, 300, 300)
	fill(ctx, collision.Wall, image.Rect(125, 0, 135, 300))

	entry := newBoulder(ctx, 104, 100, 20)
	body := components.Body.Get(entry)
	body.VX = 2

	UpdateBoulders(ctx)

	require.True(t, entry.Valid())
	assert.InDelta(t, -0.96, body.VX, 1e-9)
	assert.Equal(t, 104.0, body.X)
	assert.True(t, ctx.Oracle.CheckPixel(125, 100, collision.Wall))
}

func TestBoulderSlowImpactKeepsBreakables(t *testing.T) {
	ctx := newTestContext(t, 400, 400)
	breakableBlocks(ctx, image.Pt(6, 4))

	entry := newBoulder(ctx, 100, 90, 20)
	body := components.Body.Get(entry)
	body.VX = 2.5

	UpdateBoulders(ctx)

	require.True(t, entry.Valid())
	assert.InDelta(t, -1.2, body.VX, 1e-9)
	assert.True(t, ctx.Oracle.CheckPixel(125, 85, collision.Breakable))
	assert.Equal(t, 0, countTagged(ctx.World, tags.Debris))
}

func TestBoulderChainDestroysBreakables(t *testing.T) {
	ctx := newTestContext(t, 400, 400)
	breakableBlocks(ctx,
		image.Pt(6, 4), image.Pt(7, 4), image.Pt(7, 5), image.Pt(8, 6),
		image.Pt(15, 15),
	)

	var chains []ChainDestroyedEvent
	ChainDestroyedEvents.Subscribe(ctx.World, func(w donburi.World, e ChainDestroyedEvent) {
		chains = append(chains, e)
	})
	var removed []RemovedEvent
	RemovedEvents.Subscribe(ctx.World, func(w donburi.World, e RemovedEvent) {
		removed = append(removed, e)
	})

	entry := newBoulder(ctx, 100, 90, 20)
	components.Body.Get(entry).VX = 5

	UpdateBoulders(ctx)
	ProcessEvents(ctx)

	assert.False(t, entry.Valid(), "boulder removed the same tick")
	assert.Equal(t, 0, countTagged(ctx.World, tags.Boulder))

	for _, p := range []image.Point{{125, 85}, {150, 90}, {150, 110}, {170, 130}} {
		assert.False(t, ctx.Oracle.CheckPixel(float64(p.X), float64(p.Y), collision.Breakable), "%v", p)
	}
	assert.True(t, ctx.Oracle.CheckPixel(305, 305, collision.Breakable), "unconnected block survives")

	perBlock := ctx.Tuning.Debris.PerBlock
	assert.Equal(t, perBlock*5, countTagged(ctx.World, tags.Debris))

	require.Len(t, chains, 1)
	assert.Len(t, chains[0].Blocks, 4)
	assert.Equal(t, image.Pt(120, 80), chains[0].Blocks[0])
	assert.Equal(t, perBlock*5, chains[0].Debris)

	require.Len(t, removed, 1)
	assert.Equal(t, components.KindBoulder, removed[0].Kind)

	cam, ok := components.Camera.First(ctx.World)
	require.True(t, ok)
	assert.True(t, cam.HasComponent(components.ScreenShake))
}

func TestBoulderRestsOnGround(t *testing.T) {
	ctx := newTestContext(t, 400, 300)
	floorAt(ctx, 200)

	entry := newBoulder(ctx, 100, 175, 20)
	body := components.Body.Get(entry)

	UpdateBoulders(ctx)

	assert.Equal(t, 180.0, body.Y)
	assert.Equal(t, 0.0, body.VY)
	assert.True(t, body.Grounded)
}

func TestBoulderFalls(t *testing.T) {
	ctx := newTestContext(t, 400, 300)
	entry := newBoulder(ctx, 100, 50, 20)
	body := components.Body.Get(entry)

	UpdateBoulders(ctx)
	UpdateBoulders(ctx)

	assert.False(t, body.Grounded)
	assert.InDelta(t, 0.16, body.VY, 1e-9)
	assert.InDelta(t, 50.24, body.Y, 1e-9)
}

func TestPlayerPushesBoulder(t *testing.T) {
	cases := []struct {
		name   string
		mass   float64
		wantVX float64
	}{
		{"light", 1, 0.6},
		{"heavy", 2, 0.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newTestContext(t, 400, 300)
			floorAt(ctx, 200)

			boulder := newBoulder(ctx, 200, 180, 20)
			components.Boulder.Get(boulder).Mass = tc.mass
			player := newPlayer(ctx, 157, 168)
			p := components.Body.Get(player)
			p.VX = 2

			UpdateBoulders(ctx)

			assert.InDelta(t, tc.wantVX, components.Body.Get(boulder).VX, 1e-9)
			assert.InDelta(t, 0.6, p.VX, 1e-9)
			assert.Equal(t, 156.0, p.X, "pushed flush to the boulder edge")
		})
	}
}

func TestPlayerMovingAwayDoesNotPush(t *testing.T) {
	ctx := newTestContext(t, 400, 300)
	floorAt(ctx, 200)

	boulder := newBoulder(ctx, 200, 180, 20)
	player := newPlayer(ctx, 157, 168)
	p := components.Body.Get(player)
	p.VX = -2

	UpdateBoulders(ctx)

	assert.Equal(t, 0.0, components.Body.Get(boulder).VX)
	assert.Equal(t, -2.0, p.VX)
	assert.Equal(t, 157.0, p.X)
}
