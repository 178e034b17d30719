package systems

import (
	"image"
	"io"
	"math/rand"
	"testing"

	"github.com/1984drum/2dp-engine/collision"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/config"
	"github.com/1984drum/2dp-engine/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// newTestContext builds a context over an empty world of the given size with
// the classic tuning, a broadphase space and a camera.
func newTestContext(t *testing.T, width, height int) *Context {
	t.Helper()
	tuning := config.Classic
	log := logrus.New()
	log.SetOutput(io.Discard)

	w := donburi.NewWorld()
	ctx := &Context{
		World:      w,
		Oracle:     collision.NewOracle(width, height),
		Tuning:     &tuning,
		ViewWidth:  320,
		ViewHeight: 180,
		Scale:      1,
		Rand:       rand.New(rand.NewSource(1)),
		Log:        log,
	}
	factory.CreateSpace(w, width, height, tuning.World.CellSize, tuning.World.CellSize)
	factory.CreateCamera(w)
	return ctx
}

func fill(ctx *Context, layer collision.Layer, rect image.Rectangle) {
	r := ctx.Oracle.Raster(layer)
	if r == nil {
		r = collision.NewRaster(ctx.Oracle.Width(), ctx.Oracle.Height())
		ctx.Oracle.SetRaster(layer, r)
	}
	r.Fill(rect)
}

// floorAt makes everything from y down to the world bottom solid ground.
func floorAt(ctx *Context, y int) {
	fill(ctx, collision.Ground, image.Rect(0, y, ctx.Oracle.Width(), ctx.Oracle.Height()))
}

func newPlayer(ctx *Context, x, y float64) *donburi.Entry {
	return factory.CreatePlayer(ctx.World, ctx.Space(), ctx.Tuning.Player, x, y)
}

func newEnemy(ctx *Context, x, y, direction, speed float64) *donburi.Entry {
	entry := factory.CreateEnemy(ctx.World, ctx.Space(), ctx.Rand, ctx.Tuning.Enemy, x, y, speed)
	components.Enemy.Get(entry).Direction = direction
	return entry
}

func newBoulder(ctx *Context, x, y, radius float64) *donburi.Entry {
	return factory.CreateBoulder(ctx.World, ctx.Space(), ctx.Rand, ctx.Tuning.Boulder, x, y, radius, 1)
}

func countTagged(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	for range tag.Iter(w) {
		n++
	}
	return n
}
