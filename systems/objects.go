package systems

import (
	"math"

	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/yohamta/donburi"
)

// syncObject copies a body's bounds into its broadphase object. A boulder's
// object covers its push radius rather than its silhouette, so any player
// close enough to be pushed shares a cell with it.
func syncObject(ctx *Context, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) || !entry.HasComponent(components.Body) {
		return
	}
	obj := components.Object.Get(entry)
	body := components.Body.Get(entry)

	switch body.Kind {
	case components.KindBoulder:
		pc := &ctx.Tuning.Player
		reach := body.Width/2 + math.Max(pc.Width, pc.Height)/2
		obj.SetBounds(body.X-reach, body.Y-reach, reach*2, reach*2)
	case components.KindPlayer, components.KindEnemy:
		obj.SetBounds(body.Bounds())
	}
}

// UpdateObjects refreshes every broadphase object and reports player contacts
// with enemies. The broadphase only narrows the candidates; contact requires
// the bodies' boxes to overlap.
func UpdateObjects(ctx *Context) {
	for e := range components.Object.Iter(ctx.World) {
		syncObject(ctx, e)
	}

	playerEntry, ok := tags.Player.First(ctx.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	hit := obj.Check(0, 0, tags.ResolvEnemy)
	if hit == nil {
		return
	}

	player := components.Body.Get(playerEntry)
	for _, o := range hit.ObjectsByTags(tags.ResolvEnemy) {
		enemyEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !enemyEntry.Valid() {
			continue
		}
		if !overlaps(player, components.Body.Get(enemyEntry)) {
			continue
		}
		ContactEvents.Publish(ctx.World, ContactEvent{
			Player: playerEntry.Entity(),
			Enemy:  enemyEntry.Entity(),
		})
	}
}

func overlaps(a, b *components.BodyData) bool {
	ax, ay, aw, ah := a.Bounds()
	bx, by, bw, bh := b.Bounds()
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
