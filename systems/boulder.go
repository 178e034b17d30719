package systems

import (
	"math"

	"github.com/1984drum/2dp-engine/collision"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/shared/gamemath"
	"github.com/1984drum/2dp-engine/systems/factory"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/yohamta/donburi"
)

// UpdateBoulders rolls every boulder: gravity, rolling friction, side
// impacts that either rebound or smash breakable terrain, ground contact with
// slope acceleration, and pushes from the player. Boulders destroyed by an
// impact are removed after the pass.
func UpdateBoulders(ctx *Context) {
	bc := &ctx.Tuning.Boulder
	var destroyed []*donburi.Entry

	for entry := range tags.Boulder.Iter(ctx.World) {
		body := components.Body.Get(entry)
		boulder := components.Boulder.Get(entry)
		if boulder.Destroyed {
			destroyed = append(destroyed, entry)
			continue
		}

		applyGravity(ctx, body, boulder.Mass)
		body.VX = gamemath.Decay(body.VX, bc.Friction, ctx.Scale, 0)

		if !boulderImpact(ctx, entry, body, boulder, boulder.Radius) &&
			!boulderImpact(ctx, entry, body, boulder, -boulder.Radius) {
			body.X += body.VX * ctx.Scale
		}
		if boulder.Destroyed {
			destroyed = append(destroyed, entry)
			continue
		}

		settleBoulder(ctx, body, boulder)
		syncObject(ctx, entry)
		pushFromPlayer(ctx, entry, body, boulder)
	}

	for _, entry := range destroyed {
		RemoveBody(ctx, entry, "shattered")
	}
}

// boulderImpact tests the side of the boulder at side (+r or -r) one step
// ahead. A fast enough hit with breakable terrain just beyond the impact
// point destroys the connected terrain and the boulder; any other hit
// rebounds the boulder.
func boulderImpact(ctx *Context, entry *donburi.Entry, body *components.BodyData, boulder *components.BoulderData, side float64) bool {
	bc := &ctx.Tuning.Boulder
	o := ctx.Oracle
	checkX := body.X + side + body.VX*ctx.Scale
	layers := blockingLayers(body.Kind)

	for _, off := range sweepProbes(body) {
		scanY := body.Y + off
		if !anyLayer(o, checkX, scanY, layers) {
			continue
		}
		if math.Abs(body.VX) > bc.DestroySpeed {
			probeX := checkX + gamemath.Sign(side)*bc.BreakProbe
			if o.CheckPixel(probeX, scanY, collision.Breakable) {
				shatter(ctx, entry, body, probeX, scanY)
				boulder.Destroyed = true
				return true
			}
		}
		body.VX *= bc.Rebound
		return true
	}
	return false
}

// shatter chain-destroys the breakable terrain at (x, y) and throws debris
// from every cleared block and from the boulder itself.
func shatter(ctx *Context, entry *donburi.Entry, body *components.BodyData, x, y float64) {
	tc := &ctx.Tuning.Terrain
	dc := ctx.Tuning.Debris
	half := float64(tc.BlockSize) / 2

	blocks := ctx.Oracle.ChainDestroy(x, y, tc.BlockSize, tc.MaxChainCells)
	count := 0
	for _, b := range blocks {
		count += factory.SpawnDebris(ctx.World, ctx.Rand, dc, float64(b.X)+half, float64(b.Y)+half)
	}
	count += factory.SpawnDebris(ctx.World, ctx.Rand, dc, body.X, body.Y)

	TriggerScreenShake(ctx, ctx.Tuning.Camera.ShakeIntensity, ctx.Tuning.Camera.ShakeDuration)

	ctx.Log.WithField("blocks", len(blocks)).Debugf("boulder shattered terrain at (%.0f, %.0f)", x, y)
	ChainDestroyedEvents.Publish(ctx.World, ChainDestroyedEvent{
		Boulder: entry.Entity(),
		Blocks:  blocks,
		Debris:  count,
	})
}

// settleBoulder rests the boulder on the first ground or platform pixel
// within a short scan below it, or lets it fall.
func settleBoulder(ctx *Context, body *components.BodyData, boulder *components.BoulderData) {
	bc := &ctx.Tuning.Boulder
	r := boulder.Radius
	groundY := math.Floor(body.Y + r)

	for i := 0; i < bc.GroundScan; i++ {
		y := groundY + float64(i)
		if !anyLayer(ctx.Oracle, body.X, y, footingLayers) {
			continue
		}
		body.Y = y - r
		body.VY = 0
		body.Grounded = true
		body.SlopeAngle = ctx.Oracle.SlopeAngle(body.X, body.Y+r, collision.Ground)
		body.VX += math.Sin(body.SlopeAngle) * bc.SlopeAccel * ctx.Scale
		boulder.AngularVelocity = body.VX * bc.GroundRollRate
		body.Rotation += boulder.AngularVelocity * ctx.Scale
		return
	}

	body.Grounded = false
	body.Y += body.VY * ctx.Scale
	boulder.AngularVelocity = body.VX * bc.AirRollRate
	body.Rotation += boulder.AngularVelocity * ctx.Scale
}

// pushFromPlayer transfers momentum from a player walking into the boulder
// and places the player flush against its edge.
func pushFromPlayer(ctx *Context, entry *donburi.Entry, body *components.BodyData, boulder *components.BoulderData) {
	bc := &ctx.Tuning.Boulder
	obj := components.Object.Get(entry)
	hit := obj.Check(0, 0, tags.ResolvPlayer)
	if hit == nil {
		return
	}

	for _, o := range hit.ObjectsByTags(tags.ResolvPlayer) {
		playerEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !playerEntry.Valid() {
			continue
		}
		p := components.Body.Get(playerEntry)

		dx := p.CenterX() - body.X
		dy := p.CenterY() - body.Y
		if math.Hypot(dx, dy) >= boulder.Radius+math.Max(p.Width, p.Height)/2 {
			continue
		}

		playerToLeft := p.CenterX() < body.X
		pushing := (playerToLeft && p.VX > 0) || (!playerToLeft && p.VX < 0)
		if !pushing {
			continue
		}

		body.VX += p.VX * bc.PushForce / boulder.Mass
		p.VX *= bc.PlayerDamping
		if playerToLeft {
			p.X = body.X - boulder.Radius - p.Width
		} else {
			p.X = body.X + boulder.Radius
		}
		syncObject(ctx, playerEntry)
	}
}
