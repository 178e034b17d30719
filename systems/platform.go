package systems

import (
	"math"

	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/shared/gamemath"
	"github.com/1984drum/2dp-engine/tags"
)

// UpdatePlatform advances the moving platform along its path and publishes
// the new layer translation to the oracle. Velocity is the position delta of
// this tick so riders move exactly as far as the platform did.
func UpdatePlatform(ctx *Context) {
	p := platformState(ctx)
	if p == nil {
		return
	}
	defer SyncPlatformLayer(ctx)

	if !p.Active || len(p.Path) < 2 {
		p.VX, p.VY = 0, 0
		return
	}

	pc := &ctx.Tuning.Platform
	maxT := float64(len(p.Path) - 1)
	ease := gamemath.Clamp(math.Min(p.T, maxT-p.T)/pc.EaseDistance, pc.MinEase, 1)
	p.T += pc.BaseStep * p.Speed * ease * p.Direction * ctx.Scale

	if p.T >= maxT {
		p.T = maxT
		p.Direction = -1
	} else if p.T <= 0 {
		p.T = 0
		p.Direction = 1
	}

	pos := gamemath.PointOnSpline(p.Path, p.T)
	x := pos.X - p.Path[0].X
	y := pos.Y - p.Path[0].Y
	p.VX = x - p.X
	p.VY = y - p.Y
	p.X, p.Y = x, y
}

// SyncPlatformLayer copies the platform translation into the oracle.
func SyncPlatformLayer(ctx *Context) {
	p := platformState(ctx)
	if p == nil {
		ctx.Oracle.SetPlatformTranslation(0, 0)
		return
	}
	ctx.Oracle.SetPlatformTranslation(p.TranslationX(), p.TranslationY())
}

func platformState(ctx *Context) *components.PlatformData {
	entry, ok := tags.Platform.First(ctx.World)
	if !ok {
		return nil
	}
	return components.Platform.Get(entry)
}
