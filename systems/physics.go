package systems

import (
	"math"

	"github.com/1984drum/2dp-engine/collision"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/shared/gamemath"
)

// Probe insets from the body edges.
const (
	playerProbeInset  = 5
	enemyProbeInset   = 8
	ceilingProbeInset = 5
)

var (
	wallLayers      = []collision.Layer{collision.Wall, collision.Breakable}
	enemyWallLayers = []collision.Layer{collision.Wall, collision.Breakable, collision.EnemyWall}
	ceilingLayers   = []collision.Layer{collision.Ceiling, collision.Ground, collision.Wall, collision.Breakable}
	footingLayers   = []collision.Layer{collision.Ground, collision.Platform}
)

// sweepProbes returns the vertical probe offsets used for side collision.
// Players and enemies measure from the top edge, boulders from the center.
func sweepProbes(b *components.BodyData) []float64 {
	switch b.Kind {
	case components.KindPlayer:
		h := b.Height
		return []float64{playerProbeInset, h * 0.25, h * 0.5, h * 0.75, h - playerProbeInset}
	case components.KindEnemy:
		h := b.Height
		return []float64{enemyProbeInset, h * 0.5, h - enemyProbeInset}
	case components.KindBoulder:
		r := b.Width / 2
		return []float64{0, -r * 0.5, r * 0.5}
	}
	panic("unknown body kind " + b.Kind.String())
}

// blockingLayers returns the layers that stop horizontal motion. Enemy walls
// only fence enemies.
func blockingLayers(kind components.BodyKind) []collision.Layer {
	switch kind {
	case components.KindPlayer, components.KindBoulder:
		return wallLayers
	case components.KindEnemy:
		return enemyWallLayers
	}
	panic("unknown body kind " + kind.String())
}

func anyLayer(o *collision.Oracle, x, y float64, layers []collision.Layer) bool {
	for _, l := range layers {
		if o.CheckPixel(x, y, l) {
			return true
		}
	}
	return false
}

func sideBlocked(o *collision.Oracle, b *components.BodyData, sideX float64) bool {
	layers := blockingLayers(b.Kind)
	for _, off := range sweepProbes(b) {
		if anyLayer(o, sideX, b.Y+off, layers) {
			return true
		}
	}
	return false
}

// SweepHorizontal moves b by its horizontal velocity in sub-steps of at most
// one pixel, stopping at the first blocked step. It returns whether a wall was
// hit. The body always ends inside [0, worldWidth-width].
func SweepHorizontal(ctx *Context, b *components.BodyData) bool {
	dx := b.VX * ctx.Scale
	steps := int(math.Ceil(math.Abs(dx)))
	hit := false

	if steps > 0 {
		step := dx / float64(steps)
		for i := 0; i < steps; i++ {
			b.X += step
			switch {
			case step < 0 && sideBlocked(ctx.Oracle, b, b.X):
				b.X = math.Ceil(b.X)
				hit = true
			case step > 0 && sideBlocked(ctx.Oracle, b, b.X+b.Width):
				b.X = math.Floor(b.X)
				hit = true
			}
			if hit {
				switch b.Kind {
				case components.KindPlayer, components.KindBoulder:
					b.VX = -b.VX * ctx.Tuning.Physics.WallBounce
				case components.KindEnemy:
					b.VX = 0
				}
				break
			}
		}
	}

	clampToWorld(ctx, b)
	return hit
}

func clampToWorld(ctx *Context, b *components.BodyData) {
	if b.X < 0 {
		b.X = 0
	}
	if maxX := ctx.WorldWidth() - b.Width; b.X > maxX {
		b.X = maxX
	}
}

// CheckCeiling pushes an upward-moving body out of anything solid above it.
func CheckCeiling(ctx *Context, b *components.BodyData) bool {
	o := ctx.Oracle
	centerX := b.X + b.Width/2
	hit := anyLayer(o, b.X+ceilingProbeInset, b.Y, ceilingLayers) ||
		anyLayer(o, b.X+b.Width-ceilingProbeInset, b.Y, ceilingLayers) ||
		anyLayer(o, centerX, b.Y, ceilingLayers)
	if !hit {
		return false
	}

	b.Y = math.Ceil(b.Y)
	// terminates: queries below the world are empty
	for anyLayer(o, centerX, b.Y, ceilingLayers) {
		b.Y++
	}
	b.VY = 0
	return true
}

// GroundResult describes the outcome of one grounding pass.
type GroundResult struct {
	Grounded   bool
	OnPlatform bool
	Landed     bool // grounded this tick after being airborne
	SlopeAngle float64
	SurfaceY   float64
	Layer      collision.Layer
}

type groundHit struct {
	y     float64
	layer collision.Layer
}

// probeGround scans one column downward from stepHeight above the feet.
// Platforms only count below the feet so they can be jumped through.
func probeGround(ctx *Context, x, feetY, lookDown float64) (groundHit, bool) {
	phys := &ctx.Tuning.Physics
	for y := feetY - phys.StepHeight; y < feetY+lookDown; y++ {
		if ctx.Oracle.CheckPixel(x, y, collision.Ground) {
			return groundHit{y: y, layer: collision.Ground}, true
		}
		if y > feetY-phys.PlatformTolerance && ctx.Oracle.CheckPixel(x, y, collision.Platform) {
			return groundHit{y: y, layer: collision.Platform}, true
		}
	}
	return groundHit{}, false
}

// ResolveGrounding snaps a falling or resting body onto the highest surface
// beneath it and updates its grounded state, coyote timer and lean. Ground
// steeper than the red threshold acts as a wall: the horizontal move of this
// tick is undone and the body stays airborne. When sensors is non-nil the
// probe results are appended to it.
func ResolveGrounding(ctx *Context, b *components.BodyData, sensors *[]components.Sensor) GroundResult {
	phys := &ctx.Tuning.Physics
	wasGrounded := b.Grounded
	var res GroundResult

	if b.VY >= 0 {
		feetY := math.Floor(b.Y + b.Height)
		lookDown := phys.StepHeight
		if !b.Grounded {
			lookDown = math.Max(math.Ceil(b.VY*ctx.Scale), phys.MinLandingScan) + 2
		}

		var best groundHit
		found := false
		for _, off := range [4]float64{0, b.Width * 0.33, b.Width * 0.66, b.Width} {
			hit, ok := probeGround(ctx, b.X+off, feetY, lookDown)
			if sensors != nil {
				s := components.Sensor{X: b.X + off, Y: feetY + lookDown, Layer: collision.Ground}
				if ok {
					s.Y, s.Layer, s.Hit = hit.y, hit.layer, true
				}
				*sensors = append(*sensors, s)
			}
			if ok && (!found || hit.y < best.y) {
				best, found = hit, true
			}
		}

		if found {
			res.SurfaceY = best.y
			res.Layer = best.layer
			res.SlopeAngle = ctx.Oracle.SlopeAngle(b.X+b.Width/2, best.y, best.layer)

			if best.layer == collision.Ground && math.Abs(res.SlopeAngle) > phys.AngleRedThreshold {
				b.X -= b.VX * ctx.Scale
				clampToWorld(ctx, b)
			} else {
				b.Y = best.y - b.Height
				b.VY = 0
				res.Grounded = true
				res.OnPlatform = best.layer == collision.Platform
			}
		}
	}

	if res.Grounded {
		b.Grounded = true
		b.CoyoteTimer = ctx.Tuning.Player.CoyoteFrames
		b.OnPlatform = res.OnPlatform
		b.Rotation = gamemath.Approach(b.Rotation, res.SlopeAngle, ctx.frameRate(phys.GroundRotationEase))
		res.Landed = !wasGrounded
	} else {
		b.Grounded = false
		b.OnPlatform = false
		b.CoyoteTimer = ctx.countDown(b.CoyoteTimer)
		b.Rotation = gamemath.Approach(b.Rotation, 0, ctx.frameRate(phys.AirRotationEase))
	}
	b.SlopeAngle = res.SlopeAngle
	return res
}

// ApplySlopeAssist speeds a grounded body up going downhill and slows it
// climbing, each capped relative to the maximum run speed.
func ApplySlopeAssist(ctx *Context, b *components.BodyData, slopeAngle float64) {
	phys := &ctx.Tuning.Physics
	pc := &ctx.Tuning.Player
	if math.Abs(slopeAngle) <= phys.SlopeMinAngle {
		return
	}

	factor := gamemath.SlopeFactor(slopeAngle, phys.AngleRedThreshold)
	switch gamemath.ClassifySlope(slopeAngle, b.VX, collision.SlopeSampleDist*2, pc.SlopeDeadband) {
	case gamemath.Downhill:
		b.VX += gamemath.Sign(b.VX) * factor * pc.SlopeMomentum * ctx.Scale
		b.VX = gamemath.ClampSpeed(b.VX, pc.MaxSpeed*(1+factor*pc.DownhillSpeedBonus))
	case gamemath.Uphill:
		drag := 1 - factor*pc.UphillDrag
		if ctx.Scale != 1 {
			drag = math.Pow(math.Max(drag, 0), ctx.Scale)
		}
		b.VX *= drag
		b.VX = gamemath.ClampSpeed(b.VX, math.Max(0, pc.MaxSpeed*(1-factor*pc.UphillSpeedPenalty)))
	}
}

// carryOnPlatform moves a body riding the moving platform by the platform's
// displacement this tick.
func carryOnPlatform(b *components.BodyData, p *components.PlatformData) {
	if p == nil || !b.OnPlatform || !b.Grounded {
		return
	}
	b.X += p.VX
	b.Y += p.VY
}

// applyGravity accelerates a body downward, scaled while falling, and caps
// the fall speed.
func applyGravity(ctx *Context, b *components.BodyData, scale float64) {
	phys := &ctx.Tuning.Physics
	b.VY += phys.Gravity * scale * ctx.Scale
	if b.VY > phys.MaxFallSpeed {
		b.VY = phys.MaxFallSpeed
	}
}
