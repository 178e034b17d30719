package systems

import (
	"math"

	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/shared/gamemath"
	"github.com/1984drum/2dp-engine/tags"
)

// UpdateCamera follows the player with a dead zone around the viewport
// center. Leaving the dead zone moves the target by the excess only; the
// position then eases toward the target. There is no world clamp so editors
// can pan freely.
func UpdateCamera(ctx *Context) {
	cameraEntry, ok := components.Camera.First(ctx.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(ctx, cameraEntry, camera)

	playerEntry, ok := tags.Player.First(ctx.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	cc := &ctx.Tuning.Camera

	focusX := body.X + body.Width/2
	focusY := body.Y + body.Height/2 + cc.VerticalOffset

	dx := focusX - (camera.Position.X + ctx.ViewWidth/2)
	dy := focusY - (camera.Position.Y + ctx.ViewHeight/2)

	camera.Target.X += deadZoneExcess(dx, cc.DeadZoneWidth)
	camera.Target.Y += deadZoneExcess(dy, cc.DeadZoneHeight)

	rate := ctx.frameRate(cc.FollowSmoothing)
	camera.Position.X = gamemath.Approach(camera.Position.X, camera.Target.X, rate)
	camera.Position.Y = gamemath.Approach(camera.Position.Y, camera.Target.Y, rate)
}

// deadZoneExcess returns how far d reaches past ±limit, or 0 inside it.
func deadZoneExcess(d, limit float64) float64 {
	if math.Abs(d) <= limit {
		return 0
	}
	if d > 0 {
		return d - limit
	}
	return d + limit
}

// ResetCamera centers the viewport on (x, y) immediately.
func ResetCamera(ctx *Context, x, y float64) {
	cameraEntry, ok := components.Camera.First(ctx.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = x - ctx.ViewWidth/2
	camera.Position.Y = y - ctx.ViewHeight/2
	camera.Target = camera.Position
}

// PanCamera shifts the viewport by (-dx, -dy) immediately, as when dragging
// the view.
func PanCamera(ctx *Context, dx, dy float64) {
	cameraEntry, ok := components.Camera.First(ctx.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X -= dx
	camera.Position.Y -= dy
	camera.Target = camera.Position
}
