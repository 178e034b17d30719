package systems

import (
	"math"

	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateDebris moves debris particles ballistically and removes them once
// their life has faded out.
func UpdateDebris(ctx *Context) {
	dc := &ctx.Tuning.Debris
	k := ctx.Scale
	var toRemove []*donburi.Entry

	for entry := range tags.Debris.Iter(ctx.World) {
		d := components.Debris.Get(entry)
		d.X += d.VX * k
		d.Y += d.VY * k
		d.VY += dc.Gravity * k

		life, finished := d.Fade.Update(float32(k))
		d.Life = float64(life)
		if finished || d.Life <= 0 {
			toRemove = append(toRemove, entry)
		}
	}

	for _, entry := range toRemove {
		entry.Remove()
	}
}

// updateScreenShake advances the shake oscillation. The offset only affects
// drawing; camera position and target are untouched.
func updateScreenShake(ctx *Context, cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		camera.Shake.X, camera.Shake.Y = 0, 0
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += ctx.Scale
	progress, finished := shake.Decay.Update(float32(ctx.Scale))

	intensity := shake.Intensity * float64(progress)
	camera.Shake.X = math.Sin(shake.Elapsed*1.1) * intensity
	camera.Shake.Y = math.Cos(shake.Elapsed*1.3) * intensity

	if finished {
		camera.Shake.X, camera.Shake.Y = 0, 0
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ctx *Context, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ctx.World)
	if !ok || intensity <= 0 || duration <= 0 {
		return
	}

	decay := gween.New(1, 0, float32(duration), ease.OutQuad)
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Elapsed = 0
			shake.Decay = decay
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Decay:     decay,
	})
}
