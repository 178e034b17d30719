package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64      // max offset in pixels
	Elapsed   float64      // frames elapsed (for oscillation)
	Decay     *gween.Tween // intensity scale, 1 to 0 over the shake duration
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// DebrisData is a short-lived particle thrown out of destroyed terrain.
type DebrisData struct {
	X, Y   float64
	VX, VY float64
	Life   float64      // 1 when spawned, removed at 0
	Fade   *gween.Tween // drives Life
}

var Debris = donburi.NewComponentType[DebrisData]()
