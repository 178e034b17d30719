package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlatformData drives the platform layer along a spline path. X and Y are
// the spline position relative to the first waypoint.
type PlatformData struct {
	Path      []math.Vec2
	T         float64 // spline parameter in [0, len(Path)-1]
	Direction float64 // -1 or 1
	Speed     float64
	Active    bool // false while the path is being edited

	X, Y    float64
	VX, VY  float64
	OffsetX float64 // manual offset added to the spline translation
	OffsetY float64
}

// TranslationX returns the platform layer offset on the x axis.
func (p *PlatformData) TranslationX() float64 { return p.X + p.OffsetX }

// TranslationY returns the platform layer offset on the y axis.
func (p *PlatformData) TranslationY() float64 { return p.Y + p.OffsetY }

var Platform = donburi.NewComponentType[PlatformData]()
