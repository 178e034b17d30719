package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// BodyKind is the closed set of simulated body variants.
type BodyKind int

const (
	KindPlayer BodyKind = iota
	KindEnemy
	KindBoulder
)

func (k BodyKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoulder:
		return "boulder"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// BodyData is the physical state shared by every simulated body. Players
// and enemies are positioned by their top-left corner, boulders by their
// center.
type BodyData struct {
	Kind          BodyKind
	X, Y          float64
	VX, VY        float64
	Width, Height float64

	Grounded    bool
	CoyoteTimer float64 // frames a jump is still allowed after leaving ground
	OnPlatform  bool
	Rotation    float64 // visual lean, radians
	SlopeAngle  float64 // surface angle from the last grounding pass
}

var Body = donburi.NewComponentType[BodyData]()

// CenterX returns the horizontal center of the body.
func (b *BodyData) CenterX() float64 {
	if b.Kind == KindBoulder {
		return b.X
	}
	return b.X + b.Width/2
}

// CenterY returns the vertical center of the body.
func (b *BodyData) CenterY() float64 {
	if b.Kind == KindBoulder {
		return b.Y
	}
	return b.Y + b.Height/2
}

// Bounds returns the axis-aligned box of the body as x, y, w, h.
func (b *BodyData) Bounds() (x, y, w, h float64) {
	if b.Kind == KindBoulder {
		return b.X - b.Width/2, b.Y - b.Height/2, b.Width, b.Height
	}
	return b.X, b.Y, b.Width, b.Height
}
