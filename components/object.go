package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors a body into the actor broadphase.
type ObjectData struct {
	*resolv.Object
}

// SetBounds moves and resizes the object and refreshes the cells it occupies.
func (o *ObjectData) SetBounds(x, y, w, h float64) {
	o.X, o.Y, o.W, o.H = x, y, w, h
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the actor broadphase shared by players, enemies and boulders.
var Space = donburi.NewComponentType[resolv.Space]()
