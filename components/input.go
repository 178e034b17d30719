package components

import "github.com/yohamta/donburi"

// InputData holds the movement intents for one tick. Hosts map raw devices
// onto it; the simulation never reads hardware.
type InputData struct {
	Left  bool
	Right bool
	Jump  bool // held
}

var Input = donburi.NewComponentType[InputData]()
