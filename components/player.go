package components

import (
	"github.com/1984drum/2dp-engine/collision"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	JumpReady  bool    // jump key was released since the last press
	JumpBuffer float64 // frames a pressed jump waits for ground
	IsJumping  bool
	AirHold    float64 // frames airborne with a direction held

	Sensors []Sensor // grounding probes from the last tick, debug only
}

// Sensor is a single collision probe recorded for debug drawing.
type Sensor struct {
	X, Y  float64
	Layer collision.Layer
	Hit   bool
}

var Player = donburi.NewComponentType[PlayerData]()
