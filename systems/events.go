package systems

import (
	"image"

	"github.com/1984drum/2dp-engine/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RespawnEvent is published after the player is returned to the spawn point.
type RespawnEvent struct {
	Entity donburi.Entity
	X, Y   float64
	Reason string
}

// GroundedEvent is published on the tick a body lands.
type GroundedEvent struct {
	Entity     donburi.Entity
	Kind       components.BodyKind
	OnPlatform bool
	SlopeAngle float64
}

// JumpEvent is published when a buffered jump executes.
type JumpEvent struct {
	Entity donburi.Entity
	X, Y   float64
}

// ChainDestroyedEvent is published when a boulder breaks through terrain.
type ChainDestroyedEvent struct {
	Boulder donburi.Entity
	Blocks  []image.Point // origins of the cleared blocks
	Debris  int
}

// ContactEvent is published for every tick the player overlaps an enemy.
type ContactEvent struct {
	Player donburi.Entity
	Enemy  donburi.Entity
}

// RemovedEvent is published when a body leaves the active set.
type RemovedEvent struct {
	Entity donburi.Entity
	Kind   components.BodyKind
	Reason string
}

var (
	RespawnEvents        = events.NewEventType[RespawnEvent]()
	GroundedEvents       = events.NewEventType[GroundedEvent]()
	JumpEvents           = events.NewEventType[JumpEvent]()
	ChainDestroyedEvents = events.NewEventType[ChainDestroyedEvent]()
	ContactEvents        = events.NewEventType[ContactEvent]()
	RemovedEvents        = events.NewEventType[RemovedEvent]()
)

// ProcessEvents delivers every event queued during the tick. It runs as the
// last stage so subscribers only ever observe completed ticks.
func ProcessEvents(ctx *Context) {
	events.ProcessAllEvents(ctx.World)
}
