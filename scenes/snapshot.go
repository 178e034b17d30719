package scenes

import (
	"slices"

	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/systems"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

// Snapshot is a read-only copy of the simulation state at a tick boundary.
type Snapshot struct {
	Tick   uint64
	Paused bool

	WorldWidth  int
	WorldHeight int
	ViewWidth   float64
	ViewHeight  float64

	Player      components.BodyData
	PlayerState components.PlayerData
	Input       components.InputData
	HasPlayer   bool

	Enemies  []EnemyState
	Boulders []BoulderState
	Debris   []DebrisState

	Platform    components.PlatformData
	HasPlatform bool
	EditingPath bool

	Camera components.CameraData
	Level  components.LevelData
}

type EnemyState struct {
	Entity donburi.Entity
	Body   components.BodyData
	Enemy  components.EnemyData
}

type BoulderState struct {
	Entity  donburi.Entity
	Body    components.BodyData
	Boulder components.BoulderData
}

type DebrisState struct {
	X, Y float64
	Life float64
}

// Snapshot copies the current state. Slices in the result are not shared
// with the simulation.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := s.ctx
	w := ctx.World
	snap := Snapshot{
		Tick:        ctx.Tick,
		Paused:      systems.IsPaused(w),
		WorldWidth:  ctx.Oracle.Width(),
		WorldHeight: ctx.Oracle.Height(),
		ViewWidth:   ctx.ViewWidth,
		ViewHeight:  ctx.ViewHeight,
		EditingPath: s.editingPath,
		Level: components.LevelData{
			Spawn: systems.SpawnPoint(ctx),
		},
	}

	if entry, ok := tags.Player.First(w); ok {
		snap.HasPlayer = true
		snap.Player = *components.Body.Get(entry)
		snap.PlayerState = *components.Player.Get(entry)
		snap.PlayerState.Sensors = slices.Clone(snap.PlayerState.Sensors)
		snap.Input = *components.Input.Get(entry)
	}

	for entry := range tags.Enemy.Iter(w) {
		snap.Enemies = append(snap.Enemies, EnemyState{
			Entity: entry.Entity(),
			Body:   *components.Body.Get(entry),
			Enemy:  *components.Enemy.Get(entry),
		})
	}

	for entry := range tags.Boulder.Iter(w) {
		b := *components.Boulder.Get(entry)
		b.Shape = slices.Clone(b.Shape)
		snap.Boulders = append(snap.Boulders, BoulderState{
			Entity:  entry.Entity(),
			Body:    *components.Body.Get(entry),
			Boulder: b,
		})
	}

	for entry := range tags.Debris.Iter(w) {
		d := components.Debris.Get(entry)
		snap.Debris = append(snap.Debris, DebrisState{X: d.X, Y: d.Y, Life: d.Life})
	}

	if entry, ok := tags.Platform.First(w); ok {
		snap.HasPlatform = true
		snap.Platform = *components.Platform.Get(entry)
		snap.Platform.Path = slices.Clone(snap.Platform.Path)
	}

	if entry, ok := components.Camera.First(w); ok {
		snap.Camera = *components.Camera.Get(entry)
	}

	if entry, ok := components.Level.First(w); ok {
		snap.Level = *components.Level.Get(entry)
	}

	return snap
}

// PlayerPosition returns the player's top-left corner.
func (snap Snapshot) PlayerPosition() dmath.Vec2 {
	return dmath.Vec2{X: snap.Player.X, Y: snap.Player.Y}
}

// View returns the top-left corner of the viewport including screen shake.
func (snap Snapshot) View() dmath.Vec2 {
	return dmath.Vec2{
		X: snap.Camera.Position.X + snap.Camera.Shake.X,
		Y: snap.Camera.Position.Y + snap.Camera.Shake.Y,
	}
}

// Subscribe registers fn for events of type et. Subscriptions survive scene
// loads and are delivered at the end of the tick that published them.
func Subscribe[T any](s *Simulation, et *events.EventType[T], fn func(T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := func(w donburi.World) {
		et.Subscribe(w, func(_ donburi.World, e T) { fn(e) })
	}
	s.subscriptions = append(s.subscriptions, sub)
	sub(s.ctx.World)
}
