package scenes

import (
	"io"
	"math"
	"math/rand"
	"sync"

	"github.com/1984drum/2dp-engine/collision"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/config"
	"github.com/1984drum/2dp-engine/shared/leveldata"
	"github.com/1984drum/2dp-engine/systems"
	"github.com/1984drum/2dp-engine/systems/factory"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Options configures a Simulation.
type Options struct {
	ViewWidth  float64
	ViewHeight float64
	Seed       int64
}

// Simulation owns one independent world: entities, terrain, tuning and the
// ordered tick pipeline. All methods are safe to call from multiple
// goroutines; a tick is never observed half-done.
type Simulation struct {
	mu sync.Mutex

	tuning config.Tuning
	ctx    *systems.Context
	stages []systems.System

	// subscriptions are replayed onto every new world.
	subscriptions []func(w donburi.World)

	editingPath bool
}

// NewSimulation creates a simulation over an empty world of the tuned size
// with the player at the default spawn point.
func NewSimulation(tuning config.Tuning, opts Options, log logrus.FieldLogger) *Simulation {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	if opts.ViewWidth <= 0 || opts.ViewHeight <= 0 {
		opts.ViewWidth = float64(config.C.Width)
		opts.ViewHeight = float64(config.C.Height)
	}

	s := &Simulation{tuning: tuning}
	s.ctx = &systems.Context{
		Tuning:     &s.tuning,
		ViewWidth:  opts.ViewWidth,
		ViewHeight: opts.ViewHeight,
		Scale:      1,
		Rand:       rand.New(rand.NewSource(opts.Seed)),
		Log:        log,
	}

	// Platform → Boulders → Debris → Enemies → Player → Camera, then events.
	s.stages = []systems.System{
		systems.WithPauseCheck(systems.UpdatePlatform),
		systems.WithPauseCheck(systems.UpdateBoulders),
		systems.WithPauseCheck(systems.UpdateDebris),
		systems.WithPauseCheck(systems.UpdateEnemies),
		systems.WithPauseCheck(systems.UpdatePlayer),
		systems.WithPauseCheck(systems.UpdateObjects),
		systems.WithPauseCheck(systems.UpdateCamera),
		systems.ProcessEvents,
	}

	s.reset(int(tuning.World.Width), int(tuning.World.Height))
	s.spawnPlayer(systems.SpawnPoint(s.ctx))
	return s
}

// reset replaces the world with an empty one of the given size.
func (s *Simulation) reset(width, height int) {
	w := donburi.NewWorld()
	s.ctx.World = w
	s.ctx.Oracle = collision.NewOracle(width, height)
	s.ctx.Tick = 0
	s.editingPath = false

	cell := s.tuning.World.CellSize
	factory.CreateSpace(w, width, height, cell, cell)
	factory.CreateCamera(w)
	systems.GetOrCreatePause(w)

	for _, sub := range s.subscriptions {
		sub(w)
	}
}

func (s *Simulation) spawnPlayer(at dmath.Vec2) {
	factory.CreatePlayer(s.ctx.World, s.ctx.Space(), s.tuning.Player, at.X, at.Y)
	systems.ResetCamera(s.ctx, at.X, at.Y)
}

// LoadScene discards the current world and builds a new one from scene.
// The scene's rasters are copied, so the scene can be loaded again later.
func (s *Simulation) LoadScene(scene *leveldata.Scene) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset(scene.Width, scene.Height)
	ctx := s.ctx
	w := ctx.World

	for l, r := range scene.Rasters {
		ctx.Oracle.SetRaster(l, r.Clone())
	}

	level := components.LevelData{
		Name:    scene.Name,
		Spawn:   dmath.Vec2{X: s.tuning.World.SpawnX, Y: s.tuning.World.SpawnY},
		Goal:    scene.Goal,
		HasGoal: scene.HasGoal,
	}
	if scene.HasSpawn {
		level.Spawn = scene.Spawn
	}
	factory.CreateLevel(w, level)

	space := ctx.Space()
	for _, b := range scene.Boulders {
		factory.CreateBoulder(w, space, ctx.Rand, s.tuning.Boulder, b.X, b.Y, b.Radius, b.Mass)
	}
	for _, e := range scene.Enemies {
		factory.CreateEnemy(w, space, ctx.Rand, s.tuning.Enemy, e.X, e.Y, e.Speed)
	}

	platform := factory.CreatePlatform(w, s.tuning.Platform, scene.PlatformPath, scene.PlatformOffset)
	if scene.PlatformSpeed > 0 {
		p := components.Platform.Get(platform)
		p.Speed = s.clampPlatformSpeed(scene.PlatformSpeed)
	}
	systems.SyncPlatformLayer(ctx)

	s.spawnPlayer(level.Spawn)

	ctx.Log.WithFields(logrus.Fields{
		"level":    scene.Name,
		"width":    scene.Width,
		"height":   scene.Height,
		"boulders": len(scene.Boulders),
		"enemies":  len(scene.Enemies),
		"path":     len(scene.PlatformPath),
	}).Info("scene loaded")
}

// Step runs one tick at the tuned cadence.
func (s *Simulation) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick(1)
}

// Advance runs one tick covering dt seconds of wall-clock time. dt is
// clamped to the configured maximum so a stall cannot blow up the physics.
func (s *Simulation) Advance(dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	dt = math.Min(dt, s.tuning.World.MaxDelta)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick(dt * s.tuning.World.TickRate)
}

func (s *Simulation) tick(scale float64) {
	s.ctx.Scale = scale
	for _, stage := range s.stages {
		stage(s.ctx)
	}
	s.ctx.Tick++
}

// SetInput replaces the player's intent flags. They persist until the next
// call.
func (s *Simulation) SetInput(in components.InputData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := tags.Player.First(s.ctx.World); ok {
		components.Input.SetValue(entry, in)
	}
}

// SetPaused sets the pause flag. A paused simulation still delivers events
// but leaves every entity untouched.
func (s *Simulation) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	systems.SetPaused(s.ctx.World, paused)
}

// Paused reports the pause flag.
func (s *Simulation) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return systems.IsPaused(s.ctx.World)
}

// Respawn returns the player to the spawn point.
func (s *Simulation) Respawn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := tags.Player.First(s.ctx.World); ok {
		systems.Respawn(s.ctx, entry, "requested")
	}
}

// SetViewport changes the viewport size used by the camera.
func (s *Simulation) SetViewport(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx.ViewWidth = width
	s.ctx.ViewHeight = height
}

// Tuning returns a copy of the active tuning.
func (s *Simulation) Tuning() config.Tuning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tuning
}

// SetDebugSensors toggles recording of the player's grounding probes.
func (s *Simulation) SetDebugSensors(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tuning.Debug.Sensors = on
}
