package scenes

import (
	"image"
	"math"

	"github.com/1984drum/2dp-engine/collision"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/systems"
	"github.com/1984drum/2dp-engine/systems/factory"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Editing operations run between ticks under the simulation lock, so a tick
// always sees terrain and entities either fully before or fully after an edit.

// PaintTerrain marks rect solid on layer. Platform rectangles are in the
// platform's local frame.
func (s *Simulation) PaintTerrain(layer collision.Layer, rect image.Rectangle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raster(layer).Fill(rect)
}

// EraseTerrain clears rect on layer.
func (s *Simulation) EraseTerrain(layer collision.Layer, rect image.Rectangle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raster(layer).ClearRect(rect)
}

// ReplaceTerrain swaps the whole raster of layer for a copy of r.
func (s *Simulation) ReplaceTerrain(layer collision.Layer, r *collision.Raster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r != nil {
		r = r.Clone()
	}
	s.ctx.Oracle.SetRaster(layer, r)
}

// ClearTerrain empties layer. Clearing the platform layer also drops its
// path and offset and enters path editing.
func (s *Simulation) ClearTerrain(layer collision.Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raster(layer).Reset()

	if layer != collision.Platform {
		return
	}
	if p := s.platform(); p != nil {
		*p = components.PlatformData{Direction: 1, Speed: p.Speed}
	}
	s.editingPath = true
	systems.SyncPlatformLayer(s.ctx)
}

// CopyTerrain returns a snapshot of layer's raster. Hosts compare Version
// against their cached copy to skip redundant copies.
func (s *Simulation) CopyTerrain(layer collision.Layer) *collision.Raster {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raster(layer).Clone()
}

// TerrainVersion returns the mutation counter of layer's raster.
func (s *Simulation) TerrainVersion(layer collision.Layer) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raster(layer).Version()
}

func (s *Simulation) raster(layer collision.Layer) *collision.Raster {
	o := s.ctx.Oracle
	r := o.Raster(layer)
	if r == nil {
		r = collision.NewRaster(o.Width(), o.Height())
		o.SetRaster(layer, r)
	}
	return r
}

// platform returns the platform state, creating an idle platform when the
// world has none.
func (s *Simulation) platform() *components.PlatformData {
	entry, ok := tags.Platform.First(s.ctx.World)
	if !ok {
		entry = factory.CreatePlatform(s.ctx.World, s.tuning.Platform, nil, dmath.Vec2{})
	}
	return components.Platform.Get(entry)
}

// BeginPathEdit stops the platform so its path can be edited.
func (s *Simulation) BeginPathEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.platform()
	p.Active = false
	p.VX, p.VY = 0, 0
	s.editingPath = true
}

// EditingPath reports whether the platform path is being edited.
func (s *Simulation) EditingPath() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingPath
}

// SetPlatformPath replaces the platform waypoints. Outside of path editing
// the platform restarts from the first waypoint.
func (s *Simulation) SetPlatformPath(path []dmath.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.platform()
	p.Path = append(p.Path[:0], path...)
	if !s.editingPath {
		s.restartPlatform(p)
	}
}

// AddPathPoint appends a waypoint while editing the path.
func (s *Simulation) AddPathPoint(pt dmath.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.platform()
	p.Path = append(p.Path, pt)
}

// ConfirmPath leaves path editing. A path of at least two waypoints starts
// moving from its first waypoint.
func (s *Simulation) ConfirmPath() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingPath = false
	s.restartPlatform(s.platform())
}

func (s *Simulation) restartPlatform(p *components.PlatformData) {
	p.Active = len(p.Path) >= 2
	p.T = 0
	p.Direction = 1
	p.X, p.Y = 0, 0
	p.VX, p.VY = 0, 0
	systems.SyncPlatformLayer(s.ctx)
}

// SetPlatformOffset sets the manual offset added to the spline translation.
func (s *Simulation) SetPlatformOffset(offset dmath.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.platform()
	p.OffsetX, p.OffsetY = offset.X, offset.Y
	systems.SyncPlatformLayer(s.ctx)
}

// MovePlatform shifts the manual offset by (dx, dy), as when dragging the
// platform.
func (s *Simulation) MovePlatform(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.platform()
	p.OffsetX += dx
	p.OffsetY += dy
	systems.SyncPlatformLayer(s.ctx)
}

// SetPlatformSpeed sets the platform speed multiplier, clamped to the
// configured range.
func (s *Simulation) SetPlatformSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.platform().Speed = s.clampPlatformSpeed(speed)
}

func (s *Simulation) clampPlatformSpeed(speed float64) float64 {
	pc := &s.tuning.Platform
	return math.Max(pc.MinSpeed, math.Min(pc.MaxSpeed, speed))
}

// ResetCamera centers the view on the player immediately.
func (s *Simulation) ResetCamera() {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := tags.Player.First(s.ctx.World)
	if !ok {
		return
	}
	body := components.Body.Get(entry)
	systems.ResetCamera(s.ctx, body.X, body.Y)
}

// PanCamera drags the view by (dx, dy) screen pixels.
func (s *Simulation) PanCamera(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	systems.PanCamera(s.ctx, dx, dy)
}

// SetSpawn moves the spawn point used by later respawns.
func (s *Simulation) SetSpawn(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level().Spawn = dmath.Vec2{X: x, Y: y}
}

// SetGoal places the goal marker.
func (s *Simulation) SetGoal(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	level := s.level()
	level.Goal = dmath.Vec2{X: x, Y: y}
	level.HasGoal = true
}

func (s *Simulation) level() *components.LevelData {
	entry, ok := components.Level.First(s.ctx.World)
	if !ok {
		entry = factory.CreateLevel(s.ctx.World, components.LevelData{
			Spawn: systems.SpawnPoint(s.ctx),
		})
	}
	return components.Level.Get(entry)
}

// PlaceBoulder adds a boulder centered on (x, y). Non-positive radius or mass
// use the tuned defaults.
func (s *Simulation) PlaceBoulder(x, y, radius, mass float64) donburi.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx := s.ctx
	return factory.CreateBoulder(ctx.World, ctx.Space(), ctx.Rand, s.tuning.Boulder, x, y, radius, mass).Entity()
}

// PlaceEnemy adds an enemy with its top-left corner at (x, y). A non-positive
// speed picks a random one.
func (s *Simulation) PlaceEnemy(x, y, speed float64) donburi.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx := s.ctx
	return factory.CreateEnemy(ctx.World, ctx.Space(), ctx.Rand, s.tuning.Enemy, x, y, speed).Entity()
}

// RemoveBoulderAt removes the first boulder whose circle contains (x, y).
func (s *Simulation) RemoveBoulderAt(x, y float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for entry := range tags.Boulder.Iter(s.ctx.World) {
		body := components.Body.Get(entry)
		if math.Hypot(x-body.X, y-body.Y) <= components.Boulder.Get(entry).Radius {
			systems.RemoveBody(s.ctx, entry, "deleted")
			return true
		}
	}
	return false
}

// RemoveEnemyAt removes the first enemy whose box contains (x, y).
func (s *Simulation) RemoveEnemyAt(x, y float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for entry := range tags.Enemy.Iter(s.ctx.World) {
		bx, by, bw, bh := components.Body.Get(entry).Bounds()
		if x >= bx && x < bx+bw && y >= by && y < by+bh {
			systems.RemoveBody(s.ctx, entry, "deleted")
			return true
		}
	}
	return false
}

// SyncFrame places the player and camera directly, bypassing physics. Replays
// recorded as positions use it.
func (s *Simulation) SyncFrame(playerX, playerY, cameraX, cameraY float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := tags.Player.First(s.ctx.World)
	if !ok {
		return
	}
	body := components.Body.Get(entry)
	body.X, body.Y = playerX, playerY
	body.VX, body.VY = 0, 0

	if cameraEntry, ok := components.Camera.First(s.ctx.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position = dmath.Vec2{X: cameraX, Y: cameraY}
		camera.Target = camera.Position
	}
}
