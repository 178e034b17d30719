// Package game is the ebiten playground host: it maps keyboard and gamepad
// input onto a simulation, steps it once per ebiten tick and draws a debug
// view of terrain and entities.
package game

import (
	"image/color"

	"github.com/1984drum/2dp-engine/persistence"
	"github.com/1984drum/2dp-engine/replay"
	"github.com/1984drum/2dp-engine/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerTerrain ecs.LayerID = iota
	layerEntities
	layerOverlay
)

// notifyFrames is how long a notification stays on screen.
const notifyFrames = 120

// HostData is the playground state kept next to the simulation.
type HostData struct {
	ShowRasters  bool
	DebugSensors bool
	Replaying    bool

	Notification string
	NotifyLeft   int
}

var Host = donburi.NewComponentType[HostData]()

// Options configures a Game.
type Options struct {
	Level   string
	Profile string
	Seed    int64

	// Debug overlays restored from saved settings.
	DebugSensors bool
	ShowRasters  bool

	// Store persists recordings when set.
	Store *persistence.Store
	// Replay starts playing immediately when set.
	Replay *replay.Recording
}

// Game implements ebiten.Game around a Simulation.
type Game struct {
	sim  *scenes.Simulation
	opts Options
	log  logrus.FieldLogger

	ecs      *ecs.ECS
	controls Controls
	recorder *replay.Recorder
	last     *replay.Recording
	player   *replay.Player

	snap    scenes.Snapshot
	terrain terrainCache
}

func NewGame(sim *scenes.Simulation, opts Options, log logrus.FieldLogger) *Game {
	if log == nil {
		log = logrus.StandardLogger()
	}
	g := &Game{
		sim:      sim,
		opts:     opts,
		log:      log,
		recorder: replay.NewRecorder(opts.Level, opts.Profile, opts.Seed),
	}

	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.World.Create(Host))
	Host.SetValue(entry, HostData{
		DebugSensors: opts.DebugSensors,
		ShowRasters:  opts.ShowRasters,
	})
	sim.SetDebugSensors(opts.DebugSensors)

	e.AddSystem(g.updateControls)
	e.AddSystem(g.updateSimulation)

	e.AddRenderer(layerTerrain, g.drawTerrain)
	e.AddRenderer(layerEntities, g.drawEntities)
	e.AddRenderer(layerOverlay, g.drawOverlay)
	g.ecs = e

	if opts.Replay != nil {
		g.startReplay(opts.Replay)
	}
	g.snap = sim.Snapshot()
	return g
}

func (g *Game) host() *HostData {
	entry, _ := Host.First(g.ecs.World)
	return Host.Get(entry)
}

// SaveFlags copies the current debug overlay toggles into s so they can be
// persisted.
func (g *Game) SaveFlags(s *persistence.Settings) {
	h := g.host()
	s.DebugSensors = h.DebugSensors
	s.ShowRasters = h.ShowRasters
}

func (g *Game) notify(msg string) {
	h := g.host()
	h.Notification = msg
	h.NotifyLeft = notifyFrames
	g.log.Info(msg)
}

func (g *Game) Update() error {
	g.ecs.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	g.ecs.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(g.snap.ViewWidth), int(g.snap.ViewHeight)
}

// updateControls handles the host toggles. Movement is read by
// updateSimulation.
func (g *Game) updateControls(_ *ecs.ECS) {
	g.controls.Poll(&Input)
	g.handleActions()
}

func (g *Game) handleActions() {
	h := g.host()
	if h.NotifyLeft > 0 {
		h.NotifyLeft--
	}

	if g.controls.Action(ActionPause).JustPressed {
		g.sim.SetPaused(!g.sim.Paused())
	}
	if g.controls.Action(ActionRespawn).JustPressed && !h.Replaying {
		g.sim.Respawn()
	}
	if g.controls.Action(ActionResetCamera).JustPressed {
		g.sim.ResetCamera()
	}
	if g.controls.Action(ActionDebug).JustPressed {
		h.DebugSensors = !h.DebugSensors
		g.sim.SetDebugSensors(h.DebugSensors)
	}
	if g.controls.Action(ActionRasters).JustPressed {
		h.ShowRasters = !h.ShowRasters
	}
	if g.controls.Action(ActionRecord).JustPressed && !h.Replaying {
		g.toggleRecording()
	}
	if g.controls.Action(ActionReplay).JustPressed {
		g.toggleReplay()
	}
}

func (g *Game) updateSimulation(_ *ecs.ECS) {
	h := g.host()
	if h.Replaying {
		if !g.player.Step(g.sim) {
			h.Replaying = false
			g.notify("Replay finished")
		}
		g.snap = g.sim.Snapshot()
		return
	}

	g.sim.SetInput(g.controls.Intents())
	g.sim.Step()
	g.snap = g.sim.Snapshot()
	g.recorder.Capture(g.snap)
}

func (g *Game) toggleRecording() {
	if !g.recorder.Active() {
		g.recorder.Start()
		g.notify("Recording session...")
		return
	}

	g.last = g.recorder.Stop()
	g.notify("Recording stopped")
	if g.opts.Store == nil {
		return
	}
	if err := g.opts.Store.SaveRecording(g.opts.Level, g.last); err != nil {
		g.log.WithError(err).Warn("Could not save recording")
	}
}

func (g *Game) toggleReplay() {
	h := g.host()
	if h.Replaying {
		h.Replaying = false
		g.notify("Replay stopped")
		return
	}

	rec := g.last
	if rec == nil && g.opts.Store != nil {
		var err error
		if rec, err = g.opts.Store.LoadRecording(g.opts.Level); err != nil {
			g.log.WithError(err).Debug("No stored recording")
		}
	}
	if rec == nil || len(rec.Frames) == 0 {
		g.notify("No session recorded yet")
		return
	}
	g.startReplay(rec)
}

// startReplay plays rec back by placing the player and camera directly,
// leaving the rest of the world running from its current state.
func (g *Game) startReplay(rec *replay.Recording) {
	if g.recorder.Active() {
		g.last = g.recorder.Stop()
	}
	g.player = replay.NewPlayer(rec, replay.SyncState)
	g.host().Replaying = true
	g.notify("Replaying session")
}
