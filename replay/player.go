package replay

import (
	"github.com/1984drum/2dp-engine/scenes"
)

// Mode selects how a Player drives the simulation.
type Mode int

const (
	// Resimulate feeds the recorded input through the simulation. It
	// reproduces the session exactly when the simulation was rebuilt from
	// the same level, profile and seed.
	Resimulate Mode = iota
	// SyncState places the player and camera at their recorded positions
	// without running physics.
	SyncState
)

func (m Mode) String() string {
	switch m {
	case Resimulate:
		return "resimulate"
	case SyncState:
		return "sync"
	}
	return "unknown"
}

// Player steps through a recording one frame per call.
type Player struct {
	rec  *Recording
	mode Mode
	next int

	diverged int
}

func NewPlayer(rec *Recording, mode Mode) *Player {
	return &Player{rec: rec, mode: mode}
}

// Step applies the next frame to sim. It returns false once every frame has
// been played.
func (p *Player) Step(sim *scenes.Simulation) bool {
	if p.Done() {
		return false
	}
	f := p.rec.Frames[p.next]
	p.next++

	switch p.mode {
	case Resimulate:
		sim.SetInput(f.Input())
		sim.Step()
		if pos := sim.Snapshot().PlayerPosition(); pos.X != f.PlayerX || pos.Y != f.PlayerY {
			p.diverged++
		}
	case SyncState:
		sim.SyncFrame(f.PlayerX, f.PlayerY, f.CameraX, f.CameraY)
	}
	return true
}

// Done reports whether every frame has been played.
func (p *Player) Done() bool { return p.next >= len(p.rec.Frames) }

// Frame returns the index of the next frame to play.
func (p *Player) Frame() int { return p.next }

// Len returns the number of frames in the recording.
func (p *Player) Len() int { return len(p.rec.Frames) }

// Diverged returns how many resimulated frames ended away from the recorded
// player position.
func (p *Player) Diverged() int { return p.diverged }

// Rewind restarts playback from the first frame.
func (p *Player) Rewind() {
	p.next = 0
	p.diverged = 0
}
