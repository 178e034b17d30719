package replay

import (
	"slices"

	"github.com/1984drum/2dp-engine/scenes"
)

// Recorder collects frames while active. Capture is called once per tick
// after the simulation stepped.
type Recorder struct {
	rec    Recording
	active bool
}

func NewRecorder(level, profile string, seed int64) *Recorder {
	return &Recorder{rec: Recording{
		Version: FormatVersion,
		Level:   level,
		Profile: profile,
		Seed:    seed,
	}}
}

// Start discards previously captured frames and begins recording.
func (r *Recorder) Start() {
	r.rec.Frames = r.rec.Frames[:0]
	r.active = true
}

// Stop ends recording and returns a copy of what was captured.
func (r *Recorder) Stop() *Recording {
	r.active = false
	return r.Recording()
}

func (r *Recorder) Active() bool { return r.active }

func (r *Recorder) Len() int { return len(r.rec.Frames) }

// Recording returns a copy of the frames captured so far.
func (r *Recorder) Recording() *Recording {
	out := r.rec
	out.Frames = slices.Clone(r.rec.Frames)
	return &out
}

// Capture appends the input, player and camera state of snap. Paused ticks
// are skipped so playback does not stall.
func (r *Recorder) Capture(snap scenes.Snapshot) {
	if !r.active || !snap.HasPlayer || snap.Paused {
		return
	}
	r.rec.Frames = append(r.rec.Frames, Frame{
		Left:    snap.Input.Left,
		Right:   snap.Input.Right,
		Jump:    snap.Input.Jump,
		PlayerX: snap.Player.X,
		PlayerY: snap.Player.Y,
		CameraX: snap.Camera.Position.X,
		CameraY: snap.Camera.Position.Y,
	})
}
