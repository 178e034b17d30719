package systems

import (
	"github.com/1984drum/2dp-engine/components"
	"github.com/yohamta/donburi"
)

// WithPauseCheck wraps a system to skip execution when paused
func WithPauseCheck(system System) System {
	return func(ctx *Context) {
		if pause := GetOrCreatePause(ctx.World); pause.IsPaused {
			return
		}
		system(ctx)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	if _, ok := components.Pause.First(w); !ok {
		ent := w.Entry(w.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(w)
	return components.Pause.Get(ent)
}

// SetPaused sets the pause flag.
func SetPaused(w donburi.World, paused bool) {
	GetOrCreatePause(w).IsPaused = paused
}

// IsPaused reports the pause flag.
func IsPaused(w donburi.World) bool {
	return GetOrCreatePause(w).IsPaused
}
