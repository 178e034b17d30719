package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/1984drum/2dp-engine/config"
	"github.com/1984drum/2dp-engine/game"
	"github.com/1984drum/2dp-engine/logger"
	"github.com/1984drum/2dp-engine/persistence"
	"github.com/1984drum/2dp-engine/replay"
	"github.com/1984drum/2dp-engine/scenes"
	"github.com/1984drum/2dp-engine/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "2dp-engine"

func main() {
	levelPath := flag.String("level", "", "TMX level to load (blank world when empty)")
	profile := flag.String("profile", "", "tuning profile: classic or modular")
	tuningPath := flag.String("tuning", "", "TOML file overlaid on the tuning profile")
	replayName := flag.String("replay", "", "play back a stored recording on start")
	resolution := flag.Int("resolution", -1, "viewport size index")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	log := logger.New()

	// Initialize persistence and load saved settings
	store, err := persistence.Open(appName)
	if err != nil {
		log.WithError(err).Warn("Could not initialize persistence")
	}
	settings := &persistence.Settings{}
	if store != nil {
		saved, err := store.LoadSettings()
		switch {
		case err == nil:
			settings = saved
		case !errors.Is(err, persistence.ErrNotFound):
			log.WithError(err).Warn("Could not load settings")
		}
	}
	if *profile == "" {
		*profile = settings.Profile
	}
	if *levelPath == "" {
		*levelPath = settings.Level
	}

	tuning, err := config.Resolve(*profile, *tuningPath)
	if err != nil {
		log.WithError(err).Fatal("Could not load tuning")
	}

	view := viewport(settings, *resolution)
	sim := scenes.NewSimulation(tuning, scenes.Options{
		ViewWidth:  float64(view.Width),
		ViewHeight: float64(view.Height),
		Seed:       *seed,
	}, log)

	level := "blank"
	if *levelPath != "" {
		scene, err := leveldata.LoadScene(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath))
		if err != nil {
			log.WithError(err).Fatal("Could not load level")
		}
		sim.LoadScene(scene)
		level = scene.Name
	}

	var rec *replay.Recording
	if *replayName != "" && store != nil {
		if rec, err = store.LoadRecording(*replayName); err != nil {
			log.WithError(err).Fatal("Could not load recording")
		}
	}

	g := game.NewGame(sim, game.Options{
		Level:   level,
		Profile: tuning.Name,
		Seed:    *seed,

		DebugSensors: settings.DebugSensors,
		ShowRasters:  settings.ShowRasters,

		Store:  store,
		Replay: rec,
	}, log)

	ebiten.SetWindowSize(view.Width, view.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	if store != nil {
		settings.Profile = tuning.Name
		settings.Level = *levelPath
		settings.ViewWidth, settings.ViewHeight = view.Width, view.Height
		g.SaveFlags(settings)
		if err := store.SaveSettings(settings); err != nil {
			log.WithError(err).Warn("Could not save settings")
		}
	}
}

// viewport picks the window size: an explicit resolution index wins over the
// saved size, which wins over the default. The result is locked to 16:9.
func viewport(settings *persistence.Settings, index int) config.Resolution {
	res := config.ResolutionFor(index)
	if index < 0 && settings.ViewWidth > 0 && settings.ViewHeight > 0 {
		res.Width, res.Height = settings.ViewWidth, settings.ViewHeight
	}
	res.Width, res.Height = config.LockAspect(res.Width, res.Height)
	return res
}
