// Command headless runs a level without a window, for soak tests and
// recording checks.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/1984drum/2dp-engine/config"
	"github.com/1984drum/2dp-engine/logger"
	"github.com/1984drum/2dp-engine/replay"
	"github.com/1984drum/2dp-engine/scenes"
	"github.com/1984drum/2dp-engine/shared/leveldata"
	"github.com/1984drum/2dp-engine/systems"
	"github.com/sirupsen/logrus"
)

func main() {
	levelPath := flag.String("level", "", "TMX level to load (blank world when empty)")
	profile := flag.String("profile", "", "tuning profile: classic or modular")
	tuningPath := flag.String("tuning", "", "TOML file overlaid on the tuning profile")
	ticks := flag.Uint64("ticks", 600, "ticks to run (0 runs until interrupted)")
	tickRate := flag.Int("tickrate", 0, "ticks per second (0 uses the tuning)")
	fixed := flag.Bool("fixed", true, "step one nominal tick per tick instead of measuring wall-clock time")
	recordPath := flag.String("record", "", "write the run to this recording file")
	replayPath := flag.String("replay", "", "re-simulate this recording file and report divergence")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	log := logger.New()

	tuning, err := config.Resolve(*profile, *tuningPath)
	if err != nil {
		log.WithError(err).Fatal("Could not load tuning")
	}

	var rec *replay.Recording
	if *replayPath != "" {
		if rec, err = readRecording(*replayPath); err != nil {
			log.WithError(err).Fatal("Could not read recording")
		}
		// A recording carries what it needs to rebuild its simulation.
		*seed = rec.Seed
		if rec.Profile != "" && *profile == "" {
			if tuning, err = config.Resolve(rec.Profile, *tuningPath); err != nil {
				log.WithError(err).Fatal("Could not load tuning")
			}
		}
	}

	sim := scenes.NewSimulation(tuning, scenes.Options{Seed: *seed}, log)
	level := "blank"
	if *levelPath != "" {
		scene, err := leveldata.LoadScene(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath))
		if err != nil {
			log.WithError(err).Fatal("Could not load level")
		}
		sim.LoadScene(scene)
		level = scene.Name
	}
	watch(sim, log)

	if rec != nil {
		resimulate(sim, rec, log)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kernel := newKernel(sim, *tickRate, *fixed, *recordPath != "", log)

	var recorder *replay.Recorder
	if *recordPath != "" {
		recorder = replay.NewRecorder(level, tuning.Name, *seed)
		recorder.Start()
		kernel.AfterTick = func(uint64) { recorder.Capture(sim.Snapshot()) }
	}

	if err := kernel.Run(ctx, *ticks); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("Kernel error")
	}

	snap := sim.Snapshot()
	log.WithFields(logrus.Fields{
		"tick":     snap.Tick,
		"x":        snap.Player.X,
		"y":        snap.Player.Y,
		"enemies":  len(snap.Enemies),
		"boulders": len(snap.Boulders),
	}).Info("Run finished")

	if recorder != nil {
		if err := writeRecording(*recordPath, recorder.Stop()); err != nil {
			log.WithError(err).Fatal("Could not write recording")
		}
		log.WithField("frames", recorder.Len()).Infof("Recording written to %s", *recordPath)
	}
}

// newKernel builds the run loop. Recordings store one nominal tick per frame
// and replay through Step, so a recorded run always steps fixed.
func newKernel(sim *scenes.Simulation, tickRate int, fixed, recording bool, log logrus.FieldLogger) *scenes.Kernel {
	kernel := scenes.NewKernel(sim, tickRate)
	kernel.Fixed = fixed
	if recording && !fixed {
		log.Warn("Recording forces fixed stepping")
		kernel.Fixed = true
	}
	return kernel
}

// watch logs the events a soak run cares about.
func watch(sim *scenes.Simulation, log logrus.FieldLogger) {
	scenes.Subscribe(sim, systems.RespawnEvents, func(e systems.RespawnEvent) {
		log.WithField("reason", e.Reason).Infof("Player respawned at (%.0f, %.0f)", e.X, e.Y)
	})
	scenes.Subscribe(sim, systems.ChainDestroyedEvents, func(e systems.ChainDestroyedEvent) {
		log.WithFields(logrus.Fields{"blocks": len(e.Blocks), "debris": e.Debris}).Info("Terrain destroyed")
	})
	scenes.Subscribe(sim, systems.RemovedEvents, func(e systems.RemovedEvent) {
		log.WithFields(logrus.Fields{"kind": e.Kind, "reason": e.Reason}).Info("Body removed")
	})
}

func resimulate(sim *scenes.Simulation, rec *replay.Recording, log logrus.FieldLogger) {
	p := replay.NewPlayer(rec, replay.Resimulate)
	for p.Step(sim) {
	}
	fields := logrus.Fields{"frames": p.Len(), "diverged": p.Diverged()}
	if p.Diverged() > 0 {
		log.WithFields(fields).Error("Replay diverged from the recording")
		os.Exit(1)
	}
	log.WithFields(fields).Info("Replay matches the recording")
}

func readRecording(path string) (*replay.Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return replay.Decode(f)
}

func writeRecording(path string, rec *replay.Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := replay.Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
