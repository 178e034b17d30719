package main

import (
	"context"
	"io"
	"testing"

	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/config"
	"github.com/1984drum/2dp-engine/replay"
	"github.com/1984drum/2dp-engine/scenes"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newRunSim() *scenes.Simulation {
	return scenes.NewSimulation(config.Classic, scenes.Options{ViewWidth: 320, ViewHeight: 180, Seed: 9}, nil)
}

func TestNewKernelStepping(t *testing.T) {
	tests := []struct {
		name      string
		fixed     bool
		recording bool
		want      bool
	}{
		{"fixed run", true, false, true},
		{"wall clock run", false, false, false},
		{"recorded run is always fixed", false, true, true},
		{"fixed recorded run", true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := newKernel(newRunSim(), 1000, tt.fixed, tt.recording, quietLogger())
			assert.Equal(t, tt.want, k.Fixed)
		})
	}
}

func TestRecordedWallClockRunReplaysExactly(t *testing.T) {
	sim := newRunSim()
	sim.SetInput(components.InputData{Right: true})

	kernel := newKernel(sim, 1000, false, true, quietLogger())
	recorder := replay.NewRecorder("blank", "classic", 9)
	recorder.Start()
	kernel.AfterTick = func(uint64) { recorder.Capture(sim.Snapshot()) }
	require.NoError(t, kernel.Run(context.Background(), 40))

	rec := recorder.Stop()
	require.Len(t, rec.Frames, 40)

	fresh := newRunSim()
	p := replay.NewPlayer(rec, replay.Resimulate)
	for p.Step(fresh) {
	}
	assert.Equal(t, 0, p.Diverged())
	assert.Equal(t, sim.Snapshot().PlayerPosition(), fresh.Snapshot().PlayerPosition())
}
