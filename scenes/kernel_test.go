package scenes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelMeasuresWallClock(t *testing.T) {
	s := newTestSimulation(t)
	k := NewKernel(s, 0)
	assert.Equal(t, 60, k.tickRate)

	clock := time.Unix(1000, 0)
	k.now = func() time.Time { return clock }

	var before, after []uint64
	k.BeforeTick = func(tick uint64) { before = append(before, tick) }
	k.AfterTick = func(tick uint64) { after = append(after, tick) }

	k.Tick()
	assert.InDelta(t, 1, s.ctx.Scale, 1e-9, "first tick is nominal")

	clock = clock.Add(50 * time.Millisecond)
	k.Tick()
	assert.InDelta(t, 3, s.ctx.Scale, 1e-9)

	clock = clock.Add(2 * time.Second)
	k.Tick()
	assert.InDelta(t, 6, s.ctx.Scale, 1e-9, "stalls are clamped")

	assert.Equal(t, uint64(3), k.Ticks())
	assert.Equal(t, []uint64{0, 1, 2}, before)
	assert.Equal(t, []uint64{0, 1, 2}, after)
	assert.Equal(t, uint64(3), s.Snapshot().Tick)
}

func TestKernelFixedIgnoresClock(t *testing.T) {
	s := newTestSimulation(t)
	k := NewKernel(s, 60)
	k.Fixed = true

	clock := time.Unix(1000, 0)
	k.now = func() time.Time { return clock }
	k.Tick()
	clock = clock.Add(time.Second)
	k.Tick()

	assert.Equal(t, 1.0, s.ctx.Scale)
	assert.Equal(t, uint64(2), s.Snapshot().Tick)
}

func TestKernelRunStopsAfterMaxTicks(t *testing.T) {
	s := newTestSimulation(t)
	k := NewKernel(s, 1000)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, k.Run(ctx, 5))
	assert.Equal(t, uint64(5), k.Ticks())
	assert.Equal(t, uint64(5), s.Snapshot().Tick)
}

func TestKernelRunCancelled(t *testing.T) {
	s := newTestSimulation(t)
	k := NewKernel(s, 1000)

	ctx, cancel := context.WithCancel(context.Background())
	k.AfterTick = func(tick uint64) {
		if tick == 2 {
			cancel()
		}
	}

	err := k.Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, k.Ticks(), uint64(3))
}
