package scenes

import (
	"context"
	"time"
)

// Kernel drives a Simulation from wall-clock time. Each tick measures the
// real time since the previous one and hands it to Advance, which clamps it.
type Kernel struct {
	sim      *Simulation
	tickRate int
	now      func() time.Time
	last     time.Time

	// BeforeTick and AfterTick run around every tick when set. Hosts feed
	// input in BeforeTick and observe state in AfterTick.
	BeforeTick func(tick uint64)
	AfterTick  func(tick uint64)

	// Fixed steps exactly one nominal tick per Tick regardless of the
	// clock, which keeps recorded runs reproducible.
	Fixed bool

	ticks uint64
}

// NewKernel creates a kernel ticking sim tickRate times per second.
func NewKernel(sim *Simulation, tickRate int) *Kernel {
	if tickRate <= 0 {
		tickRate = int(sim.Tuning().World.TickRate)
	}
	return &Kernel{
		sim:      sim,
		tickRate: tickRate,
		now:      time.Now,
	}
}

// Ticks returns the number of ticks run so far.
func (k *Kernel) Ticks() uint64 { return k.ticks }

// Tick advances the simulation by the time elapsed since the previous tick.
// The first tick covers one nominal tick interval.
func (k *Kernel) Tick() {
	now := k.now()
	dt := 1 / float64(k.tickRate)
	if !k.last.IsZero() {
		dt = now.Sub(k.last).Seconds()
	}
	k.last = now

	if k.BeforeTick != nil {
		k.BeforeTick(k.ticks)
	}
	if k.Fixed {
		k.sim.Step()
	} else {
		k.sim.Advance(dt)
	}
	if k.AfterTick != nil {
		k.AfterTick(k.ticks)
	}
	k.ticks++
}

// Run ticks until ctx is done or maxTicks ticks have run. maxTicks of zero
// means no limit.
func (k *Kernel) Run(ctx context.Context, maxTicks uint64) error {
	ticker := time.NewTicker(time.Second / time.Duration(k.tickRate))
	defer ticker.Stop()

	log := k.sim.ctx.Log
	log.Infof("Kernel started at %d ticks/second", k.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.WithField("ticks", k.ticks).Info("Kernel stopped")
			return ctx.Err()
		case <-ticker.C:
			k.Tick()
			if maxTicks > 0 && k.ticks >= maxTicks {
				log.WithField("ticks", k.ticks).Info("Kernel finished")
				return nil
			}
		}
	}
}
