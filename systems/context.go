package systems

import (
	"math"
	"math/rand"

	"github.com/1984drum/2dp-engine/collision"
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/config"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Context is the state one simulation hands to every pipeline stage. Nothing
// in this package keeps state outside of it, so independent simulations can
// run side by side.
type Context struct {
	World  donburi.World
	Oracle *collision.Oracle
	Tuning *config.Tuning

	ViewWidth  float64
	ViewHeight float64

	// Scale is the number of reference frames this tick covers: 1 at the
	// tuned cadence, dt*60 when driven by wall-clock time.
	Scale float64

	Rand *rand.Rand
	Log  logrus.FieldLogger
	Tick uint64
}

// System is a single pipeline stage.
type System func(ctx *Context)

// WorldWidth returns the horizontal world extent.
func (c *Context) WorldWidth() float64 { return float64(c.Oracle.Width()) }

// WorldHeight returns the vertical world extent.
func (c *Context) WorldHeight() float64 { return float64(c.Oracle.Height()) }

// Space returns the actor broadphase, or nil before one is created.
func (c *Context) Space() *resolv.Space {
	entry, ok := components.Space.First(c.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// frameRate converts a per-frame easing fraction into the fraction covering
// Scale frames.
func (c *Context) frameRate(rate float64) float64 {
	if c.Scale == 1 {
		return rate
	}
	return 1 - math.Pow(1-rate, c.Scale)
}

// countDown decrements a frame timer by the tick scale without going negative.
func (c *Context) countDown(timer float64) float64 {
	if timer <= 0 {
		return 0
	}
	return math.Max(0, timer-c.Scale)
}
