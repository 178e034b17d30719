package systems

import (
	"github.com/1984drum/2dp-engine/components"
	"github.com/1984drum/2dp-engine/shared/gamemath"
	"github.com/1984drum/2dp-engine/tags"
	"github.com/yohamta/donburi"
)

func UpdatePlayer(ctx *Context) {
	entry, ok := tags.Player.First(ctx.World)
	if !ok {
		return
	}
	body := components.Body.Get(entry)
	player := components.Player.Get(entry)
	input := components.Input.Get(entry)
	pc := &ctx.Tuning.Player
	phys := &ctx.Tuning.Physics
	k := ctx.Scale

	player.Sensors = player.Sensors[:0]

	carryOnPlatform(body, platformState(ctx))

	// Jump latch: one press arms the buffer, holding does not re-arm it.
	if !player.JumpReady && !input.Jump {
		player.JumpReady = true
	}
	if player.JumpReady && input.Jump {
		player.JumpBuffer = pc.JumpBufferFrames
		player.JumpReady = false
	}

	updateRunSpeed(ctx, body, player, input)

	// Gravity
	gravityScale := 1.0
	if body.VY > 0 {
		gravityScale = phys.FallGravityMultiplier
	}
	applyGravity(ctx, body, gravityScale)

	// Variable jump height
	if !input.Jump && player.IsJumping && body.VY < pc.JumpCutMinSpeed {
		body.VY *= pc.JumpCutFactor
		player.IsJumping = false
	}

	SweepHorizontal(ctx, body)

	body.Y += body.VY * k
	if body.VY < 0 {
		CheckCeiling(ctx, body)
	}

	var sensors *[]components.Sensor
	if ctx.Tuning.Debug.Sensors {
		sensors = &player.Sensors
	}
	ground := ResolveGrounding(ctx, body, sensors)
	if ground.Grounded {
		player.IsJumping = false
		ApplySlopeAssist(ctx, body, ground.SlopeAngle)
		if ground.Landed {
			GroundedEvents.Publish(ctx.World, GroundedEvent{
				Entity:     entry.Entity(),
				Kind:       body.Kind,
				OnPlatform: ground.OnPlatform,
				SlopeAngle: ground.SlopeAngle,
			})
		}
	}

	// Execute a buffered jump from the ground or within coyote time.
	if player.JumpBuffer > 0 && (body.Grounded || body.CoyoteTimer > 0) {
		body.VY = pc.JumpForce
		body.Grounded = false
		body.CoyoteTimer = 0
		body.OnPlatform = false
		player.JumpBuffer = 0
		player.JumpReady = false
		player.IsJumping = true
		JumpEvents.Publish(ctx.World, JumpEvent{Entity: entry.Entity(), X: body.X, Y: body.Y})
	}

	player.JumpBuffer = ctx.countDown(player.JumpBuffer)

	if body.Y > ctx.WorldHeight() {
		Respawn(ctx, entry, "fell out of world")
		return
	}
	syncObject(ctx, entry)
}

// updateRunSpeed turns the horizontal intents into velocity. Braking against
// the current direction is stronger than accelerating, and coasting decays
// to an exact stop.
func updateRunSpeed(ctx *Context, body *components.BodyData, player *components.PlayerData, input *components.InputData) {
	pc := &ctx.Tuning.Player
	k := ctx.Scale

	accel, brake, friction := pc.Acceleration, pc.Brake, pc.Friction
	maxSpeed := pc.MaxSpeed
	if !body.Grounded {
		accel = pc.AirAcceleration
		brake = pc.AirAcceleration * pc.AirBrakeMultiplier
		friction = pc.AirFriction
	}

	if !body.Grounded && (input.Left || input.Right) {
		player.AirHold += k
	} else {
		player.AirHold = 0
	}
	if boost := pc.AirBoost; boost.Enabled && player.AirHold > boost.MinFrames {
		accel *= boost.AccelMultiplier
		maxSpeed *= boost.SpeedMultiplier
	}

	switch {
	case input.Left:
		if body.VX > 0 {
			body.VX -= brake * k
		} else if body.VX > -maxSpeed {
			body.VX -= accel * k
		}
	case input.Right:
		if body.VX < 0 {
			body.VX += brake * k
		} else if body.VX < maxSpeed {
			body.VX += accel * k
		}
	default:
		body.VX = gamemath.Decay(body.VX, friction, k, pc.StopThreshold)
	}

	body.VX = gamemath.ClampSpeed(body.VX, pc.MaxSpeed*pc.SafetyClamp)
}

// Respawn returns the player to the level spawn point with all motion and
// jump state cleared, and recenters the camera on it.
func Respawn(ctx *Context, entry *donburi.Entry, reason string) {
	body := components.Body.Get(entry)
	player := components.Player.Get(entry)
	spawn := SpawnPoint(ctx)

	*body = components.BodyData{
		Kind:   body.Kind,
		X:      spawn.X,
		Y:      spawn.Y,
		Width:  body.Width,
		Height: body.Height,
	}
	*player = components.PlayerData{JumpReady: true}

	ResetCamera(ctx, body.X, body.Y)
	syncObject(ctx, entry)

	ctx.Log.WithField("reason", reason).Debugf("player respawned at (%.0f, %.0f)", body.X, body.Y)
	RespawnEvents.Publish(ctx.World, RespawnEvent{
		Entity: entry.Entity(),
		X:      body.X,
		Y:      body.Y,
		Reason: reason,
	})
}
