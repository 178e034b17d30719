package game

import (
	"github.com/1984drum/2dp-engine/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical host action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionRespawn
	ActionRecord
	ActionReplay
	ActionDebug
	ActionRasters
	ActionResetCamera
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the default input configuration
var Input = InputConfig{
	AnalogDeadzone: 0.25,
	Bindings: map[ActionID]InputBinding{
		ActionMoveLeft: {
			Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		ActionMoveRight: {
			Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		ActionJump: {
			Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		ActionPause: {
			Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
		ActionRespawn: {
			Keys: []ebiten.Key{ebiten.KeyR},
			// Select / Share button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterLeft,
			},
		},
		ActionRecord:      {Keys: []ebiten.Key{ebiten.KeyF5}},
		ActionReplay:      {Keys: []ebiten.Key{ebiten.KeyF6}},
		ActionDebug:       {Keys: []ebiten.Key{ebiten.KeyF3}},
		ActionRasters:     {Keys: []ebiten.Key{ebiten.KeyF2}},
		ActionResetCamera: {Keys: []ebiten.Key{ebiten.KeyC}},
	},
}

// ActionState is the pressed state of one action this frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Controls double-buffers action states so edges can be detected.
type Controls struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	gamepadIDs []ebiten.GamepadID
}

// Poll reads the keyboard and gamepads. Call once per Update.
func (c *Controls) Poll(cfg *InputConfig) {
	c.Previous = c.Current
	c.Current = [ActionCount]bool{}

	c.gamepadIDs = ebiten.AppendGamepadIDs(c.gamepadIDs[:0])

	for actionID, binding := range cfg.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				c.Current[actionID] = true
			}
		}
		for _, gpID := range c.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					c.Current[actionID] = true
				}
			}
		}
	}

	// Merge the left stick into the move actions
	for _, gpID := range c.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -cfg.AnalogDeadzone {
			c.Current[ActionMoveLeft] = true
		}
		if horizontal > cfg.AnalogDeadzone {
			c.Current[ActionMoveRight] = true
		}
	}
}

// Action returns the full state of id. JustPressed and JustReleased are
// derived from the current and previous frame.
func (c *Controls) Action(id ActionID) ActionState {
	curr := c.Current[id]
	prev := c.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Intents maps the held actions onto simulation input.
func (c *Controls) Intents() components.InputData {
	return components.InputData{
		Left:  c.Current[ActionMoveLeft],
		Right: c.Current[ActionMoveRight],
		Jump:  c.Current[ActionJump],
	}
}
