package ui

import (
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into the input buffer.
// Must run first in the system order.
func UpdateInput(e *ecs.ECS) {
	input := systems.GetOrCreateInput(e)
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Merge the left stick into movement and menu navigation
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if x < -AnalogDeadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if x > AnalogDeadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
		if y < -AnalogDeadzone {
			input.Current[cfg.ActionMenuUp] = true
		}
		if y > AnalogDeadzone {
			input.Current[cfg.ActionMenuDown] = true
		}
	}
}
