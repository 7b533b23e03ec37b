package systems

import (
	"math"

	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var pressed [cfg.ActionCount]bool
	var strength [cfg.ActionCount]float64

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		mergeAxis(&strength, cfg.ActionMoveLeft, cfg.ActionMoveRight, h)
		mergeAxis(&strength, cfg.ActionMoveUp, cfg.ActionMoveDown, v)
	}

	applyInput(input, pressed, strength)
}

// applyInput rolls the frame buffers. A held key or button counts as full
// strength; a stick past its deadzone counts as pressed.
func applyInput(input *components.InputData, pressed [cfg.ActionCount]bool, strength [cfg.ActionCount]float64) {
	input.Previous = input.Current
	for i := range strength {
		if pressed[i] {
			strength[i] = 1
		}
		input.Current[i] = strength[i] > 0
	}
	input.Strength = strength
}

// mergeAxis maps one stick axis past the deadzone onto its pair of actions,
// rescaled so the deadzone edge reads as 0.
func mergeAxis(strength *[cfg.ActionCount]float64, neg, pos cfg.ActionID, value float64) {
	deadzone := cfg.Input.AnalogDeadzone
	magnitude := math.Abs(value)
	if magnitude <= deadzone {
		return
	}
	s := math.Min((magnitude-deadzone)/(1-deadzone), 1)
	if value < 0 {
		strength[neg] = math.Max(strength[neg], s)
	} else {
		strength[pos] = math.Max(strength[pos], s)
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// IsJustPressed reports whether action went down this frame.
func IsJustPressed(w donburi.World, action cfg.ActionID) bool {
	entry, ok := components.Input.First(w)
	if !ok {
		return false
	}
	input := components.Input.Get(entry)
	return input.Current[action] && !input.Previous[action]
}
