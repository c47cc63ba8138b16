package systems

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/components"
	cfg "github.com/automoto/ninja/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// binding is a config binding resolved to ebiten codes.
type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

var bindings [cfg.ActionCount]binding

var gamepadButtonNames = map[string]ebiten.StandardGamepadButton{
	"a":             ebiten.StandardGamepadButtonRightBottom,
	"b":             ebiten.StandardGamepadButtonRightRight,
	"x":             ebiten.StandardGamepadButtonRightLeft,
	"y":             ebiten.StandardGamepadButtonRightTop,
	"left_bumper":   ebiten.StandardGamepadButtonFrontTopLeft,
	"right_bumper":  ebiten.StandardGamepadButtonFrontTopRight,
	"left_trigger":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"right_trigger": ebiten.StandardGamepadButtonFrontBottomRight,
	"back":          ebiten.StandardGamepadButtonCenterLeft,
	"start":         ebiten.StandardGamepadButtonCenterRight,
	"dpad_up":       ebiten.StandardGamepadButtonLeftTop,
	"dpad_down":     ebiten.StandardGamepadButtonLeftBottom,
	"dpad_left":     ebiten.StandardGamepadButtonLeftLeft,
	"dpad_right":    ebiten.StandardGamepadButtonLeftRight,
}

// BindInput resolves cfg.Input to key and button codes. Unknown names are
// an error; nothing is bound in that case.
func BindInput() error {
	var next [cfg.ActionCount]binding
	for id, b := range cfg.Input.Bindings {
		if id <= cfg.ActionNone || id >= cfg.ActionCount {
			continue
		}
		for _, name := range b.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return fmt.Errorf("bind %s: %w", id, err)
			}
			next[id].keys = append(next[id].keys, k)
		}
		for _, name := range b.Buttons {
			btn, ok := gamepadButtonNames[name]
			if !ok {
				return fmt.Errorf("bind %s: unknown gamepad button %q", id, name)
			}
			next[id].buttons = append(next[id].buttons, btn)
		}
	}
	bindings = next
	log.Debug("input bound", "actions", len(cfg.Input.Bindings))
	return nil
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, b := range bindings {
		for _, key := range b.keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range b.buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge the left stick into the move actions
	left, right := analogStick(gamepadIDs)
	if left {
		input.Current[cfg.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if right {
		input.Current[cfg.ActionMoveRight] = true
		gamepadUsed = true
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// analogStick reads the left stick of every gamepad against the deadzone.
func analogStick(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
