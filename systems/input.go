package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/ibaryshnikov/game-design/shared/scene"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the frame's InputData.
// Must run BEFORE the fight and network input systems.
func UpdateInput(e *ecs.ECS) {
	input := components.Input.Get(FrameEntry(e))

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [netconfig.ActionCount]bool{}
	input.MouseAim = false

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				input.MouseAim = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if left, right, up, down := analogStick(gamepadIDs); left || right || up || down {
		input.Current[netconfig.ActionMoveLeft] = input.Current[netconfig.ActionMoveLeft] || left
		input.Current[netconfig.ActionMoveRight] = input.Current[netconfig.ActionMoveRight] || right
		input.Current[netconfig.ActionMoveUp] = input.Current[netconfig.ActionMoveUp] || up
		input.Current[netconfig.ActionMoveDown] = input.Current[netconfig.ActionMoveDown] || down
		gamepadUsed = true
	}

	cx, cy := ebiten.CursorPosition()
	input.Cursor = math2.Vec2{X: float64(cx), Y: float64(cy)}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// analogStick reads the left stick of every gamepad against the deadzone.
func analogStick(ids []ebiten.GamepadID) (left, right, up, down bool) {
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		left = left || h < -AnalogDeadzone
		right = right || h > AnalogDeadzone
		up = up || v < -AnalogDeadzone
		down = down || v > AnalogDeadzone
	}
	return left, right, up, down
}

// Controls turns the frame's input into hero controls. Mouse attacks aim at
// the cursor; keyboard and gamepad attacks aim at the boss.
func Controls(input *components.InputData, boss math2.Vec2) scene.Input {
	in := scene.Input{Held: input.Current, Aim: boss, Aimed: true}
	for a := netconfig.ActionID(0); a < netconfig.ActionCount; a++ {
		in.Pressed[a] = input.JustPressed(a)
	}
	if input.MouseAim {
		in.Aim = input.Cursor
	}
	return in
}
