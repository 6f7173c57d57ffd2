package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps hero actions to devices. Movement is also read from the left
// analog stick.
var Bindings map[netconfig.ActionID]InputBinding

// AnalogDeadzone for analog stick input (0.0 to 1.0)
const AnalogDeadzone = 0.25

func init() {
	Bindings = map[netconfig.ActionID]InputBinding{
		netconfig.ActionMoveUp: {
			Keys:                   []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		netconfig.ActionMoveDown: {
			Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		netconfig.ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		netconfig.ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		netconfig.ActionAttackPrimary: {
			Keys:                   []ebiten.Key{ebiten.KeyJ},
			MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		netconfig.ActionAttackSecondary: {
			Keys:                   []ebiten.Key{ebiten.KeyK},
			MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonMiddle},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
		},
		netconfig.ActionAttackRanged: {
			Keys:                   []ebiten.Key{ebiten.KeyL},
			MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonRight},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
		},
		netconfig.ActionDash: {
			Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyShift},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		netconfig.ActionRestart: {
			Keys:                   []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
	}
}
