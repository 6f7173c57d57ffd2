package components

import (
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current         [netconfig.ActionCount]bool // Current frame's Pressed state
	Previous        [netconfig.ActionCount]bool // Previous frame's Pressed state
	Cursor          math2.Vec2                  // Mouse position in arena coordinates
	MouseAim        bool                        // An attack this frame came from a mouse button
	LastInputMethod InputMethod                 // Most recently used input method
}

// JustPressed reports whether action went down this frame.
func (d *InputData) JustPressed(action netconfig.ActionID) bool {
	return d.Current[action] && !d.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
