package scene

import (
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	math2 "github.com/yohamta/donburi/features/math"
)

// Input is one frame of hero controls. Held actions steer movement; Pressed
// actions fire once on the frame they went down. Aim is only used when Aimed
// is set.
type Input struct {
	Held    [netconfig.ActionCount]bool
	Pressed [netconfig.ActionCount]bool
	Aim     math2.Vec2
	Aimed   bool
}

var moveActions = map[netconfig.ActionID]combat.Move{
	netconfig.ActionMoveUp:    combat.MoveUp,
	netconfig.ActionMoveDown:  combat.MoveDown,
	netconfig.ActionMoveLeft:  combat.MoveLeft,
	netconfig.ActionMoveRight: combat.MoveRight,
}

func (in Input) aim() *math2.Vec2 {
	if !in.Aimed {
		return nil
	}
	aim := in.Aim
	return &aim
}

// Apply feeds a frame of controls into the scene. Restart only resets a
// decided match.
func (s *Scene) Apply(in Input) {
	for action, m := range moveActions {
		s.SetMoving(m, in.Held[action])
	}

	for action := netconfig.ActionID(0); action < netconfig.ActionCount; action++ {
		if !in.Pressed[action] {
			continue
		}
		if slot, ok := action.AttackSlot(); ok {
			s.Attack(slot, in.aim())
			continue
		}
		switch action {
		case netconfig.ActionDash:
			s.Dash()
		case netconfig.ActionRestart:
			if s.Match().State.Decided() {
				s.Reset()
			}
		}
	}
}
