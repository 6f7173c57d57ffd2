package netcomponents

import (
	"time"

	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// NetCombatantData is the synced part of a hero or boss. The position travels
// separately in NetPosition so it can be interpolated.
type NetCombatantData struct {
	Role       combat.Role
	StateID    netconfig.StateID
	DirX, DirY float64
	Radius     float64
	Health     int
	MaxHealth  int
	Recovery   time.Duration
	Controlled bool // Client-side only, not synced
}

var NetCombatant = donburi.NewComponentType[NetCombatantData]()

// CombatantFromView copies a combatant view into its synced form.
func CombatantFromView(v combat.CombatantView, state netconfig.StateID) NetCombatantData {
	return NetCombatantData{
		Role:      v.Role,
		StateID:   state,
		DirX:      v.Direction.X,
		DirY:      v.Direction.Y,
		Radius:    v.Radius,
		Health:    v.HP,
		MaxHealth: v.MaxHP,
		Recovery:  v.RecoveryLeft,
	}
}

// View rebuilds a combatant view at pos. The attack is synced on its own
// entity and left nil here.
func (d NetCombatantData) View(pos NetPositionData) combat.CombatantView {
	return combat.CombatantView{
		Role:       d.Role,
		Position:   math2.Vec2{X: pos.X, Y: pos.Y},
		Direction:  math2.Vec2{X: d.DirX, Y: d.DirY},
		HP:         d.Health,
		MaxHP:      d.MaxHealth,
		Radius:     d.Radius,
		Moving:     d.StateID == netconfig.StateMoving,
		Dashing:    d.StateID == netconfig.StateDashing,
		Recovering: d.StateID == netconfig.StateRecovering,
		// The recovery ring only shows in the recovering state.
		RecoveryLeft: d.Recovery,
	}
}
