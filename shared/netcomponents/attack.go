package netcomponents

import (
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// NetAttackData mirrors the attack a combatant has in flight. Each combatant
// owns one entity for its whole life; Active is false between attacks.
type NetAttackData struct {
	Role       combat.Role
	Active     bool
	Phase      combat.Phase
	Kind       combat.KindID
	Angle      float64
	Count      int
	Order      combat.Order
	X, Y       float64
	DirX, DirY float64
	Distance   float64
	Percent    float64
	Live       bool
}

var NetAttack = donburi.NewComponentType[NetAttackData]()

// AttackFromView builds the synced form of a combatant's attack; a nil view
// yields an inactive attack.
func AttackFromView(role combat.Role, v *combat.AttackView) NetAttackData {
	if v == nil {
		return NetAttackData{Role: role}
	}
	return NetAttackData{
		Role:     role,
		Active:   true,
		Phase:    v.Phase,
		Kind:     v.Kind.ID,
		Angle:    v.Kind.Angle,
		Count:    v.Kind.Count,
		Order:    v.Order,
		X:        v.Position.X,
		Y:        v.Position.Y,
		DirX:     v.Direction.X,
		DirY:     v.Direction.Y,
		Distance: v.Distance,
		Percent:  v.Percent,
		Live:     v.Active,
	}
}

// View rebuilds the attack view for rendering.
func (a NetAttackData) View() (combat.AttackView, bool) {
	if !a.Active {
		return combat.AttackView{}, false
	}
	return combat.AttackView{
		Phase:     a.Phase,
		Kind:      combat.Kind{ID: a.Kind, Angle: a.Angle, Count: a.Count},
		Order:     a.Order,
		Position:  math2.Vec2{X: a.X, Y: a.Y},
		Direction: math2.Vec2{X: a.DirX, Y: a.DirY},
		Distance:  a.Distance,
		Percent:   a.Percent,
		Active:    a.Live,
	}, true
}

// LerpNetAttack advances the sweep smoothly between snapshots of the same
// phase. A new attack or a phase change snaps to the latest state.
func LerpNetAttack(from, to NetAttackData, t float64) *NetAttackData {
	out := to
	if !from.Active || !to.Active || from.Phase != to.Phase || from.Percent > to.Percent {
		return &out
	}
	out.Percent = from.Percent + (to.Percent-from.Percent)*t
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	return &out
}
