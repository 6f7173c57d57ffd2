package messages

import "github.com/ibaryshnikov/game-design/shared/combat"

// CombatEvent is broadcast for every combat event the scene reports.
type CombatEvent struct {
	Kind   combat.EventKind
	Role   combat.Role
	AtMs   int64
	Attack combat.KindID
	Order  combat.Order
	Damage int
}

// FromEvent converts a scene event for the wire.
func FromEvent(e combat.Event) CombatEvent {
	return CombatEvent{
		Kind:   e.Kind,
		Role:   e.Role,
		AtMs:   e.At.Milliseconds(),
		Attack: e.Attack.ID,
		Order:  e.Order,
		Damage: e.Damage,
	}
}

// MatchStateChangeEvent is broadcast when match state changes
type MatchStateChangeEvent struct {
	NewState int // netconfig.MatchStateID value
	HeroWins int
	BossWins int
}
