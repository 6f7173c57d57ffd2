package combat

import (
	"time"

	"github.com/ibaryshnikov/game-design/shared/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// AttackView is the snapshot of an attack a renderer draws from. Every
// front-end resolves it with the same Geometry so visuals match hits.
type AttackView struct {
	Phase     Phase
	Kind      Kind
	Order     Order
	Position  math2.Vec2
	Direction math2.Vec2
	Distance  float64
	Percent   float64
	Active    bool // hazard is live; false during the telegraph and aftercast
}

// View snapshots the attack.
func (a *Attack) View() AttackView {
	return AttackView{
		Phase:     a.Phase,
		Kind:      a.Kind,
		Order:     a.Order,
		Position:  a.Position,
		Direction: a.Direction,
		Distance:  a.Distance,
		Percent:   a.PercentCompleted,
		Active:    a.IsActive(),
	}
}

// Geometry resolves the snapshot. Telegraphs resolve at full completion so
// the whole danger zone is shown during the wind-up.
func (v AttackView) Geometry() Geometry {
	percent := v.Percent
	if v.Phase == PhaseSelected {
		percent = 1
	}
	return Resolve(Spec{
		Position:  v.Position,
		Direction: v.Direction,
		Kind:      v.Kind,
		Order:     v.Order,
		Distance:  v.Distance,
	}, percent)
}

// CombatantView is the snapshot of a combatant.
type CombatantView struct {
	Role       Role
	Position   math2.Vec2
	Direction  math2.Vec2
	HP         int
	MaxHP      int
	Radius     float64
	Moving     bool
	Dashing    bool
	Recovering bool
	// RecoveryLeft is the cooldown remaining at the snapshot time.
	RecoveryLeft time.Duration
	Attack       *AttackView
}

func recoveryLeft(r *Recovery, now time.Duration) time.Duration {
	if r == nil {
		return 0
	}
	return r.Remaining(now)
}

// View snapshots the hero at now.
func (h *Hero) View(now time.Duration) CombatantView {
	v := CombatantView{
		Role:       RoleHero,
		Position:   h.Position,
		Direction:  h.Direction,
		HP:         h.HP,
		MaxHP:      h.MaxHP,
		Radius:     h.Radius,
		Moving:     !h.busy() && !gamemath.IsZero(h.Moves.Vector()),
		Dashing:    h.Dashing(),
		Recovering: h.Recovery != nil,
	}
	v.RecoveryLeft = recoveryLeft(h.Recovery, now)
	if h.Attack != nil {
		av := h.Attack.View()
		v.Attack = &av
	}
	return v
}

// View snapshots the boss at now.
func (b *Boss) View(now time.Duration) CombatantView {
	v := CombatantView{
		Role:       RoleBoss,
		Position:   b.Position,
		Direction:  b.Direction,
		HP:         b.HP,
		MaxHP:      b.MaxHP,
		Radius:     b.Radius,
		Moving:     b.moving,
		Recovering: b.Recovery != nil,
	}
	v.RecoveryLeft = recoveryLeft(b.Recovery, now)
	if b.Attack != nil {
		av := b.Attack.View()
		v.Attack = &av
	}
	return v
}
