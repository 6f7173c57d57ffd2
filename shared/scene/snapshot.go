package scene

import (
	"time"

	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
)

// Snapshot is everything a renderer or the network layer reads from a scene.
type Snapshot struct {
	Tick     uint64
	Now      time.Duration
	Match    netconfig.MatchStateID
	HeroWins int
	BossWins int
	Hero     combat.CombatantView
	Boss     combat.CombatantView
}

// Snapshot captures the scene after the last update.
func (s *Scene) Snapshot() Snapshot {
	m := s.Match()
	return Snapshot{
		Tick:     s.tick(),
		Now:      s.Now(),
		Match:    m.State,
		HeroWins: m.HeroWins,
		BossWins: m.BossWins,
		Hero:     s.Hero().View(s.Now()),
		Boss:     s.Boss().View(s.Now()),
	}
}

// DeriveState maps a combatant view to its display state.
func DeriveState(v combat.CombatantView) netconfig.StateID {
	switch {
	case v.HP <= 0:
		return netconfig.StateDefeated
	case v.Dashing:
		return netconfig.StateDashing
	case v.Attack != nil && v.Attack.Phase == combat.PhaseSelected:
		return netconfig.StateTelegraphing
	case v.Attack != nil:
		return netconfig.StateAttacking
	case v.Recovering:
		return netconfig.StateRecovering
	case v.Moving:
		return netconfig.StateMoving
	}
	return netconfig.StateIdle
}
