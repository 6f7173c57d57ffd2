package core

import (
	"fmt"

	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/netcomponents"
	"github.com/ibaryshnikov/game-design/shared/scene"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// mirror holds the network entities that reflect the scene: one per
// combatant, one per combatant's attack, and the game state.
type mirror struct {
	world      donburi.World
	hero       donburi.Entity
	boss       donburi.Entity
	heroAttack donburi.Entity
	bossAttack donburi.Entity
	game       donburi.Entity

	heroNetID esync.NetworkId
}

func newMirror(w donburi.World) *mirror {
	return &mirror{
		world:      w,
		hero:       w.Create(netcomponents.NetPosition, netcomponents.NetCombatant),
		boss:       w.Create(netcomponents.NetPosition, netcomponents.NetCombatant),
		heroAttack: w.Create(netcomponents.NetAttack),
		bossAttack: w.Create(netcomponents.NetAttack),
		game:       w.Create(netcomponents.NetGameState),
	}
}

// update copies the scene's latest snapshot into the mirror entities.
func (m *mirror) update(sc *scene.Scene) {
	snap := sc.Snapshot()

	m.setCombatant(m.hero, snap.Hero)
	m.setCombatant(m.boss, snap.Boss)
	netcomponents.NetAttack.SetValue(m.world.Entry(m.heroAttack),
		netcomponents.AttackFromView(combat.RoleHero, snap.Hero.Attack))
	netcomponents.NetAttack.SetValue(m.world.Entry(m.bossAttack),
		netcomponents.AttackFromView(combat.RoleBoss, snap.Boss.Attack))

	netcomponents.NetGameState.SetValue(m.world.Entry(m.game), netcomponents.NetGameStateData{
		MatchState: snap.Match,
		Tick:       snap.Tick,
		HeroWins:   snap.HeroWins,
		BossWins:   snap.BossWins,
		Arena:      sc.Data.Name,
	})
}

func (m *mirror) setCombatant(e donburi.Entity, v combat.CombatantView) {
	entry := m.world.Entry(e)
	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: v.Position.X, Y: v.Position.Y})
	netcomponents.NetCombatant.SetValue(entry, netcomponents.CombatantFromView(v, scene.DeriveState(v)))
}

// enableSync marks the mirror entities for necs sync. Positions and attack
// sweeps are interpolated on the client.
func (m *mirror) enableSync() error {
	srvsync.UseEsync(m.world)

	for _, e := range []*donburi.Entity{&m.hero, &m.boss} {
		if err := srvsync.NetworkSync(m.world, e,
			srvsync.WithInterp(netcomponents.NetPosition),
			netcomponents.NetCombatant,
		); err != nil {
			return fmt.Errorf("sync combatant: %w", err)
		}
	}
	for _, e := range []*donburi.Entity{&m.heroAttack, &m.bossAttack} {
		if err := srvsync.NetworkSync(m.world, e, srvsync.WithInterp(netcomponents.NetAttack)); err != nil {
			return fmt.Errorf("sync attack: %w", err)
		}
	}
	if err := srvsync.NetworkSync(m.world, &m.game, netcomponents.NetGameState); err != nil {
		return fmt.Errorf("sync game state: %w", err)
	}

	if nid := esync.GetNetworkId(m.world.Entry(m.hero)); nid != nil {
		m.heroNetID = *nid
	}
	return nil
}

func (m *mirror) sync() error {
	return srvsync.DoSync()
}

func (m *mirror) heroID() esync.NetworkId {
	return m.heroNetID
}
