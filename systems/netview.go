package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewNetViewSystem interpolates synced positions between snapshots and
// rebuilds the frame's view from the network entities.
func NewNetViewSystem(tickRate func() int) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		rate := tickRate()
		if rate <= 0 {
			rate = 20
		}
		step := float64(rate) / float64(ebiten.TPS())

		esync.NetworkEntityQuery.Each(e.World, func(entry *donburi.Entry) {
			if !entry.HasComponent(components.NetInterp) || !entry.HasComponent(netcomponents.NetPosition) {
				return
			}
			pos := netcomponents.NetPosition.Get(entry)
			pos.X, pos.Y = components.NetInterp.Get(entry).Step(step)
		})

		BuildNetView(e.World, components.View.Get(FrameEntry(e)))
	}
}

// BuildNetView fills view from the synced combatants, attacks and game state.
func BuildNetView(world donburi.World, view *components.ViewData) {
	var heroAttack, bossAttack *combat.AttackView

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		switch {
		case entry.HasComponent(netcomponents.NetCombatant) && entry.HasComponent(netcomponents.NetPosition):
			c := netcomponents.NetCombatant.Get(entry).View(*netcomponents.NetPosition.Get(entry))
			if c.Role == combat.RoleBoss {
				view.Boss = c
			} else {
				view.Hero = c
			}

		case entry.HasComponent(netcomponents.NetAttack):
			data := netcomponents.NetAttack.Get(entry)
			v, ok := data.View()
			if !ok {
				return
			}
			if data.Role == combat.RoleBoss {
				bossAttack = &v
			} else {
				heroAttack = &v
			}

		case entry.HasComponent(netcomponents.NetGameState):
			game := netcomponents.NetGameState.Get(entry)
			view.Match = game.MatchState
			view.HeroWins = game.HeroWins
			view.BossWins = game.BossWins
		}
	})

	view.Hero.Attack = heroAttack
	view.Boss.Attack = bossAttack
}

// ApplySnapshot creates, updates and removes network entities to match a
// server snapshot. Positions are retargeted for interpolation instead of
// being overwritten.
func ApplySnapshot(world donburi.World, snapshot esync.WorldSnapshot) {
	present := make(map[esync.NetworkId]bool, len(snapshot))

	for _, ent := range snapshot {
		present[ent.Id] = true

		var state []any
		for _, raw := range ent.State {
			instance, err := esync.Mapper.Deserialize(raw)
			if err != nil {
				continue
			}
			state = append(state, instance)
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			entity = world.Create(esync.NetworkIdComponent, components.NetInterp)
			esync.NetworkIdComponent.SetValue(world.Entry(entity), ent.Id)
		}
		entry := world.Entry(entity)

		for _, data := range state {
			switch v := data.(type) {
			case netcomponents.NetPositionData:
				from := v
				if entry.HasComponent(netcomponents.NetPosition) {
					from = *netcomponents.NetPosition.Get(entry)
				}
				upsert(entry, netcomponents.NetPosition, from)
				components.NetInterp.Get(entry).Retarget(from.X, from.Y, v.X, v.Y)
			case netcomponents.NetCombatantData:
				upsert(entry, netcomponents.NetCombatant, v)
			case netcomponents.NetAttackData:
				upsert(entry, netcomponents.NetAttack, v)
			case netcomponents.NetGameStateData:
				upsert(entry, netcomponents.NetGameState, v)
			}
		}
	}

	var stale []*donburi.Entry
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		if id := esync.GetNetworkId(entry); id != nil && !present[*id] {
			stale = append(stale, entry)
		}
	})
	for _, entry := range stale {
		entry.Remove()
	}
}

func upsert[T any](entry *donburi.Entry, ctype *donburi.ComponentType[T], v T) {
	if !entry.HasComponent(ctype) {
		entry.AddComponent(ctype)
	}
	ctype.SetValue(entry, v)
}
