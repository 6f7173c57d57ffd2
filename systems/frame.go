package systems

import (
	"github.com/ibaryshnikov/game-design/archetypes"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/leveldata"
	"github.com/ibaryshnikov/game-design/shared/scene"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FrameEntry returns the client frame singleton, creating it on first use.
func FrameEntry(e *ecs.ECS) *donburi.Entry {
	if entry, ok := components.View.First(e.World); ok {
		return entry
	}
	return archetypes.Frame.Spawn(e.World)
}

// CreateHealthBars spawns the HUD bars for both combatants.
func CreateHealthBars(e *ecs.ECS) {
	for _, role := range []combat.Role{combat.RoleHero, combat.RoleBoss} {
		bar := archetypes.HealthBar.Spawn(e.World)
		components.HealthBar.SetValue(bar, components.HealthBarData{Role: role, Shown: 1, Target: 1})
	}
}

// SetArena publishes the arena walls to the renderers.
func SetArena(e *ecs.ECS, data *leveldata.ArenaData) {
	view := components.View.Get(FrameEntry(e))
	view.Arena = data.Name
	view.Walls = data.Walls
}

// publishSnapshot copies a scene snapshot into the frame's view.
func publishSnapshot(view *components.ViewData, snap scene.Snapshot) {
	view.Hero = snap.Hero
	view.Boss = snap.Boss
	view.Match = snap.Match
	view.HeroWins = snap.HeroWins
	view.BossWins = snap.BossWins
}
