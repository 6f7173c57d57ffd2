package components

import (
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/yohamta/donburi"
)

// Hero and Boss hold the combatants themselves. Each combatant owns its attack
// and recovery runtimes, so the components are the only place they live.
var (
	Hero = donburi.NewComponentType[combat.Hero]()
	Boss = donburi.NewComponentType[combat.Boss]()
)
