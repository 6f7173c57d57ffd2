package components

import (
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/leveldata"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/yohamta/donburi"
)

// ViewData is what the renderers draw this frame. A local fight or the
// network snapshots fill it in.
type ViewData struct {
	Arena    string
	Walls    []leveldata.WallRect
	Hero     combat.CombatantView
	Boss     combat.CombatantView
	Match    netconfig.MatchStateID
	HeroWins int
	BossWins int
	Status   string // Connection or hint line under the HUD
}

var View = donburi.NewComponentType[ViewData]()
