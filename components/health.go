package components

import (
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HealthBarData is the HUD's eased view of a combatant's hp.
type HealthBarData struct {
	Role   combat.Role
	Shown  float32 // fraction of max hp currently drawn
	Target float32 // fraction the tween is heading to
	Tween  *gween.Tween
}

var HealthBar = donburi.NewComponentType[HealthBarData]()
