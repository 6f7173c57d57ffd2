package netcomponents

import (
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetGameStateData struct {
	MatchState netconfig.MatchStateID
	Tick       uint64
	HeroWins   int
	BossWins   int
	Arena      string
}

var NetGameState = donburi.NewComponentType[NetGameStateData]()
