package components

import (
	"time"

	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and the running score.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State     netconfig.MatchStateID
	StartedAt time.Duration
	DecidedAt time.Duration // zero until State is decided
	HeroWins  int
	BossWins  int
}

var Match = donburi.NewComponentType[MatchData]()

// Decide records the outcome once. Later calls are ignored.
func (m *MatchData) Decide(state netconfig.MatchStateID, now time.Duration) bool {
	if m.State.Decided() || !state.Decided() {
		return false
	}
	m.State = state
	m.DecidedAt = now
	if state == netconfig.MatchStateHeroWon {
		m.HeroWins++
	} else {
		m.BossWins++
	}
	return true
}
