package scene

import (
	"log"
	"time"

	"github.com/ibaryshnikov/game-design/shared/netconfig"
)

// updateMatch decides the match once a combatant runs out of hp. The hero
// acts first in a tick, so a boss felled in the same tick as the hero
// counts as a hero win.
func (s *Scene) updateMatch(now time.Duration) {
	var outcome netconfig.MatchStateID
	switch {
	case s.Boss().HP <= 0:
		outcome = netconfig.MatchStateHeroWon
	case s.Hero().HP <= 0:
		outcome = netconfig.MatchStateBossWon
	default:
		return
	}

	m := s.Match()
	if m.Decide(outcome, now) {
		log.Printf("[scene] Match decided: %s at %v", outcome, now)
	}
}

// ReadyForReset reports whether a decided match has been shown for delay.
func (s *Scene) ReadyForReset(delay time.Duration) bool {
	m := s.Match()
	return m.State.Decided() && s.Now()-m.DecidedAt >= delay
}
