package components

import (
	"testing"
	"time"

	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/stretchr/testify/assert"
)

func TestMatchDecideOnce(t *testing.T) {
	var m MatchData
	m.State = netconfig.MatchStatePlaying

	assert.False(t, m.Decide(netconfig.MatchStatePlaying, time.Second), "playing is not an outcome")
	assert.True(t, m.Decide(netconfig.MatchStateBossWon, 2*time.Second))
	assert.False(t, m.Decide(netconfig.MatchStateHeroWon, 3*time.Second))

	assert.Equal(t, netconfig.MatchStateBossWon, m.State)
	assert.Equal(t, 2*time.Second, m.DecidedAt)
	assert.Equal(t, 1, m.BossWins)
	assert.Equal(t, 0, m.HeroWins)
}

func TestNetInterp(t *testing.T) {
	var d NetInterpData
	d.Retarget(0, 0, 100, 50)
	x, y := d.Step(0.5)
	assert.Equal(t, 100.0, x, "first target snaps")
	assert.Equal(t, 50.0, y)

	d.Retarget(x, y, 200, 50)
	x, _ = d.Step(0.25)
	assert.Equal(t, 125.0, x)
	x, _ = d.Step(5)
	assert.Equal(t, 200.0, x, "never overshoots")
}

func TestJustPressed(t *testing.T) {
	var in InputData
	in.Current[netconfig.ActionDash] = true
	assert.True(t, in.JustPressed(netconfig.ActionDash))

	in.Previous = in.Current
	assert.False(t, in.JustPressed(netconfig.ActionDash))
}
