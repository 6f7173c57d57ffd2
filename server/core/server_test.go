package core

import (
	"errors"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/leveldata"
	"github.com/ibaryshnikov/game-design/shared/messages"
	"github.com/ibaryshnikov/game-design/shared/netcomponents"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

const tick = 10 * time.Millisecond

type fakePeer struct {
	id   string
	fail bool

	mu   sync.Mutex
	sent []any
}

func (p *fakePeer) Id() string { return p.id }

func (p *fakePeer) SendMessage(msg any) error {
	if p.fail {
		return errors.New("closed")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakePeer) last() any {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.sent) == 0 {
		return nil
	}
	return p.sent[len(p.sent)-1]
}

func sentOf[T any](p *fakePeer) []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []T
	for _, m := range p.sent {
		if v, ok := m.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func newTestServer(version string) *Server {
	return NewServer(Options{
		Name:       "test",
		Version:    version,
		TickRate:   100,
		ResetDelay: 50 * time.Millisecond,
		Arena:      leveldata.DefaultArena(),
		Attacks:    combat.DefaultAttackSet(),
	})
}

func join(s *Server, p *fakePeer, token string) messages.JoinAccepted {
	s.onConnect(p)
	s.onJoin(p, messages.JoinRequest{PlayerName: p.id, SessionToken: token})
	accepted, _ := p.last().(messages.JoinAccepted)
	return accepted
}

func TestFirstClientControlsHero(t *testing.T) {
	s := newTestServer("")
	a, b := &fakePeer{id: "a"}, &fakePeer{id: "b"}

	first := join(s, a, "")
	second := join(s, b, "")

	assert.True(t, first.Controls)
	assert.False(t, second.Controls)
	assert.NotEmpty(t, first.SessionToken)
	assert.NotEqual(t, first.SessionToken, second.SessionToken)
	assert.Equal(t, "default", first.Arena)
	assert.Equal(t, 100, first.TickRate)
	assert.Equal(t, 2, s.PlayerCount())
}

func TestVersionMismatchRejected(t *testing.T) {
	s := newTestServer("1.2")
	p := &fakePeer{id: "old"}
	s.onConnect(p)
	s.onJoin(p, messages.JoinRequest{Version: "1.1"})

	rejected, ok := p.last().(messages.JoinRejected)
	require.True(t, ok)
	assert.Contains(t, rejected.Reason, "version mismatch")
}

func TestOnlyControllerMovesHero(t *testing.T) {
	s := newTestServer("")
	a, b := &fakePeer{id: "a"}, &fakePeer{id: "b"}
	join(s, a, "")
	join(s, b, "")

	spectator := messages.NewHeroInput(1)
	spectator.Held[netconfig.ActionMoveLeft] = true
	s.onHeroInput(b, spectator)
	s.Step(tick)
	assert.Equal(t, 256.0, s.Scene().Hero().Position.X)

	owner := messages.NewHeroInput(1)
	owner.Held[netconfig.ActionMoveRight] = true
	s.onHeroInput(a, owner)
	s.Step(tick)
	assert.Greater(t, s.Scene().Hero().Position.X, 256.0)
	assert.Equal(t, s.Scene().Hero().Position.X, s.mirror.position(s.mirror.hero).X)
}

func TestDisconnectReleasesHero(t *testing.T) {
	s := newTestServer("")
	a, b := &fakePeer{id: "a"}, &fakePeer{id: "b"}
	accepted := join(s, a, "")

	in := messages.NewHeroInput(1)
	in.Held[netconfig.ActionMoveDown] = true
	s.onHeroInput(a, in)
	s.Step(tick)

	s.onDisconnect(a, nil)
	s.Step(tick)
	y := s.Scene().Hero().Position.Y
	s.Step(tick)
	assert.Equal(t, y, s.Scene().Hero().Position.Y, "held keys are released")

	again := join(s, b, "")
	assert.True(t, again.Controls, "the hero is free again")
	assert.NotEqual(t, accepted.SessionToken, again.SessionToken)
}

func TestSessionTokenReclaimsHero(t *testing.T) {
	s := newTestServer("")
	a := &fakePeer{id: "a"}
	first := join(s, a, "")

	// Same player on a new connection before the old one timed out.
	a2 := &fakePeer{id: "a2"}
	second := join(s, a2, first.SessionToken)
	assert.True(t, second.Controls)
	assert.Equal(t, first.SessionToken, second.SessionToken)

	stale := messages.NewHeroInput(2)
	stale.Held[netconfig.ActionMoveRight] = true
	s.onHeroInput(a, stale)
	s.Step(tick)
	assert.Equal(t, 256.0, s.Scene().Hero().Position.X, "old connection lost control")

	other := join(s, &fakePeer{id: "c"}, "made-up")
	assert.False(t, other.Controls)
}

func TestStepBroadcastsEvents(t *testing.T) {
	s := newTestServer("")
	a := &fakePeer{id: "a"}
	lurker := &fakePeer{id: "lurker"}
	join(s, a, "")
	s.onConnect(lurker)

	events := s.Step(tick)
	require.NotEmpty(t, events, "the boss starts an attack on its first tick")

	got := sentOf[messages.CombatEvent](a)
	require.Len(t, got, len(events))
	assert.Equal(t, messages.FromEvent(events[0]), got[0])
	assert.Empty(t, lurker.sent, "clients that never joined get nothing")

	attack := netcomponents.NetAttack.Get(s.World().Entry(s.mirror.bossAttack))
	assert.True(t, attack.Active)
	assert.Equal(t, combat.PhaseSelected, attack.Phase)
}

func TestMatchResetsAfterDelay(t *testing.T) {
	s := newTestServer("")
	a := &fakePeer{id: "a"}
	join(s, a, "")

	s.Scene().Boss().HP = 0
	s.Step(tick)
	game := netcomponents.NetGameState.Get(s.World().Entry(s.mirror.game))
	assert.Equal(t, netconfig.MatchStateHeroWon, game.MatchState)
	assert.Equal(t, 1, game.HeroWins)

	for i := 0; i < 5; i++ {
		s.Step(tick)
	}
	assert.Equal(t, netconfig.MatchStatePlaying, s.Scene().Match().State)
	assert.Equal(t, s.Scene().Boss().MaxHP, s.Scene().Boss().HP)

	changes := sentOf[messages.MatchStateChangeEvent](a)
	require.Len(t, changes, 2)
	assert.Equal(t, int(netconfig.MatchStateHeroWon), changes[0].NewState)
	assert.Equal(t, int(netconfig.MatchStatePlaying), changes[1].NewState)
}

func TestSendFailureIsLogged(t *testing.T) {
	s := newTestServer("")
	p := &fakePeer{id: "gone", fail: true}
	s.onConnect(p)
	s.onJoin(p, messages.JoinRequest{})
	assert.NotPanics(t, func() { s.Step(tick) })
}

func TestPickArena(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/box.tmx": {Data: []byte(boxTMX)},
	}

	assert.Equal(t, "box", PickArena(fsys, "").Name)
	assert.Equal(t, "box", PickArena(fsys, "missing").Name)
	assert.Equal(t, "default", PickArena(fstest.MapFS{}, "box").Name)
}

const boxTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="Spawns">
  <object id="2" name="hero" x="64" y="160">
   <point/>
  </object>
  <object id="3" name="boss" x="256" y="160">
   <point/>
  </object>
 </objectgroup>
</map>
`

func (m *mirror) position(e donburi.Entity) math2.Vec2 {
	p := netcomponents.NetPosition.Get(m.world.Entry(e))
	return math2.Vec2{X: p.X, Y: p.Y}
}
