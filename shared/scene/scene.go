// Package scene runs one fight: a hero and a boss in an arena, advanced tick by
// tick. The server and every front-end run the same scene, so it must stay
// free of ebiten.
package scene

import (
	"log"
	"time"

	"github.com/ibaryshnikov/game-design/archetypes"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/leveldata"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// Scene owns the donburi world of a fight.
type Scene struct {
	World donburi.World
	Arena *Arena
	Data  *leveldata.ArenaData

	hero  *donburi.Entry
	boss  *donburi.Entry
	clock *donburi.Entry
	match *donburi.Entry

	heroSpawn math2.Vec2
	bossSpawn math2.Vec2

	// pending holds events raised by input between two updates.
	pending []combat.Event
}

// New builds a scene for the arena with the boss using the given attack set.
func New(data *leveldata.ArenaData, set combat.AttackSet) *Scene {
	w := donburi.NewWorld()
	arena := NewArena(data)

	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{Space: arena.Space})
	for _, obj := range arena.Walls {
		wall := archetypes.Wall.Spawn(w)
		components.Object.SetValue(wall, components.ObjectData{Object: obj})
	}

	s := &Scene{
		World: w,
		Arena: arena,
		Data:  data,
		hero:  archetypes.Hero.Spawn(w),
		boss:  archetypes.Boss.Spawn(w),
		clock: archetypes.Clock.Spawn(w),
		match: archetypes.Match.Spawn(w),
	}
	hero := combat.NewHero(spawnPoint(data.HeroSpawn))
	s.heroSpawn = arena.Spawn("hero", hero.Position, hero.Radius)
	hero.Position = s.heroSpawn
	boss := combat.NewBoss(spawnPoint(data.BossSpawn), set)
	s.bossSpawn = arena.Spawn("boss", boss.Position, boss.Radius)
	boss.Position = s.bossSpawn
	components.Hero.SetValue(s.hero, *hero)
	components.Boss.SetValue(s.boss, *boss)
	components.Match.SetValue(s.match, components.MatchData{State: netconfig.MatchStatePlaying})

	log.Printf("[scene] Loaded arena %q: %d walls, %dx%d",
		data.Name, len(data.Walls), data.Width, data.Height)
	return s
}

func spawnPoint(p leveldata.SpawnPoint) math2.Vec2 {
	return math2.Vec2{X: p.X, Y: p.Y}
}

// Hero returns the hero. The pointer is only valid until the next update.
func (s *Scene) Hero() *combat.Hero { return components.Hero.Get(s.hero) }

// Boss returns the boss. The pointer is only valid until the next update.
func (s *Scene) Boss() *combat.Boss { return components.Boss.Get(s.boss) }

// Now returns the scene clock.
func (s *Scene) Now() time.Duration { return components.Clock.Get(s.clock).Now }

func (s *Scene) tick() uint64 { return components.Clock.Get(s.clock).Tick }

// Match returns the match state.
func (s *Scene) Match() *components.MatchData { return components.Match.Get(s.match) }

// Update advances the scene by dt: the hero, then the boss, then the match.
// Once the match is decided the combatants freeze until Reset.
func (s *Scene) Update(dt time.Duration) []combat.Event {
	clock := components.Clock.Get(s.clock)
	clock.Now += dt
	clock.Tick++
	now := clock.Now

	events := s.pending
	s.pending = nil

	if s.Match().State != netconfig.MatchStatePlaying {
		return events
	}

	hero := s.Hero()
	boss := s.Boss()
	events = append(events, hero.Update(now, dt, boss, s.Arena)...)
	events = append(events, boss.Update(now, dt, hero, s.Arena)...)

	s.updateMatch(now)
	return events
}

// Reset is the death/reset path: both combatants return to their spawns with
// full health and any attack or recovery in flight is discarded.
func (s *Scene) Reset() {
	now := s.Now()
	s.Hero().Reset(s.heroSpawn)
	s.Boss().Reset(s.bossSpawn)
	s.pending = nil

	m := s.Match()
	m.State = netconfig.MatchStatePlaying
	m.StartedAt = now
	m.DecidedAt = 0
	log.Printf("[scene] Match reset at %v (hero %d - boss %d)", now, m.HeroWins, m.BossWins)
}

func (s *Scene) playing() bool {
	return s.Match().State == netconfig.MatchStatePlaying
}

// SetMoving records a directional input for the hero.
func (s *Scene) SetMoving(m combat.Move, pressed bool) {
	s.Hero().SetMoving(m, pressed)
}

// Attack starts the hero attack in slot aimed at aim. A nil aim attacks along
// the hero's last movement.
func (s *Scene) Attack(slot int, aim *math2.Vec2) bool {
	if !s.playing() {
		return false
	}
	hero := s.Hero()
	now := s.Now()
	if !hero.StartAttack(now, slot, aim) {
		return false
	}
	s.pending = append(s.pending, combat.Event{
		Kind:   combat.EventAttackStarted,
		Role:   combat.RoleHero,
		At:     now,
		Attack: hero.Attack.Kind,
		Order:  hero.Attack.Order,
	})
	return true
}

// Dash starts a hero dash.
func (s *Scene) Dash() bool {
	if !s.playing() {
		return false
	}
	now := s.Now()
	if !s.Hero().StartDash(now) {
		return false
	}
	s.pending = append(s.pending, combat.Event{Kind: combat.EventDashStarted, Role: combat.RoleHero, At: now})
	return true
}
