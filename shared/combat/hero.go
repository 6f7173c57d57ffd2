package combat

import (
	"time"

	"github.com/ibaryshnikov/game-design/config"
	"github.com/ibaryshnikov/game-design/shared/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// Move is a directional input.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// MoveIntent holds the pressed state of each directional input.
type MoveIntent struct {
	Up, Down, Left, Right bool
}

// Vector returns the unit movement direction, zero when nothing or only
// opposing inputs are held.
func (m MoveIntent) Vector() math2.Vec2 {
	var v math2.Vec2
	if m.Left {
		v.X--
	}
	if m.Right {
		v.X++
	}
	if m.Up {
		v.Y--
	}
	if m.Down {
		v.Y++
	}
	return gamemath.Normalize(v)
}

// Dash is an in-flight dash.
type Dash struct {
	Direction math2.Vec2
	StartedAt time.Duration
	Duration  time.Duration
}

// DefaultHeroAttacks are the hero's attack slots.
func DefaultHeroAttacks() []AttackTemplate {
	dmg := config.Combat.BossHitDamage
	return []AttackTemplate{
		{
			Name:      "jab",
			Kind:      Narrow(),
			Order:     CloseToFar,
			Distance:  120,
			Delay:     80 * time.Millisecond,
			Duration:  120 * time.Millisecond,
			Aftercast: 150 * time.Millisecond,
			Damage:    dmg,
		},
		{
			Name:      "slash",
			Kind:      Wide(),
			Order:     LeftToRight,
			Distance:  90,
			Delay:     150 * time.Millisecond,
			Duration:  200 * time.Millisecond,
			Aftercast: 250 * time.Millisecond,
			Damage:    dmg,
		},
		{
			Name:      "volley",
			Kind:      Missiles(3),
			Order:     ProjectileFromCaster,
			Distance:  400,
			Delay:     120 * time.Millisecond,
			Duration:  500 * time.Millisecond,
			Aftercast: 300 * time.Millisecond,
			Damage:    dmg,
		},
	}
}

// Hero is the player-controlled combatant.
type Hero struct {
	Position  math2.Vec2
	Direction math2.Vec2 // unit vector of the last movement
	HP        int
	MaxHP     int
	Radius    float64
	Speed     float64

	Moves    MoveIntent
	Attack   *Attack
	Recovery *Recovery

	Dash         *Dash
	DashCooldown *Recovery

	Attacks []AttackTemplate
}

// NewHero creates a hero at position facing right.
func NewHero(position math2.Vec2) *Hero {
	return &Hero{
		Position:  position,
		Direction: math2.Vec2{X: 1},
		HP:        config.Hero.Health,
		MaxHP:     config.Hero.Health,
		Radius:    config.Hero.Radius,
		Speed:     config.Hero.Speed,
		Attacks:   DefaultHeroAttacks(),
	}
}

func (h *Hero) RecoveringState() *Recovery { return h.Recovery }
func (h *Hero) ClearRecoveringState()      { h.Recovery = nil }

func (h *Hero) StartRecovering(now time.Duration) {
	h.Recovery = NewRecovery(now, config.Combat.RecoveryDuration)
}

func (h *Hero) HitPoint() math2.Vec2 { return h.Position }

// ReceiveDamage applies a hit. A dashing hero takes nothing.
func (h *Hero) ReceiveDamage(amount int) int {
	if h.Dash != nil {
		return 0
	}
	return applyDamage(&h.HP, amount)
}

// Dashing reports whether the hero is invulnerable mid-dash.
func (h *Hero) Dashing() bool { return h.Dash != nil }

// SetMoving records a pressed or released directional input.
func (h *Hero) SetMoving(m Move, pressed bool) {
	switch m {
	case MoveUp:
		h.Moves.Up = pressed
	case MoveDown:
		h.Moves.Down = pressed
	case MoveLeft:
		h.Moves.Left = pressed
	case MoveRight:
		h.Moves.Right = pressed
	}
}

// busy reports whether an attack or recovery locks the hero's actions.
func (h *Hero) busy() bool {
	return h.Attack != nil || h.Recovery != nil
}

// StartAttack begins the attack in slot aimed at the aim point. A nil aim
// attacks along the last movement direction. It reports whether the attack
// started.
func (h *Hero) StartAttack(now time.Duration, slot int, aim *math2.Vec2) bool {
	if h.busy() || h.Dash != nil {
		return false
	}
	if slot < 0 || slot >= len(h.Attacks) {
		return false
	}
	facing := math2.Vec2{X: -h.Direction.X, Y: -h.Direction.Y}
	if aim != nil {
		if v := gamemath.AimVector(h.Position, *aim); !gamemath.IsZero(v) {
			facing = v
		}
	}
	h.Attack = NewAttack(h.Attacks[slot].Spec(h.Position, facing), now)
	return true
}

// StartDash begins a dash along the held movement direction, or the last
// one when nothing is held. It reports whether the dash started.
func (h *Hero) StartDash(now time.Duration) bool {
	if h.busy() || h.Dash != nil || h.DashCooldown != nil {
		return false
	}
	dir := h.Moves.Vector()
	if gamemath.IsZero(dir) {
		dir = h.Direction
	}
	h.Dash = &Dash{
		Direction: dir,
		StartedAt: now,
		Duration:  config.Hero.DashDuration,
	}
	return true
}

// Update runs one tick: movement or dash, attack lifecycle and hit test,
// then recovery.
func (h *Hero) Update(now, dt time.Duration, boss Target, arena Arena) []Event {
	var events []Event

	events = append(events, h.advanceDash(now)...)
	if !h.busy() {
		h.step(dt, arena)
	}

	if h.Attack != nil {
		evs, done := advanceAttack(RoleHero, h.Attack, now, boss)
		events = append(events, evs...)
		if done {
			h.Attack = nil
			h.StartRecovering(now)
		}
	}

	events = append(events, advanceRecovery(RoleHero, h, now)...)
	return events
}

// advanceDash ends a finished dash, which opens the cooldown window, and
// closes an elapsed cooldown.
func (h *Hero) advanceDash(now time.Duration) []Event {
	if h.DashCooldown != nil && h.DashCooldown.Done(now) {
		h.DashCooldown = nil
	}
	if h.Dash == nil || now-h.Dash.StartedAt < h.Dash.Duration {
		return nil
	}
	h.Dash = nil
	h.DashCooldown = NewRecovery(now, config.Hero.DashCooldown)
	return []Event{{Kind: EventDashEnded, Role: RoleHero, At: now}}
}

func (h *Hero) step(dt time.Duration, arena Arena) {
	dir := h.Moves.Vector()
	speed := h.Speed
	if h.Dash != nil {
		dir = h.Dash.Direction
		speed = config.Hero.DashSpeed
	}
	if gamemath.IsZero(dir) {
		return
	}
	h.Direction = dir
	dist := speed * dt.Seconds()
	h.Position = move(arena, h.Position, math2.Vec2{X: dir.X * dist, Y: dir.Y * dist}, h.Radius)
}

// Reset puts the hero back at position with full health, discarding every
// runtime in flight.
func (h *Hero) Reset(position math2.Vec2) {
	h.Position = position
	h.Direction = math2.Vec2{X: 1}
	h.HP = h.MaxHP
	h.Moves = MoveIntent{}
	h.Attack = nil
	h.Recovery = nil
	h.Dash = nil
	h.DashCooldown = nil
}
