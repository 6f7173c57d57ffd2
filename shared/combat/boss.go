package combat

import (
	"fmt"
	"time"

	"github.com/ibaryshnikov/game-design/config"
	"github.com/ibaryshnikov/game-design/shared/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// AttackTemplate is an attack definition before it is aimed.
type AttackTemplate struct {
	Name      string
	Kind      Kind
	Order     Order
	Distance  float64
	Delay     time.Duration
	Duration  time.Duration
	Aftercast time.Duration
	Damage    int
}

// Spec aims the template from position along the facing vector.
func (t AttackTemplate) Spec(position, facing math2.Vec2) Spec {
	return Spec{
		Position:  position,
		Direction: facing,
		Kind:      t.Kind,
		Order:     t.Order,
		Distance:  t.Distance,
		Delay:     t.Delay,
		Duration:  t.Duration,
		Aftercast: t.Aftercast,
		Damage:    t.Damage,
	}
}

// AttackSet is the boss's repertoire and the distance bands selecting from it.
type AttackSet struct {
	CloseMeleeAttackDistance float64
	MeleeAttackDistance      float64
	RangedAttackDistance     float64

	CloseMelee [6]AttackTemplate // cycled by the melee index
	Melee      AttackTemplate
	Ranged     [2]AttackTemplate // cycled by the ranged index
}

// DefaultAttackSet is the repertoire used when no authored set is available.
func DefaultAttackSet() AttackSet {
	dmg := config.Combat.HeroHitDamage
	sweep := func(name string, order Order) AttackTemplate {
		return AttackTemplate{
			Name:      name,
			Kind:      Wide(),
			Order:     order,
			Distance:  170,
			Delay:     600 * time.Millisecond,
			Duration:  250 * time.Millisecond,
			Aftercast: 400 * time.Millisecond,
			Damage:    dmg,
		}
	}
	closing := sweep("closing", CloseToFar)
	closing.Distance = 200
	closing.Duration = 300 * time.Millisecond

	ranged := func(name string) AttackTemplate {
		return AttackTemplate{
			Name:      name,
			Kind:      Circle(),
			Order:     ExpandingCircle,
			Distance:  420,
			Delay:     800 * time.Millisecond,
			Duration:  600 * time.Millisecond,
			Aftercast: 600 * time.Millisecond,
			Damage:    dmg,
		}
	}

	return AttackSet{
		CloseMeleeAttackDistance: 150,
		MeleeAttackDistance:      260,
		RangedAttackDistance:     520,
		CloseMelee: [6]AttackTemplate{
			sweep("sweep_left", LeftToRight),
			sweep("sweep_right", RightToLeft),
			sweep("burst", CenterToSides),
			closing,
			sweep("double_left", LeftThenRight),
			sweep("double_right", RightThenLeft),
		},
		Melee: AttackTemplate{
			Name:      "thrust",
			Kind:      Narrow(),
			Order:     CloseToFar,
			Distance:  300,
			Delay:     500 * time.Millisecond,
			Duration:  200 * time.Millisecond,
			Aftercast: 500 * time.Millisecond,
			Damage:    dmg,
		},
		Ranged: [2]AttackTemplate{
			ranged("backfire"),
			ranged("ground_burst"),
		},
	}
}

// Boss is the adversary combatant.
type Boss struct {
	Position  math2.Vec2
	Direction math2.Vec2 // unit vector toward where the boss looks
	HP        int
	MaxHP     int
	Radius    float64
	Speed     float64

	Attack   *Attack
	Recovery *Recovery

	MeleeAttackIndex  uint8 // 0..=5
	RangedAttackIndex uint8 // 0..=1

	Set AttackSet

	moving bool // approached during the last update
}

// NewBoss creates a boss at position with the given repertoire.
func NewBoss(position math2.Vec2, set AttackSet) *Boss {
	return &Boss{
		Position:  position,
		Direction: math2.Vec2{X: -1},
		HP:        config.Boss.Health,
		MaxHP:     config.Boss.Health,
		Radius:    config.Boss.Radius,
		Speed:     config.Boss.Speed,
		Set:       set,
	}
}

func (b *Boss) RecoveringState() *Recovery { return b.Recovery }
func (b *Boss) ClearRecoveringState()      { b.Recovery = nil }

func (b *Boss) StartRecovering(now time.Duration) {
	b.Recovery = NewRecovery(now, config.Combat.RecoveryDuration)
}

func (b *Boss) HitPoint() math2.Vec2 { return b.Position }

func (b *Boss) ReceiveDamage(amount int) int {
	return applyDamage(&b.HP, amount)
}

// Idle reports whether the boss may pick a new attack.
func (b *Boss) Idle() bool {
	return b.Attack == nil && b.Recovery == nil
}

// Update runs one tick: approach, attack lifecycle and hit test, recovery,
// then attack selection.
func (b *Boss) Update(now, dt time.Duration, hero Target, arena Arena) []Event {
	var events []Event

	b.moving = false
	if b.Idle() && hero != nil {
		b.approach(dt, hero.HitPoint(), arena)
	}

	if b.Attack != nil {
		evs, done := advanceAttack(RoleBoss, b.Attack, now, hero)
		events = append(events, evs...)
		if done {
			b.advanceIndex(b.Attack.Kind)
			b.Attack = nil
			b.StartRecovering(now)
		}
	}

	events = append(events, advanceRecovery(RoleBoss, b, now)...)

	if b.Idle() && hero != nil {
		if a := b.SelectAttack(now, hero.HitPoint()); a != nil {
			b.Attack = a
			events = append(events, startedEvent(RoleBoss, a, now))
		}
	}
	return events
}

// approach walks toward the target while it is out of attack range.
func (b *Boss) approach(dt time.Duration, target math2.Vec2, arena Arena) {
	toward := gamemath.Normalize(math2.Vec2{X: target.X - b.Position.X, Y: target.Y - b.Position.Y})
	if gamemath.IsZero(toward) {
		return
	}
	b.Direction = toward
	if gamemath.Distance(b.Position, target) < b.Set.RangedAttackDistance {
		return
	}
	step := b.Speed * dt.Seconds()
	delta := math2.Vec2{X: toward.X * step, Y: toward.Y * step}
	b.Position = move(arena, b.Position, delta, b.Radius)
	b.moving = true
}

// SelectAttack picks the attack for a target at the given position, or nil
// when the target is beyond ranged distance. It does not advance any index.
func (b *Boss) SelectAttack(now time.Duration, target math2.Vec2) *Attack {
	distance := gamemath.Distance(b.Position, target)
	facing := gamemath.AimVector(b.Position, target)

	switch {
	case distance < b.Set.CloseMeleeAttackDistance:
		i := b.MeleeAttackIndex
		if int(i) >= len(b.Set.CloseMelee) {
			panic(fmt.Sprintf("boss melee attack index %d out of range", i))
		}
		return NewAttack(b.Set.CloseMelee[i].Spec(b.Position, facing), now)
	case distance < b.Set.MeleeAttackDistance:
		return NewAttack(b.Set.Melee.Spec(b.Position, facing), now)
	case distance < b.Set.RangedAttackDistance:
		switch b.RangedAttackIndex {
		case 0:
			reversed := math2.Vec2{X: -facing.X, Y: -facing.Y}
			return NewAttack(b.Set.Ranged[0].Spec(b.Position, reversed), now)
		case 1:
			return NewAttack(b.Set.Ranged[1].Spec(target, facing), now)
		default:
			panic(fmt.Sprintf("boss ranged attack index %d out of range", b.RangedAttackIndex))
		}
	}
	return nil
}

// advanceIndex cycles the index matching the completed attack's kind.
func (b *Boss) advanceIndex(kind Kind) {
	switch kind.ID {
	case KindWide:
		if b.MeleeAttackIndex >= uint8(len(b.Set.CloseMelee)-1) {
			b.MeleeAttackIndex = 0
		} else {
			b.MeleeAttackIndex++
		}
	case KindCircle:
		if b.RangedAttackIndex >= uint8(len(b.Set.Ranged)-1) {
			b.RangedAttackIndex = 0
		} else {
			b.RangedAttackIndex++
		}
	}
}

// Reset puts the boss back at position with full health, discarding any
// attack or recovery in flight.
func (b *Boss) Reset(position math2.Vec2) {
	b.Position = position
	b.Direction = math2.Vec2{X: -1}
	b.HP = b.MaxHP
	b.Attack = nil
	b.Recovery = nil
	b.MeleeAttackIndex = 0
	b.RangedAttackIndex = 0
	b.moving = false
}
