package combat

import (
	"time"

	"github.com/ibaryshnikov/game-design/config"
	math2 "github.com/yohamta/donburi/features/math"
)

// Role tells the two combatant variants apart.
type Role int

const (
	RoleHero Role = iota
	RoleBoss
)

func (r Role) String() string {
	if r == RoleBoss {
		return "boss"
	}
	return "hero"
}

// Target is the opposing combatant as seen by an attacker. ReceiveDamage is
// the only way one combatant mutates another; it returns the damage applied.
type Target interface {
	HitPoint() math2.Vec2
	ReceiveDamage(amount int) int
}

// Arena resolves a movement step of a circular body against the level.
type Arena interface {
	Move(from, delta math2.Vec2, radius float64) math2.Vec2
}

// EventKind identifies what happened during an update.
type EventKind int

const (
	EventAttackStarted EventKind = iota
	EventAttackHit
	EventAttackCompleted
	EventRecovered
	EventDashStarted
	EventDashEnded
)

var eventNames = [...]string{
	EventAttackStarted:   "attack_started",
	EventAttackHit:       "attack_hit",
	EventAttackCompleted: "attack_completed",
	EventRecovered:       "recovered",
	EventDashStarted:     "dash_started",
	EventDashEnded:       "dash_ended",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is emitted by a combatant update for collaborators such as the
// server log or a HUD.
type Event struct {
	Kind   EventKind
	Role   Role
	At     time.Duration
	Attack Kind
	Order  Order
	Damage int
}

// advanceAttack runs one lifecycle tick of a and its hit test against target.
// It reports whether the attack has completed and must be discarded.
func advanceAttack(role Role, a *Attack, now time.Duration, target Target) ([]Event, bool) {
	var events []Event
	a.Advance(now)

	hit := func() {
		dmg := 0
		if target != nil {
			dmg = target.ReceiveDamage(a.Damage)
		}
		events = append(events, Event{Kind: EventAttackHit, Role: role, At: now, Attack: a.Kind, Order: a.Order, Damage: dmg})
	}

	if target != nil && a.IsProjectile() && a.TrackHit(target.HitPoint(), config.Combat.TargetRadius) {
		hit()
	}

	if !a.IsCompleted() {
		return events, false
	}
	if target != nil && !a.IsProjectile() && a.Hits(target.HitPoint(), config.Combat.TargetRadius) {
		hit()
	}
	events = append(events, Event{Kind: EventAttackCompleted, Role: role, At: now, Attack: a.Kind, Order: a.Order})
	return events, true
}

// advanceRecovery runs the recovery step for c and reports the transition.
func advanceRecovery(role Role, c Character, now time.Duration) []Event {
	if c.RecoveringState() == nil {
		return nil
	}
	AdvanceRecovery(c, now)
	if c.RecoveringState() != nil {
		return nil
	}
	return []Event{{Kind: EventRecovered, Role: role, At: now}}
}

func startedEvent(role Role, a *Attack, now time.Duration) Event {
	return Event{Kind: EventAttackStarted, Role: role, At: now, Attack: a.Kind, Order: a.Order}
}

func applyDamage(hp *int, amount int) int {
	if amount <= 0 || *hp <= 0 {
		return 0
	}
	if amount > *hp {
		amount = *hp
	}
	*hp -= amount
	return amount
}

// move resolves a step against the arena, or applies it directly without one.
func move(arena Arena, from, delta math2.Vec2, radius float64) math2.Vec2 {
	if arena == nil {
		return math2.Vec2{X: from.X + delta.X, Y: from.Y + delta.Y}
	}
	return arena.Move(from, delta, radius)
}
