package combat

import (
	"time"

	"github.com/ibaryshnikov/game-design/shared/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// Phase is the visible stage of an attack.
type Phase int

const (
	// PhaseSelected is the telegraph: the attack is shown but harmless.
	PhaseSelected Phase = iota
	// PhaseAttacking is the active hazard window, followed by the aftercast.
	PhaseAttacking
)

func (p Phase) String() string {
	if p == PhaseAttacking {
		return "attacking"
	}
	return "selected"
}

// Spec holds the parameters an attack is created with. It never changes
// after creation.
type Spec struct {
	Position  math2.Vec2
	Direction math2.Vec2
	Kind      Kind
	Order     Order
	Distance  float64
	Delay     time.Duration
	Duration  time.Duration
	Aftercast time.Duration
	Damage    int
}

// Attack is the mutable runtime of one attack, owned by the attacking combatant.
type Attack struct {
	Spec

	Phase            Phase
	StartedAt        time.Duration // reset on phase change
	Elapsed          time.Duration // time spent in PhaseAttacking
	PercentCompleted float64
	DamageApplied    bool
}

// NewAttack starts an attack in the telegraph phase at now.
func NewAttack(spec Spec, now time.Duration) *Attack {
	return &Attack{
		Spec:      spec,
		Phase:     PhaseSelected,
		StartedAt: now,
	}
}

// Advance moves the attack to now. Calling it twice with the same now leaves
// the attack as a single call would.
func (a *Attack) Advance(now time.Duration) {
	if a.Phase == PhaseSelected {
		if now-a.StartedAt < a.Delay {
			return
		}
		a.Phase = PhaseAttacking
		a.StartedAt = now
	}

	elapsed := now - a.StartedAt
	if elapsed < a.Elapsed {
		// Time never runs backwards inside a phase.
		elapsed = a.Elapsed
	}
	a.Elapsed = elapsed
	a.PercentCompleted = percentOf(elapsed, a.Duration)
}

func percentOf(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return gamemath.Clamp01(float64(elapsed) / float64(duration))
}

// IsCompleted reports whether the active window and the aftercast are over.
// The boundary tick itself does not count.
func (a *Attack) IsCompleted() bool {
	return a.Phase == PhaseAttacking && a.Elapsed > a.Duration+a.Aftercast
}

// IsActive reports whether the hazard is live: attacking and not yet past
// the active window.
func (a *Attack) IsActive() bool {
	return a.Phase == PhaseAttacking && a.Elapsed <= a.Duration
}

// IsProjectile reports whether the attack is hit-tested continuously.
func (a *Attack) IsProjectile() bool {
	return a.Order == ProjectileFromCaster
}

// Geometry resolves the attack's shape at its current completion.
func (a *Attack) Geometry() Geometry {
	return Resolve(a.Spec, a.PercentCompleted)
}

// Hits tests the current geometry against a target circle.
func (a *Attack) Hits(center math2.Vec2, targetRadius float64) bool {
	return a.Geometry().Hits(center, targetRadius)
}

// TrackHit runs the per-tick hit test of a projectile attack. It reports a hit at
// most once per attack; the attack keeps running for its animation after.
func (a *Attack) TrackHit(center math2.Vec2, targetRadius float64) bool {
	if !a.IsProjectile() || a.Phase != PhaseAttacking || a.DamageApplied {
		return false
	}
	if !a.Hits(center, targetRadius) {
		return false
	}
	a.DamageApplied = true
	return true
}
