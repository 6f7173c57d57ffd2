package combat

import (
	"time"

	math2 "github.com/yohamta/donburi/features/math"
)

const tick = 10 * time.Millisecond

// at returns the clock value of the n-th server tick.
func at(n int) time.Duration {
	return time.Duration(n) * tick
}

// dummy is a stationary target that records what it receives.
type dummy struct {
	pos  math2.Vec2
	hp   int
	hits []int
}

func newDummy(x, y float64) *dummy {
	return &dummy{pos: math2.Vec2{X: x, Y: y}, hp: 1000}
}

func (d *dummy) HitPoint() math2.Vec2 { return d.pos }

func (d *dummy) ReceiveDamage(amount int) int {
	n := applyDamage(&d.hp, amount)
	d.hits = append(d.hits, n)
	return n
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}
