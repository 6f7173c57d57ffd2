package combat

import "time"

// Recovery is the uninterruptible cooldown a combatant enters right after
// one of its attacks completes. Idle is represented by a nil *Recovery.
type Recovery struct {
	StartedAt time.Duration
	Duration  time.Duration
}

// NewRecovery starts a recovery window at now.
func NewRecovery(now, duration time.Duration) *Recovery {
	return &Recovery{StartedAt: now, Duration: duration}
}

// Done reports whether the window has elapsed at now.
func (r *Recovery) Done(now time.Duration) bool {
	return now-r.StartedAt >= r.Duration
}

// Remaining returns the time left in the window, never negative.
func (r *Recovery) Remaining(now time.Duration) time.Duration {
	left := r.Duration - (now - r.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Character is the recovery capability shared by every combatant.
type Character interface {
	RecoveringState() *Recovery
	ClearRecoveringState()
	StartRecovering(now time.Duration)
}

// AdvanceRecovery clears the character's recovery once it has elapsed.
func AdvanceRecovery(c Character, now time.Duration) {
	r := c.RecoveringState()
	if r == nil {
		return
	}
	if r.Done(now) {
		c.ClearRecoveringState()
	}
}
