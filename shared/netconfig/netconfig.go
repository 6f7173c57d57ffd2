// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateWaiting MatchStateID = iota // No hero controller connected yet
	MatchStatePlaying                     // Active fight
	MatchStateHeroWon                     // Boss hp reached zero
	MatchStateBossWon                     // Hero hp reached zero
)

var matchStateNames = map[MatchStateID]string{
	MatchStateWaiting: "waiting",
	MatchStatePlaying: "playing",
	MatchStateHeroWon: "hero_won",
	MatchStateBossWon: "boss_won",
}

func (m MatchStateID) String() string {
	if name, ok := matchStateNames[m]; ok {
		return name
	}
	return "unknown"
}

// Decided reports whether the match has a winner.
func (m MatchStateID) Decided() bool {
	return m == MatchStateHeroWon || m == MatchStateBossWon
}

// StateID identifies what a combatant is doing, for HUD and animation.
type StateID int

const (
	StateIdle StateID = iota
	StateMoving
	StateTelegraphing
	StateAttacking
	StateRecovering
	StateDashing
	StateDefeated
)

// StateToName maps StateID to its display name.
var StateToName = map[StateID]string{
	StateIdle:         "idle",
	StateMoving:       "moving",
	StateTelegraphing: "telegraphing",
	StateAttacking:    "attacking",
	StateRecovering:   "recovering",
	StateDashing:      "dashing",
	StateDefeated:     "defeated",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}

// ActionID represents a logical hero action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionAttackPrimary
	ActionAttackSecondary
	ActionAttackRanged
	ActionDash
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// AttackSlot returns the hero attack slot bound to an attack action.
func (a ActionID) AttackSlot() (int, bool) {
	switch a {
	case ActionAttackPrimary:
		return 0, true
	case ActionAttackSecondary:
		return 1, true
	case ActionAttackRanged:
		return 2, true
	}
	return 0, false
}
