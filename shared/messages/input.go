package messages

import (
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/ibaryshnikov/game-design/shared/scene"
	math2 "github.com/yohamta/donburi/features/math"
)

// HeroInput is sent from client to server each frame with the hero controls.
type HeroInput struct {
	Sequence  uint32                      // Incrementing ID, echoed in logs
	Held      map[netconfig.ActionID]bool // Which actions are currently held
	Pressed   map[netconfig.ActionID]bool // Which actions went down this frame
	AimX      float64
	AimY      float64
	Aimed     bool
	Timestamp int64 // Client timestamp (Unix ms)
}

// NewHeroInput creates a HeroInput with initialized maps
func NewHeroInput(seq uint32) HeroInput {
	return HeroInput{
		Sequence: seq,
		Held:     make(map[netconfig.ActionID]bool),
		Pressed:  make(map[netconfig.ActionID]bool),
	}
}

// FromInput fills the message from a frame of scene controls.
func FromInput(seq uint32, in scene.Input) HeroInput {
	msg := NewHeroInput(seq)
	for a := netconfig.ActionID(0); a < netconfig.ActionCount; a++ {
		if in.Held[a] {
			msg.Held[a] = true
		}
		if in.Pressed[a] {
			msg.Pressed[a] = true
		}
	}
	msg.AimX, msg.AimY, msg.Aimed = in.Aim.X, in.Aim.Y, in.Aimed
	return msg
}

// Input converts the message back into scene controls, dropping unknown
// action ids.
func (m HeroInput) Input() scene.Input {
	in := scene.Input{Aim: math2.Vec2{X: m.AimX, Y: m.AimY}, Aimed: m.Aimed}
	for a, on := range m.Held {
		if a >= 0 && a < netconfig.ActionCount {
			in.Held[a] = on
		}
	}
	for a, on := range m.Pressed {
		if a >= 0 && a < netconfig.ActionCount {
			in.Pressed[a] = on
		}
	}
	return in
}
