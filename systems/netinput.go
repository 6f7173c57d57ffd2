package systems

import (
	"log"
	"time"

	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/shared/messages"
	"github.com/ibaryshnikov/game-design/shared/scene"
	"github.com/yohamta/donburi/ecs"
)

const resendInterval = 50 * time.Millisecond

type netInputState struct {
	seq          uint32
	last         scene.Input
	lastSendTime time.Time
}

// NewNetworkInputSystem returns an ECS system that turns the frame's input
// into HeroInput messages. Input is sent when it changes, when an action was
// just pressed, or every resendInterval. Spectators send nothing.
func NewNetworkInputSystem(sendFn func(any) error, controls func() bool) func(*ecs.ECS) {
	state := &netInputState{}

	return func(e *ecs.ECS) {
		if !controls() {
			return
		}
		frame := FrameEntry(e)
		view := components.View.Get(frame)
		in := Controls(components.Input.Get(frame), view.Boss.Position)

		now := time.Now()
		if !state.shouldSend(in, now) {
			return
		}

		state.seq++
		msg := messages.FromInput(state.seq, in)
		msg.Timestamp = now.UnixMilli()
		if err := sendFn(msg); err != nil {
			log.Printf("[netinput] send error: %v", err)
		}

		state.last = in
		state.lastSendTime = now
	}
}

func (s *netInputState) shouldSend(in scene.Input, now time.Time) bool {
	if in.Held != s.last.Held {
		return true
	}
	for _, p := range in.Pressed {
		if p {
			return true
		}
	}
	return now.Sub(s.lastSendTime) >= resendInterval
}
