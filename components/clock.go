package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the scene's simulation time. Every attack, recovery and dash
// timestamp is measured against Now, never against the wall clock.
type ClockData struct {
	Now  time.Duration
	Tick uint64
}

var Clock = donburi.NewComponentType[ClockData]()
