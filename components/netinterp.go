package components

import "github.com/yohamta/donburi"

// NetInterpData stores interpolation state for smooth rendering of remote
// combatants between server snapshots.
type NetInterpData struct {
	PrevX, PrevY     float64
	TargetX, TargetY float64
	T                float64
	Initialized      bool
}

// Step advances the interpolation by dt of the snapshot interval and returns
// the position to draw.
func (d *NetInterpData) Step(dt float64) (x, y float64) {
	d.T += dt
	if d.T > 1 {
		d.T = 1
	}
	return d.PrevX + (d.TargetX-d.PrevX)*d.T, d.PrevY + (d.TargetY-d.PrevY)*d.T
}

// Retarget starts a new interpolation from the drawn position toward x, y.
// The first call snaps straight to the target.
func (d *NetInterpData) Retarget(fromX, fromY, x, y float64) {
	if !d.Initialized {
		fromX, fromY = x, y
		d.Initialized = true
	}
	d.PrevX, d.PrevY = fromX, fromY
	d.TargetX, d.TargetY = x, y
	d.T = 0
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
