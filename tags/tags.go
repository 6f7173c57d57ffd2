package tags

import "github.com/yohamta/donburi"

var (
	Hero      = donburi.NewTag().SetName("Hero")
	Boss      = donburi.NewTag().SetName("Boss")
	Wall      = donburi.NewTag().SetName("Wall")
	HealthBar = donburi.NewTag().SetName("HealthBar")
)

// Resolv tags for arena collision
const (
	ResolvSolid = "solid"
	ResolvMover = "mover"
)
