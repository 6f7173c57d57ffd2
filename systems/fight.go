package systems

import (
	"log"
	"time"

	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/config"
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/scene"
	"github.com/yohamta/donburi/ecs"
)

// NewFightSystem advances a local fight by one engine tick per frame and
// publishes its snapshot. The game runs at config.Server.TickRate so local
// and server fights step identically.
func NewFightSystem(fight *scene.Scene) func(*ecs.ECS) {
	dt := time.Second / time.Duration(config.Server.TickRate)
	recorded := false

	return func(e *ecs.ECS) {
		frame := FrameEntry(e)
		input := components.Input.Get(frame)
		view := components.View.Get(frame)

		fight.Apply(Controls(input, view.Boss.Position))
		for _, ev := range fight.Update(dt) {
			logEvent(ev)
		}

		snap := fight.Snapshot()
		publishSnapshot(view, snap)

		switch {
		case snap.Match.Decided() && !recorded:
			RecordOutcome(snap.Match)
			recorded = true
		case !snap.Match.Decided():
			recorded = false
		}
	}
}

func logEvent(ev combat.Event) {
	switch ev.Kind {
	case combat.EventAttackHit:
		log.Printf("[fight] %s %s hit for %d at %v", ev.Role, ev.Attack, ev.Damage, ev.At)
	case combat.EventDashStarted:
		log.Printf("[fight] %s dashed at %v", ev.Role, ev.At)
	}
}
