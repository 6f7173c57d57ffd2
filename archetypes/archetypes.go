package archetypes

import (
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/tags"
	"github.com/yohamta/donburi"
)

var (
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Match = newArchetype(
		components.Match,
	)
	HealthBar = newArchetype(
		tags.HealthBar,
		components.HealthBar,
	)
	// Frame is the client singleton holding input and the view to draw.
	Frame = newArchetype(
		components.Input,
		components.View,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
