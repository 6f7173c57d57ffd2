package scene

import (
	"log"
	"math"

	"github.com/ibaryshnikov/game-design/config"
	"github.com/ibaryshnikov/game-design/shared/leveldata"
	"github.com/ibaryshnikov/game-design/tags"
	"github.com/solarlune/resolv"
	math2 "github.com/yohamta/donburi/features/math"
)

// Arena is the level's collision space. It resolves combatant movement against
// the solid walls and implements combat.Arena.
type Arena struct {
	Space  *resolv.Space
	Walls  []*resolv.Object
	Width  float64
	Height float64

	// mover stands in for whichever circle is moving. Moves run one at a
	// time, so a single object is enough.
	mover *resolv.Object
}

// NewArena builds a resolv.Space from parsed arena data.
func NewArena(data *leveldata.ArenaData) *Arena {
	cell := config.Arena.CellSize
	space := resolv.NewSpace(data.Width, data.Height, cell, cell)

	a := &Arena{
		Space:  space,
		Width:  float64(data.Width),
		Height: float64(data.Height),
	}
	for _, r := range data.Walls {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
		a.Walls = append(a.Walls, obj)
	}

	a.mover = resolv.NewObject(0, 0, 1, 1, tags.ResolvMover)
	space.Add(a.mover)
	return a
}

// Move steps a circle of the given radius from its center by delta, stopping
// at walls. Each axis is resolved separately so bodies slide along walls.
func (a *Arena) Move(from, delta math2.Vec2, radius float64) math2.Vec2 {
	p := a.mover
	p.X = from.X - radius
	p.Y = from.Y - radius
	p.W = 2 * radius
	p.H = 2 * radius
	p.Update()

	if dx := delta.X; dx != 0 {
		if check := p.Check(dx, 0, tags.ResolvSolid); check != nil {
			for _, wall := range check.ObjectsByTags(tags.ResolvSolid) {
				if !spansOverlap(p.Y, p.H, wall.Y, wall.H) {
					continue
				}
				dx = clampStep(dx, check.ContactWithObject(wall).X())
			}
		}
		p.X += dx
		p.Update()
	}

	if dy := delta.Y; dy != 0 {
		if check := p.Check(0, dy, tags.ResolvSolid); check != nil {
			for _, wall := range check.ObjectsByTags(tags.ResolvSolid) {
				if !spansOverlap(p.X, p.W, wall.X, wall.W) {
					continue
				}
				dy = clampStep(dy, check.ContactWithObject(wall).Y())
			}
		}
		p.Y += dy
		p.Update()
	}

	return math2.Vec2{
		X: clampSpan(p.X+radius, radius, a.Width),
		Y: clampSpan(p.Y+radius, radius, a.Height),
	}
}

// Contains reports whether a circle lies fully inside the arena bounds.
func (a *Arena) Contains(center math2.Vec2, radius float64) bool {
	return center.X-radius >= 0 && center.Y-radius >= 0 &&
		center.X+radius <= a.Width && center.Y+radius <= a.Height
}

// Spawn returns where a combatant of the given radius starts. Spawns that
// poke out of the arena are pulled back inside.
func (a *Arena) Spawn(role string, at math2.Vec2, radius float64) math2.Vec2 {
	if a.Contains(at, radius) {
		return at
	}
	fixed := math2.Vec2{
		X: clampSpan(at.X, radius, a.Width),
		Y: clampSpan(at.Y, radius, a.Height),
	}
	log.Printf("[scene] Warning: %s spawn (%.0f, %.0f) is outside the arena, moved to (%.0f, %.0f)",
		role, at.X, at.Y, fixed.X, fixed.Y)
	return fixed
}

// spansOverlap reports whether [a, a+aw) and [b, b+bw) intersect.
func spansOverlap(a, aw, b, bw float64) bool {
	return a < b+bw && b < a+aw
}

// contactSlop absorbs rounding when a body already rests against a wall.
const contactSlop = 1e-6

// clampStep shortens step to the contact distance when the wall lies ahead
// within reach. Walls behind the body never push it.
func clampStep(step, contact float64) float64 {
	if step > 0 && contact >= -contactSlop && contact < step {
		return contact
	}
	if step < 0 && contact <= contactSlop && contact > step {
		return contact
	}
	return step
}

func clampSpan(v, radius, size float64) float64 {
	if size <= 2*radius {
		return size / 2
	}
	return math.Max(radius, math.Min(v, size-radius))
}
