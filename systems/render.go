package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/config"
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	LayerArena ecs.LayerID = iota
	LayerHUD
)

// arcStep is the angular resolution of drawn sectors, in radians.
const arcStep = 0.05

var (
	whiteSubImage *ebiten.Image

	sectorVertices []ebiten.Vertex
	sectorIndices  []uint16
)

// fillSource lazily creates the 1x1 white source used for filled triangles.
func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// DrawArena clears the screen and draws the walls.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(config.UI.BackgroundColor)

	view := components.View.Get(FrameEntry(e))
	for _, w := range view.Walls {
		vector.DrawFilledRect(screen, float32(w.X), float32(w.Y), float32(w.W), float32(w.H),
			config.UI.WallColor, false)
	}
}

// DrawAttacks draws telegraphs and active hazards under the combatants.
func DrawAttacks(e *ecs.ECS, screen *ebiten.Image) {
	view := components.View.Get(FrameEntry(e))
	for _, c := range []combat.CombatantView{view.Boss, view.Hero} {
		if c.Attack != nil {
			drawAttack(screen, *c.Attack)
		}
	}
}

// attackTint picks the fill for an attack: the telegraph color while winding
// up, the hazard color while live, and a faded hazard during the aftercast.
func attackTint(a combat.AttackView) color.RGBA {
	switch {
	case a.Phase == combat.PhaseSelected:
		return config.UI.TelegraphColor
	case a.Active:
		return config.UI.HazardColor
	}
	clr := config.UI.HazardColor
	clr.A /= 3
	return clr
}

func drawAttack(screen *ebiten.Image, a combat.AttackView) {
	clr := attackTint(a)

	g := a.Geometry()
	for _, arc := range g.Arcs {
		fillSector(screen, g, arc, clr)

		// Outline the triangle the hit test actually uses.
		p, b, c := gamemath.SectorTriangle(g.Apex, arc.Start, arc.End, g.Radius)
		strokeTriangle(screen, p.X, p.Y, b.X, b.Y, c.X, c.Y, clr)
	}
}

func fillSector(screen *ebiten.Image, g combat.Geometry, arc combat.Arc, clr color.RGBA) {
	if g.Radius <= 0 {
		return
	}
	span := arc.End - arc.Start
	steps := int(math.Ceil(math.Abs(span) / arcStep))
	if steps < 1 {
		steps = 1
	}

	r, gr, b, a := straightAlpha(clr)
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: b, ColorA: a,
		}
	}

	sectorVertices = append(sectorVertices[:0], vertex(g.Apex.X, g.Apex.Y))
	sectorIndices = sectorIndices[:0]
	for i := 0; i <= steps; i++ {
		angle := arc.Start + span*float64(i)/float64(steps)
		sectorVertices = append(sectorVertices, vertex(
			g.Apex.X+g.Radius*math.Cos(angle),
			g.Apex.Y+g.Radius*math.Sin(angle),
		))
		if i > 0 {
			sectorIndices = append(sectorIndices, 0, uint16(i), uint16(i+1))
		}
	}

	screen.DrawTriangles(sectorVertices, sectorIndices, fillSource(), &ebiten.DrawTrianglesOptions{})
}

func strokeTriangle(screen *ebiten.Image, ax, ay, bx, by, cx, cy float64, clr color.RGBA) {
	edge := color.RGBA{R: clr.R, G: clr.G, B: clr.B, A: 255}
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, edge, true)
	vector.StrokeLine(screen, float32(bx), float32(by), float32(cx), float32(cy), 1, edge, true)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(ax), float32(ay), 1, edge, true)
}

// straightAlpha converts a config color with straight alpha into the
// premultiplied vertex color scale.
func straightAlpha(c color.RGBA) (r, g, b, a float32) {
	a = float32(c.A) / 255
	return float32(c.R) / 255 * a, float32(c.G) / 255 * a, float32(c.B) / 255 * a, a
}

// DrawCombatants draws the hero and the boss with their facing.
func DrawCombatants(e *ecs.ECS, screen *ebiten.Image) {
	view := components.View.Get(FrameEntry(e))
	drawCombatant(screen, view.Boss, config.UI.BossColor)

	heroColor := config.UI.HeroColor
	if view.Hero.Dashing {
		heroColor = config.UI.DashColor
	}
	drawCombatant(screen, view.Hero, heroColor)
}

func drawCombatant(screen *ebiten.Image, c combat.CombatantView, clr color.RGBA) {
	x, y := float32(c.Position.X), float32(c.Position.Y)
	r := float32(c.Radius)
	if c.HP <= 0 {
		clr.A /= 3
	}
	vector.DrawFilledCircle(screen, x, y, r, clr, true)

	if c.Recovering {
		strokeArc(screen, x, y, r+3, recoveryFraction(c), config.UI.TextColor)
	}

	// Facing tick, pointing the way the next attack would go.
	dir := gamemath.Normalize(c.Direction)
	vector.StrokeLine(screen, x, y, x+float32(dir.X)*r*1.5, y+float32(dir.Y)*r*1.5, 2, config.UI.TextColor, true)
}

// recoveryFraction is the share of the recovery window still to run.
func recoveryFraction(c combat.CombatantView) float64 {
	if config.Combat.RecoveryDuration <= 0 {
		return 0
	}
	return gamemath.Clamp01(float64(c.RecoveryLeft) / float64(config.Combat.RecoveryDuration))
}

// strokeArc draws the clockwise arc from twelve o'clock covering frac of a
// full turn.
func strokeArc(screen *ebiten.Image, x, y, r float32, frac float64, clr color.RGBA) {
	span := 2 * math.Pi * frac
	steps := int(math.Ceil(span / arcStep))
	start := -math.Pi / 2
	px, py := x, y-r
	for i := 1; i <= steps; i++ {
		angle := start + span*float64(i)/float64(steps)
		nx := x + r*float32(math.Cos(angle))
		ny := y + r*float32(math.Sin(angle))
		vector.StrokeLine(screen, px, py, nx, ny, 2, clr, true)
		px, py = nx, ny
	}
}
