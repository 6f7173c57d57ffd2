package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/config"
	"github.com/ibaryshnikov/game-design/fonts"
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateHealthBars eases every bar toward its combatant's hp fraction.
func UpdateHealthBars(e *ecs.ECS) {
	view := components.View.Get(FrameEntry(e))
	dt := 1 / float32(ebiten.TPS())

	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.HealthBar.Get(entry)
		target := hpFraction(combatantFor(view, bar.Role))
		stepHealthBar(bar, target, dt)
	})
}

// stepHealthBar restarts the tween when the target moves and advances it.
func stepHealthBar(bar *components.HealthBarData, target, dt float32) {
	if target != bar.Target {
		bar.Target = target
		bar.Tween = gween.New(bar.Shown, target, config.UI.HealthBarEase, ease.OutCubic)
	}
	if bar.Tween == nil {
		bar.Shown = bar.Target
		return
	}
	shown, done := bar.Tween.Update(dt)
	bar.Shown = shown
	if done {
		bar.Tween = nil
	}
}

func combatantFor(view *components.ViewData, role combat.Role) combat.CombatantView {
	if role == combat.RoleBoss {
		return view.Boss
	}
	return view.Hero
}

func hpFraction(c combat.CombatantView) float32 {
	if c.MaxHP <= 0 {
		return 0
	}
	f := float32(c.HP) / float32(c.MaxHP)
	if f < 0 {
		return 0
	}
	return f
}

// DrawHUD renders the health bars, the score and the match result.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	view := components.View.Get(FrameEntry(e))
	small := fonts.Small.Get()
	width := float64(screen.Bounds().Dx())
	height := screen.Bounds().Dy()

	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.HealthBar.Get(entry)
		c := combatantFor(view, bar.Role)

		x := config.UI.HealthBarMargin
		if bar.Role == combat.RoleBoss {
			x = width - config.UI.HealthBarMargin - config.UI.HealthBarWidth
		}
		y := config.UI.HealthBarMargin

		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(config.UI.HealthBarWidth), float32(config.UI.HealthBarHeight),
			config.UI.HealthBgColor, false)
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(config.UI.HealthBarWidth)*bar.Shown, float32(config.UI.HealthBarHeight),
			config.UI.HealthFgColor, false)

		label := fmt.Sprintf("%s %d/%d", bar.Role, max(c.HP, 0), c.MaxHP)
		text.Draw(screen, label, small, int(x), int(y+config.UI.HealthBarHeight)+14, config.UI.TextColor)
	})

	score := fmt.Sprintf("%d : %d", view.HeroWins, view.BossWins)
	bold := fonts.Bold.Get()
	text.Draw(screen, score, bold, centered(score, bold, width), int(config.UI.HealthBarMargin)+16, config.UI.TextColor)

	if title := resultTitle(view.Match); title != "" {
		big := fonts.Title.Get()
		text.Draw(screen, title, big, centered(title, big, width), height/2, config.UI.TextColor)
	}

	if view.Status != "" {
		text.Draw(screen, view.Status, small, centered(view.Status, small, width), height-12, config.UI.TextColor)
	}
}

func resultTitle(state netconfig.MatchStateID) string {
	switch state {
	case netconfig.MatchStateHeroWon:
		return "VICTORY"
	case netconfig.MatchStateBossWon:
		return "DEFEAT"
	case netconfig.MatchStateWaiting:
		return "WAITING FOR PLAYER"
	}
	return ""
}

func centered(s string, face font.Face, width float64) int {
	bounds := text.BoundString(face, s)
	return int(width/2) - bounds.Dx()/2
}
