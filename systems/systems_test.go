package systems

import (
	"testing"
	"time"

	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/config"
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/netcomponents"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/ibaryshnikov/game-design/shared/scene"
	"github.com/leap-fish/necs/esync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestNavigateWraps(t *testing.T) {
	assert.Equal(t, 2, navigate(0, 3, true, false))
	assert.Equal(t, 0, navigate(2, 3, false, true))
	assert.Equal(t, 1, navigate(1, 3, false, false))
}

func TestMenuConfirm(t *testing.T) {
	var in components.InputData
	assert.False(t, confirmed(&in))

	in.Current[netconfig.ActionAttackPrimary] = true
	assert.True(t, confirmed(&in), "the attack key picks the item")

	in.MouseAim = true
	assert.False(t, confirmed(&in), "clicks are left to the menu buttons")

	in.Current[netconfig.ActionRestart] = true
	assert.True(t, confirmed(&in))
}

func TestHealthBarEasesToTarget(t *testing.T) {
	bar := &components.HealthBarData{Role: combat.RoleHero, Shown: 1, Target: 1}

	stepHealthBar(bar, 0.65, 0.01)
	assert.Less(t, bar.Shown, float32(1))
	assert.Greater(t, bar.Shown, float32(0.65))
	require.NotNil(t, bar.Tween)

	for i := 0; i < 100; i++ {
		stepHealthBar(bar, 0.65, 0.01)
	}
	assert.InDelta(t, 0.65, bar.Shown, 1e-4)
	assert.Nil(t, bar.Tween)
}

func TestHPFraction(t *testing.T) {
	assert.Equal(t, float32(0.5), hpFraction(combat.CombatantView{HP: 50, MaxHP: 100}))
	assert.Equal(t, float32(0), hpFraction(combat.CombatantView{HP: -10, MaxHP: 100}))
	assert.Equal(t, float32(0), hpFraction(combat.CombatantView{}))
}

func TestControlsAim(t *testing.T) {
	boss := math2.Vec2{X: 700, Y: 300}
	var in components.InputData
	in.Current[netconfig.ActionAttackPrimary] = true
	in.Cursor = math2.Vec2{X: 10, Y: 20}

	got := Controls(&in, boss)
	assert.True(t, got.Pressed[netconfig.ActionAttackPrimary])
	assert.Equal(t, boss, got.Aim, "keyboard attacks aim at the boss")
	assert.True(t, got.Aimed)

	in.MouseAim = true
	assert.Equal(t, in.Cursor, Controls(&in, boss).Aim)
}

func TestNetInputSendsOnChange(t *testing.T) {
	now := time.Unix(100, 0)
	s := &netInputState{lastSendTime: now}

	assert.False(t, s.shouldSend(scene.Input{}, now.Add(10*time.Millisecond)))

	var held scene.Input
	held.Held[netconfig.ActionMoveUp] = true
	assert.True(t, s.shouldSend(held, now.Add(10*time.Millisecond)))

	var pressed scene.Input
	pressed.Pressed[netconfig.ActionDash] = true
	assert.True(t, s.shouldSend(pressed, now.Add(10*time.Millisecond)))

	assert.True(t, s.shouldSend(scene.Input{}, now.Add(resendInterval)), "keepalive resend")
}

func TestBuildNetView(t *testing.T) {
	world := donburi.NewWorld()
	spawn := func(id esync.NetworkId, cs ...donburi.IComponentType) *donburi.Entry {
		entry := world.Entry(world.Create(append(cs, esync.NetworkIdComponent)...))
		esync.NetworkIdComponent.SetValue(entry, id)
		return entry
	}

	boss := spawn(1, netcomponents.NetPosition, netcomponents.NetCombatant)
	netcomponents.NetPosition.SetValue(boss, netcomponents.NetPositionData{X: 700, Y: 300})
	netcomponents.NetCombatant.SetValue(boss, netcomponents.NetCombatantData{
		Role: combat.RoleBoss, Health: 580, MaxHealth: 600, Radius: 26,
	})

	attack := spawn(2, netcomponents.NetAttack)
	netcomponents.NetAttack.SetValue(attack, netcomponents.NetAttackData{
		Role: combat.RoleBoss, Active: true, Phase: combat.PhaseSelected,
		Kind: combat.KindCircle, Distance: 150,
	})

	idle := spawn(3, netcomponents.NetAttack)
	netcomponents.NetAttack.SetValue(idle, netcomponents.NetAttackData{Role: combat.RoleHero})

	game := spawn(4, netcomponents.NetGameState)
	netcomponents.NetGameState.SetValue(game, netcomponents.NetGameStateData{
		MatchState: netconfig.MatchStateHeroWon, HeroWins: 2, BossWins: 1,
	})

	view := &components.ViewData{Hero: combat.CombatantView{Attack: &combat.AttackView{}}}
	BuildNetView(world, view)

	assert.Equal(t, 580, view.Boss.HP)
	assert.Equal(t, math2.Vec2{X: 700, Y: 300}, view.Boss.Position)
	require.NotNil(t, view.Boss.Attack)
	assert.Equal(t, combat.PhaseSelected, view.Boss.Attack.Phase)
	assert.Nil(t, view.Hero.Attack, "inactive attacks clear the view")
	assert.Equal(t, netconfig.MatchStateHeroWon, view.Match)
	assert.Equal(t, 2, view.HeroWins)
}

func TestAttackTint(t *testing.T) {
	assert.Equal(t, config.UI.TelegraphColor, attackTint(combat.AttackView{Phase: combat.PhaseSelected}))
	assert.Equal(t, config.UI.HazardColor, attackTint(combat.AttackView{Phase: combat.PhaseAttacking, Active: true}))

	faded := attackTint(combat.AttackView{Phase: combat.PhaseAttacking})
	assert.Less(t, faded.A, config.UI.HazardColor.A, "the aftercast fades out")
}

func TestRecoveryFraction(t *testing.T) {
	full := combat.CombatantView{Recovering: true, RecoveryLeft: config.Combat.RecoveryDuration}
	assert.Equal(t, 1.0, recoveryFraction(full))

	half := combat.CombatantView{Recovering: true, RecoveryLeft: config.Combat.RecoveryDuration / 2}
	assert.InDelta(t, 0.5, recoveryFraction(half), 1e-9)

	assert.Equal(t, 0.0, recoveryFraction(combat.CombatantView{}))
}
