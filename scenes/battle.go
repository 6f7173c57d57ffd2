package scenes

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ibaryshnikov/game-design/assets"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/shared/scene"
	"github.com/ibaryshnikov/game-design/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const offlineHint = "WASD move, J/K/L or mouse attack, Space dash, R restart, Esc menu"

// BattleScene runs a local fight against the boss
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	arena        string
	once         sync.Once
}

func NewBattleScene(sc SceneChanger, opts Options, arena string) *BattleScene {
	return &BattleScene{sceneChanger: sc, opts: opts, arena: arena}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		bs.sceneChanger.ChangeScene(NewMenuScene(bs.sceneChanger, bs.opts, ""))
		return
	}
	bs.ecs.Update()
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) configure() {
	bs.ecs = ecs.NewECS(donburi.NewWorld())

	data := assets.NewArenaLoader().LoadArena(bs.arena)
	fight := scene.New(data, assets.BossAttacks())
	log.Printf("[battle] Fighting in %s", data.Name)

	systems.SetArena(bs.ecs, data)
	systems.CreateHealthBars(bs.ecs)
	components.View.Get(systems.FrameEntry(bs.ecs)).Status = offlineHint

	bs.ecs.AddSystem(systems.UpdateInput)
	bs.ecs.AddSystem(systems.NewFightSystem(fight))
	bs.ecs.AddSystem(systems.UpdateHealthBars)

	bs.ecs.AddRenderer(systems.LayerArena, systems.DrawArena)
	bs.ecs.AddRenderer(systems.LayerArena, systems.DrawAttacks)
	bs.ecs.AddRenderer(systems.LayerArena, systems.DrawCombatants)
	bs.ecs.AddRenderer(systems.LayerHUD, systems.DrawHUD)
}
