package scenes

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ibaryshnikov/game-design/assets"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/config"
	"github.com/ibaryshnikov/game-design/network"
	"github.com/ibaryshnikov/game-design/systems"
	"github.com/ibaryshnikov/game-design/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Options are the client's command line settings.
type Options struct {
	Address    string // Server to join, empty for offline only
	PlayerName string
	Version    string
}

// MenuScene lists the embedded arenas and a server to join, using ebitenui
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	opts         Options
	footer       string
	once         sync.Once

	settings *systems.SavedSettings
	picked   *components.MenuItem
}

// NewMenuScene creates a new menu scene. A non-empty footer replaces the
// battle record line, e.g. with a connection error.
func NewMenuScene(sc SceneChanger, opts Options, footer string) *MenuScene {
	return &MenuScene{sceneChanger: sc, opts: opts, footer: footer}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.picked != nil {
		ms.start(*ms.picked)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.UI.BackgroundColor)

	if ms.ecs == nil {
		return
	}

	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.settings = systems.LoadSettings()
	if ms.settings == nil {
		ms.settings = &systems.SavedSettings{}
	}

	items, selected := menuItems(assets.NewArenaLoader().ListArenaNames(), ms.opts.Address, ms.settings.LastArena)

	footer := ms.footer
	if footer == "" {
		r := systems.LoadRecord()
		footer = fmt.Sprintf("Record: %d wins, %d losses", r.Wins, r.Losses)
	}
	menu := systems.CreateMenu(ms.ecs, items, selected, footer)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.pick))

	ms.menuUI = ui.NewMenuUI(menu, defaultAddress(ms.opts.Address), ms.pick, func() { os.Exit(0) })
}

// pick records the first chosen item; the scene changes after the frame's
// updates so keyboard and mouse cannot both fire.
func (ms *MenuScene) pick(item components.MenuItem) {
	if ms.picked == nil {
		ms.picked = &item
	}
}

func (ms *MenuScene) start(item components.MenuItem) {
	if item.Online {
		opts := ms.opts
		opts.Address = item.Address
		ms.sceneChanger.ChangeScene(NewNetworkedScene(ms.sceneChanger, opts, network.NewClient()))
		return
	}
	ms.settings.LastArena = item.Arena
	if err := systems.SaveSettings(ms.settings); err != nil {
		log.Printf("[menu] Failed to save settings: %v", err)
	}
	ms.sceneChanger.ChangeScene(NewBattleScene(ms.sceneChanger, ms.opts, item.Arena))
}

// defaultAddress is the server offered when the address field is empty.
func defaultAddress(configured string) string {
	if configured != "" {
		return configured
	}
	return fmt.Sprintf("localhost:%d", config.Server.Port)
}

// menuItems builds one entry per arena plus the server, preselecting the
// last arena played.
func menuItems(arenas []string, address, last string) ([]components.MenuItem, int) {
	if len(arenas) == 0 {
		arenas = []string{"default"}
	}

	var items []components.MenuItem
	selected := 0
	for i, name := range arenas {
		items = append(items, components.MenuItem{Label: "Fight in " + name, Arena: name})
		if name == last {
			selected = i
		}
	}
	if address != "" {
		items = append(items, ui.JoinItem(address))
	}
	return items, selected
}
