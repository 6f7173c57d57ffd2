package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/yohamta/donburi/ecs"
)

// CreateMenu spawns the menu singleton with the given items.
func CreateMenu(e *ecs.ECS, items []components.MenuItem, selected int, footer string) *components.MenuData {
	entry := e.World.Entry(e.World.Create(components.Menu))
	if selected < 0 || selected >= len(items) {
		selected = 0
	}
	components.Menu.SetValue(entry, components.MenuData{
		Items:         items,
		SelectedIndex: selected,
		Footer:        footer,
	})
	return components.Menu.Get(entry)
}

// NewUpdateMenu creates the keyboard and gamepad navigation system. onSelect
// runs once for the chosen item. Mouse clicks go through the menu UI.
func NewUpdateMenu(onSelect func(components.MenuItem)) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Menu.First(e.World)
		if !ok {
			return
		}
		menu := components.Menu.Get(entry)
		input := components.Input.Get(FrameEntry(e))

		n := len(menu.Items)
		if n == 0 {
			return
		}
		menu.SelectedIndex = navigate(menu.SelectedIndex, n,
			input.JustPressed(netconfig.ActionMoveUp),
			input.JustPressed(netconfig.ActionMoveDown))

		if confirmed(input) {
			onSelect(menu.Items[menu.SelectedIndex])
			return
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			os.Exit(0)
		}
	}
}

// confirmed reports whether the frame picks the selected item. Left clicks
// are bound to the primary attack but belong to the menu buttons.
func confirmed(input *components.InputData) bool {
	if input.JustPressed(netconfig.ActionRestart) {
		return true
	}
	return input.JustPressed(netconfig.ActionAttackPrimary) && !input.MouseAim
}

// navigate moves a selection with wrap-around.
func navigate(index, n int, up, down bool) int {
	if up {
		index = (index - 1 + n) % n
	}
	if down {
		index = (index + 1) % n
	}
	return index
}
