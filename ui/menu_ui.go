package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/config"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the ebitenui main menu: one button per menu item, a direct
// connect panel and a status line.
type MenuUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	OnPick func(item components.MenuItem)
	OnQuit func()

	itemButtons  []*widget.Button
	addressInput *widget.TextInput
	statusLabel  *widget.Label

	defaultAddress string

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds the menu for the given state. defaultAddress is used when
// the address field is left empty.
func NewMenuUI(menu *components.MenuData, defaultAddress string, onPick func(components.MenuItem), onQuit func()) *MenuUI {
	ui := &MenuUI{
		Menu:           menu,
		OnPick:         onPick,
		OnQuit:         onQuit,
		defaultAddress: defaultAddress,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.UpdateUI()
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 13}
}

func (ui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.UI.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("BOSS ARENA", &ui.titleFace, &widget.LabelColor{
			Idle: config.UI.BossColor,
		}),
	))

	for i, item := range ui.Menu.Items {
		if item.Online {
			continue
		}
		btn := ui.itemButton(i, item)
		ui.itemButtons = append(ui.itemButtons, btn)
		contentContainer.AddChild(btn)
	}

	contentContainer.AddChild(ui.buildConnectPanel())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("W/S to choose, J or Enter to start, Esc to quit", &ui.smallFace, &widget.LabelColor{
			Idle: config.UI.TextColor,
		}),
	))

	contentContainer.AddChild(ui.buildQuitButton())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) itemButton(index int, item components.MenuItem) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 32)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(item.Label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.Menu.SelectedIndex = index
			if ui.OnPick != nil {
				ui.OnPick(item)
			}
		}),
	)
}

func (ui *MenuUI) buildConnectPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Server:", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	ui.addressInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 26)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(ui.defaultAddress),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	panel.AddChild(ui.addressInput)

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 26)),
		widget.ButtonOpts.Image(joinButtonImage()),
		widget.ButtonOpts.Text("Join", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnPick != nil {
				ui.OnPick(JoinItem(ui.address()))
			}
		}),
	))

	return panel
}

func (ui *MenuUI) buildQuitButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Quit", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnQuit != nil {
				ui.OnQuit()
			}
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func joinButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

func (ui *MenuUI) address() string {
	return addressOr(ui.addressInput.GetText(), ui.defaultAddress)
}

// addressOr returns typed, or fallback when nothing was typed.
func addressOr(typed, fallback string) string {
	if typed == "" {
		return fallback
	}
	return typed
}

// JoinItem is the menu entry that joins the server at address.
func JoinItem(address string) components.MenuItem {
	return components.MenuItem{Label: "Join " + address, Online: true, Address: address}
}

// ItemLabel marks the keyboard selection.
func ItemLabel(item components.MenuItem, selected bool) string {
	if selected {
		return fmt.Sprintf("> %s <", item.Label)
	}
	return item.Label
}

// UpdateUI refreshes the button labels and the status line from the menu
// state.
func (ui *MenuUI) UpdateUI() {
	n := 0
	for i, item := range ui.Menu.Items {
		if item.Online {
			continue
		}
		if textWidget := ui.itemButtons[n].Text(); textWidget != nil {
			textWidget.Label = ItemLabel(item, i == ui.Menu.SelectedIndex)
		}
		n++
	}
	if ui.statusLabel != nil {
		status := ui.Menu.Footer
		if sel := ui.Menu.SelectedIndex; sel >= 0 && sel < len(ui.Menu.Items) && ui.Menu.Items[sel].Online {
			status = ItemLabel(ui.Menu.Items[sel], true) + "   " + status
		}
		ui.statusLabel.Label = status
	}
}

// Update calls the UI's Update method
func (ui *MenuUI) Update() {
	ui.UI.Update()
	ui.UpdateUI()
}
