package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ibaryshnikov/game-design/config"
	"github.com/ibaryshnikov/game-design/fonts"
	"github.com/ibaryshnikov/game-design/scenes"
	"github.com/ibaryshnikov/game-design/shared/protocol"
	"github.com/ibaryshnikov/game-design/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options, arena string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	switch {
	case arena != "":
		g.scene = scenes.NewBattleScene(g, opts, arena)
	default:
		g.scene = scenes.NewMenuScene(g, opts, "")
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.UI.Width, config.UI.Height)
	return config.UI.Width, config.UI.Height
}

func main() {
	var opts scenes.Options
	flag.StringVar(&opts.Address, "connect", "", "server address (host:port) offered in the menu")
	flag.StringVar(&opts.PlayerName, "name", "Hero", "player name sent to the server")
	flag.StringVar(&opts.Version, "version", "", "client version sent to the server")
	arena := flag.String("arena", "", "skip the menu and fight offline in this arena")
	flag.Parse()

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}
	if err := fonts.LoadGoFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// The fight steps once per frame, so frames run at the engine tick rate.
	ebiten.SetTPS(config.Server.TickRate)
	ebiten.SetWindowSize(config.UI.Width, config.UI.Height)
	ebiten.SetWindowTitle("Boss Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.ApplySavedSettings(systems.LoadSettings())

	if err := ebiten.RunGame(NewGame(opts, *arena)); err != nil {
		log.Fatal(err)
	}
}
