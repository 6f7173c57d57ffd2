package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ibaryshnikov/game-design/assets"
	"github.com/ibaryshnikov/game-design/components"
	"github.com/ibaryshnikov/game-design/network"
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/ibaryshnikov/game-design/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NetworkedScene mirrors a fight run by the server
type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	netClient    *network.Client
	once         sync.Once
	arenaLoaded  bool
}

func NewNetworkedScene(sc SceneChanger, opts Options, client *network.Client) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		opts:         opts,
		netClient:    client,
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ns.leave("")
		return
	}

	switch ns.netClient.State() {
	case network.StateError:
		ns.leave(fmt.Sprintf("Connection failed: %v", ns.netClient.LastError()))
		return
	case network.StateDisconnected:
		log.Println("[networked] disconnected, returning to menu")
		ns.leave("Disconnected from " + ns.opts.Address)
		return
	case network.StateJoinedGame:
		ns.onJoined()
	}

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		systems.ApplySnapshot(ns.ecsWorld.World, *snap)
	}
	for _, evt := range ns.netClient.DrainCombatEvents() {
		if evt.Kind == combat.EventAttackHit {
			log.Printf("[networked] %s %s hit for %d", evt.Role, evt.Attack, evt.Damage)
		}
	}
	for _, evt := range ns.netClient.DrainMatchEvents() {
		state := netconfig.MatchStateID(evt.NewState)
		log.Printf("[networked] match %s (%d : %d)", state, evt.HeroWins, evt.BossWins)
		if ns.netClient.Controls() {
			systems.RecordOutcome(state)
		}
	}

	ns.ecsWorld.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	if ns.ecsWorld == nil {
		return
	}
	ns.ecsWorld.Draw(screen)
}

func (ns *NetworkedScene) leave(footer string) {
	ns.netClient.Disconnect()
	ns.sceneChanger.ChangeScene(NewMenuScene(ns.sceneChanger, ns.opts, footer))
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())
	systems.CreateHealthBars(ns.ecsWorld)
	components.View.Get(systems.FrameEntry(ns.ecsWorld)).Status = "Connecting to " + ns.opts.Address

	ns.netClient.Connect(ns.opts.Address, ns.opts.Version, ns.opts.PlayerName)

	sendFn := func(msg any) error {
		if ns.netClient.State() != network.StateJoinedGame {
			return nil
		}
		return ns.netClient.SendMessage(msg)
	}
	ns.ecsWorld.AddSystem(systems.UpdateInput)
	ns.ecsWorld.AddSystem(systems.NewNetworkInputSystem(sendFn, ns.netClient.Controls))
	ns.ecsWorld.AddSystem(systems.NewNetViewSystem(ns.netClient.TickRate))
	ns.ecsWorld.AddSystem(systems.UpdateHealthBars)

	ns.ecsWorld.AddRenderer(systems.LayerArena, systems.DrawArena)
	ns.ecsWorld.AddRenderer(systems.LayerArena, systems.DrawAttacks)
	ns.ecsWorld.AddRenderer(systems.LayerArena, systems.DrawCombatants)
	ns.ecsWorld.AddRenderer(systems.LayerHUD, systems.DrawHUD)
}

// onJoined loads the server's arena once the join is accepted.
func (ns *NetworkedScene) onJoined() {
	if ns.arenaLoaded {
		return
	}
	ns.arenaLoaded = true

	systems.SetArena(ns.ecsWorld, assets.NewArenaLoader().LoadArena(ns.netClient.Session().Arena))

	status := "Spectating " + ns.netClient.Session().ServerName
	if ns.netClient.Controls() {
		status = "Connected to " + ns.netClient.Session().ServerName
	}
	components.View.Get(systems.FrameEntry(ns.ecsWorld)).Status = status
}
