package core

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/leveldata"
	"github.com/ibaryshnikov/game-design/shared/messages"
	"github.com/ibaryshnikov/game-design/shared/scene"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// peer is the part of a network client the server talks to.
type peer interface {
	Id() string
	SendMessage(msg any) error
}

// Options configures a Server.
type Options struct {
	Name       string
	Version    string // Required client version, empty accepts any
	TickRate   int
	ResetDelay time.Duration
	Arena      *leveldata.ArenaData
	Attacks    combat.AttackSet
}

type session struct {
	name   string
	token  string
	joined bool
}

// Server runs the authoritative scene and mirrors it to connected clients.
// The scene and the mirror world are only touched from the game loop; router
// callbacks queue work under mu.
type Server struct {
	opts      Options
	scene     *scene.Scene
	world     donburi.World
	mirror    *mirror
	loop      *GameLoop
	transport *transports.WsServerTransport
	syncing   bool

	mu         sync.Mutex
	sessions   map[peer]*session
	controller peer
	heroToken  string
	inputs     []scene.Input
}

// NewServer creates a new game server
func NewServer(opts Options) *Server {
	world := donburi.NewWorld()
	s := &Server{
		opts:     opts,
		scene:    scene.New(opts.Arena, opts.Attacks),
		world:    world,
		mirror:   newMirror(world),
		sessions: make(map[peer]*session),
	}
	s.loop = NewGameLoop(s, opts.TickRate)
	s.mirror.update(s.scene)
	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	if err := s.mirror.enableSync(); err != nil {
		return fmt.Errorf("enable sync: %w", err)
	}
	s.syncing = true
	s.setupRouterCallbacks()

	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoin(client, req)
	})

	router.On(func(client *router.NetworkClient, input messages.HeroInput) {
		s.onHeroInput(client, input)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] Client error: %v", err)
	})
}

func (s *Server) onConnect(p peer) {
	log.Printf("[server] Client connected: %s", p.Id())

	s.mu.Lock()
	s.sessions[p] = &session{}
	s.mu.Unlock()
}

func (s *Server) onDisconnect(p peer, err error) {
	if err != nil {
		log.Printf("[server] Client %s disconnected with error: %v", p.Id(), err)
	} else {
		log.Printf("[server] Client %s disconnected", p.Id())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, p)
	if s.controller == p {
		s.controller = nil
		// Release every held key so the hero stops where it stands.
		s.inputs = append(s.inputs, scene.Input{})
		log.Printf("[server] Hero released by %s", p.Id())
	}
}

// onJoin accepts a client. The first client to join controls the hero; a
// client presenting the hero's session token takes it back. Everyone else
// spectates.
func (s *Server) onJoin(p peer, req messages.JoinRequest) {
	if s.opts.Version != "" && req.Version != s.opts.Version {
		log.Printf("[server] Rejecting %s: version %q, want %q", p.Id(), req.Version, s.opts.Version)
		s.send(p, messages.JoinRejected{
			Reason: fmt.Sprintf("version mismatch: server %s, client %s", s.opts.Version, req.Version),
		})
		return
	}

	s.mu.Lock()
	sess, ok := s.sessions[p]
	if !ok {
		sess = &session{}
		s.sessions[p] = sess
	}
	sess.name = req.PlayerName
	sess.joined = true

	reclaim := req.SessionToken != "" && req.SessionToken == s.heroToken
	controls := s.controller == nil || reclaim
	switch {
	case reclaim:
		sess.token = req.SessionToken
	case sess.token == "":
		sess.token = uuid.NewString()
	}
	if controls {
		s.controller = p
		s.heroToken = sess.token
		s.inputs = nil
	}
	token := sess.token
	s.mu.Unlock()

	log.Printf("[server] %s joined as %q (controls hero: %t)", p.Id(), req.PlayerName, controls)
	s.send(p, messages.JoinAccepted{
		NetworkID:    s.mirror.heroID(),
		SessionToken: token,
		ServerName:   s.opts.Name,
		Arena:        s.scene.Data.Name,
		TickRate:     s.opts.TickRate,
		Controls:     controls,
	})
}

func (s *Server) onHeroInput(p peer, input messages.HeroInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.controller != p {
		return
	}
	s.inputs = append(s.inputs, input.Input())
}

// Step applies queued input and advances the scene by one tick, resetting a
// decided match once it has been shown for the reset delay.
func (s *Server) Step(dt time.Duration) []combat.Event {
	s.mu.Lock()
	inputs := s.inputs
	s.inputs = nil
	s.mu.Unlock()

	before := s.scene.Match().State
	for _, in := range inputs {
		s.scene.Apply(in)
	}
	events := s.scene.Update(dt)
	if s.scene.ReadyForReset(s.opts.ResetDelay) {
		s.scene.Reset()
	}
	s.mirror.update(s.scene)

	for _, e := range events {
		s.broadcast(messages.FromEvent(e))
	}
	if m := s.scene.Match(); m.State != before {
		s.broadcast(messages.MatchStateChangeEvent{
			NewState: int(m.State),
			HeroWins: m.HeroWins,
			BossWins: m.BossWins,
		})
	}
	return events
}

func (s *Server) flushSync() {
	if !s.syncing {
		return
	}
	if err := s.mirror.sync(); err != nil {
		log.Printf("[server] Sync error: %v", err)
	}
}

func (s *Server) broadcast(msg any) {
	s.mu.Lock()
	peers := make([]peer, 0, len(s.sessions))
	for p, sess := range s.sessions {
		if sess.joined {
			peers = append(peers, p)
		}
	}
	s.mu.Unlock()

	for _, p := range peers {
		s.send(p, msg)
	}
}

func (s *Server) send(p peer, msg any) {
	if err := p.SendMessage(msg); err != nil {
		log.Printf("[server] Failed to send %T to %s: %v", msg, p.Id(), err)
	}
}

// Scene returns the authoritative scene. Only safe from the game loop.
func (s *Server) Scene() *scene.Scene {
	return s.scene
}

// World returns the network mirror world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected clients
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
