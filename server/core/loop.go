package core

import (
	"log"
	"time"
)

type GameLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// TickDuration is the fixed step the scene advances by each tick.
func (g *GameLoop) TickDuration() time.Duration {
	return time.Second / time.Duration(g.tickRate)
}

func (g *GameLoop) Run() {
	g.running = true
	dt := g.TickDuration()
	ticker := time.NewTicker(dt)
	defer ticker.Stop()

	log.Printf("[server] Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[server] Game loop stopped")
			return
		case <-ticker.C:
			g.server.Step(dt)
			g.server.flushSync()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
