package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ibaryshnikov/game-design/assets"
	"github.com/ibaryshnikov/game-design/config"
	"github.com/ibaryshnikov/game-design/server/core"
	"github.com/ibaryshnikov/game-design/shared/attackdata"
	"github.com/ibaryshnikov/game-design/shared/protocol"
)

func main() {
	port := flag.Uint("port", config.Server.Port, "Server port")
	tickRate := flag.Int("tickrate", config.Server.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", "Arena Server", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	arena := flag.String("arena", "arena", "Arena to load from levels/")
	assetsDir := flag.String("assets", "", "Load arenas and attacks from this directory instead of the embedded assets")
	resetDelay := flag.Duration("reset", config.Server.ResetDelay, "Delay before a decided match restarts")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Invalid tick rate %d", *tickRate)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	var fsys fs.FS = assets.FS
	if *assetsDir != "" {
		fsys = os.DirFS(*assetsDir)
	}

	server := core.NewServer(core.Options{
		Name:       *name,
		Version:    *version,
		TickRate:   *tickRate,
		ResetDelay: *resetDelay,
		Arena:      core.PickArena(fsys, *arena),
		Attacks:    attackdata.LoadOrDefault(fsys, assets.BossAttacksPath),
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting arena server %q on port %d (tick rate: %d/s, version: %s)",
		*name, *port, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
