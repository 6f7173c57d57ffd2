// Package assets embeds the authored arenas and attack sets so the server and
// the client run without a data directory next to the binary.
package assets

import (
	"embed"
	"io/fs"
	"log"

	"github.com/ibaryshnikov/game-design/shared/attackdata"
	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/ibaryshnikov/game-design/shared/leveldata"
)

// BossAttacksPath is the boss attack set inside FS.
const BossAttacksPath = "attacks/boss.json"

var (
	//go:embed all:levels all:attacks
	FS embed.FS
)

// ArenaLoader gives front-ends access to the embedded arenas.
type ArenaLoader struct {
	fsys fs.FS
}

func NewArenaLoader() *ArenaLoader {
	return &ArenaLoader{fsys: FS}
}

// ListArenaNames returns the embedded arena names, sorted.
func (l *ArenaLoader) ListArenaNames() []string {
	_, names, err := leveldata.LoadAllArenas(l.fsys, "levels")
	if err != nil {
		log.Printf("[assets] Warning: %v", err)
		return nil
	}
	return names
}

// LoadArena returns the named arena, or the built-in walled box when it cannot
// be loaded.
func (l *ArenaLoader) LoadArena(name string) *leveldata.ArenaData {
	data, err := leveldata.LoadArena(l.fsys, "levels/"+name+".tmx")
	if err != nil {
		log.Printf("[assets] Warning: arena %q: %v, using default arena", name, err)
		return leveldata.DefaultArena()
	}
	return data
}

// BossAttacks returns the embedded boss attack set.
func BossAttacks() combat.AttackSet {
	return attackdata.LoadOrDefault(FS, BossAttacksPath)
}
