package core

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/ibaryshnikov/game-design/shared/leveldata"
)

// LoadArenas loads all .tmx arenas under levels/ in fsys, returning them keyed
// by stem name plus a sorted name list.
func LoadArenas(fsys fs.FS) (map[string]*leveldata.ArenaData, []string, error) {
	arenas, names, err := leveldata.LoadAllArenas(fsys, "levels")
	if err != nil {
		return nil, nil, fmt.Errorf("load all arenas: %w", err)
	}
	return arenas, names, nil
}

// PickArena returns the named arena, or the first one when name is empty. It
// falls back to the built-in walled box when nothing usable is found.
func PickArena(fsys fs.FS, name string) *leveldata.ArenaData {
	arenas, names, err := LoadArenas(fsys)
	if err != nil || len(names) == 0 {
		log.Printf("[server] Warning: no arenas loaded (%v), using default arena", err)
		return leveldata.DefaultArena()
	}
	if name == "" {
		name = names[0]
	}
	if a, ok := arenas[name]; ok {
		return a
	}
	log.Printf("[server] Warning: arena %q not found (have %v), using %q", name, names, names[0])
	return arenas[names[0]]
}
