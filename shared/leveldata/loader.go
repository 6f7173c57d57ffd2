package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ibaryshnikov/game-design/config"
	"github.com/lafriks/go-tiled"
)

// Object group and object names read from arena files.
const (
	wallsGroup  = "Walls"
	spawnsGroup = "Spawns"
	heroSpawn   = "hero"
	bossSpawn   = "boss"
)

var ErrMissingSpawn = errors.New("arena is missing a spawn point")

// LoadArena parses a TMX file and returns its walls and spawn points. It takes
// an fs.FS so callers can pass embed.FS (client) or os.DirFS (server).
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	var haveHero, haveBoss bool
	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case wallsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Walls = append(data.Walls, WallRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case spawnsGroup:
			for _, o := range og.Objects {
				switch o.Name {
				case heroSpawn:
					data.HeroSpawn = SpawnPoint{X: o.X, Y: o.Y}
					haveHero = true
				case bossSpawn:
					data.BossSpawn = SpawnPoint{X: o.X, Y: o.Y}
					haveBoss = true
				}
			}
		}
	}

	if !haveHero {
		return nil, fmt.Errorf("%s: %s: %w", tmxPath, heroSpawn, ErrMissingSpawn)
	}
	if !haveBoss {
		return nil, fmt.Errorf("%s: %s: %w", tmxPath, bossSpawn, ErrMissingSpawn)
	}

	// Keep walls in a stable order so every peer builds the same space.
	sort.Slice(data.Walls, func(i, j int) bool {
		if data.Walls[i].Y != data.Walls[j].Y {
			return data.Walls[i].Y < data.Walls[j].Y
		}
		return data.Walls[i].X < data.Walls[j].X
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}

// DefaultArena is an empty walled room sized from config.Arena, used when no
// arena file can be loaded.
func DefaultArena() *ArenaData {
	w := config.Arena.Width
	h := config.Arena.Height
	t := config.Arena.WallThickness

	return &ArenaData{
		Name: "default",
		Walls: []WallRect{
			{X: 0, Y: 0, W: w, H: t},
			{X: 0, Y: t, W: t, H: h - 2*t},
			{X: w - t, Y: t, W: t, H: h - 2*t},
			{X: 0, Y: h - t, W: w, H: t},
		},
		HeroSpawn: SpawnPoint{X: config.Arena.HeroSpawnX, Y: config.Arena.HeroSpawnY},
		BossSpawn: SpawnPoint{X: config.Arena.BossSpawnX, Y: config.Arena.BossSpawnY},
		Width:     int(w),
		Height:    int(h),
	}
}
