package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assetsFS = os.DirFS("../../assets")

func TestLoadArena(t *testing.T) {
	data, err := LoadArena(assetsFS, "levels/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, "arena", data.Name)
	assert.Equal(t, 1024, data.Width)
	assert.Equal(t, 768, data.Height)
	assert.Equal(t, SpawnPoint{X: 256, Y: 384}, data.HeroSpawn)
	assert.Equal(t, SpawnPoint{X: 768, Y: 384}, data.BossSpawn)

	require.Len(t, data.Walls, 6)
	assert.Equal(t, WallRect{X: 0, Y: 0, W: 1024, H: 16}, data.Walls[0])
	assert.Equal(t, WallRect{X: 0, Y: 752, W: 1024, H: 16}, data.Walls[5])
	for i := 1; i < len(data.Walls); i++ {
		assert.LessOrEqual(t, data.Walls[i-1].Y, data.Walls[i].Y, "walls sorted top to bottom")
	}
}

func TestLoadAllArenas(t *testing.T) {
	arenas, names, err := LoadAllArenas(assetsFS, "levels")
	require.NoError(t, err)

	assert.Equal(t, []string{"arena", "pit"}, names)
	require.Contains(t, arenas, "pit")
	assert.Len(t, arenas["pit"].Walls, 8)
}

const noBossTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Spawns">
  <object id="1" name="hero" x="10" y="10"><point/></object>
 </objectgroup>
</map>`

func TestLoadArenaErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/noboss.tmx": {Data: []byte(noBossTMX)},
		"levels/broken.tmx": {Data: []byte("<map")},
	}

	_, err := LoadArena(fsys, "levels/noboss.tmx")
	assert.ErrorIs(t, err, ErrMissingSpawn)

	_, err = LoadArena(fsys, "levels/broken.tmx")
	assert.Error(t, err)

	_, err = LoadArena(fsys, "levels/absent.tmx")
	assert.Error(t, err)

	_, _, err = LoadAllArenas(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestDefaultArena(t *testing.T) {
	data := DefaultArena()
	require.Len(t, data.Walls, 4)

	for _, w := range data.Walls {
		assert.GreaterOrEqual(t, w.X, 0.0)
		assert.GreaterOrEqual(t, w.Y, 0.0)
		assert.LessOrEqual(t, w.X+w.W, float64(data.Width))
		assert.LessOrEqual(t, w.Y+w.H, float64(data.Height))
	}
	assert.Less(t, data.HeroSpawn.X, data.BossSpawn.X)
}
