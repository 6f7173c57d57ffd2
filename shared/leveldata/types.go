// Package leveldata provides TMX arena parsing shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv, only plain data.
package leveldata

// ArenaData holds everything the engine needs from an arena file.
type ArenaData struct {
	Name      string
	Walls     []WallRect
	HeroSpawn SpawnPoint
	BossSpawn SpawnPoint
	Width     int
	Height    int
}

// WallRect is a solid axis-aligned wall.
type WallRect struct {
	X, Y, W, H float64
}

// SpawnPoint is a combatant spawn location.
type SpawnPoint struct {
	X, Y float64
}
