package scene

import (
	"os"
	"testing"

	"github.com/ibaryshnikov/game-design/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
	"pgregory.net/rapid"
)

func TestArenaMoveStopsAtWall(t *testing.T) {
	a := NewArena(leveldata.DefaultArena())
	require.Len(t, a.Walls, 4)

	pos := math2.Vec2{X: 100, Y: 384}
	for n := 0; n < 100; n++ {
		pos = a.Move(pos, math2.Vec2{X: -5}, 14)
	}
	assert.InDelta(t, 30, pos.X, 1e-9)
	assert.Equal(t, 384.0, pos.Y)
}

func TestArenaSpawnPullsInside(t *testing.T) {
	a := NewArena(leveldata.DefaultArena())

	inside := math2.Vec2{X: 100, Y: 100}
	assert.Equal(t, inside, a.Spawn("hero", inside, 14))

	got := a.Spawn("boss", math2.Vec2{X: -20, Y: 2000}, 30)
	assert.Equal(t, math2.Vec2{X: 30, Y: a.Height - 30}, got)
	assert.True(t, a.Contains(got, 30))
}

func TestArenaMoveSlidesAlongWall(t *testing.T) {
	a := NewArena(leveldata.DefaultArena())

	pos := math2.Vec2{X: 500, Y: 40}
	for n := 0; n < 10; n++ {
		pos = a.Move(pos, math2.Vec2{X: 4, Y: -4}, 14)
	}
	assert.InDelta(t, 30, pos.Y, 1e-9)
	assert.InDelta(t, 540, pos.X, 1e-9, "horizontal motion continues along the wall")
}

func TestArenaMoveIgnoresWallsBehind(t *testing.T) {
	a := NewArena(leveldata.DefaultArena())

	pos := a.Move(math2.Vec2{X: 31, Y: 384}, math2.Vec2{X: 6}, 14)
	assert.InDelta(t, 37, pos.X, 1e-9)
}

func TestArenaMoveStopsAtPillar(t *testing.T) {
	data, err := leveldata.LoadArena(os.DirFS("../../assets"), "levels/arena.tmx")
	require.NoError(t, err)
	a := NewArena(data)
	require.Len(t, a.Walls, 6)

	// Walk right along the upper pillar's row.
	pos := math2.Vec2{X: data.HeroSpawn.X, Y: 192}
	for n := 0; n < 200; n++ {
		pos = a.Move(pos, math2.Vec2{X: 3}, 14)
	}
	assert.InDelta(t, 480-14, pos.X, 1e-9)
	for _, w := range data.Walls {
		inside := pos.X+14 > w.X && pos.X-14 < w.X+w.W && pos.Y+14 > w.Y && pos.Y-14 < w.Y+w.H
		assert.False(t, inside, "body overlaps wall %+v at %v", w, pos)
	}
}

func TestArenaMoveStaysInBounds(t *testing.T) {
	a := NewArena(leveldata.DefaultArena())

	rapid.Check(t, func(t *rapid.T) {
		radius := rapid.Float64Range(4, 30).Draw(t, "radius")
		pos := math2.Vec2{X: 512, Y: 384}
		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			delta := math2.Vec2{
				X: rapid.Float64Range(-12, 12).Draw(t, "dx"),
				Y: rapid.Float64Range(-12, 12).Draw(t, "dy"),
			}
			pos = a.Move(pos, delta, radius)
			if !a.Contains(pos, radius) {
				t.Fatalf("left the arena at %v (radius %v)", pos, radius)
			}
			if pos.X-radius < 16-1e-6 || pos.Y-radius < 16-1e-6 ||
				pos.X+radius > 1024-16+1e-6 || pos.Y+radius > 768-16+1e-6 {
				t.Fatalf("entered a wall at %v (radius %v)", pos, radius)
			}
		}
	})
}

func TestClampStep(t *testing.T) {
	tests := []struct {
		name          string
		step, contact float64
		want          float64
	}{
		{"wall ahead within reach", 5, 3, 3},
		{"wall ahead out of reach", 5, 8, 5},
		{"wall behind", 5, -20, 5},
		{"resting against wall", -5, 0, 0},
		{"rounding past wall", -5, 1e-12, 1e-12},
		{"left wall within reach", -5, -2, -2},
		{"wall on the far side", -5, 40, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampStep(tt.step, tt.contact))
		})
	}
}

func TestClampSpan(t *testing.T) {
	assert.Equal(t, 14.0, clampSpan(-3, 14, 100))
	assert.Equal(t, 86.0, clampSpan(300, 14, 100))
	assert.Equal(t, 50.0, clampSpan(50, 14, 100))
	assert.Equal(t, 10.0, clampSpan(3, 14, 20), "too small to fit centers the body")
}
