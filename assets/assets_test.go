package assets

import (
	"testing"

	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/stretchr/testify/assert"
)

func TestEmbeddedArenas(t *testing.T) {
	l := NewArenaLoader()
	assert.Equal(t, []string{"arena", "pit"}, l.ListArenaNames())

	pit := l.LoadArena("pit")
	assert.Equal(t, "pit", pit.Name)
	assert.Len(t, pit.Walls, 8)
}

func TestMissingArenaFallsBack(t *testing.T) {
	got := NewArenaLoader().LoadArena("nowhere")
	assert.Len(t, got.Walls, 4)
}

func TestEmbeddedBossAttacks(t *testing.T) {
	assert.Equal(t, combat.DefaultAttackSet(), BossAttacks())
}
