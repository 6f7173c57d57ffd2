package attackdata

import (
	"encoding/json"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/ibaryshnikov/game-design/shared/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShippedSet(t *testing.T) {
	set, err := Load(os.DirFS("../../assets"), "attacks/boss.json")
	require.NoError(t, err)
	assert.Equal(t, combat.DefaultAttackSet(), set)
}

func TestSavedFormThenLoadKeepsVariantPayloads(t *testing.T) {
	set := combat.DefaultAttackSet()
	set.CloseMelee[2].Kind = combat.CustomAngle(0.75)
	set.Melee.Kind = combat.Missiles(4)
	set.Melee.Order = combat.ProjectileFromCaster

	data, err := json.Marshal(save(set))
	require.NoError(t, err)

	got, err := Load(fstest.MapFS{"set.json": {Data: data}}, "set.json")
	require.NoError(t, err)
	assert.Equal(t, set, got)
}

func TestLoadRejectsBadSets(t *testing.T) {
	valid := save(combat.DefaultAttackSet())

	tests := []struct {
		name   string
		mutate func(s *SavedAttackSet)
	}{
		{"unknown kind", func(s *SavedAttackSet) { s.Melee.Kind = "hammer" }},
		{"unknown order", func(s *SavedAttackSet) { s.CloseMelee[0].Order = "zigzag" }},
		{"short close melee list", func(s *SavedAttackSet) { s.CloseMelee = s.CloseMelee[:5] }},
		{"extra ranged attack", func(s *SavedAttackSet) { s.Ranged = append(s.Ranged, s.Ranged[0]) }},
		{"bands out of order", func(s *SavedAttackSet) { s.MeleeAttackDistance = 100 }},
		{"zero distance", func(s *SavedAttackSet) { s.Ranged[1].Distance = 0 }},
		{"negative delay", func(s *SavedAttackSet) { s.CloseMelee[3].DelayMs = -1 }},
		{"missing damage", func(s *SavedAttackSet) { s.Melee.Damage = 0 }},
		{"negative damage", func(s *SavedAttackSet) { s.CloseMelee[1].Damage = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := valid
			saved.CloseMelee = append([]SavedAttack(nil), valid.CloseMelee...)
			saved.Ranged = append([]SavedAttack(nil), valid.Ranged...)
			tt.mutate(&saved)

			data, err := json.Marshal(saved)
			require.NoError(t, err)

			set, err := Load(fstest.MapFS{"set.json": {Data: data}}, "set.json")
			assert.Error(t, err)
			assert.Equal(t, combat.AttackSet{}, set, "no partially filled set")
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	harmless := save(combat.DefaultAttackSet())
	harmless.Melee.Damage = 0
	data, err := json.Marshal(harmless)
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"broken.json":   {Data: []byte("{")},
		"harmless.json": {Data: data},
	}

	assert.Equal(t, combat.DefaultAttackSet(), LoadOrDefault(fsys, "broken.json"))
	assert.Equal(t, combat.DefaultAttackSet(), LoadOrDefault(fsys, "missing.json"))
	assert.Equal(t, combat.DefaultAttackSet(), LoadOrDefault(fsys, "harmless.json"), "a set that cannot hurt the hero is rejected")
}

func TestTemplateTiming(t *testing.T) {
	tmpl, err := SavedAttack{
		Name: "jab", Kind: "narrow", Order: "close_to_far", Distance: 10,
		DelayMs: 300, DurationMs: 100, AftercastMs: 500, Damage: 7,
	}.Template()
	require.NoError(t, err)

	assert.Equal(t, 300*time.Millisecond, tmpl.Delay)
	assert.Equal(t, 100*time.Millisecond, tmpl.Duration)
	assert.Equal(t, 500*time.Millisecond, tmpl.Aftercast)
	assert.Equal(t, combat.Narrow(), tmpl.Kind)
}
