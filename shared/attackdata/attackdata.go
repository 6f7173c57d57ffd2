// Package attackdata loads authored boss attack sets. Like leveldata it takes an
// fs.FS so the client can read embedded files and the server a directory.
package attackdata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/ibaryshnikov/game-design/shared/combat"
)

// SavedAttack is one attack as written in the JSON file.
type SavedAttack struct {
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Angle       float64 `json:"angle,omitempty"` // custom_angle half-width, radians
	Count       int     `json:"count,omitempty"` // missiles
	Order       string  `json:"order"`
	Distance    float64 `json:"distance"`
	DelayMs     int     `json:"delayMs"`
	DurationMs  int     `json:"durationMs"`
	AftercastMs int     `json:"aftercastMs"`
	Damage      int     `json:"damage"`
}

// SavedAttackSet is the on-disk form of combat.AttackSet.
type SavedAttackSet struct {
	CloseMeleeAttackDistance float64       `json:"closeMeleeAttackDistance"`
	MeleeAttackDistance      float64       `json:"meleeAttackDistance"`
	RangedAttackDistance     float64       `json:"rangedAttackDistance"`
	CloseMelee               []SavedAttack `json:"closeMelee"`
	Melee                    SavedAttack   `json:"melee"`
	Ranged                   []SavedAttack `json:"ranged"`
}

// Load reads and validates an attack set. It never returns a partially
// filled set: on error the returned set is the zero value.
func Load(fsys fs.FS, path string) (combat.AttackSet, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return combat.AttackSet{}, fmt.Errorf("read attack set %s: %w", path, err)
	}

	var saved SavedAttackSet
	if err := json.Unmarshal(data, &saved); err != nil {
		return combat.AttackSet{}, fmt.Errorf("parse attack set %s: %w", path, err)
	}

	set, err := saved.AttackSet()
	if err != nil {
		return combat.AttackSet{}, fmt.Errorf("attack set %s: %w", path, err)
	}
	return set, nil
}

// LoadOrDefault loads an attack set and falls back to combat.DefaultAttackSet
// on any failure.
func LoadOrDefault(fsys fs.FS, path string) combat.AttackSet {
	set, err := Load(fsys, path)
	if err != nil {
		log.Printf("[attackdata] Warning: using default attack set: %v", err)
		return combat.DefaultAttackSet()
	}
	return set
}

// AttackSet converts and validates the saved form.
func (s SavedAttackSet) AttackSet() (combat.AttackSet, error) {
	var set combat.AttackSet

	if !(0 < s.CloseMeleeAttackDistance &&
		s.CloseMeleeAttackDistance <= s.MeleeAttackDistance &&
		s.MeleeAttackDistance <= s.RangedAttackDistance) {
		return set, fmt.Errorf("distance bands must be positive and ascending, got %v/%v/%v",
			s.CloseMeleeAttackDistance, s.MeleeAttackDistance, s.RangedAttackDistance)
	}
	if len(s.CloseMelee) != len(set.CloseMelee) {
		return set, fmt.Errorf("closeMelee needs %d attacks, got %d", len(set.CloseMelee), len(s.CloseMelee))
	}
	if len(s.Ranged) != len(set.Ranged) {
		return set, fmt.Errorf("ranged needs %d attacks, got %d", len(set.Ranged), len(s.Ranged))
	}

	set.CloseMeleeAttackDistance = s.CloseMeleeAttackDistance
	set.MeleeAttackDistance = s.MeleeAttackDistance
	set.RangedAttackDistance = s.RangedAttackDistance

	for i, a := range s.CloseMelee {
		t, err := a.Template()
		if err != nil {
			return combat.AttackSet{}, fmt.Errorf("closeMelee[%d]: %w", i, err)
		}
		set.CloseMelee[i] = t
	}
	melee, err := s.Melee.Template()
	if err != nil {
		return combat.AttackSet{}, fmt.Errorf("melee: %w", err)
	}
	set.Melee = melee
	for i, a := range s.Ranged {
		t, err := a.Template()
		if err != nil {
			return combat.AttackSet{}, fmt.Errorf("ranged[%d]: %w", i, err)
		}
		set.Ranged[i] = t
	}
	return set, nil
}

// Template converts one saved attack.
func (a SavedAttack) Template() (combat.AttackTemplate, error) {
	id, err := combat.ParseKindID(a.Kind)
	if err != nil {
		return combat.AttackTemplate{}, err
	}
	order, err := combat.ParseOrder(a.Order)
	if err != nil {
		return combat.AttackTemplate{}, err
	}
	if a.Distance <= 0 {
		return combat.AttackTemplate{}, fmt.Errorf("%s: distance must be positive", a.Name)
	}
	if a.DelayMs < 0 || a.DurationMs < 0 || a.AftercastMs < 0 {
		return combat.AttackTemplate{}, fmt.Errorf("%s: negative timing", a.Name)
	}
	if a.Damage <= 0 {
		return combat.AttackTemplate{}, fmt.Errorf("%s: damage must be positive", a.Name)
	}

	kind := combat.Kind{ID: id}
	switch id {
	case combat.KindCustomAngle:
		kind = combat.CustomAngle(a.Angle)
	case combat.KindMissiles:
		kind = combat.Missiles(a.Count)
	}

	return combat.AttackTemplate{
		Name:      a.Name,
		Kind:      kind,
		Order:     order,
		Distance:  a.Distance,
		Delay:     time.Duration(a.DelayMs) * time.Millisecond,
		Duration:  time.Duration(a.DurationMs) * time.Millisecond,
		Aftercast: time.Duration(a.AftercastMs) * time.Millisecond,
		Damage:    a.Damage,
	}, nil
}

// save converts a set back to its on-disk form.
func save(set combat.AttackSet) SavedAttackSet {
	saved := SavedAttackSet{
		CloseMeleeAttackDistance: set.CloseMeleeAttackDistance,
		MeleeAttackDistance:      set.MeleeAttackDistance,
		RangedAttackDistance:     set.RangedAttackDistance,
		Melee:                    saveAttack(set.Melee),
	}
	for _, t := range set.CloseMelee {
		saved.CloseMelee = append(saved.CloseMelee, saveAttack(t))
	}
	for _, t := range set.Ranged {
		saved.Ranged = append(saved.Ranged, saveAttack(t))
	}
	return saved
}

func saveAttack(t combat.AttackTemplate) SavedAttack {
	a := SavedAttack{
		Name:        t.Name,
		Kind:        t.Kind.ID.String(),
		Order:       t.Order.String(),
		Distance:    t.Distance,
		DelayMs:     int(t.Delay / time.Millisecond),
		DurationMs:  int(t.Duration / time.Millisecond),
		AftercastMs: int(t.Aftercast / time.Millisecond),
		Damage:      t.Damage,
	}
	switch t.Kind.ID {
	case combat.KindCustomAngle:
		a.Angle = t.Kind.Angle
	case combat.KindMissiles:
		a.Count = t.Kind.Count
	}
	return a
}
