package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ibaryshnikov/game-design/shared/netconfig"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool   `json:"fullscreen"`
	LastArena  string `json:"lastArena"`
}

// BattleRecord is the running tally of offline fights.
type BattleRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

const (
	settingsKey = "settings"
	recordKey   = "record"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and record storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "game-design",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if data == nil {
		// Nothing saved yet, use defaults
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk, or nil when none are saved
func LoadSettings() *SavedSettings {
	var s SavedSettings
	if !loadItem(settingsKey, &s) {
		return nil
	}
	return &s
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// ApplySavedSettings applies loaded settings to the window
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadRecord returns the saved battle record, zero when none exists.
func LoadRecord() BattleRecord {
	var r BattleRecord
	loadItem(recordKey, &r)
	return r
}

// RecordOutcome adds a decided match to the saved battle record.
func RecordOutcome(state netconfig.MatchStateID) {
	r := LoadRecord()
	switch state {
	case netconfig.MatchStateHeroWon:
		r.Wins++
	case netconfig.MatchStateBossWon:
		r.Losses++
	default:
		return
	}
	if err := saveItem(recordKey, r); err == nil {
		log.Printf("[record] %s: %d wins, %d losses", state, r.Wins, r.Losses)
	}
}
