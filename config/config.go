// Package config holds the tuning values shared by the server and the
// front-ends. It must not import ebiten so the server stays headless.
package config

import (
	"image/color"
	"time"
)

// CombatConfig contains the rules applied when attacks land.
type CombatConfig struct {
	// TargetRadius is the hit circle of every combatant in the hit test.
	TargetRadius float64

	HeroHitDamage int // damage the hero takes from a boss attack
	BossHitDamage int // damage the boss takes from a hero attack

	// RecoveryDuration is the cooldown after any completed attack.
	RecoveryDuration time.Duration
}

// HeroConfig contains hero movement and dash values.
type HeroConfig struct {
	Health int
	Speed  float64 // pixels per second
	Radius float64 // body radius for arena collision

	DashSpeed    float64 // pixels per second while dashing
	DashDuration time.Duration
	DashCooldown time.Duration
}

// BossConfig contains boss movement values. Its attack set lives with the
// attack definitions and can be replaced from authored JSON.
type BossConfig struct {
	Health int
	Speed  float64 // pixels per second while approaching
	Radius float64
}

// ArenaConfig describes the fallback arena used when no level file loads.
type ArenaConfig struct {
	Width         float64
	Height        float64
	WallThickness float64
	CellSize      int

	HeroSpawnX, HeroSpawnY float64
	BossSpawnX, BossSpawnY float64
}

// ServerConfig contains authoritative server values.
type ServerConfig struct {
	TickRate   int // ticks per second
	Port       uint
	ResetDelay time.Duration // time between a decided match and the next one
}

// UIConfig contains front-end layout and colors.
type UIConfig struct {
	Width  int
	Height int

	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	HealthBarEase   float32 // seconds for a bar to catch up with a hit

	BackgroundColor color.RGBA
	WallColor       color.RGBA
	HeroColor       color.RGBA
	BossColor       color.RGBA
	DashColor       color.RGBA
	TelegraphColor  color.RGBA
	HazardColor     color.RGBA
	HealthBgColor   color.RGBA
	HealthFgColor   color.RGBA
	TextColor       color.RGBA
}

// Global configuration instances
var Combat CombatConfig
var Hero HeroConfig
var Boss BossConfig
var Arena ArenaConfig
var Server ServerConfig
var UI UIConfig

func init() {
	Combat = CombatConfig{
		TargetRadius:     20.0,
		HeroHitDamage:    35,
		BossHitDamage:    20,
		RecoveryDuration: 250 * time.Millisecond,
	}

	Hero = HeroConfig{
		Health: 100,
		Speed:  220.0,
		Radius: 14.0,

		DashSpeed:    900.0,
		DashDuration: 150 * time.Millisecond,
		DashCooldown: 700 * time.Millisecond,
	}

	Boss = BossConfig{
		Health: 600,
		Speed:  80.0,
		Radius: 26.0,
	}

	Arena = ArenaConfig{
		Width:         1024,
		Height:        768,
		WallThickness: 16,
		CellSize:      32,

		HeroSpawnX: 256,
		HeroSpawnY: 384,
		BossSpawnX: 768,
		BossSpawnY: 384,
	}

	Server = ServerConfig{
		TickRate:   100, // 10ms cadence
		Port:       7373,
		ResetDelay: 3 * time.Second,
	}

	UI = UIConfig{
		Width:  1024,
		Height: 768,

		HealthBarWidth:  220,
		HealthBarHeight: 12,
		HealthBarMargin: 12,
		HealthBarEase:   0.4,

		BackgroundColor: color.RGBA{R: 24, G: 24, B: 32, A: 255},
		WallColor:       color.RGBA{R: 90, G: 90, B: 110, A: 255},
		HeroColor:       color.RGBA{R: 100, G: 180, B: 255, A: 255},
		BossColor:       color.RGBA{R: 220, G: 60, B: 60, A: 255},
		DashColor:       color.RGBA{R: 200, G: 240, B: 255, A: 255},
		TelegraphColor:  color.RGBA{R: 255, G: 200, B: 0, A: 120},
		HazardColor:     color.RGBA{R: 255, G: 60, B: 0, A: 200},
		HealthBgColor:   color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthFgColor:   color.RGBA{R: 40, G: 220, B: 40, A: 255},
		TextColor:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
