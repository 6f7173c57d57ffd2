package protocol

import (
	"github.com/ibaryshnikov/game-design/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition  uint = 10
	SyncIDNetCombatant uint = 11
	SyncIDNetAttack    uint = 12
	SyncIDNetGameState uint = 13
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
	InterpIDNetAttack   uint8 = 12
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	// Combatant: no interpolation (discrete state changes)
	if err := esync.RegisterComponent(
		SyncIDNetCombatant,
		netcomponents.NetCombatantData{},
		netcomponents.NetCombatant,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetAttack,
		netcomponents.NetAttackData{},
		netcomponents.NetAttack,
		esync.WithInterpFn(InterpIDNetAttack, netcomponents.LerpNetAttack),
	); err != nil {
		return err
	}

	// GameState: no interpolation (discrete state)
	if err := esync.RegisterComponent(
		SyncIDNetGameState,
		netcomponents.NetGameStateData{},
		netcomponents.NetGameState,
	); err != nil {
		return err
	}

	return nil
}
