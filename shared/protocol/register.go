package protocol

import (
	"github.com/automoto/swoopers/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPlayer uint = 10
	SyncIDNetEnemy  uint = 11
	SyncIDNetBullet uint = 12
	SyncIDNetRun    uint = 13
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPlayer uint8 = 10
	InterpIDNetEnemy  uint8 = 11
	InterpIDNetBullet uint8 = 12
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and spectators before any network operations.
func RegisterComponents() error {
	// Register with interpolation for smooth client-side rendering
	if err := esync.RegisterComponent(
		SyncIDNetPlayer,
		netcomponents.NetPlayerData{},
		netcomponents.NetPlayer,
		esync.WithInterpFn(InterpIDNetPlayer, netcomponents.LerpNetPlayer),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetEnemy,
		netcomponents.NetEnemyData{},
		netcomponents.NetEnemy,
		esync.WithInterpFn(InterpIDNetEnemy, netcomponents.LerpNetEnemy),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetBullet,
		netcomponents.NetBulletData{},
		netcomponents.NetBullet,
		esync.WithInterpFn(InterpIDNetBullet, netcomponents.LerpNetBullet),
	); err != nil {
		return err
	}

	// Run: no interpolation (discrete state)
	if err := esync.RegisterComponent(
		SyncIDNetRun,
		netcomponents.NetRunData{},
		netcomponents.NetRun,
	); err != nil {
		return err
	}

	return nil
}
