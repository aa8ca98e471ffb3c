package config

import "github.com/automoto/swoopers/shared/netconfig"

// Type aliases so simulation code and the server share one set of IDs.
type StateID = netconfig.StateID
type SwoopPhase = netconfig.SwoopPhase
type ArchetypeID = netconfig.ArchetypeID
type GameStateID = netconfig.GameStateID

const (
	GameStateReady    = netconfig.GameStateReady
	GameStatePlaying  = netconfig.GameStatePlaying
	GameStateGameOver = netconfig.GameStateGameOver
)

const (
	StateNone      = netconfig.StateNone
	StateFormation = netconfig.StateFormation
	StateSwooping  = netconfig.StateSwooping

	PhaseDive   = netconfig.PhaseDive
	PhaseReturn = netconfig.PhaseReturn
)

const (
	ArchetypeAggressive = netconfig.ArchetypeAggressive
	ArchetypeNormal     = netconfig.ArchetypeNormal
	ArchetypeDefensive  = netconfig.ArchetypeDefensive
)

// EntityKind names what a render request describes.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindPlayerBullet
	KindEnemyBullet
	KindParticle
	KindStar
)

// BulletOwner tells player and enemy bullets apart.
type BulletOwner int

const (
	OwnerPlayer BulletOwner = iota
	OwnerEnemy
)
