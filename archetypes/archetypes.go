package archetypes

import (
	"github.com/automoto/swoopers/components"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.State,
	)
	PlayerBullet = newArchetype(
		tags.PlayerBullet,
		components.Bullet,
		components.Object,
	)
	EnemyBullet = newArchetype(
		tags.EnemyBullet,
		components.Bullet,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Star = newArchetype(
		tags.Star,
		components.Star,
	)
	Space = newArchetype(
		components.Space,
	)
	Run = newArchetype(
		components.Run,
		components.Formation,
	)
	Runtime = newArchetype(
		components.Runtime,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	entry := e.World.Entry(e.Create(
		ecs.LayerDefault,
		append(a.components, cs...)...,
	))
	return entry
}
