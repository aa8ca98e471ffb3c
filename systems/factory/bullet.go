package factory

import (
	"github.com/automoto/swoopers/archetypes"
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayerBullet spawns a bullet travelling up from the top centre of
// the player at (x, y).
func CreatePlayerBullet(ecs *ecs.ECS, x, y float64, seq int) *donburi.Entry {
	b := archetypes.PlayerBullet.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Bullet.Width, cfg.Bullet.Height, tags.ResolvPlayerBullet)
	addObject(ecs, b, obj)

	components.Bullet.SetValue(b, components.BulletData{
		Owner:  cfg.OwnerPlayer,
		SpeedY: -cfg.Bullet.PlayerSpeed,
		Seq:    seq,
	})
	return b
}

// CreateEnemyBullet spawns a bullet travelling down.
func CreateEnemyBullet(ecs *ecs.ECS, x, y float64, seq int) *donburi.Entry {
	b := archetypes.EnemyBullet.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Bullet.Width, cfg.Bullet.Height, tags.ResolvEnemyBullet)
	addObject(ecs, b, obj)

	components.Bullet.SetValue(b, components.BulletData{
		Owner:  cfg.OwnerEnemy,
		SpeedY: cfg.Bullet.EnemySpeed,
		Seq:    seq,
	})
	return b
}
