package systems

import (
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/automoto/swoopers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets advances every bullet and drops those that have left the
// screen: player bullets once fully above the top edge, enemy bullets once
// past the bottom.
func UpdateBullets(e *ecs.ECS) {
	var gone []*donburi.Entry
	step := func(entry *donburi.Entry) {
		b := components.Bullet.Get(entry)
		obj := components.Object.Get(entry)
		obj.MoveTo(obj.X, obj.Y+b.SpeedY)
		if !bulletOnScreen(b.Owner, obj.Y) {
			gone = append(gone, entry)
		}
	}
	tags.PlayerBullet.Each(e.World, step)
	tags.EnemyBullet.Each(e.World, step)

	for _, entry := range gone {
		destroy(e, entry)
	}
}

func bulletOnScreen(owner cfg.BulletOwner, y float64) bool {
	if owner == cfg.OwnerPlayer {
		return y > -cfg.Bullet.Height
	}
	return y < float64(cfg.C.Height)
}

// fireEnemyBullet spawns a bullet from the bottom centre of an enemy.
func fireEnemyBullet(e *ecs.ECS, obj *components.ObjectData) {
	run := GetRun(e)
	run.Stats.EnemyShots++
	factory.CreateEnemyBullet(e, obj.X+obj.W/2-cfg.Bullet.Width/2, obj.Y+obj.H, nextBulletSeq(run))
	PlaySFX(e, cfg.SoundEnemyShoot)
}
