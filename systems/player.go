package systems

import (
	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/automoto/swoopers/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player horizontally within the screen and fires
// when the fire action was pressed this tick and the weapon has cooled down.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := GetPlayer(e)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	in := GetOrCreateInput(e).Snapshot()

	maxX := float64(cfg.C.Width) - obj.W
	x := obj.X
	if in.MoveLeft && x > 0 {
		x = gamemath.Clamp(x-player.Speed, 0, maxX)
	}
	if in.MoveRight && x < maxX {
		x = gamemath.Clamp(x+player.Speed, 0, maxX)
	}
	if x != obj.X {
		obj.MoveTo(x, obj.Y)
	}

	if in.FirePressed {
		firePlayerBullet(e, player, obj)
	}
}

// firePlayerBullet spawns a bullet from the top centre of the ship. Presses
// inside the cooldown window are dropped.
func firePlayerBullet(e *ecs.ECS, player *components.PlayerData, obj *components.ObjectData) {
	now := GetRuntime(e).Clock.Now()
	if now < player.ReadyAt {
		return
	}
	player.ReadyAt = now + cfg.Weapon.Cooldown

	run := GetRun(e)
	run.Stats.ShotsFired++
	factory.CreatePlayerBullet(e, obj.X+obj.W/2-cfg.Bullet.Width/2, obj.Y, nextBulletSeq(run))
	PlaySFX(e, cfg.SoundShoot)
}

// nextBulletSeq numbers bullets of either owner in spawn order.
func nextBulletSeq(run *components.RunData) int {
	return run.Stats.ShotsFired + run.Stats.EnemyShots
}
