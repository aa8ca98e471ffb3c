package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	PlayerBullet = donburi.NewTag().SetName("PlayerBullet")
	EnemyBullet  = donburi.NewTag().SetName("EnemyBullet")
	Particle     = donburi.NewTag().SetName("Particle")
	Star         = donburi.NewTag().SetName("Star")
)

// Resolv tags for collision broadphase
const (
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvPlayerBullet = "PlayerBullet"
	ResolvEnemyBullet  = "EnemyBullet"
)
