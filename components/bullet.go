package components

import (
	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi"
)

type BulletData struct {
	Owner  cfg.BulletOwner
	SpeedY float64 // Signed: negative travels up
	Seq    int     // Spawn order, collisions resolve oldest first
}

var Bullet = donburi.NewComponentType[BulletData]()
