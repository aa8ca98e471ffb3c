package netcomponents

import "github.com/yohamta/donburi"

type NetBulletData struct {
	X, Y    float64
	IsEnemy bool
}

var NetBullet = donburi.NewComponentType[NetBulletData]()

// LerpNetBullet interpolates between two bullet positions
func LerpNetBullet(from, to NetBulletData, t float64) *NetBulletData {
	return &NetBulletData{
		X:       from.X + (to.X-from.X)*t,
		Y:       from.Y + (to.Y-from.Y)*t,
		IsEnemy: to.IsEnemy,
	}
}
