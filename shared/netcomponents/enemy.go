package netcomponents

import (
	"github.com/automoto/swoopers/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetEnemyData struct {
	X, Y      float64
	Rotation  float64
	Index     int
	Archetype netconfig.ArchetypeID
	State     netconfig.StateID
	Phase     netconfig.SwoopPhase
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()

// LerpNetEnemy interpolates between two enemy states
func LerpNetEnemy(from, to NetEnemyData, t float64) *NetEnemyData {
	return &NetEnemyData{
		X:         from.X + (to.X-from.X)*t,
		Y:         from.Y + (to.Y-from.Y)*t,
		Rotation:  from.Rotation + (to.Rotation-from.Rotation)*t,
		Index:     to.Index,
		Archetype: to.Archetype,
		State:     to.State,
		Phase:     to.Phase,
	}
}
