package components

import (
	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SwoopData is the path state of a swooping enemy. Only meaningful while the
// enemy's State is StateSwooping.
type SwoopData struct {
	Phase    cfg.SwoopPhase
	Progress float64 // [0,1) along the current phase's curve
	Dive     gamemath.Curve
	Return   gamemath.Curve
}

// Curve returns the curve of the current phase.
func (s *SwoopData) Curve() gamemath.Curve {
	if s.Phase == cfg.PhaseReturn {
		return s.Return
	}
	return s.Dive
}

type EnemyData struct {
	Index     int // Spawn order; lower index wins collision ties
	Archetype cfg.ArchetypeID
	Alive     bool
	Slot      gamemath.Slot // Anchor owned while in formation, return target while swooping
	Swoop     SwoopData
	Rotation  float64 // Visual heading, derived from the swoop tangent
}

var Enemy = donburi.NewComponentType[EnemyData]()
