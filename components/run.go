package components

import (
	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi"
)

// RunStats counts notable events over a run.
type RunStats struct {
	Ticks           int
	ShotsFired      int
	EnemiesKilled   int
	EnemyShots      int
	PlayerHits      int
	SwoopsStarted   int
	SwoopsCompleted int
	Reallocations   int // Swoops that landed somewhere other than their remembered slot
	Drops           int
}

// RunData stores the score, lives and level of the current run.
// This is a singleton component - only one run exists at a time.
type RunData struct {
	State          cfg.GameStateID
	Score          int
	Lives          int
	Level          int
	Stats          RunStats
}

var Run = donburi.NewComponentType[RunData]()

// Playing reports whether gameplay systems should advance.
func (r *RunData) Playing() bool {
	return r.State == cfg.GameStatePlaying
}
