package components

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi"
)

// Clock is a monotonic time source for the weapon cooldown.
type Clock interface {
	Now() time.Duration
}

// EffectPlayer plays a named sound effect. Playback is fire-and-forget and
// errors never reach the simulation.
type EffectPlayer interface {
	Play(id cfg.SoundID) error
}

// Reporter receives UI updates after the corresponding value changes.
type Reporter interface {
	ReportScore(score int)
	ReportLives(lives int)
	ReportLevel(level int)
	ShowEndScreen(finalScore int)
}

// RuntimeData carries the collaborators a simulation runs against
// (singleton component).
type RuntimeData struct {
	Rand     *rand.Rand
	Clock    Clock
	Effects  EffectPlayer
	Reporter Reporter
}

var Runtime = donburi.NewComponentType[RuntimeData]()
