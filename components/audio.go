package components

import (
	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi"
)

// AudioData stores queued sound effects (singleton component). Effects are
// queued during the tick and flushed once at its end.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
