package components

import (
	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi"
)

// BotData drives the player from the autopilot instead of a device.
type BotData struct {
	Difficulty    cfg.BotDifficulty
	ReactionDelay int
	DecisionTimer int
	TargetX       float64 // Centre x the bot is steering toward
	HasTarget     bool
	Dodging       bool
}

var Bot = donburi.NewComponentType[BotData]()
