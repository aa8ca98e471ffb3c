package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed   float64
	ReadyAt time.Duration // Clock reading at which the weapon may fire again
}

var Player = donburi.NewComponentType[PlayerData]()
