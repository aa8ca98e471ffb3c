package netcomponents

import (
	"github.com/automoto/swoopers/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetRunData is the scoreboard of the run being broadcast. Runs counts
// completed runs since the server started.
type NetRunData struct {
	State netconfig.GameStateID
	Score int
	Lives int
	Level int
	Runs  int
}

var NetRun = donburi.NewComponentType[NetRunData]()
