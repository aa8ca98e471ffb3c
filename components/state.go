package components

import (
	"github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // Ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

// Transition switches to next and restarts the state timer.
func (s *StateData) Transition(next config.StateID) {
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}
