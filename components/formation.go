package components

import "github.com/yohamta/donburi"

// FormationData holds the step-timing state shared by every enemy in
// formation. Singleton.
type FormationData struct {
	Direction   float64 // +1 right, -1 left
	MoveCounter int
	MoveDelay   float64
	Total       int // Enemies spawned for the current level
}

var Formation = donburi.NewComponentType[FormationData]()
