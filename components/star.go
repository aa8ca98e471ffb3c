package components

import "github.com/yohamta/donburi"

// StarData is a background star. Stars never interact with the simulation.
type StarData struct {
	X, Y float64
	Size float64
}

var Star = donburi.NewComponentType[StarData]()
