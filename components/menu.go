package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuSound
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int
	VolumeIndex   int          // Index into config.Settings.VolumeSteps
	Pulse         *gween.Tween // Title brightness, restarted when finished
	PulseValue    float32
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
