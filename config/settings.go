package config

// SettingsConfig contains user settings choices
type SettingsConfig struct {
	VolumeSteps        []float64 // Cycled by the menu's sound option
	DefaultVolumeIndex int
	AppName            string // gdata application directory name
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps:        []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultVolumeIndex: 4,
		AppName:            "swoopers",
	}
}
