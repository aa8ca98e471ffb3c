package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/swoopers/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	VolumeIndex int  `json:"volumeIndex"`
	Muted       bool `json:"muted"`
	Fullscreen  bool `json:"fullscreen"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return fmt.Errorf("open settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() SavedSettings {
	return SavedSettings{VolumeIndex: cfg.Settings.DefaultVolumeIndex}
}

// LoadSettings loads settings from disk. Missing or unreadable settings
// yield the defaults.
func LoadSettings() SavedSettings {
	settings := DefaultSettings()
	if gdataManager == nil {
		return settings
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return settings
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return settings
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return DefaultSettings()
	}
	if settings.VolumeIndex < 0 || settings.VolumeIndex >= len(cfg.Settings.VolumeSteps) {
		settings.VolumeIndex = cfg.Settings.DefaultVolumeIndex
	}
	return settings
}

// SaveSettings saves settings to disk
func SaveSettings(s SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Volume returns the effect volume the settings select.
func (s SavedSettings) Volume() float64 {
	if s.Muted {
		return 0
	}
	return cfg.Settings.VolumeSteps[s.VolumeIndex]
}
