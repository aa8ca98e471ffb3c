package systems

import (
	"log"

	"github.com/automoto/swoopers/components"
	cfg "github.com/automoto/swoopers/config"
	"github.com/yohamta/donburi/ecs"
)

// NopEffects discards every effect. Used when the simulation runs without
// an audio device.
type NopEffects struct{}

func (NopEffects) Play(cfg.SoundID) error { return nil }

// UpdateAudio flushes the effects queued this tick to the effect player.
// Playback failures are logged and never interrupt the tick.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	effects := GetRuntime(e).Effects
	for _, soundID := range audioData.PendingSFX {
		if soundID == cfg.SoundNone || effects == nil {
			continue
		}
		if err := effects.Play(soundID); err != nil {
			log.Printf("Warning: could not play %s: %v", cfg.Sound.Names[soundID], err)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
