package ui

import (
	"fmt"
	"sync"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/sfx"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = 1
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// SetSFXVolume changes the master effect volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the master effect volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// Effects plays synthesized effects through ebiten's audio context. Each
// play gets a fresh player so effects may overlap.
type Effects struct {
	mu    sync.Mutex
	cache map[cfg.SoundID][]byte
}

func NewEffects() *Effects {
	return &Effects{cache: make(map[cfg.SoundID][]byte)}
}

// Preload synthesizes every effect up front so the first play does not
// stall a frame.
func (p *Effects) Preload() {
	for id := range cfg.Sound.Recipes {
		_, _ = p.pcm(id)
	}
}

func (p *Effects) Play(id cfg.SoundID) error {
	if globalSFXVolume <= 0 {
		return nil
	}
	initGlobalAudio()

	pcm, err := p.pcm(id)
	if err != nil {
		return err
	}
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(cfg.Audio.DefaultSFXVol * globalSFXVolume)
	player.Play()
	return nil
}

func (p *Effects) pcm(id cfg.SoundID) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if b, ok := p.cache[id]; ok {
		return b, nil
	}
	s, err := sfx.Effect(id, beep.SampleRate(cfg.Audio.SampleRate), 1)
	if err != nil {
		return nil, fmt.Errorf("synthesize %s: %w", cfg.Sound.Names[id], err)
	}
	b := sfx.PCM16(sfx.Render(s))
	p.cache[id] = b
	return b, nil
}
