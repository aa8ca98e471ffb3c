package terminal

import (
	"fmt"
	"time"

	cfg "github.com/automoto/swoopers/config"
	"github.com/automoto/swoopers/sfx"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays effects through the system audio device. All effects go
// through one mixer so they can overlap.
type Speaker struct {
	rate   beep.SampleRate
	mixer  *beep.Mixer
	Volume float64
}

// NewSpeaker initializes the audio device. It may only be called once per
// process.
func NewSpeaker(volume float64) (*Speaker, error) {
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("terminal: init speaker: %w", err)
	}
	s := &Speaker{rate: rate, mixer: &beep.Mixer{}, Volume: volume}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) Play(id cfg.SoundID) error {
	if s.Volume <= 0 {
		return nil
	}
	streamer, err := sfx.Effect(id, s.rate, cfg.Audio.DefaultSFXVol*s.Volume)
	if err != nil {
		return err
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
