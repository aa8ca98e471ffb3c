// Package sfx synthesizes the game's sound effects. Nothing is loaded from
// disk: every effect is a short frequency sweep shaped by a linear decay.
package sfx

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/swoopers/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

var ErrUnknownSound = errors.New("sfx: unknown sound")

// sweep is an oscillator whose frequency slides from start to end over its
// lifetime while its amplitude decays linearly to zero.
type sweep struct {
	wave     cfg.Waveform
	start    float64
	end      float64
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
	held     float64 // Current noise value, resampled once per cycle
	rng      *rand.Rand
}

// NewSweep creates the streamer for a recipe.
func NewSweep(r cfg.EffectRecipe, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		wave:  r.Wave,
		start: r.StartHz,
		end:   r.EndHz,
		rate:  rate,
		total: rate.N(time.Duration(r.Duration * float64(time.Second))),
		rng:   rand.New(rand.NewSource(int64(r.StartHz*1000 + r.EndHz))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.total)
		freq := s.start + (s.end-s.start)*t

		var val float64
		switch s.wave {
		case cfg.WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case cfg.WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case cfg.WaveNoise:
			val = s.held
		}
		val *= 1 - t

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		if s.phase >= 1 {
			s.phase -= math.Floor(s.phase)
			s.held = s.rng.Float64()*2 - 1
		}
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// Effect returns the streamer for a sound at the given master volume,
// including the sound's own volume multiplier.
func Effect(id cfg.SoundID, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	recipe, ok := cfg.Sound.Recipes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, id)
	}
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	return newVolume(NewSweep(recipe, rate), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is handled as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Render drains a finite streamer into memory.
func Render(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

// PCM16 encodes stereo samples as interleaved signed 16-bit little-endian
// PCM, clipping to [-1, 1].
func PCM16(samples [][2]float64) []byte {
	out := make([]byte, 0, len(samples)*4)
	for _, frame := range samples {
		for _, v := range frame {
			v = math.Max(-1, math.Min(1, v))
			s := int16(v * math.MaxInt16)
			out = append(out, byte(s), byte(uint16(s)>>8))
		}
	}
	return out
}
