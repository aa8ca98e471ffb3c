package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShoot
	SoundExplosion
	SoundEnemyShoot
	SoundHit
	SoundLevelUp
	SoundGameOver
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Waveform selects the oscillator used to synthesize an effect
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveNoise
)

// EffectRecipe describes a synthesized effect: a frequency sweep from
// StartHz to EndHz over Duration seconds with a linear decay envelope.
type EffectRecipe struct {
	Wave     Waveform
	StartHz  float64
	EndHz    float64
	Duration float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their synthesis recipes
type SoundConfig struct {
	Names             map[SoundID]string
	Recipes           map[SoundID]EffectRecipe
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.3,
	}

	Sound = SoundConfig{
		Names: map[SoundID]string{
			SoundShoot:        "shoot",
			SoundExplosion:    "explosion",
			SoundEnemyShoot:   "enemyShoot",
			SoundHit:          "hit",
			SoundLevelUp:      "levelUp",
			SoundGameOver:     "gameOver",
			SoundMenuNavigate: "menuNavigate",
			SoundMenuSelect:   "menuSelect",
		},
		Recipes: map[SoundID]EffectRecipe{
			SoundShoot:        {Wave: WaveSquare, StartHz: 880, EndHz: 440, Duration: 0.08},
			SoundExplosion:    {Wave: WaveNoise, StartHz: 400, EndHz: 60, Duration: 0.35},
			SoundEnemyShoot:   {Wave: WaveSquare, StartHz: 330, EndHz: 220, Duration: 0.1},
			SoundHit:          {Wave: WaveNoise, StartHz: 200, EndHz: 40, Duration: 0.3},
			SoundLevelUp:      {Wave: WaveSine, StartHz: 440, EndHz: 1320, Duration: 0.5},
			SoundGameOver:     {Wave: WaveSine, StartHz: 440, EndHz: 110, Duration: 1.0},
			SoundMenuNavigate: {Wave: WaveSine, StartHz: 660, EndHz: 660, Duration: 0.04},
			SoundMenuSelect:   {Wave: WaveSine, StartHz: 660, EndHz: 990, Duration: 0.08},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundExplosion: 1.5,
			SoundHit:       1.5,
		},
	}
}
