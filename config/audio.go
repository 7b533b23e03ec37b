package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundSwipe
	SoundHit
	SoundHurt
	SoundEnemyDeath
	SoundGrass
	SoundRoll
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64 `yaml:"sfx_volume"`
}

// Tone describes a synthesized sound effect. The pitch slides from StartHz
// to EndHz over Seconds and the amplitude decays linearly to silence. Noise
// mixes in white noise, 0 for a pure square wave and 1 for pure noise.
type Tone struct {
	StartHz float64
	EndHz   float64
	Seconds float64
	Volume  float64
	Noise   float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundSwipe:      {StartHz: 900, EndHz: 300, Seconds: 0.08, Volume: 0.3, Noise: 0.6},
			SoundHit:        {StartHz: 220, EndHz: 80, Seconds: 0.1, Volume: 0.5, Noise: 0.4},
			SoundHurt:       {StartHz: 440, EndHz: 110, Seconds: 0.3, Volume: 0.6, Noise: 0.1},
			SoundEnemyDeath: {StartHz: 330, EndHz: 40, Seconds: 0.35, Volume: 0.5, Noise: 0.5},
			SoundGrass:      {StartHz: 2000, EndHz: 1000, Seconds: 0.12, Volume: 0.25, Noise: 1},
			SoundRoll:       {StartHz: 150, EndHz: 250, Seconds: 0.15, Volume: 0.2, Noise: 0.8},
		},
	}
}
