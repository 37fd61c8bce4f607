// Package audio synthesizes the game's sound effects with beep and plays
// them through the system speaker.
package audio

// Config controls sample rate and effect volumes. Volumes are linear in [0, 1].
type Config struct {
	SampleRate   int
	MasterVolume float64
	FlapVolume   float64
	HitVolume    float64
}

// DefaultConfig returns the default audio settings.
func DefaultConfig() Config {
	return Config{
		SampleRate:   44100,
		MasterVolume: 0.6,
		FlapVolume:   0.5,
		HitVolume:    0.8,
	}
}
