package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	flapDuration = 90 * time.Millisecond
	hitDuration  = 260 * time.Millisecond
)

// FlapSound is a short rising chirp.
func FlapSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	chirp := NewSweep(420, 780, flapDuration, WaveTriangle, rate)
	shaped := NewEnvelope(chirp, flapDuration, 5*time.Millisecond, 60*time.Millisecond, rate)

	return newVolume(shaped, cfg.FlapVolume*cfg.MasterVolume)
}

// HitSound is a falling thud with a burst of noise on top.
func HitSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	thud := NewSweep(220, 55, hitDuration, WaveSquare, rate)
	thudShaped := NewEnvelope(thud, hitDuration, 2*time.Millisecond, 180*time.Millisecond, rate)

	crack := NewOscillator(0, hitDuration, WaveNoise, rate)
	crackShaped := NewEnvelope(crack, hitDuration, time.Millisecond, 240*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(thudShaped, 0.6),
		newVolume(crackShaped, 0.3),
	)
	return newVolume(mixed, cfg.HitVolume*cfg.MasterVolume)
}
