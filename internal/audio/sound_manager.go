package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker and plays pre-rendered effects.
// OnFlap and OnHit never block on audio output, so it can be used as the
// game's event listener.
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	flap        *beep.Buffer
	hit         *beep.Buffer
	initialized bool
}

// NewSoundManager renders the effects for cfg. Nothing plays until
// Initialize succeeds.
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		flap:  render(cfg, FlapSound(cfg)),
		hit:   render(cfg, HitSound(cfg)),
	}
}

func render(cfg Config, s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(s)
	return buf
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// OnFlap plays the flap chirp.
func (sm *SoundManager) OnFlap() {
	sm.play(sm.flap)
}

// OnHit plays the hit sound.
func (sm *SoundManager) OnHit() {
	sm.play(sm.hit)
}

func (sm *SoundManager) play(buf *beep.Buffer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Playing returns the number of effects still in the mixer.
func (sm *SoundManager) Playing() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
