// Package audio plays procedural sound effects for combat events.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"auto-battler/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes effects onto the speaker. It is safe to call from the
// game loop while the speaker goroutine is streaming.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. On failure the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted toggles playback without tearing down the device.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Subscribe hooks the manager up to the events it has sounds for.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.DamageDealt, event.LevelUp, event.GameOver)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if s := SoundFor(e, sampleRate); s != nil {
		sm.play(s)
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
	log.Println("audio: closed")
}

// SoundFor picks the effect for an event, or nil.
func SoundFor(e event.Event, rate beep.SampleRate) beep.Streamer {
	switch data := e.Data.(type) {
	case event.DamageData:
		if data.ToPlayer {
			return HurtSound(rate)
		}
		return HitSound(data.IsCritical, rate)
	case event.LevelUpData:
		return LevelUpSound(rate)
	case event.GameOverData:
		return GameOverSound(rate)
	}
	return nil
}
