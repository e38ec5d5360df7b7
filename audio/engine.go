package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"termpong/constants"
	"termpong/core"
)

// AudioEngine synthesizes sound effects through the system speaker
// Speaker failure is not fatal: the engine runs in silent mode and
// every Play call becomes a no-op
type AudioEngine struct {
	rate  beep.SampleRate
	mixer *beep.Mixer

	masterVolume float64

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu sync.Mutex // Guards speaker setup, teardown, and masterVolume
}

// NewAudioEngine creates an audio engine
// volume scales every effect; enabled=false starts muted
func NewAudioEngine(enabled bool, volume float64) *AudioEngine {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	ae := &AudioEngine{
		rate:         beep.SampleRate(constants.AudioSampleRate),
		mixer:        &beep.Mixer{},
		masterVolume: volume * constants.EffectMasterLevel,
	}
	ae.muted.Store(!enabled)
	return ae
}

// Start opens the speaker and attaches the mixer
// A speaker failure switches to silent mode and returns nil
func (ae *AudioEngine) Start() error {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if ae.running.Load() {
		return nil
	}

	if err := speaker.Init(ae.rate, ae.rate.N(constants.AudioBufferDuration)); err != nil {
		ae.silentMode.Store(true)
		ae.running.Store(true)
		return nil
	}

	speaker.Play(ae.mixer)
	ae.running.Store(true)
	return nil
}

// Stop silences the mixer and shuts the engine down
func (ae *AudioEngine) Stop() {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.running.Load() {
		return
	}

	if !ae.silentMode.Load() {
		speaker.Lock()
		ae.mixer.Clear()
		speaker.Unlock()
	}
	ae.running.Store(false)
}

// Play queues a sound effect. Returns true if it was actually scheduled
func (ae *AudioEngine) Play(st core.SoundType) bool {
	if !ae.running.Load() || ae.muted.Load() || ae.silentMode.Load() {
		return false
	}

	ae.mu.Lock()
	vol := ae.masterVolume
	ae.mu.Unlock()

	streamer := GetSoundEffect(st, ae.rate, vol)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	ae.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute state and returns the new state
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	return newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsRunning returns true once Start has completed
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// SetVolume updates the master volume for subsequent effects
func (ae *AudioEngine) SetVolume(vol float64) {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	ae.masterVolume = vol * constants.EffectMasterLevel
}
