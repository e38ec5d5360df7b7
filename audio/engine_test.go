package audio

import (
	"testing"

	"termpong/core"
)

func TestEngineStartsMutedWhenDisabled(t *testing.T) {
	ae := NewAudioEngine(false, 1.0)
	if !ae.IsMuted() {
		t.Error("Disabled engine should start muted")
	}

	ae = NewAudioEngine(true, 1.0)
	if ae.IsMuted() {
		t.Error("Enabled engine should start unmuted")
	}
}

func TestToggleMute(t *testing.T) {
	ae := NewAudioEngine(true, 1.0)

	if got := ae.ToggleMute(); !got {
		t.Error("First toggle should mute")
	}
	if got := ae.ToggleMute(); got {
		t.Error("Second toggle should unmute")
	}
}

func TestPlayBeforeStartIsNoop(t *testing.T) {
	ae := NewAudioEngine(true, 1.0)

	if ae.IsRunning() {
		t.Error("Engine running before Start")
	}
	if ae.Play(core.SoundPaddle) {
		t.Error("Play succeeded before Start")
	}
}

func TestPlayInSilentModeIsNoop(t *testing.T) {
	ae := NewAudioEngine(true, 1.0)
	ae.running.Store(true)
	ae.silentMode.Store(true)

	if ae.Play(core.SoundWall) {
		t.Error("Play succeeded in silent mode")
	}
}

func TestVolumeClamped(t *testing.T) {
	ae := NewAudioEngine(true, 5.0)
	if ae.masterVolume > 1.0 {
		t.Errorf("masterVolume = %f, want clamped", ae.masterVolume)
	}

	ae.SetVolume(-1)
	if ae.masterVolume != 0 {
		t.Errorf("masterVolume = %f after negative set", ae.masterVolume)
	}
}
