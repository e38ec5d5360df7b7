package engine

import (
	"testing"
	"time"
)

func TestPausableClockFreezesDuringPause(t *testing.T) {
	pc := NewPausableClock()

	pc.Pause()
	frozen := pc.Now()
	time.Sleep(20 * time.Millisecond)
	if got := pc.Now(); !got.Equal(frozen) {
		t.Errorf("game time advanced during pause: %v -> %v", frozen, got)
	}
}

func TestPausableClockResumeExcludesPausedTime(t *testing.T) {
	pc := NewPausableClock()

	before := pc.Now()
	pc.Pause()
	time.Sleep(30 * time.Millisecond)
	pc.Resume()
	after := pc.Now()

	elapsed := after.Sub(before)
	if elapsed >= 30*time.Millisecond {
		t.Errorf("paused duration leaked into game time: %v", elapsed)
	}
	if pc.TotalPauseDuration() < 30*time.Millisecond {
		t.Errorf("total pause duration = %v, want >= 30ms", pc.TotalPauseDuration())
	}
}

func TestPausableClockDoublePauseIsIdempotent(t *testing.T) {
	pc := NewPausableClock()
	pc.Pause()
	pc.Pause()
	if !pc.IsPaused() {
		t.Error("clock not paused")
	}
	pc.Resume()
	if pc.IsPaused() {
		t.Error("clock still paused after resume")
	}
	pc.Resume() // No-op
	if pc.IsPaused() {
		t.Error("second resume toggled pause state")
	}
}
