package systems

import (
	"testing"

	"termpong/core"
	"termpong/event"
)

// fakePlayer records requested sounds
type fakePlayer struct {
	played []core.SoundType
	muted  bool
}

func (f *fakePlayer) Play(s core.SoundType) bool {
	f.played = append(f.played, s)
	return !f.muted
}

func (f *fakePlayer) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func (f *fakePlayer) IsMuted() bool  { return f.muted }
func (f *fakePlayer) IsRunning() bool { return true }

func TestEventSoundMapping(t *testing.T) {
	ctx := newTestContext(t)
	player := &fakePlayer{}
	ctx.SetAudioPlayer(player)
	audio := NewAudioSystem(ctx)

	ctx.World.PushEvent(event.EventWallBounce, &event.BouncePayload{})
	ctx.World.PushEvent(event.EventPaddleBounce, &event.BouncePayload{})
	ctx.World.PushEvent(event.EventGoal, &event.GoalPayload{})
	ctx.World.PushEvent(event.EventModeToggle, &event.ModeTogglePayload{})
	ctx.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundToggle})

	audio.Update(ctx.World, testDt)

	want := []core.SoundType{
		core.SoundWall,
		core.SoundPaddle,
		core.SoundGoal,
		core.SoundToggle,
		core.SoundToggle,
	}
	if len(player.played) != len(want) {
		t.Fatalf("played %d sounds, want %d", len(player.played), len(want))
	}
	for i, s := range want {
		if player.played[i] != s {
			t.Errorf("sound[%d] = %v, want %v", i, player.played[i], s)
		}
	}
}

func TestEventsDrainedWithoutPlayer(t *testing.T) {
	ctx := newTestContext(t)
	audio := NewAudioSystem(ctx)

	ctx.World.PushEvent(event.EventGoal, &event.GoalPayload{})
	audio.Update(ctx.World, testDt)

	if remaining := ctx.Events.Consume(); len(remaining) != 0 {
		t.Errorf("%d events left in queue", len(remaining))
	}
}

func TestNoEventsNoPlays(t *testing.T) {
	ctx := newTestContext(t)
	player := &fakePlayer{}
	ctx.SetAudioPlayer(player)
	audio := NewAudioSystem(ctx)

	audio.Update(ctx.World, testDt)

	if len(player.played) != 0 {
		t.Errorf("played %d sounds with no events", len(player.played))
	}
}
