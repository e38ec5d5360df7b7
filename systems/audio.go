package systems

import (
	"time"

	"termpong/constants"
	"termpong/core"
	"termpong/engine"
	"termpong/event"
)

// AudioSystem is the single consumer of the event queue: it maps gameplay
// events to sound effects. Runs last so it sees the whole tick's events
type AudioSystem struct {
	ctx *engine.GameContext
}

// NewAudioSystem creates a new audio dispatch system
func NewAudioSystem(ctx *engine.GameContext) *AudioSystem {
	return &AudioSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return constants.PriorityAudio
}

// Update drains pending events and triggers their sounds
func (s *AudioSystem) Update(world *engine.World, dt time.Duration) {
	events := s.ctx.Events.Consume()
	if len(events) == 0 {
		return
	}

	audioRes, ok := engine.GetResource[*engine.AudioResource](world.Resources)
	if !ok || audioRes.Player == nil {
		return
	}
	player := audioRes.Player

	for _, ev := range events {
		switch ev.Type {
		case event.EventWallBounce:
			player.Play(core.SoundWall)
		case event.EventPaddleBounce:
			player.Play(core.SoundPaddle)
		case event.EventGoal:
			player.Play(core.SoundGoal)
		case event.EventModeToggle:
			player.Play(core.SoundToggle)
		case event.EventSoundRequest:
			if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
				player.Play(payload.Sound)
			}
		}
	}
}
