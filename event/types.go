package event

import (
	"termpong/core"
)

// EventType represents the type of game event
type EventType int

const (
	// EventWallBounce fires when the ball reflects off the top/bottom wall
	// Trigger: CollisionSystem | Payload: *BouncePayload
	EventWallBounce EventType = iota

	// EventPaddleBounce fires when a paddle catches the ball
	// Trigger: CollisionSystem | Payload: *BouncePayload
	EventPaddleBounce

	// EventGoal fires when the ball crosses a goal line undefended
	// Trigger: CollisionSystem | Payload: *GoalPayload
	EventGoal

	// EventModeToggle fires when a paddle switches between manual and auto
	// Trigger: input handler | Payload: *ModeTogglePayload
	EventModeToggle

	// EventSoundRequest requests direct audio playback
	// Trigger: any system | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

// GameEvent is a single queued event with its origin frame
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// BouncePayload describes a wall or paddle reflection
type BouncePayload struct {
	// Side is the catching paddle's side (paddle bounce only)
	Side core.Side

	// Row is the ball row at the moment of contact
	Row int

	// Rally is the consecutive catch count after this bounce
	Rally int32
}

// GoalPayload describes a scored goal
type GoalPayload struct {
	// Scorer is the side whose counter was incremented
	Scorer core.Side

	// Conceded is the side that missed the ball
	Conceded core.Side

	// Points is the scorer's total after the increment
	Points int64
}

// ModeTogglePayload describes a control mode switch
type ModeTogglePayload struct {
	Side core.Side
	Auto bool
}

// SoundRequestPayload carries a direct playback request
type SoundRequestPayload struct {
	Sound core.SoundType
}
