package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval drives both simulation ticks and rendering (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// ECS & Resource Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System Execution Priorities (lower runs first)
const (
	PriorityPaddle    = 10
	PriorityAutoPilot = 12
	PrioritySpeed     = 15
	PriorityBall      = 20
	PriorityCollision = 25
	PriorityAudio     = 800 // After game logic, consumes the event queue
)
