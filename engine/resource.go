package engine

import (
	"reflect"
	"sync"
	"time"

	"termpong/core"
	"termpong/event"
)

// ResourceStore is a thread-safe container for global game resources
// It allows systems to access shared data (Time, Arena, Input) without
// coupling to the GameContext
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or updates a resource in the store
// T should be the pointer type of the resource struct so systems share one instance
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	t := reflect.TypeOf(resource)
	rs.resources[t] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	t := reflect.TypeOf(target)

	val, ok := rs.resources[t]
	if !ok {
		return target, false
	}

	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Useful for core resources (Time, Arena) that must exist
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// --- Core Resources ---

// TimeResource wraps time data for systems
// It is updated by the GameContext at the start of a frame
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under the world update lock to prevent races with system reads
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ArenaResource holds the play field geometry and derived kinematics
// Field-local coordinates run (0,0)..(FieldWidth-1, FieldHeight-1);
// renderers add FieldX/FieldY to obtain screen positions
type ArenaResource struct {
	ScreenWidth  int
	ScreenHeight int

	FieldX, FieldY          int
	FieldWidth, FieldHeight int

	// PaddleHalfHeight is derived from FieldHeight
	PaddleHalfHeight int

	// Serve velocities in cells per second (Q32.32), derived from field dimensions
	BallSpeedX int64
	BallSpeedY int64

	// AutoPaddleSpeed is the auto-mode tracking speed in cells per second (Q32.32)
	AutoPaddleSpeed int64
}

// LeftGoalCol and RightGoalCol return the paddle columns in field coordinates
func (a *ArenaResource) LeftGoalCol() int  { return 0 }
func (a *ArenaResource) RightGoalCol() int { return a.FieldWidth - 1 }

// GoalCol returns the paddle column for a side
func (a *ArenaResource) GoalCol(s core.Side) int {
	if s == core.SideLeft {
		return a.LeftGoalCol()
	}
	return a.RightGoalCol()
}

// InputResource carries queued manual paddle steps from the input handler
// Systems consume the steps under the world update lock
type InputResource struct {
	mu sync.Mutex

	// steps accumulates signed cell movement per side since the last tick
	steps [2]int
}

// QueueStep adds a signed movement step for a side (negative = up)
func (ir *InputResource) QueueStep(s core.Side, delta int) {
	ir.mu.Lock()
	defer ir.mu.Unlock()
	ir.steps[s] += delta
}

// DrainSteps returns and clears the accumulated movement for a side
func (ir *InputResource) DrainSteps(s core.Side) int {
	ir.mu.Lock()
	defer ir.mu.Unlock()
	delta := ir.steps[s]
	ir.steps[s] = 0
	return delta
}

// SettingsResource carries config-derived gameplay tuning
// Registered with defaults at startup; the config loader may overwrite it
type SettingsResource struct {
	// PaddleStep is the cells moved per manual input step
	PaddleStep int

	// SpeedScoreCap bounds the score contribution to the ball speed ramp
	SpeedScoreCap int64
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}
