package engine

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"termpong/component"
	"termpong/constants"
	"termpong/core"
	"termpong/event"
	"termpong/physics"
	"termpong/vmath"
)

// GameContext holds all game state including the ECS world
type GameContext struct {
	// ECS World
	World *World

	// Screen
	Screen tcell.Screen

	// Clocks
	TimeProvider  *TimeProvider
	PausableClock *PausableClock

	// Event queue (shared with the world hot path)
	Events *event.EventQueue

	// Shared resource instances (also registered in World.Resources)
	Arena    *ArenaResource
	Time     *TimeResource
	Input    *InputResource
	Settings *SettingsResource

	// Screen dimensions
	Width, Height int

	// Well-known entities, indexed by core.Side where applicable
	BallEntity     core.Entity
	PaddleEntities [2]core.Entity
	ScoreEntities  [2]core.Entity

	frameNumber atomic.Int64
	paused      atomic.Bool
}

// NewGameContext creates a new game context with initialized ECS world
func NewGameContext(screen tcell.Screen) *GameContext {
	width, height := screen.Size()

	ctx := &GameContext{
		World:         NewWorld(),
		Screen:        screen,
		TimeProvider:  NewTimeProvider(),
		PausableClock: NewPausableClock(),
		Events:        event.NewEventQueue(),
		Arena:         &ArenaResource{},
		Time:          &TimeResource{},
		Input:         &InputResource{},
		Settings: &SettingsResource{
			PaddleStep:    constants.PaddleStep,
			SpeedScoreCap: constants.SpeedRampScoreCap,
		},
		Width:  width,
		Height: height,
	}

	ctx.updateArena()

	AddResource(ctx.World.Resources, ctx.Arena)
	AddResource(ctx.World.Resources, ctx.Time)
	AddResource(ctx.World.Resources, ctx.Input)
	AddResource(ctx.World.Resources, ctx.Settings)
	AddResource(ctx.World.Resources, &EventQueueResource{Queue: ctx.Events})

	ctx.World.SetEventMetadata(ctx.Events, &ctx.frameNumber)

	ctx.spawnEntities()

	return ctx
}

// updateArena recomputes play field geometry and derived kinematics
// Field-local coordinates exclude the score header and status bar rows
func (g *GameContext) updateArena() {
	width := g.Width
	height := g.Height
	if width < constants.MinFieldWidth {
		width = constants.MinFieldWidth
	}
	if height < constants.MinFieldHeight {
		height = constants.MinFieldHeight
	}

	a := g.Arena
	a.ScreenWidth = g.Width
	a.ScreenHeight = g.Height
	a.FieldX = 0
	a.FieldY = constants.HeaderRows
	a.FieldWidth = width
	a.FieldHeight = height - constants.HeaderRows - constants.StatusRows

	a.PaddleHalfHeight = a.FieldHeight / constants.PaddleHeightDivisor
	if a.PaddleHalfHeight < 1 {
		a.PaddleHalfHeight = 1
	}

	a.BallSpeedX = vmath.FromFloat(float64(a.FieldWidth) * constants.BallSpeedXFraction)
	a.BallSpeedY = vmath.FromFloat(float64(a.FieldHeight) * constants.BallSpeedYFraction)
	a.AutoPaddleSpeed = vmath.FromFloat(float64(a.FieldHeight) * constants.AutoPaddleSpeedFraction)
}

// spawnEntities creates the ball, both paddles, and both score counters
// Both paddles start in auto mode so the game demos itself until a player takes over
func (g *GameContext) spawnEntities() {
	a := g.Arena
	centerY := vmath.FromInt(a.FieldHeight/2) + vmath.CellCenter

	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		paddle := g.World.CreateEntity()
		g.World.Paddles.Set(paddle, component.PaddleComponent{
			Side:       side,
			Auto:       true,
			Y:          centerY,
			HalfHeight: a.PaddleHalfHeight,
		})
		g.PaddleEntities[side] = paddle

		score := g.World.CreateEntity()
		g.World.Scores.Set(score, component.ScoreComponent{Side: side})
		g.ScoreEntities[side] = score
	}

	ball := g.World.CreateEntity()
	var kin component.KineticComponent
	physics.PlaceAt(&kin.Kinetic, a.FieldWidth/2, a.FieldHeight/2)
	physics.SetImpulse(&kin.Kinetic, a.BallSpeedX, a.BallSpeedY)
	g.World.Kinetics.Set(ball, kin)
	g.World.Balls.Set(ball, component.BallComponent{SpeedFactor: vmath.Scale})
	g.BallEntity = ball
}

// HandleResize recomputes arena geometry and clamps entities into the new field
func (g *GameContext) HandleResize() {
	g.Width, g.Height = g.Screen.Size()

	g.World.RunSafe(func() {
		g.updateArena()
		a := g.Arena

		for _, e := range g.PaddleEntities {
			if paddle, ok := g.World.Paddles.Get(e); ok {
				paddle.HalfHeight = a.PaddleHalfHeight
				minY := vmath.FromInt(a.PaddleHalfHeight)
				maxY := vmath.FromInt(a.FieldHeight-1-a.PaddleHalfHeight) + vmath.CellCenter
				paddle.Y = vmath.Clamp(paddle.Y, minY, maxY)
				g.World.Paddles.Set(e, paddle)
			}
		}

		if kin, ok := g.World.Kinetics.Get(g.BallEntity); ok {
			kin.PreciseX = vmath.Clamp(kin.PreciseX, 0, vmath.FromInt(a.FieldWidth-1)+vmath.CellCenter)
			kin.PreciseY = vmath.Clamp(kin.PreciseY, 0, vmath.FromInt(a.FieldHeight-1)+vmath.CellCenter)
			g.World.Kinetics.Set(g.BallEntity, kin)
		}
	})
}

// TogglePaddleMode flips a paddle between manual and auto control
// The paddle position is preserved across the switch
func (g *GameContext) TogglePaddleMode(side core.Side) {
	g.World.RunSafe(func() {
		e := g.PaddleEntities[side]
		paddle, ok := g.World.Paddles.Get(e)
		if !ok {
			return
		}
		paddle.Auto = !paddle.Auto
		g.World.Paddles.Set(e, paddle)

		g.World.PushEvent(event.EventModeToggle, &event.ModeTogglePayload{
			Side: side,
			Auto: paddle.Auto,
		})
	})
}

// QueuePaddleStep records a manual movement request (negative = up)
func (g *GameContext) QueuePaddleStep(side core.Side, delta int) {
	g.Input.QueueStep(side, delta)
}

// TogglePause switches between running and paused
// Game time freezes during pause; rendering continues
func (g *GameContext) TogglePause() bool {
	if g.paused.CompareAndSwap(false, true) {
		g.PausableClock.Pause()
		return true
	}
	g.paused.Store(false)
	g.PausableClock.Resume()
	return false
}

// IsPaused returns the pause state
func (g *GameContext) IsPaused() bool {
	return g.paused.Load()
}

// IncrementFrameNumber advances the frame counter and returns the new value
func (g *GameContext) IncrementFrameNumber() int64 {
	return g.frameNumber.Add(1)
}

// FrameNumber returns the current frame counter
func (g *GameContext) FrameNumber() int64 {
	return g.frameNumber.Load()
}

// SetAudioPlayer registers the audio player as a world resource
func (g *GameContext) SetAudioPlayer(player AudioPlayer) {
	AddResource(g.World.Resources, &AudioResource{Player: player})
}
