package render

import (
	"time"

	"termpong/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	GameTime  time.Time
	DeltaTime float64
	IsPaused  bool
	IsMuted   bool
	HasAudio  bool

	// Play field offset from the screen origin
	FieldX int
	FieldY int

	// Play field dimensions
	FieldWidth  int
	FieldHeight int

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContextFromGame snapshots frame state from the game context
func NewRenderContextFromGame(ctx *engine.GameContext) RenderContext {
	rc := RenderContext{
		GameTime:  ctx.Time.GameTime,
		DeltaTime: ctx.Time.DeltaTime.Seconds(),
		IsPaused:  ctx.IsPaused(),

		FieldX:      ctx.Arena.FieldX,
		FieldY:      ctx.Arena.FieldY,
		FieldWidth:  ctx.Arena.FieldWidth,
		FieldHeight: ctx.Arena.FieldHeight,

		ScreenWidth:  ctx.Width,
		ScreenHeight: ctx.Height,
	}

	if audio, ok := engine.GetResource[*engine.AudioResource](ctx.World.Resources); ok && audio.Player != nil {
		rc.HasAudio = audio.Player.IsRunning()
		rc.IsMuted = audio.Player.IsMuted()
	}

	return rc
}

// FieldToScreen converts field-local coordinates to screen coordinates
func (rc *RenderContext) FieldToScreen(x, y int) (int, int) {
	return x + rc.FieldX, y + rc.FieldY
}

// InField checks that a field-local coordinate is inside the play field
func (rc *RenderContext) InField(x, y int) bool {
	return x >= 0 && x < rc.FieldWidth && y >= 0 && y < rc.FieldHeight
}
