package systems

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"termpong/core"
	"termpong/engine"
	"termpong/physics"
	"termpong/vmath"
)

// newTestContext builds a game context on a simulation screen
func newTestContext(t *testing.T) *engine.GameContext {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return engine.NewGameContext(screen)
}

// placeBall positions the ball at a cell with the given velocity in cells/sec
func placeBall(ctx *engine.GameContext, x, y int, velX, velY float64) {
	kin, _ := ctx.World.Kinetics.Get(ctx.BallEntity)
	physics.PlaceAt(&kin.Kinetic, x, y)
	physics.SetImpulse(&kin.Kinetic, vmath.FromFloat(velX), vmath.FromFloat(velY))
	ctx.World.Kinetics.Set(ctx.BallEntity, kin)
}

// placePaddle centers a paddle on a row and sets its control mode
func placePaddle(ctx *engine.GameContext, side core.Side, row int, auto bool) {
	e := ctx.PaddleEntities[side]
	paddle, _ := ctx.World.Paddles.Get(e)
	paddle.Y = vmath.FromInt(row) + vmath.CellCenter
	paddle.Auto = auto
	ctx.World.Paddles.Set(e, paddle)
}

// ballState returns the ball's cell position and velocity
func ballState(ctx *engine.GameContext) (x, y int, velX, velY int64) {
	kin, _ := ctx.World.Kinetics.Get(ctx.BallEntity)
	return vmath.ToInt(kin.PreciseX), vmath.ToInt(kin.PreciseY), kin.VelX, kin.VelY
}

// points returns a side's score
func points(ctx *engine.GameContext, side core.Side) int64 {
	score, _ := ctx.World.Scores.Get(ctx.ScoreEntities[side])
	return score.Points
}
