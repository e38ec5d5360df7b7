package systems

import (
	"time"

	"termpong/constants"
	"termpong/core"
	"termpong/engine"
	"termpong/vmath"
)

// AutoPilotSystem moves auto-mode paddles toward the ball's predicted intercept row
type AutoPilotSystem struct {
	ctx *engine.GameContext
}

// NewAutoPilotSystem creates a new auto-paddle controller
func NewAutoPilotSystem(ctx *engine.GameContext) *AutoPilotSystem {
	return &AutoPilotSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *AutoPilotSystem) Priority() int {
	return constants.PriorityAutoPilot
}

// Update steers each auto paddle toward its target row at a bounded speed
func (s *AutoPilotSystem) Update(world *engine.World, dt time.Duration) {
	kin, ok := world.Kinetics.Get(s.ctx.BallEntity)
	if !ok {
		return
	}

	a := s.ctx.Arena
	dtQ := vmath.FromFloat(dt.Seconds())
	maxStep := vmath.Mul(a.AutoPaddleSpeed, dtQ)

	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		e := s.ctx.PaddleEntities[side]
		paddle, ok := world.Paddles.Get(e)
		if !ok || !paddle.Auto {
			continue
		}

		target := interceptRow(&kin.Kinetic, side, a)

		// Bounded tracking: move at most maxStep toward the target
		diff := target - paddle.Y
		if vmath.Abs(diff) <= maxStep {
			paddle.Y = target
		} else if diff > 0 {
			paddle.Y += maxStep
		} else {
			paddle.Y -= maxStep
		}

		paddle.Y = clampPaddleY(paddle.Y, paddle.HalfHeight, a.FieldHeight)
		world.Paddles.Set(e, paddle)
	}
}

// interceptRow predicts where the ball will cross this paddle's goal line
// When the ball moves away (or straight vertically) the paddle tracks the
// ball row instead of extrapolating backwards
func interceptRow(k *core.Kinetic, side core.Side, a *engine.ArenaResource) int64 {
	approaching := (side == core.SideRight && k.VelX > 0) ||
		(side == core.SideLeft && k.VelX < 0)
	if !approaching || k.VelX == 0 {
		return k.PreciseY
	}

	goalX := vmath.FromInt(a.GoalCol(side)) + vmath.CellCenter
	flight := vmath.Div(goalX-k.PreciseX, k.VelX)
	return k.PreciseY + vmath.Mul(k.VelY, flight)
}
