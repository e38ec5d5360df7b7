package systems

import (
	"time"

	"termpong/constants"
	"termpong/engine"
	"termpong/physics"
	"termpong/vmath"
)

// BallSystem integrates ball kinematics scaled by the current speed factor
type BallSystem struct {
	ctx *engine.GameContext
}

// NewBallSystem creates a new ball movement system
func NewBallSystem(ctx *engine.GameContext) *BallSystem {
	return &BallSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *BallSystem) Priority() int {
	return constants.PriorityBall
}

// Update advances the ball by v * speedFactor * dt
func (s *BallSystem) Update(world *engine.World, dt time.Duration) {
	e := s.ctx.BallEntity
	kin, ok := world.Kinetics.Get(e)
	if !ok {
		return
	}
	ball, ok := world.Balls.Get(e)
	if !ok {
		return
	}

	dtQ := vmath.FromFloat(dt.Seconds())
	physics.IntegrateScaled(&kin.Kinetic, dtQ, ball.SpeedFactor)
	world.Kinetics.Set(e, kin)
}
