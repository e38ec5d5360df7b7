package systems

import (
	"time"

	"termpong/constants"
	"termpong/core"
	"termpong/engine"
	"termpong/vmath"
)

// PaddleSystem applies queued manual movement steps to paddles
// Steps originate from the input handler; terminal key auto-repeat
// turns a held key into a stream of steps
type PaddleSystem struct {
	ctx *engine.GameContext
}

// NewPaddleSystem creates a new paddle movement system
func NewPaddleSystem(ctx *engine.GameContext) *PaddleSystem {
	return &PaddleSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *PaddleSystem) Priority() int {
	return constants.PriorityPaddle
}

// Update consumes pending movement steps and clamps paddles into the field
func (s *PaddleSystem) Update(world *engine.World, dt time.Duration) {
	a := s.ctx.Arena

	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		e := s.ctx.PaddleEntities[side]
		paddle, ok := world.Paddles.Get(e)
		if !ok {
			continue
		}

		// Steps queued while a paddle is in auto mode are discarded,
		// otherwise they would burst-apply on the switch to manual
		delta := s.ctx.Input.DrainSteps(side)
		if paddle.Auto {
			continue
		}

		if delta != 0 {
			paddle.Y += vmath.FromInt(delta * s.ctx.Settings.PaddleStep)
		}
		paddle.Y = clampPaddleY(paddle.Y, paddle.HalfHeight, a.FieldHeight)
		world.Paddles.Set(e, paddle)
	}
}

// clampPaddleY keeps the whole paddle body inside the field
func clampPaddleY(y int64, halfHeight, fieldHeight int) int64 {
	minY := vmath.FromInt(halfHeight)
	maxY := vmath.FromInt(fieldHeight-1-halfHeight) + vmath.CellCenter
	return vmath.Clamp(y, minY, maxY)
}
