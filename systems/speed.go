package systems

import (
	"time"

	"termpong/constants"
	"termpong/engine"
	"termpong/vmath"
)

// SpeedSystem recomputes the ball's velocity multiplier each tick:
// factor = 1 + min(totalScore, cap)/5 + rally/3
// Long matches and long rallies both speed the game up
type SpeedSystem struct {
	ctx *engine.GameContext
}

// NewSpeedSystem creates a new speed ramp system
func NewSpeedSystem(ctx *engine.GameContext) *SpeedSystem {
	return &SpeedSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *SpeedSystem) Priority() int {
	return constants.PrioritySpeed
}

// Update writes the current speed factor to the ball component
func (s *SpeedSystem) Update(world *engine.World, dt time.Duration) {
	ball, ok := world.Balls.Get(s.ctx.BallEntity)
	if !ok {
		return
	}

	var total int64
	for _, e := range world.Scores.All() {
		if score, ok := world.Scores.Get(e); ok {
			total += score.Points
		}
	}
	if limit := s.ctx.Settings.SpeedScoreCap; total > limit {
		total = limit
	}

	scorePart := vmath.Div(vmath.FromInt(int(total)), vmath.FromInt(constants.SpeedRampScoreDivisor))
	rallyPart := vmath.Div(vmath.FromInt(int(ball.Rally)), vmath.FromInt(constants.SpeedRampRallyDivisor))

	ball.SpeedFactor = vmath.Scale + scorePart + rallyPart
	world.Balls.Set(s.ctx.BallEntity, ball)
}
