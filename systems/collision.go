package systems

import (
	"time"

	"termpong/component"
	"termpong/constants"
	"termpong/core"
	"termpong/engine"
	"termpong/event"
	"termpong/physics"
	"termpong/vmath"
)

// CollisionSystem resolves wall bounces, paddle catches, and goals
// Runs after BallSystem so it sees the post-integration position
type CollisionSystem struct {
	ctx *engine.GameContext
}

// NewCollisionSystem creates a new collision resolution system
func NewCollisionSystem(ctx *engine.GameContext) *CollisionSystem {
	return &CollisionSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update reflects the ball off walls and paddles, and scores undefended crossings
func (s *CollisionSystem) Update(world *engine.World, dt time.Duration) {
	e := s.ctx.BallEntity
	kin, ok := world.Kinetics.Get(e)
	if !ok {
		return
	}

	a := s.ctx.Arena

	if physics.ReflectBoundsY(&kin.Kinetic, 0, a.FieldHeight) {
		world.PushEvent(event.EventWallBounce, &event.BouncePayload{
			Row: vmath.ToInt(kin.PreciseY),
		})
	}

	col := vmath.ToInt(kin.PreciseX)
	switch {
	case col >= a.RightGoalCol():
		s.resolveGoalLine(world, &kin, core.SideRight)
	case col <= a.LeftGoalCol():
		s.resolveGoalLine(world, &kin, core.SideLeft)
	}

	world.Kinetics.Set(e, kin)
}

// resolveGoalLine handles the ball reaching a goal line: either the defending
// paddle covers the ball row (reflect, rally continues) or the opponent scores
// Exactly one outcome fires per crossing
func (s *CollisionSystem) resolveGoalLine(world *engine.World, kin *component.KineticComponent, defender core.Side) {
	a := s.ctx.Arena
	row := vmath.ToInt(kin.PreciseY)

	paddle, _ := world.Paddles.Get(s.ctx.PaddleEntities[defender])
	ball, _ := world.Balls.Get(s.ctx.BallEntity)

	if paddle.Covers(row) {
		// Catch: reflect horizontally and clamp just inside the goal line
		// so the next tick cannot re-trigger this crossing
		if defender == core.SideRight {
			kin.VelX = -vmath.Abs(kin.VelX)
			kin.PreciseX = vmath.FromInt(a.RightGoalCol()-1) + vmath.CellCenter
		} else {
			kin.VelX = vmath.Abs(kin.VelX)
			kin.PreciseX = vmath.FromInt(a.LeftGoalCol()+1) + vmath.CellCenter
		}

		ball.Rally++
		world.Balls.Set(s.ctx.BallEntity, ball)

		world.PushEvent(event.EventPaddleBounce, &event.BouncePayload{
			Side:  defender,
			Row:   row,
			Rally: ball.Rally,
		})
		return
	}

	// Goal: the defender missed, the opponent scores
	scorer := defender.Opponent()
	scoreEntity := s.ctx.ScoreEntities[scorer]
	score, _ := world.Scores.Get(scoreEntity)
	score.Points++
	world.Scores.Set(scoreEntity, score)

	// Re-center with velocity direction unchanged: the ball heads back
	// toward the side that conceded
	physics.PlaceAt(&kin.Kinetic, a.FieldWidth/2, a.FieldHeight/2)
	ball.Rally = 0
	world.Balls.Set(s.ctx.BallEntity, ball)

	world.PushEvent(event.EventGoal, &event.GoalPayload{
		Scorer:   scorer,
		Conceded: defender,
		Points:   score.Points,
	})
}
