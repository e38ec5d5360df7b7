package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"termpong/constants"
	"termpong/core"
	"termpong/engine"
	"termpong/render"
)

// HeaderRenderer draws the score line above the play field
type HeaderRenderer struct {
	gameCtx *engine.GameContext
}

// NewHeaderRenderer creates a header renderer
func NewHeaderRenderer(gameCtx *engine.GameContext) *HeaderRenderer {
	return &HeaderRenderer{gameCtx: gameCtx}
}

// Render implements SystemRenderer
func (r *HeaderRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	ruleStyle := tcell.StyleDefault.
		Foreground(render.RgbBorder).
		Background(render.RgbBackground)
	scoreStyle := tcell.StyleDefault.
		Foreground(render.RgbScoreText).
		Background(render.RgbBackground).
		Bold(true)

	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.Set(x, 0, constants.BorderHorRune, ruleStyle)
	}

	left := r.points(world, core.SideLeft)
	right := r.points(world, core.SideRight)

	leftText := fmt.Sprintf(" %d ", left)
	rightText := fmt.Sprintf(" %d ", right)

	// Scores sit over each half, rally count over the net
	buf.SetText(ctx.ScreenWidth/4-len(leftText)/2, 0, leftText, scoreStyle)
	buf.SetText(3*ctx.ScreenWidth/4-len(rightText)/2, 0, rightText, scoreStyle)

	if ball, ok := world.Balls.Get(r.gameCtx.BallEntity); ok && ball.Rally > 0 {
		rallyText := fmt.Sprintf(" rally %d ", ball.Rally)
		rallyStyle := tcell.StyleDefault.
			Foreground(render.RgbStatusText).
			Background(render.RgbBackground)
		buf.SetText(ctx.ScreenWidth/2-len(rallyText)/2, 0, rallyText, rallyStyle)
	}
}

func (r *HeaderRenderer) points(world *engine.World, side core.Side) int64 {
	score, _ := world.Scores.Get(r.gameCtx.ScoreEntities[side])
	return score.Points
}
