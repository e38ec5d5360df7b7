package renderers

import (
	"github.com/gdamore/tcell/v2"

	"termpong/constants"
	"termpong/core"
	"termpong/engine"
	"termpong/render"
	"termpong/vmath"
)

// EntityRenderer draws both paddles and the ball
type EntityRenderer struct {
	gameCtx *engine.GameContext
}

// NewEntityRenderer creates an entity renderer
func NewEntityRenderer(gameCtx *engine.GameContext) *EntityRenderer {
	return &EntityRenderer{gameCtx: gameCtx}
}

// Render implements SystemRenderer
func (r *EntityRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	arena := r.gameCtx.Arena

	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		paddle, ok := world.Paddles.Get(r.gameCtx.PaddleEntities[side])
		if !ok {
			continue
		}

		fg := render.RgbPaddleLeft
		if side == core.SideRight {
			fg = render.RgbPaddleRight
		}
		style := tcell.StyleDefault.Foreground(fg).Background(render.RgbBackground)

		col := arena.GoalCol(side)
		center := paddle.CenterRow()
		for row := center - paddle.HalfHeight; row <= center+paddle.HalfHeight; row++ {
			if !ctx.InField(col, row) {
				continue
			}
			sx, sy := ctx.FieldToScreen(col, row)
			buf.Set(sx, sy, constants.PaddleRune, style)
		}
	}

	if kin, ok := world.Kinetics.Get(r.gameCtx.BallEntity); ok {
		x := vmath.ToInt(kin.PreciseX)
		y := vmath.ToInt(kin.PreciseY)
		if ctx.InField(x, y) {
			sx, sy := ctx.FieldToScreen(x, y)
			style := tcell.StyleDefault.
				Foreground(render.RgbBall).
				Background(render.RgbBackground).
				Bold(true)
			buf.Set(sx, sy, constants.BallRune, style)
		}
	}
}
