package renderers

import (
	"github.com/gdamore/tcell/v2"

	"termpong/constants"
	"termpong/engine"
	"termpong/render"
)

// ArenaRenderer draws the play field dressing: the center net line
type ArenaRenderer struct {
	gameCtx *engine.GameContext
}

// NewArenaRenderer creates an arena renderer
func NewArenaRenderer(gameCtx *engine.GameContext) *ArenaRenderer {
	return &ArenaRenderer{gameCtx: gameCtx}
}

// Render implements SystemRenderer
func (r *ArenaRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	style := tcell.StyleDefault.
		Foreground(render.RgbCenterLine).
		Background(render.RgbBackground)

	centerX := ctx.FieldWidth / 2
	for y := 0; y < ctx.FieldHeight; y += 2 {
		sx, sy := ctx.FieldToScreen(centerX, y)
		buf.Set(sx, sy, constants.CenterLineRune, style)
	}
}
