package renderers

import (
	"github.com/gdamore/tcell/v2"

	"termpong/engine"
	"termpong/render"
)

var pauseLines = []string{
	"          PAUSED          ",
	"                          ",
	" space resume             ",
	" w/s    left paddle       ",
	" q      left mode toggle  ",
	" up/dn  right paddle      ",
	" p      right mode toggle ",
	" m      mute              ",
	" esc    quit              ",
}

// PauseOverlayRenderer draws the pause panel over the field
// Visible only while the game is paused
type PauseOverlayRenderer struct {
	gameCtx *engine.GameContext
}

// NewPauseOverlayRenderer creates a pause overlay renderer
func NewPauseOverlayRenderer(gameCtx *engine.GameContext) *PauseOverlayRenderer {
	return &PauseOverlayRenderer{gameCtx: gameCtx}
}

// IsVisible implements VisibilityToggle
func (r *PauseOverlayRenderer) IsVisible() bool {
	return r.gameCtx.IsPaused()
}

// Render implements SystemRenderer
func (r *PauseOverlayRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	width := len(pauseLines[0])
	height := len(pauseLines)

	startX := (ctx.ScreenWidth - width) / 2
	startY := (ctx.ScreenHeight - height) / 2
	if startX < 0 || startY < 0 {
		return
	}

	style := tcell.StyleDefault.
		Foreground(render.RgbScoreText).
		Background(render.RgbModeAutoBg)
	titleStyle := style.Bold(true)

	for i, line := range pauseLines {
		lineStyle := style
		if i == 0 {
			lineStyle = titleStyle
		}
		buf.SetText(startX, startY+i, line, lineStyle)
	}
}
