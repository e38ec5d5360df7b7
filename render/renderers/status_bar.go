package renderers

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"termpong/constants"
	"termpong/core"
	"termpong/engine"
	"termpong/render"
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct {
	gameCtx *engine.GameContext

	// FPS tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(gameCtx *engine.GameContext) *StatusBarRenderer {
	return &StatusBarRenderer{
		gameCtx:       gameCtx,
		lastFpsUpdate: time.Now(),
	}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	s.frameCount++
	now := time.Now()
	if now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = now
	}

	statusY := ctx.ScreenHeight - 1
	defaultStyle := tcell.StyleDefault.
		Foreground(render.RgbStatusText).
		Background(render.RgbBackground)

	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.Set(x, statusY, ' ', defaultStyle)
	}

	x := 0

	// Audio mute indicator
	if ctx.HasAudio {
		audioBg := render.RgbAudioUnmuted
		if ctx.IsMuted {
			audioBg = render.RgbAudioMuted
		}
		audioStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(audioBg)
		x = buf.SetText(x, statusY, constants.AudioStr, audioStyle)
		x = buf.SetText(x, statusY, " ", defaultStyle)
	}

	// Per-side control mode chips
	x = s.renderModeChip(buf, world, x, statusY, core.SideLeft, "L:")
	x = buf.SetText(x, statusY, " ", defaultStyle)
	x = s.renderModeChip(buf, world, x, statusY, core.SideRight, "R:")

	if ctx.IsPaused {
		pausedStyle := tcell.StyleDefault.
			Foreground(render.RgbPausedText).
			Background(render.RgbPausedBg).
			Bold(true)
		buf.SetText(ctx.ScreenWidth/2-len(constants.PausedStr)/2, statusY, constants.PausedStr, pausedStyle)
	}

	// FPS on the right edge
	fpsText := itoa(s.currentFps) + " fps"
	buf.SetText(ctx.ScreenWidth-len(fpsText)-1, statusY, fpsText, defaultStyle)
}

func (s *StatusBarRenderer) renderModeChip(buf *render.RenderBuffer, world *engine.World, x, y int, side core.Side, label string) int {
	paddle, ok := world.Paddles.Get(s.gameCtx.PaddleEntities[side])
	if !ok {
		return x
	}

	text := label + constants.ModeAutoStr
	bg := render.RgbModeAutoBg
	if !paddle.Auto {
		text = label + constants.ModeManualStr
		bg = render.RgbModeManualBg
	}

	style := tcell.StyleDefault.Foreground(render.RgbScoreText).Background(bg)
	return buf.SetText(x, y, " "+text+" ", style)
}

// itoa avoids fmt on the per-frame path
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits [8]byte
	i := len(digits)
	for n > 0 && i > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}
