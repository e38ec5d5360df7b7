package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"termpong/constants"
	"termpong/core"
	"termpong/engine"
	"termpong/render"
)

func newTestSetup(t *testing.T) (*engine.GameContext, render.RenderContext, *render.RenderBuffer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	gameCtx := engine.NewGameContext(screen)
	ctx := render.NewRenderContextFromGame(gameCtx)
	buf := render.NewRenderBuffer(gameCtx.Width, gameCtx.Height)
	return gameCtx, ctx, buf
}

func TestEntityRendererDrawsBallAndPaddles(t *testing.T) {
	gameCtx, ctx, buf := newTestSetup(t)
	r := NewEntityRenderer(gameCtx)

	r.Render(ctx, gameCtx.World, buf)

	arena := gameCtx.Arena
	bx, by := ctx.FieldToScreen(arena.FieldWidth/2, arena.FieldHeight/2)
	if got := buf.Get(bx, by).Rune; got != constants.BallRune {
		t.Errorf("ball cell = %q", got)
	}

	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		paddle, _ := gameCtx.World.Paddles.Get(gameCtx.PaddleEntities[side])
		px, py := ctx.FieldToScreen(arena.GoalCol(side), paddle.CenterRow())
		if got := buf.Get(px, py).Rune; got != constants.PaddleRune {
			t.Errorf("%v paddle cell = %q", side, got)
		}
	}
}

func TestHeaderRendererShowsScores(t *testing.T) {
	gameCtx, ctx, buf := newTestSetup(t)
	r := NewHeaderRenderer(gameCtx)

	e := gameCtx.ScoreEntities[core.SideLeft]
	score, _ := gameCtx.World.Scores.Get(e)
	score.Points = 7
	gameCtx.World.Scores.Set(e, score)

	r.Render(ctx, gameCtx.World, buf)

	found := false
	for x := 0; x < ctx.ScreenWidth/2; x++ {
		if buf.Get(x, 0).Rune == '7' {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("left score not drawn in header")
	}
}

func TestStatusBarShowsModeChips(t *testing.T) {
	gameCtx, ctx, buf := newTestSetup(t)
	r := NewStatusBarRenderer(gameCtx)

	gameCtx.TogglePaddleMode(core.SideLeft) // auto -> manual

	r.Render(ctx, gameCtx.World, buf)

	row := make([]rune, ctx.ScreenWidth)
	for x := range row {
		row[x] = buf.Get(x, ctx.ScreenHeight-1).Rune
	}
	line := string(row)

	if !strings.Contains(line, "L:"+constants.ModeManualStr) {
		t.Errorf("manual chip missing from status bar: %q", line)
	}
	if !strings.Contains(line, "R:"+constants.ModeAutoStr) {
		t.Errorf("auto chip missing from status bar: %q", line)
	}
}

func TestPauseOverlayVisibility(t *testing.T) {
	gameCtx, _, _ := newTestSetup(t)
	r := NewPauseOverlayRenderer(gameCtx)

	if r.IsVisible() {
		t.Errorf("overlay visible while running")
	}
	gameCtx.TogglePause()
	if !r.IsVisible() {
		t.Errorf("overlay hidden while paused")
	}
}

func TestArenaRendererDrawsCenterLine(t *testing.T) {
	gameCtx, ctx, buf := newTestSetup(t)
	r := NewArenaRenderer(gameCtx)

	r.Render(ctx, gameCtx.World, buf)

	sx, sy := ctx.FieldToScreen(ctx.FieldWidth/2, 0)
	if got := buf.Get(sx, sy).Rune; got != constants.CenterLineRune {
		t.Errorf("center line cell = %q", got)
	}
}

