package engine

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"termpong/core"
	"termpong/vmath"
)

func newTestContext(t *testing.T) *GameContext {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return NewGameContext(screen)
}

func TestNewGameContextSpawnsMatch(t *testing.T) {
	ctx := newTestContext(t)

	if ctx.World.Paddles.Count() != 2 {
		t.Errorf("paddle count = %d, want 2", ctx.World.Paddles.Count())
	}
	if ctx.World.Scores.Count() != 2 {
		t.Errorf("score count = %d, want 2", ctx.World.Scores.Count())
	}
	if !ctx.World.Balls.Has(ctx.BallEntity) || !ctx.World.Kinetics.Has(ctx.BallEntity) {
		t.Error("ball entity missing components")
	}

	// Both paddles start in auto mode at field center
	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		paddle, ok := ctx.World.Paddles.Get(ctx.PaddleEntities[side])
		if !ok {
			t.Fatalf("%s paddle missing", side)
		}
		if !paddle.Auto {
			t.Errorf("%s paddle should start in auto mode", side)
		}
		if got := paddle.CenterRow(); got != ctx.Arena.FieldHeight/2 {
			t.Errorf("%s paddle row = %d, want %d", side, got, ctx.Arena.FieldHeight/2)
		}
	}

	// Scores start at zero
	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		score, _ := ctx.World.Scores.Get(ctx.ScoreEntities[side])
		if score.Points != 0 {
			t.Errorf("%s score = %d, want 0", side, score.Points)
		}
	}
}

func TestBallServesDiagonally(t *testing.T) {
	ctx := newTestContext(t)

	kin, _ := ctx.World.Kinetics.Get(ctx.BallEntity)
	if kin.VelX <= 0 || kin.VelY <= 0 {
		t.Errorf("serve velocity = (%d, %d), want positive diagonal", kin.VelX, kin.VelY)
	}
	if x := vmath.ToInt(kin.PreciseX); x != ctx.Arena.FieldWidth/2 {
		t.Errorf("serve column = %d, want %d", x, ctx.Arena.FieldWidth/2)
	}
}

func TestTogglePaddleModePreservesPosition(t *testing.T) {
	ctx := newTestContext(t)
	e := ctx.PaddleEntities[core.SideLeft]

	before, _ := ctx.World.Paddles.Get(e)
	ctx.TogglePaddleMode(core.SideLeft)
	after, _ := ctx.World.Paddles.Get(e)

	if after.Auto == before.Auto {
		t.Error("mode not toggled")
	}
	if after.Y != before.Y {
		t.Error("paddle moved on mode toggle")
	}

	ctx.TogglePaddleMode(core.SideLeft)
	restored, _ := ctx.World.Paddles.Get(e)
	if restored.Auto != before.Auto {
		t.Error("second toggle did not restore mode")
	}
}

func TestHandleResizeClampsPaddles(t *testing.T) {
	ctx := newTestContext(t)

	// Push the left paddle to the bottom of the large field
	e := ctx.PaddleEntities[core.SideLeft]
	paddle, _ := ctx.World.Paddles.Get(e)
	paddle.Y = vmath.FromInt(ctx.Arena.FieldHeight - 1 - paddle.HalfHeight)
	ctx.World.Paddles.Set(e, paddle)

	ctx.Screen.(tcell.SimulationScreen).SetSize(40, 12)
	ctx.HandleResize()

	paddle, _ = ctx.World.Paddles.Get(e)
	maxRow := ctx.Arena.FieldHeight - 1 - paddle.HalfHeight
	if got := paddle.CenterRow(); got > maxRow {
		t.Errorf("paddle row %d outside new field (max %d)", got, maxRow)
	}
}

func TestTogglePause(t *testing.T) {
	ctx := newTestContext(t)

	if !ctx.TogglePause() {
		t.Error("first toggle should pause")
	}
	if !ctx.IsPaused() || !ctx.PausableClock.IsPaused() {
		t.Error("pause state not propagated to clock")
	}
	if ctx.TogglePause() {
		t.Error("second toggle should resume")
	}
	if ctx.IsPaused() {
		t.Error("still paused after resume")
	}
}
