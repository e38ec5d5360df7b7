package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"termpong/audio"
	"termpong/config"
	"termpong/constants"
	"termpong/core"
	"termpong/engine"
	"termpong/input"
	"termpong/render"
	"termpong/render/renderers"
	"termpong/systems"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config file")
	muteFlag   = flag.Bool("mute", false, "Start with audio disabled")
	debugFlag  = flag.String("debug", "", "Write debug logs to this file (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *debugFlag != "" {
		cfg.Debug.LogFile = *debugFlag
	}

	logger := newLogger(cfg.Debug.LogFile)
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nTERMPONG CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Create game context with ECS world
	ctx := engine.NewGameContext(screen)
	ctx.Settings.PaddleStep = cfg.Gameplay.PaddleStep
	ctx.Settings.SpeedScoreCap = int64(cfg.Gameplay.SpeedScoreCap)
	if cfg.Gameplay.LeftManual {
		ctx.TogglePaddleMode(core.SideLeft)
	}
	if cfg.Gameplay.RightManual {
		ctx.TogglePaddleMode(core.SideRight)
	}
	// Startup toggles should not beep
	ctx.Events.Consume()

	logger.Debug("game context created",
		zap.Int("width", ctx.Width),
		zap.Int("height", ctx.Height),
		zap.Int("field_width", ctx.Arena.FieldWidth),
		zap.Int("field_height", ctx.Arena.FieldHeight),
	)

	// Initialize audio; speaker failure degrades to silent mode
	audioEngine := audio.NewAudioEngine(cfg.Audio.Enabled && !*muteFlag, cfg.Audio.Volume)
	if err := audioEngine.Start(); err != nil {
		logger.Debug("audio start failed", zap.Error(err))
	}
	defer audioEngine.Stop()
	ctx.SetAudioPlayer(audioEngine)

	// Create and add systems to the ECS world
	ctx.World.AddSystem(systems.NewPaddleSystem(ctx))
	ctx.World.AddSystem(systems.NewAutoPilotSystem(ctx))
	ctx.World.AddSystem(systems.NewSpeedSystem(ctx))
	ctx.World.AddSystem(systems.NewBallSystem(ctx))
	ctx.World.AddSystem(systems.NewCollisionSystem(ctx))
	ctx.World.AddSystem(systems.NewAudioSystem(ctx))

	// Create render orchestrator and register renderers in priority order
	orchestrator := render.NewRenderOrchestrator(screen, ctx.Width, ctx.Height)

	type rendererDef struct {
		factory  func(*engine.GameContext) render.SystemRenderer
		priority render.RenderPriority
	}

	rendererList := []rendererDef{
		{func(c *engine.GameContext) render.SystemRenderer { return renderers.NewArenaRenderer(c) }, render.PriorityArena},
		{func(c *engine.GameContext) render.SystemRenderer { return renderers.NewEntityRenderer(c) }, render.PriorityEntities},
		{func(c *engine.GameContext) render.SystemRenderer { return renderers.NewHeaderRenderer(c) }, render.PriorityHeader},
		{func(c *engine.GameContext) render.SystemRenderer { return renderers.NewStatusBarRenderer(c) }, render.PriorityStatusBar},
		{func(c *engine.GameContext) render.SystemRenderer { return renderers.NewPauseOverlayRenderer(c) }, render.PriorityOverlay},
	}

	for _, def := range rendererList {
		orchestrator.Register(def.factory(ctx), def.priority)
	}

	inputHandler := input.NewHandler(ctx)

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	// Input polling uses a raw goroutine as it blocks on the terminal
	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized, clean exit
				return
			}
			eventChan <- ev
		}
	}()

	lastGameTime := ctx.PausableClock.Now()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				ctx.HandleResize()
				orchestrator.Resize(ctx.Width, ctx.Height)
				logger.Debug("resize",
					zap.Int("width", ctx.Width),
					zap.Int("height", ctx.Height),
				)
				continue
			}

			// Input handling always works, even during pause
			if !inputHandler.HandleEvent(ev) {
				logger.Debug("exit requested")
				return
			}

		case <-frameTicker.C:
			frame := ctx.IncrementFrameNumber()

			gameNow := ctx.PausableClock.Now()
			dt := gameNow.Sub(lastGameTime)
			lastGameTime = gameNow

			ctx.World.RunSafe(func() {
				ctx.Time.Update(gameNow, ctx.TimeProvider.Now(), dt, frame)
			})

			// During pause: dt is zero and updates are skipped, rendering continues
			if !ctx.IsPaused() && dt > 0 {
				ctx.World.Update(dt)
			}

			renderCtx := render.NewRenderContextFromGame(ctx)
			orchestrator.RenderFrame(renderCtx, ctx.World)
		}
	}
}

// newLogger builds the debug logger; without a log file everything is discarded
func newLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}

	logCfg := zap.NewDevelopmentConfig()
	logCfg.OutputPaths = []string{path}
	logCfg.ErrorOutputPaths = []string{path}

	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open debug log: %v\n", err)
		return zap.NewNop()
	}
	return logger
}
