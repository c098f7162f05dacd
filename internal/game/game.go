package game

import (
	"context"
	"fmt"
	"log/slog"
	"unigo/internal/assets"
	"unigo/internal/config"
	"unigo/internal/engine"
	"unigo/internal/input"
	"unigo/internal/physics"
	"unigo/internal/scheduler"
	"unigo/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Game wires a raylib window and device, the physics world and keyboard
// input into one scheduler.
type Game struct {
	cfg    config.Config
	logger *slog.Logger

	Context   *engine.Context
	Scheduler *scheduler.Scheduler
	window    *Window
	device    *Device
}

func New(cfg config.Config, logger *slog.Logger) *Game {
	ctx := NewContext(cfg, logger)
	window := NewWindow(cfg.Window)
	device := &Device{}
	g := &Game{
		cfg:     cfg,
		logger:  ctx.Logger,
		Context: ctx,
		window:  window,
		device:  device,
	}
	g.Scheduler = scheduler.New(ctx, device, window, SchedulerOptions(cfg))
	device.Overlay = &Overlay{
		Visible: cfg.Render.Debug,
		Stats:   g.Scheduler.Stats,
		Reload: func() {
			window.Post(scheduler.Message{Kind: scheduler.MessageReloadScene, Path: cfg.Scene.Path})
		},
	}
	return g
}

// NewContext builds the engine context every collaborator shares.
func NewContext(cfg config.Config, logger *slog.Logger) *engine.Context {
	ctx := engine.NewContext(cfg.Time.FixedDeltaTime, logger)
	ctx.Input = input.NewState()
	g := cfg.Physics.Gravity
	ctx.Physics = physics.NewWorld(rl.Vector3{X: g[0], Y: g[1], Z: g[2]}, ctx.Logger)
	ctx.Assets = assets.NewManager(ctx.Logger)
	return ctx
}

func SchedulerOptions(cfg config.Config) scheduler.Options {
	c := cfg.Render.ClearColor
	return scheduler.Options{
		MaxFixedSteps: cfg.Time.MaxFixedSteps,
		ClearColor:    rl.ColorFromNormalized(rl.Vector4{X: c[0], Y: c[1], Z: c[2], W: c[3]}),
	}
}

// SceneBuilder picks the configured scene file, or the built-in scene when
// none is set.
func SceneBuilder(cfg config.Scene) engine.SceneBuilder {
	if cfg.Path == "" {
		return world.DefaultScene
	}
	return world.FileScene(cfg.Path)
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	g.window.Open()
	defer g.window.Close()
	defer g.Context.Assets.Unload()

	scene, err := g.Scheduler.CreateScene(SceneBuilder(g.cfg.Scene))
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	g.logger.Info("game started", "scene", scene.Name, "objects", scene.Len())

	if g.cfg.Scene.Watch && g.cfg.Scene.Path != "" {
		w, err := Watch(g.cfg.Scene.Path, g.logger, func(path string) {
			g.window.Post(scheduler.Message{Kind: scheduler.MessageReloadScene, Path: path})
		})
		if err != nil {
			g.logger.Warn("scene watching disabled", "err", err)
		} else {
			defer w.Close()
		}
	}

	return g.Scheduler.Run(ctx)
}
