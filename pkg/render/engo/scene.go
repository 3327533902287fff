// pkg/render/engo/scene.go
package engo

import (
	"context"
	"fmt"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-merlin/pkg/control"
	"github.com/opd-ai/go-merlin/pkg/engine"
	"github.com/opd-ai/go-merlin/pkg/logging"
)

// Options configures the graphical front end.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	AssetsRoot string
	Bindings   control.Bindings
	Session    engine.SessionOptions
}

// WindowViewport reports the current game area, which follows window
// resizes.
type WindowViewport struct{}

// Size implements entity.Viewport
func (WindowViewport) Size() (float64, float64) {
	return float64(engo.GameWidth()), float64(engo.GameHeight())
}

// FlightScene is the single engo scene of a flight session.
type FlightScene struct {
	ctx    context.Context
	opts   Options
	logger *logging.Logger

	assets *AssetManager
	runner *engine.Runner
	err    error
}

// NewFlightScene creates the scene.
func NewFlightScene(ctx context.Context, opts Options) *FlightScene {
	logger := opts.Session.Logger
	if logger == nil {
		logger = logging.NewLogger()
		opts.Session.Logger = logger
	}
	return &FlightScene{
		ctx:    ctx,
		opts:   opts,
		logger: logger,
		assets: NewAssetManager(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *FlightScene) Type() string {
	return "FlightScene"
}

// Preload reads the aircraft sprites (required by Engo)
func (scene *FlightScene) Preload() {
	if err := scene.assets.Preload(); err != nil {
		scene.logger.Error(scene.ctx, "asset preload failed", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *FlightScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.fail(fmt.Errorf("unexpected updater %T", u))
		return
	}
	common.SetBackground(SkyColor)

	rs := &common.RenderSystem{}
	world.AddSystem(rs)

	font, err := scene.assets.LoadFont()
	if err != nil {
		scene.fail(err)
		return
	}
	renderer := NewEngoRenderer(rs, NewHUDSystem(rs, font, scene.assets.Panel()))

	if err := RegisterBindings(scene.opts.Bindings); err != nil {
		scene.fail(err)
		return
	}

	session := scene.opts.Session
	session.Loader = scene.assets
	session.Viewport = WindowViewport{}
	runner, err := engine.NewSession(scene.ctx, renderer, session)
	if err != nil {
		scene.fail(err)
		return
	}
	scene.runner = runner

	world.AddSystem(NewFlightSystem(scene.ctx, runner, NewInputSystem(), scene.fail))
}

// Exit is called when the window is closed (required by Engo)
func (scene *FlightScene) Exit() {
	scene.logger.Info(scene.ctx, "window closed")
}

// Err returns the error that ended the session, if any.
func (scene *FlightScene) Err() error {
	return scene.err
}

func (scene *FlightScene) fail(err error) {
	if err != nil && scene.err == nil {
		scene.err = err
		scene.logger.Error(scene.ctx, "flight session failed", err)
	}
	engo.Exit()
}

// Run opens the window and blocks until the session ends. It must be
// called from the main goroutine.
func Run(ctx context.Context, opts Options) error {
	scene := NewFlightScene(ctx, opts)
	engo.Run(engo.RunOptions{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Fullscreen: opts.Fullscreen,
		VSync:      true,
		AssetsRoot: opts.AssetsRoot,
	}, scene)
	return scene.Err()
}

// FlightSystem steps the session runner once per engo frame.
type FlightSystem struct {
	ctx    context.Context
	runner *engine.Runner
	input  control.Source
	done   func(error)
}

// NewFlightSystem creates the system. done is called once when the runner
// stops, with the error that stopped it or nil.
func NewFlightSystem(ctx context.Context, runner *engine.Runner, input control.Source, done func(error)) *FlightSystem {
	return &FlightSystem{ctx: ctx, runner: runner, input: input, done: done}
}

// Update satisfies the ecs.System interface
func (fs *FlightSystem) Update(dt float32) {
	if fs.runner == nil || !fs.runner.Running() {
		return
	}
	if fs.ctx.Err() != nil {
		fs.finish(nil)
		return
	}

	delta := time.Duration(float64(dt) * float64(time.Second))
	if delta > engine.MaxFrameDelta {
		delta = engine.MaxFrameDelta
	}
	more, err := fs.runner.Step(delta, fs.input.Poll())
	if !more {
		fs.finish(err)
	}
}

// Remove satisfies the ecs.System interface
func (fs *FlightSystem) Remove(basic ecs.BasicEntity) {}

func (fs *FlightSystem) finish(err error) {
	done := fs.done
	fs.done = nil
	fs.runner = nil
	if done != nil {
		done(err)
	}
}
