// cmd/merlin/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-merlin/pkg/config"
	"github.com/opd-ai/go-merlin/pkg/control"
	"github.com/opd-ai/go-merlin/pkg/engine"
	"github.com/opd-ai/go-merlin/pkg/entity"
	"github.com/opd-ai/go-merlin/pkg/event"
	"github.com/opd-ai/go-merlin/pkg/logging"
	"github.com/opd-ai/go-merlin/pkg/render"
	engorender "github.com/opd-ai/go-merlin/pkg/render/engo"
	"github.com/opd-ai/go-merlin/pkg/render/terminal"
)

// terminalLogFile receives the log when the terminal owns stdout and no
// file is configured.
const terminalLogFile = "merlin.log"

// frameInterval paces the terminal and headless front ends.
const frameInterval = time.Second / 60

type flags struct {
	configPath string
	renderer   string
	aircraft   string
	airbrake   string
	duration   time.Duration
}

func main() {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&f.renderer, "renderer", "", "Renderer: 'engo', 'terminal' or 'null' (overrides config)")
	flag.StringVar(&f.aircraft, "aircraft", "", "Aircraft tag, e.g. F-16 or Gripen-E (overrides config)")
	flag.StringVar(&f.airbrake, "airbrake", "", "Airbrake mode: 'hold' or 'toggle' (overrides config)")
	flag.DurationVar(&f.duration, "duration", 10*time.Second, "Flight time of a headless run")
	flag.Parse()

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "merlin: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(f flags) (*config.GameConfig, error) {
	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if f.renderer != "" {
		cfg.Renderer = f.renderer
	}
	if f.aircraft != "" {
		cfg.Aircraft = f.aircraft
	}
	if f.airbrake != "" {
		cfg.Controls.AirbrakeMode = f.airbrake
	}
	if cfg.Renderer == config.RendererTerminal && cfg.Logging.File == "" {
		cfg.Logging.File = terminalLogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(f flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	logger := logging.NewLoggerWithOptions(cfg.LoggerOptions())
	defer logger.Close()

	ctx := logging.WithSessionID(context.Background(), logging.NewSessionID())
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := event.NewEventBus()
	logEvents(ctx, bus, logger)

	session, err := sessionOptions(cfg, bus, logger)
	if err != nil {
		return err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}

	logger.Info(ctx, "starting flight",
		"renderer", cfg.Renderer,
		"aircraft", cfg.Aircraft,
		"airbrake_mode", cfg.Controls.AirbrakeMode,
	)

	switch cfg.Renderer {
	case config.RendererEngo:
		err = engorender.Run(ctx, engorender.Options{
			Title:      cfg.Window.Title,
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Fullscreen: cfg.Window.Fullscreen,
			AssetsRoot: cfg.Assets.Root,
			Bindings:   bindings,
			Session:    session,
		})
	case config.RendererTerminal:
		err = runTerminal(ctx, bindings, session)
	case config.RendererNull:
		err = runHeadless(ctx, session, f.duration)
	}

	if err != nil {
		logger.Error(ctx, "flight ended with error", err)
		return err
	}
	logger.Info(ctx, "flight ended")
	return nil
}

func sessionOptions(cfg *config.GameConfig, bus *event.Bus, logger *logging.Logger) (engine.SessionOptions, error) {
	variant, err := cfg.Variant()
	if err != nil {
		return engine.SessionOptions{}, err
	}
	mode, err := engine.ParseAirbrakeMode(cfg.Controls.AirbrakeMode)
	if err != nil {
		return engine.SessionOptions{}, err
	}
	return engine.SessionOptions{
		Variant:         variant,
		Loader:          render.FileLoader{Root: cfg.Assets.Root},
		Viewport:        entity.FixedViewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
		EdgeMargin:      cfg.Flight.EdgeMargin,
		AirbrakeMode:    mode,
		ThrottleStep:    cfg.Controls.ThrottleStep,
		SmoothingFrames: cfg.Display.FPSSmoothingFrames,
		Bus:             bus,
		Logger:          logger,
	}, nil
}

func runTerminal(ctx context.Context, bindings control.Bindings, session engine.SessionOptions) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	renderer := terminal.NewRenderer(screen, session.Viewport)
	runner, err := engine.NewSession(ctx, renderer, session)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	input := terminal.NewInput(screen, bindings, control.DefaultHoldWindow)
	input.Start(ctx)

	return runner.Run(ctx, input, frameInterval)
}

// idleInput is a control source that never reports any input.
type idleInput struct{}

func (idleInput) Poll() control.Frame { return control.Frame{} }

func runHeadless(ctx context.Context, session engine.SessionOptions, d time.Duration) error {
	renderer := render.NewNullRenderer(session.Logger)
	runner, err := engine.NewSession(ctx, renderer, session)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	err = runner.Run(ctx, idleInput{}, frameInterval)
	session.Logger.Info(ctx, "headless flight finished", "frames", renderer.Frames(), "fps", runner.FPS())
	return err
}

func logEvents(ctx context.Context, bus *event.Bus, logger *logging.Logger) {
	for _, typ := range []event.Type{
		event.PlayerSpawned, event.PlayerDestroyed, event.GamePaused,
		event.GameResumed, event.GameExited, event.AirbrakeChanged,
		event.OverboostEngaged,
	} {
		bus.Subscribe(typ, func(e event.Event) {
			logger.Debug(ctx, "event", "type", string(e.GetType()))
		})
	}
}
