package engine

import (
	"context"
	"time"

	"github.com/opd-ai/go-merlin/pkg/control"
	"github.com/opd-ai/go-merlin/pkg/entity"
	"github.com/opd-ai/go-merlin/pkg/event"
	"github.com/opd-ai/go-merlin/pkg/logging"
)

// MaxFrameDelta caps the frame time fed to the states by Run.
const MaxFrameDelta = 100 * time.Millisecond

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	SmoothingFrames int
	Bus             *event.Bus
	Logger          *logging.Logger
}

// Runner owns the active state and steps it once per frame.
type Runner struct {
	ctx      context.Context
	state    State
	renderer entity.Renderer
	fps      *FPSCounter
	bus      *event.Bus
	logger   *logging.Logger
	running  bool
}

// NewRunner creates a runner starting in initial.
func NewRunner(ctx context.Context, initial State, r entity.Renderer, opts RunnerOptions) *Runner {
	if opts.Bus == nil {
		opts.Bus = event.NewEventBus()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger()
	}
	return &Runner{
		ctx:      ctx,
		state:    initial,
		renderer: r,
		fps:      NewFPSCounter(opts.SmoothingFrames),
		bus:      opts.Bus,
		logger:   opts.Logger,
		running:  true,
	}
}

// State returns the active state.
func (r *Runner) State() State { return r.state }

// Running reports whether the session is still active.
func (r *Runner) Running() bool { return r.running }

// FPS returns the smoothed frame rate.
func (r *Runner) FPS() float64 { return r.fps.FPS() }

// Step runs one frame: update, transition, draw. It reports whether the
// session continues. Errors stop the session.
func (r *Runner) Step(delta time.Duration, frame control.Frame) (bool, error) {
	if !r.running {
		return false, nil
	}
	r.fps.Tick(delta)

	tr, err := r.state.Update(delta, frame)
	if err != nil {
		r.running = false
		r.logger.Error(r.ctx, "state update failed", err, "state", r.state.Name())
		return false, logging.WrapError(err, "update %s", r.state.Name())
	}

	switch tr.Kind {
	case Switch:
		r.logger.Debug(r.ctx, "state change", "from", r.state.Name(), "to", tr.Next.Name())
		r.state = tr.Next
	case Quit:
		r.running = false
		r.bus.Publish(event.NewStateEvent(event.GameExited, r, r.state.Name(), ""))
		r.logger.Info(r.ctx, "session ended", "state", r.state.Name())
		return false, nil
	}

	if err := r.state.Draw(r.renderer, r.fps.FPS()); err != nil {
		r.running = false
		r.logger.Error(r.ctx, "state draw failed", err, "state", r.state.Name())
		return false, logging.WrapError(err, "draw %s", r.state.Name())
	}
	return true, nil
}

// Run steps the runner every interval until the session ends or ctx is
// cancelled, polling src for each frame.
func (r *Runner) Run(ctx context.Context, src control.Source, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now
			if delta > MaxFrameDelta {
				delta = MaxFrameDelta
			}

			more, err := r.Step(delta, src.Poll())
			if err != nil || !more {
				return err
			}
		}
	}
}
