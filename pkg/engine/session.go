package engine

import (
	"context"
	"fmt"

	"github.com/opd-ai/go-merlin/pkg/aircraft"
	"github.com/opd-ai/go-merlin/pkg/entity"
	"github.com/opd-ai/go-merlin/pkg/event"
	"github.com/opd-ai/go-merlin/pkg/logging"
)

// SessionOptions describes one flight session independent of the front end.
type SessionOptions struct {
	Variant         aircraft.Variant
	Loader          aircraft.AssetLoader
	Viewport        entity.Viewport
	EdgeMargin      float64
	AirbrakeMode    AirbrakeMode
	ThrottleStep    float64
	SmoothingFrames int
	Bus             *event.Bus
	Logger          *logging.Logger
}

// NewSession spawns the player aircraft and returns a runner that starts in
// the playing state and draws to r.
func NewSession(ctx context.Context, r entity.Renderer, opts SessionOptions) (*Runner, error) {
	if opts.Bus == nil {
		opts.Bus = event.NewEventBus()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger()
	}

	player, err := entity.NewPlayer(opts.Variant, opts.Loader, entity.PlayerOptions{
		ID:         1,
		Viewport:   opts.Viewport,
		EdgeMargin: opts.EdgeMargin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	playing := NewPlayingState(ctx, player, PlayingOptions{
		AirbrakeMode: opts.AirbrakeMode,
		ThrottleStep: opts.ThrottleStep,
		Bus:          opts.Bus,
		Logger:       opts.Logger,
	})
	return NewRunner(ctx, playing, r, RunnerOptions{
		SmoothingFrames: opts.SmoothingFrames,
		Bus:             opts.Bus,
		Logger:          opts.Logger,
	}), nil
}
