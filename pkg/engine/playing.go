package engine

import (
	"context"
	"time"

	"github.com/opd-ai/go-merlin/pkg/control"
	"github.com/opd-ai/go-merlin/pkg/entity"
	"github.com/opd-ai/go-merlin/pkg/event"
	"github.com/opd-ai/go-merlin/pkg/logging"
)

// DefaultThrottleStep is the throttle change per frame while a throttle key
// is held, in percent.
const DefaultThrottleStep = 1.0

// PlayingOptions configures a PlayingState.
type PlayingOptions struct {
	AirbrakeMode AirbrakeMode
	ThrottleStep float64
	Bus          *event.Bus
	Logger       *logging.Logger
}

// PlayingState flies the player aircraft.
type PlayingState struct {
	ctx    context.Context
	player *entity.Player
	opts   PlayingOptions
}

// NewPlayingState wraps player and announces it on the event bus.
func NewPlayingState(ctx context.Context, player *entity.Player, opts PlayingOptions) *PlayingState {
	if opts.ThrottleStep <= 0 {
		opts.ThrottleStep = DefaultThrottleStep
	}
	if opts.Bus == nil {
		opts.Bus = event.NewEventBus()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger()
	}

	s := &PlayingState{ctx: ctx, player: player, opts: opts}
	opts.Bus.Publish(event.NewPlayerEvent(event.PlayerSpawned, s, uint64(player.GetID()), player.Profile.Name))
	opts.Logger.Info(ctx, "player spawned",
		"aircraft", player.Profile.Name,
		"airbrake_mode", opts.AirbrakeMode.String(),
	)
	return s
}

// Name implements State
func (s *PlayingState) Name() string { return "playing" }

// Player returns the flown aircraft.
func (s *PlayingState) Player() *entity.Player { return s.player }

// Update applies held controls, advances the flight model and then handles
// released controls.
func (s *PlayingState) Update(delta time.Duration, frame control.Frame) (Transition, error) {
	for _, a := range frame.Down {
		s.handleDown(a)
	}

	s.player.Update(delta)

	for _, a := range frame.Released {
		switch a {
		case control.Pause:
			s.opts.Bus.Publish(event.NewStateEvent(event.GamePaused, s, s.Name(), "paused"))
			s.opts.Logger.Debug(s.ctx, "game paused")
			return ChangeState(NewPausedState(s)), nil
		case control.Quit:
			return Exit(), nil
		default:
			s.handleReleased(a)
		}
	}

	return NoOp(), nil
}

func (s *PlayingState) handleDown(a control.Action) {
	p := s.player
	switch a {
	case control.ThrottleUp:
		wasBoosted := p.Overboost()
		p.SetThrottle(p.Throttle + s.opts.ThrottleStep)
		if p.Throttle > entity.MilitaryThrottle {
			p.SetThrottle(entity.MaxThrottle)
		}
		if !wasBoosted && p.Overboost() {
			s.opts.Bus.Publish(event.NewOverboostEvent(s, p.Throttle))
		}
	case control.ThrottleDown:
		p.SetThrottle(p.Throttle - s.opts.ThrottleStep)
	case control.RollLeft:
		if p.Turn == entity.TurningRight {
			p.ApplyTurnInput(entity.Neutral)
		} else {
			p.ApplyTurnInput(entity.TurningLeft)
		}
	case control.RollRight:
		if p.Turn == entity.TurningLeft {
			p.ApplyTurnInput(entity.Neutral)
		} else {
			p.ApplyTurnInput(entity.TurningRight)
		}
	case control.Airbrake:
		if s.opts.AirbrakeMode == AirbrakeHold {
			s.setAirbrake(true)
		}
	}
}

func (s *PlayingState) handleReleased(a control.Action) {
	p := s.player
	switch a {
	case control.ThrottleUp:
		p.ReleaseOverboost()
	case control.RollLeft:
		if p.Turn != entity.TurningRight {
			p.ApplyTurnInput(entity.Neutral)
		}
	case control.RollRight:
		if p.Turn != entity.TurningLeft {
			p.ApplyTurnInput(entity.Neutral)
		}
	case control.Airbrake:
		if s.opts.AirbrakeMode == AirbrakeToggle {
			s.setAirbrake(!p.Airbrake)
		} else {
			s.setAirbrake(false)
		}
	}
}

func (s *PlayingState) setAirbrake(on bool) {
	if s.player.Airbrake == on {
		return
	}
	s.player.Airbrake = on
	s.opts.Bus.Publish(event.NewAirbrakeEvent(s, on))
}

// Draw renders the aircraft and the HUD.
func (s *PlayingState) Draw(r entity.Renderer, fps float64) error {
	s.draw(r, s.player.Telemetry(fps))
	return nil
}

func (s *PlayingState) draw(r entity.Renderer, t entity.Telemetry) {
	r.Clear()
	s.player.Render(r)
	r.RenderTelemetry(t)
	r.Present()
}
