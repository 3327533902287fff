package engine

import (
	"time"

	"github.com/opd-ai/go-merlin/pkg/control"
	"github.com/opd-ai/go-merlin/pkg/entity"
	"github.com/opd-ai/go-merlin/pkg/event"
)

// PausedState freezes a PlayingState until pause is released again.
type PausedState struct {
	playing *PlayingState
}

// NewPausedState pauses playing.
func NewPausedState(playing *PlayingState) *PausedState {
	return &PausedState{playing: playing}
}

// Name implements State
func (s *PausedState) Name() string { return "paused" }

// Resumes returns the state that continues after the pause.
func (s *PausedState) Resumes() *PlayingState { return s.playing }

// Update ignores flight controls; the player is not advanced.
func (s *PausedState) Update(_ time.Duration, frame control.Frame) (Transition, error) {
	for _, a := range frame.Released {
		switch a {
		case control.Pause:
			s.playing.opts.Bus.Publish(event.NewStateEvent(event.GameResumed, s, s.Name(), s.playing.Name()))
			s.playing.opts.Logger.Debug(s.playing.ctx, "game resumed")
			return ChangeState(s.playing), nil
		case control.Quit:
			return Exit(), nil
		}
	}
	return NoOp(), nil
}

// Draw renders the frozen scene with the paused flag raised on the HUD.
func (s *PausedState) Draw(r entity.Renderer, fps float64) error {
	t := s.playing.player.Telemetry(fps)
	t.Paused = true
	s.playing.draw(r, t)
	return nil
}
