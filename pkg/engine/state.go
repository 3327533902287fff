// Package engine drives the flight session: it owns the active game state,
// routes input frames to it and switches between flying and paused.
package engine

import (
	"fmt"
	"time"

	"github.com/opd-ai/go-merlin/pkg/control"
	"github.com/opd-ai/go-merlin/pkg/entity"
)

// State is one screen of the game. Update consumes the input of a frame and
// reports the transition to take; Draw renders the state after it.
type State interface {
	Name() string
	Update(delta time.Duration, frame control.Frame) (Transition, error)
	Draw(r entity.Renderer, fps float64) error
}

// TransitionKind selects what the runner does after an update.
type TransitionKind int

const (
	Stay TransitionKind = iota
	Switch
	Quit
)

func (k TransitionKind) String() string {
	switch k {
	case Stay:
		return "stay"
	case Switch:
		return "switch"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("TransitionKind(%d)", int(k))
	}
}

// Transition is returned by State.Update.
type Transition struct {
	Kind TransitionKind
	Next State
}

// NoOp keeps the current state.
func NoOp() Transition {
	return Transition{Kind: Stay}
}

// ChangeState replaces the current state with next.
func ChangeState(next State) Transition {
	return Transition{Kind: Switch, Next: next}
}

// Exit ends the session.
func Exit() Transition {
	return Transition{Kind: Quit}
}

// AirbrakeMode selects how the airbrake key behaves.
type AirbrakeMode int

const (
	// AirbrakeHold deploys the airbrake while the key is held.
	AirbrakeHold AirbrakeMode = iota
	// AirbrakeToggle flips the airbrake each time the key is released.
	AirbrakeToggle
)

func (m AirbrakeMode) String() string {
	if m == AirbrakeToggle {
		return "toggle"
	}
	return "hold"
}

// ParseAirbrakeMode converts "hold" or "toggle".
func ParseAirbrakeMode(s string) (AirbrakeMode, error) {
	switch s {
	case "hold":
		return AirbrakeHold, nil
	case "toggle":
		return AirbrakeToggle, nil
	default:
		return AirbrakeHold, fmt.Errorf("unknown airbrake mode %q", s)
	}
}
