// Package control defines the abstract player actions the flight core
// reacts to and the per-frame sets in which input front ends deliver them.
package control

import (
	"fmt"
	"strings"
)

// Action is an abstract control input, independent of the device that
// produced it.
type Action int

const (
	ThrottleUp Action = iota
	ThrottleDown
	RollLeft
	RollRight
	Airbrake
	Pause
	Quit
)

var actionNames = map[Action]string{
	ThrottleUp:   "throttleUp",
	ThrottleDown: "throttleDown",
	RollLeft:     "rollLeft",
	RollRight:    "rollRight",
	Airbrake:     "airbrake",
	Pause:        "pause",
	Quit:         "quit",
}

// Actions lists every action in declaration order.
func Actions() []Action {
	return []Action{ThrottleUp, ThrottleDown, RollLeft, RollRight, Airbrake, Pause, Quit}
}

// String returns the action's binding name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction converts a binding name to an Action. Matching ignores case.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Frame holds the input observed during one tick. Down contains every
// action held during the frame, in the order the front end reports them;
// Released contains actions whose key went up during the frame.
type Frame struct {
	Down     []Action
	Released []Action
}

// IsDown reports whether a is held in this frame.
func (f Frame) IsDown(a Action) bool {
	return contains(f.Down, a)
}

// WasReleased reports whether a was released in this frame.
func (f Frame) WasReleased(a Action) bool {
	return contains(f.Released, a)
}

// Empty reports whether the frame carries no input.
func (f Frame) Empty() bool {
	return len(f.Down) == 0 && len(f.Released) == 0
}

func contains(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

// Source supplies input frames. Front ends implement it on top of their
// device polling.
type Source interface {
	Poll() Frame
}
