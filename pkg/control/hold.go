package control

import (
	"sort"
	"time"
)

// DefaultHoldWindow covers the initial key auto-repeat delay of common
// terminals.
const DefaultHoldWindow = 550 * time.Millisecond

// HoldTracker turns a stream of discrete key presses into held/released
// frames for devices that never report key-up, such as terminals. An action
// counts as held until no press for it has arrived within the hold window.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[Action]time.Time
	released []Action
}

// NewHoldTracker creates a tracker. A non-positive window selects
// DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[Action]time.Time),
	}
}

// Press records a press (or auto-repeat) of a at now.
func (h *HoldTracker) Press(a Action, now time.Time) {
	h.lastSeen[a] = now
}

// Tap records a press that is released in the same frame, for actions such
// as pause that only react to release.
func (h *HoldTracker) Tap(a Action) {
	delete(h.lastSeen, a)
	h.released = append(h.released, a)
}

// Frame returns the input for the frame ending at now and forgets actions
// whose hold window has lapsed.
func (h *HoldTracker) Frame(now time.Time) Frame {
	var f Frame
	for a, seen := range h.lastSeen {
		if now.Sub(seen) > h.window {
			delete(h.lastSeen, a)
			f.Released = append(f.Released, a)
			continue
		}
		f.Down = append(f.Down, a)
	}
	f.Released = append(f.Released, h.released...)
	h.released = h.released[:0]

	sortActions(f.Down)
	sortActions(f.Released)
	return f
}

func sortActions(actions []Action) {
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
}
