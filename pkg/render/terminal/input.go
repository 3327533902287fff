package terminal

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-merlin/pkg/control"
)

// Terminals only report key presses, so release-driven actions are tapped
// on press rather than tracked as held.
var tapped = map[control.Action]bool{
	control.Pause: true,
	control.Quit:  true,
}

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:     "ArrowUp",
	tcell.KeyDown:   "ArrowDown",
	tcell.KeyLeft:   "ArrowLeft",
	tcell.KeyRight:  "ArrowRight",
	tcell.KeyEscape: "Escape",
	tcell.KeyEnter:  "Enter",
	tcell.KeyTab:    "Tab",
}

// Input is a control.Source fed by tcell key events.
type Input struct {
	screen  tcell.Screen
	lookup  map[string][]control.Action
	tracker *control.HoldTracker
	events  chan tcell.Event
	now     func() time.Time
}

// NewInput creates an input source for screen. holdWindow bounds how long a
// key counts as held after its last auto-repeat.
func NewInput(screen tcell.Screen, bindings control.Bindings, holdWindow time.Duration) *Input {
	return &Input{
		screen:  screen,
		lookup:  bindings.Lookup(),
		tracker: control.NewHoldTracker(holdWindow),
		events:  make(chan tcell.Event, 100),
		now:     time.Now,
	}
}

// Start reads screen events in the background until ctx is done or the
// screen is finalized.
func (in *Input) Start(ctx context.Context) {
	go func() {
		for {
			ev := in.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case in.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Poll implements control.Source. It drains pending events and returns the
// current frame.
func (in *Input) Poll() control.Frame {
	for {
		select {
		case ev := <-in.events:
			in.HandleEvent(ev)
		default:
			return in.tracker.Frame(in.now())
		}
	}
}

// HandleEvent applies a single screen event.
func (in *Input) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isInterrupt(ev) {
			in.tracker.Tap(control.Quit)
			return
		}
		for _, a := range in.lookup[KeyName(ev)] {
			if tapped[a] {
				in.tracker.Tap(a)
			} else {
				in.tracker.Press(a, in.now())
			}
		}
	case *tcell.EventResize:
		in.screen.Sync()
	}
}

func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C')
}

// KeyName converts a key event to the binding name used in configuration.
// Letters are upper-cased so bindings are case-insensitive.
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "Space"
		}
		return strings.ToUpper(string(r))
	}
	if name, ok := keyNames[ev.Key()]; ok {
		return name
	}
	return ""
}
