// pkg/render/engo/input.go
package engo

import (
	"fmt"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-merlin/pkg/control"
)

// buttonState is the part of engo.Button the input system reads.
type buttonState interface {
	Down() bool
	JustReleased() bool
}

var keyCodes = map[string]engo.Key{
	"A": engo.KeyA, "B": engo.KeyB, "C": engo.KeyC, "D": engo.KeyD,
	"E": engo.KeyE, "F": engo.KeyF, "G": engo.KeyG, "H": engo.KeyH,
	"I": engo.KeyI, "J": engo.KeyJ, "K": engo.KeyK, "L": engo.KeyL,
	"M": engo.KeyM, "N": engo.KeyN, "O": engo.KeyO, "P": engo.KeyP,
	"Q": engo.KeyQ, "R": engo.KeyR, "S": engo.KeyS, "T": engo.KeyT,
	"U": engo.KeyU, "V": engo.KeyV, "W": engo.KeyW, "X": engo.KeyX,
	"Y": engo.KeyY, "Z": engo.KeyZ,

	"ArrowUp":    engo.KeyArrowUp,
	"ArrowDown":  engo.KeyArrowDown,
	"ArrowLeft":  engo.KeyArrowLeft,
	"ArrowRight": engo.KeyArrowRight,
	"Space":      engo.KeySpace,
	"Escape":     engo.KeyEscape,
	"Enter":      engo.KeyEnter,
	"Tab":        engo.KeyTab,
	"LeftShift":  engo.KeyLeftShift,
}

// KeyCode converts a binding key name to an engo key.
func KeyCode(name string) (engo.Key, error) {
	k, ok := keyCodes[name]
	if !ok {
		return 0, fmt.Errorf("unsupported key %q", name)
	}
	return k, nil
}

// InputSystem reads engo's virtual buttons, one per action, and reports
// them as control frames.
type InputSystem struct {
	button func(name string) buttonState
}

// NewInputSystem creates an input system reading engo.Input.
func NewInputSystem() *InputSystem {
	return &InputSystem{
		button: func(name string) buttonState { return engo.Input.Button(name) },
	}
}

// Poll implements control.Source.
func (is *InputSystem) Poll() control.Frame {
	var f control.Frame
	for _, a := range control.Actions() {
		b := is.button(a.String())
		if b.Down() {
			f.Down = append(f.Down, a)
		}
		if b.JustReleased() {
			f.Released = append(f.Released, a)
		}
	}
	return f
}

// RegisterBindings registers one engo button per action, named after the
// action.
func RegisterBindings(b control.Bindings) error {
	return registerBindings(b, engo.Input.RegisterButton)
}

func registerBindings(b control.Bindings, register func(name string, keys ...engo.Key)) error {
	for _, a := range control.Actions() {
		names := b[a]
		keys := make([]engo.Key, 0, len(names))
		for _, name := range names {
			k, err := KeyCode(name)
			if err != nil {
				return fmt.Errorf("failed to bind %s: %w", a, err)
			}
			keys = append(keys, k)
		}
		if len(keys) > 0 {
			register(a.String(), keys...)
		}
	}
	return nil
}
