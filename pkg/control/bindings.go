package control

import (
	"fmt"
	"sort"
)

// Bindings maps each action to the names of the keys that trigger it. Key
// names are front-end neutral ("W", "ArrowUp", "Space", "Escape") and are
// translated by each front end.
type Bindings map[Action][]string

// DefaultBindings returns the stock keyboard layout.
func DefaultBindings() Bindings {
	return Bindings{
		ThrottleUp:   {"W", "ArrowUp"},
		ThrottleDown: {"S", "ArrowDown"},
		RollLeft:     {"A", "ArrowLeft"},
		RollRight:    {"D", "ArrowRight"},
		Airbrake:     {"Space"},
		Pause:        {"Escape", "P"},
		Quit:         {"Q"},
	}
}

// ParseBindings converts a configuration map of action name to key names.
// Actions missing from raw keep their default keys.
func ParseBindings(raw map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for name, keys := range raw {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("invalid binding: %w", err)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("invalid binding: action %s has no keys", a)
		}
		b[a] = append([]string(nil), keys...)
	}
	return b, nil
}

// Lookup returns the inverse mapping from key name to actions. A key bound
// to several actions triggers all of them.
func (b Bindings) Lookup() map[string][]Action {
	lookup := make(map[string][]Action)
	for _, a := range b.sortedActions() {
		for _, k := range b[a] {
			lookup[k] = append(lookup[k], a)
		}
	}
	return lookup
}

// Raw converts the bindings back to the configuration form.
func (b Bindings) Raw() map[string][]string {
	raw := make(map[string][]string, len(b))
	for a, keys := range b {
		raw[a.String()] = append([]string(nil), keys...)
	}
	return raw
}

func (b Bindings) sortedActions() []Action {
	actions := make([]Action, 0, len(b))
	for a := range b {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}
