package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction_RoundTripsNames(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseAction("ROLLLEFT")
	require.NoError(t, err)
	assert.Equal(t, RollLeft, got)

	_, err = ParseAction("barrelRoll")
	assert.Error(t, err)
	assert.Equal(t, "Action(99)", Action(99).String())
}

func TestFrame_Queries(t *testing.T) {
	f := Frame{Down: []Action{RollLeft, ThrottleUp}, Released: []Action{Pause}}

	assert.True(t, f.IsDown(RollLeft))
	assert.False(t, f.IsDown(Pause))
	assert.True(t, f.WasReleased(Pause))
	assert.False(t, f.WasReleased(RollLeft))
	assert.False(t, f.Empty())
	assert.True(t, Frame{}.Empty())
}

func TestDefaultBindings_CoverEveryAction(t *testing.T) {
	b := DefaultBindings()
	for _, a := range Actions() {
		assert.NotEmpty(t, b[a], "action %s has no default key", a)
	}
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings(map[string][]string{
		"airbrake": {"B"},
		"quit":     {"Q", "Escape"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"B"}, b[Airbrake])
	assert.Equal(t, []string{"W", "ArrowUp"}, b[ThrottleUp])

	lookup := b.Lookup()
	assert.Equal(t, []Action{Airbrake}, lookup["B"])
	assert.Equal(t, []Action{Pause, Quit}, lookup["Escape"])

	raw := b.Raw()
	assert.Equal(t, []string{"B"}, raw["airbrake"])
}

func TestParseBindings_Errors(t *testing.T) {
	_, err := ParseBindings(map[string][]string{"loop": {"L"}})
	assert.Error(t, err)

	_, err = ParseBindings(map[string][]string{"pause": {}})
	assert.Error(t, err)
}

func TestHoldTracker(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	h.Press(ThrottleUp, start)
	h.Press(RollLeft, start)

	f := h.Frame(start.Add(16 * time.Millisecond))
	assert.Equal(t, []Action{ThrottleUp, RollLeft}, f.Down)
	assert.Empty(t, f.Released)

	// Auto-repeat keeps throttle held while roll lapses.
	h.Press(ThrottleUp, start.Add(90*time.Millisecond))
	f = h.Frame(start.Add(150 * time.Millisecond))
	assert.Equal(t, []Action{ThrottleUp}, f.Down)
	assert.Equal(t, []Action{RollLeft}, f.Released)

	f = h.Frame(start.Add(300 * time.Millisecond))
	assert.Empty(t, f.Down)
	assert.Equal(t, []Action{ThrottleUp}, f.Released)

	assert.True(t, h.Frame(start.Add(400*time.Millisecond)).Empty())
}

func TestHoldTracker_Tap(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHoldTracker(0)
	assert.Equal(t, DefaultHoldWindow, h.window)

	h.Press(Pause, now)
	h.Tap(Pause)

	f := h.Frame(now)
	assert.Empty(t, f.Down)
	assert.Equal(t, []Action{Pause}, f.Released)
	assert.True(t, h.Frame(now).Empty())
}
