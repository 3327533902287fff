package entity

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-merlin/pkg/aircraft"
	"github.com/opd-ai/go-merlin/pkg/physics"
)

const frame = 16 * time.Millisecond

type testSprite struct{}

func (testSprite) Width() float32  { return 48 }
func (testSprite) Height() float32 { return 48 }

type testLoader struct {
	err error
}

func (l testLoader) LoadSprite(string) (aircraft.Sprite, error) {
	if l.err != nil {
		return nil, l.err
	}
	return testSprite{}, nil
}

func newTestPlayer(t *testing.T, v aircraft.Variant) *Player {
	t.Helper()
	p, err := NewPlayer(v, testLoader{}, PlayerOptions{
		ID:       7,
		Viewport: FixedViewport{Width: 800, Height: 600},
	})
	require.NoError(t, err)
	return p
}

func TestNewPlayer_SpawnDefaults(t *testing.T) {
	p := newTestPlayer(t, aircraft.GripenE)

	assert.Equal(t, ID(7), p.GetID())
	assert.Equal(t, physics.Vector2D{}, p.GetPosition())
	assert.Equal(t, 0.0, p.Rotation)
	assert.Equal(t, SpawnTurnRate, p.TurnRate)
	assert.Equal(t, SpawnSpeed, p.Speed)
	assert.Equal(t, SpawnThrottle, p.Throttle)
	assert.Equal(t, 100, p.Health)
	assert.False(t, p.Airbrake)
	assert.Equal(t, Neutral, p.Turn)
	assert.True(t, p.Active)
	assert.Equal(t, "Gripen", p.Profile.Name)
	assert.NotNil(t, p.Sprite)
}

func TestNewPlayer_Errors(t *testing.T) {
	_, err := NewPlayer(aircraft.X47B, testLoader{}, PlayerOptions{})
	assert.ErrorIs(t, err, aircraft.ErrUnsupportedVariant)

	_, err = NewPlayer(aircraft.F16, testLoader{err: errors.New("missing file")}, PlayerOptions{})
	assert.ErrorIs(t, err, aircraft.ErrAssetUnavailable)
}

func TestPlayer_SetThrottle(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"below_zero", -5, 0},
		{"zero", 0, 0},
		{"cruise", 72.5, 72.5},
		{"military", 100, 100},
		{"overboost", 110, 110},
		{"above_max", 180, 110},
	}

	p := newTestPlayer(t, aircraft.F16)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.SetThrottle(tt.value)
			assert.Equal(t, tt.expected, p.Throttle)
		})
	}
}

func TestPlayer_ReleaseOverboost(t *testing.T) {
	p := newTestPlayer(t, aircraft.F16)

	p.SetThrottle(110)
	assert.True(t, p.Overboost())
	p.ReleaseOverboost()
	assert.Equal(t, MilitaryThrottle, p.Throttle)
	assert.False(t, p.Overboost())

	p.SetThrottle(80)
	p.ReleaseOverboost()
	assert.Equal(t, 80.0, p.Throttle)
}

func TestPlayer_GripenFullThrottleNumbers(t *testing.T) {
	p := newTestPlayer(t, aircraft.GripenE)
	p.SetThrottle(100)

	assert.Equal(t, 0.02, p.DragCoefficient())
	assert.InDelta(t, 24545.4545, p.Thrust(), 1e-4)
	assert.InDelta(t, 2.5282, p.Acceleration(), 1e-4)
}

func TestPlayer_DragCoefficientFollowsConfiguration(t *testing.T) {
	p := newTestPlayer(t, aircraft.F16)

	p.Airbrake = true
	p.ApplyTurnInput(TurningLeft)
	assert.InDelta(t, 0.096, p.DragCoefficient(), 1e-12)

	p.ApplyTurnInput(Neutral)
	assert.InDelta(t, 0.08, p.DragCoefficient(), 1e-12)
}

func TestPlayer_UpdateFromSpawn(t *testing.T) {
	p := newTestPlayer(t, aircraft.GripenE)

	// 60% sits between the 50% and 75% points: 1500 + 0.4*1500 = 2100.
	thrust := 2100 * 4.9090909
	acc := (thrust - 4320) / 8000

	p.Update(frame)

	speed := 120 + acc
	assert.InDelta(t, speed, p.Speed, 1e-9)
	assert.InDelta(t, 0.04-(speed-100)*0.04/150, p.TurnRate, 1e-12)
	assert.Equal(t, 0.0, p.Rotation)
	assert.InDelta(t, 0, p.Position.X, 1e-12)
	assert.InDelta(t, -speed*0.002*16, p.Position.Y, 1e-9)
}

func TestPlayer_UpdateTurning(t *testing.T) {
	p := newTestPlayer(t, aircraft.F16)

	p.ApplyTurnInput(TurningLeft)
	p.Update(frame)
	assert.InDelta(t, -p.TurnRate, p.Rotation, 1e-12)

	p.ApplyTurnInput(TurningRight)
	p.Update(frame)
	p.Update(frame)
	assert.Greater(t, p.Rotation, 0.0)
}

func TestPlayer_UpdateZeroDelta(t *testing.T) {
	p := newTestPlayer(t, aircraft.F16)
	p.Position = physics.Vector2D{X: 400, Y: 300}

	p.Update(0)

	assert.Equal(t, physics.Vector2D{X: 400, Y: 300}, p.Position)
	assert.NotEqual(t, SpawnSpeed, p.Speed, "speed integrates once per frame")
}

func TestPlayer_StallFloor(t *testing.T) {
	p := newTestPlayer(t, aircraft.F16)
	p.SetThrottle(0)
	p.Airbrake = true
	p.ApplyTurnInput(TurningRight)

	for i := 0; i < 2000; i++ {
		p.Update(frame)
		if p.Speed < p.Profile.StallSpeed {
			t.Fatalf("frame %d: speed %v below stall speed %v", i, p.Speed, p.Profile.StallSpeed)
		}
	}
	assert.Equal(t, p.Profile.StallSpeed, p.Speed)
	assert.InDelta(t, 0.04+50*0.04/150, p.TurnRate, 1e-12)
}

func TestPlayer_WrapsAroundViewport(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		start    physics.Vector2D
		expected physics.Vector2D
	}{
		{"east_edge", math.Pi / 2, physics.Vector2D{X: 829, Y: 300}, physics.Vector2D{X: -30, Y: 300}},
		{"west_edge", -math.Pi / 2, physics.Vector2D{X: -29, Y: 300}, physics.Vector2D{X: 830, Y: 300}},
		{"north_edge", 0, physics.Vector2D{X: 400, Y: -29}, physics.Vector2D{X: 400, Y: 630}},
		{"south_edge", math.Pi, physics.Vector2D{X: 400, Y: 629}, physics.Vector2D{X: 400, Y: -30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(t, aircraft.F16)
			p.Rotation = tt.rotation
			p.Position = tt.start

			p.Update(frame)

			assert.InDelta(t, tt.expected.X, p.Position.X, 1e-6)
			assert.InDelta(t, tt.expected.Y, p.Position.Y, 1e-6)
		})
	}
}

func TestPlayer_EdgeMarginOption(t *testing.T) {
	p, err := NewPlayer(aircraft.F16, testLoader{}, PlayerOptions{
		Viewport:   FixedViewport{Width: 100, Height: 100},
		EdgeMargin: 5,
	})
	require.NoError(t, err)

	p.Rotation = math.Pi / 2
	p.Position = physics.Vector2D{X: 104, Y: 50}
	p.Update(frame)
	assert.Equal(t, -5.0, p.Position.X)
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := newTestPlayer(t, aircraft.F16)

	assert.False(t, p.TakeDamage(30))
	assert.Equal(t, 70, p.Health)
	assert.False(t, p.TakeDamage(-10))
	assert.Equal(t, 70, p.Health)

	assert.True(t, p.TakeDamage(500))
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.Active)
}

func TestPlayer_Telemetry(t *testing.T) {
	p := newTestPlayer(t, aircraft.GripenE)

	tel := p.Telemetry(59.6)

	assert.Equal(t, 60.0, tel.FPS)
	assert.Equal(t, "Gripen", tel.Aircraft)
	assert.Equal(t, SpawnThrottle, tel.Throttle)
	assert.False(t, tel.Overboost)
	assert.Equal(t, 100, tel.Health)
	assert.Equal(t, 233.0, tel.SpeedKnots)
	assert.Equal(t, 2.0, tel.Drag)
	assert.Equal(t, 10309.0, tel.Thrust)
	assert.Equal(t, 75.0, tel.Acceleration)
	assert.Equal(t, 0.0, tel.TurnRate)
}

type recordingRenderer struct {
	calls     []string
	player    *Player
	telemetry Telemetry
}

func (r *recordingRenderer) Clear() { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) RenderPlayer(p *Player) {
	r.calls = append(r.calls, "player")
	r.player = p
}
func (r *recordingRenderer) RenderTelemetry(t Telemetry) {
	r.calls = append(r.calls, "telemetry")
	r.telemetry = t
}
func (r *recordingRenderer) Present() { r.calls = append(r.calls, "present") }

func TestPlayer_Render(t *testing.T) {
	p := newTestPlayer(t, aircraft.F16)
	r := &recordingRenderer{}

	var e Entity = p
	e.Render(r)

	assert.Equal(t, []string{"player"}, r.calls)
	assert.Same(t, p, r.player)
}

func TestTurnState_String(t *testing.T) {
	assert.Equal(t, "neutral", Neutral.String())
	assert.Equal(t, "left", TurningLeft.String())
	assert.Equal(t, "right", TurningRight.String())
	assert.Equal(t, "TurnState(9)", TurnState(9).String())
}
