package entity

import (
	"fmt"
	"time"

	"github.com/opd-ai/go-merlin/pkg/aircraft"
	"github.com/opd-ai/go-merlin/pkg/physics"
)

// TurnState is the player's turning mode. Left and right are exclusive.
type TurnState int

const (
	Neutral TurnState = iota
	TurningLeft
	TurningRight
)

// String returns a readable name for the turn state
func (s TurnState) String() string {
	switch s {
	case Neutral:
		return "neutral"
	case TurningLeft:
		return "left"
	case TurningRight:
		return "right"
	default:
		return fmt.Sprintf("TurnState(%d)", int(s))
	}
}

// Throttle limits in percent. Anything above MilitaryThrottle is overboost.
const (
	MinThrottle      = 0.0
	MilitaryThrottle = 100.0
	MaxThrottle      = 110.0
)

// Spawn values of a freshly created player.
const (
	SpawnSpeed    = 120.0  // m/s
	SpawnThrottle = 60.0   // percent
	SpawnTurnRate = 0.0004 // radians per tick
)

// positionScale converts speed times milliseconds into screen pixels and
// flips the Y axis so heading 0 points up the screen.
var positionScale = physics.Vector2D{X: 0.002, Y: -0.002}

// PlayerOptions configures NewPlayer.
type PlayerOptions struct {
	ID       ID
	Viewport Viewport
	// EdgeMargin is how far past the viewport edge the player flies before
	// wrapping. Zero selects physics.DefaultEdgeMargin.
	EdgeMargin float64
}

// Player is the aircraft flown by the local player. It is owned by a single
// game state and is not safe for concurrent use.
type Player struct {
	BaseEntity

	Profile aircraft.Profile
	Sprite  aircraft.Sprite

	TurnRate float64 // last computed, radians per tick
	Speed    float64 // m/s
	Throttle float64 // percent, 0..MaxThrottle
	Health   int
	Airbrake bool
	Turn     TurnState

	viewport Viewport
	margin   float64
}

// NewPlayer resolves variant from the aircraft catalog, loads its sprite
// through loader and places the player at the origin with spawn defaults.
func NewPlayer(variant aircraft.Variant, loader aircraft.AssetLoader, opts PlayerOptions) (*Player, error) {
	profile, err := aircraft.Resolve(variant)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	sprite, err := aircraft.LoadSprite(loader, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return NewPlayerWithProfile(profile, sprite, opts), nil
}

// NewPlayerWithProfile creates a player for an already resolved profile.
func NewPlayerWithProfile(profile aircraft.Profile, sprite aircraft.Sprite, opts PlayerOptions) *Player {
	margin := opts.EdgeMargin
	if margin <= 0 {
		margin = physics.DefaultEdgeMargin
	}

	return &Player{
		BaseEntity: BaseEntity{
			ID:     opts.ID,
			Active: true,
		},
		Profile:  profile,
		Sprite:   sprite,
		TurnRate: SpawnTurnRate,
		Speed:    SpawnSpeed,
		Throttle: SpawnThrottle,
		Health:   profile.MaxHealth,
		Turn:     Neutral,
		viewport: opts.Viewport,
		margin:   margin,
	}
}

// ApplyTurnInput sets the turning mode.
func (p *Player) ApplyTurnInput(s TurnState) {
	p.Turn = s
}

// SetThrottle stores v clamped to [MinThrottle, MaxThrottle].
func (p *Player) SetThrottle(v float64) {
	p.Throttle = physics.Clamp(v, MinThrottle, MaxThrottle)
}

// ReleaseOverboost drops an overboosted throttle back to military power.
func (p *Player) ReleaseOverboost() {
	if p.Throttle > MilitaryThrottle {
		p.Throttle = MilitaryThrottle
	}
}

// Overboost reports whether the throttle is above military power.
func (p *Player) Overboost() bool {
	return p.Throttle > MilitaryThrottle
}

// Turning reports whether the player is in either turning mode.
func (p *Player) Turning() bool {
	return p.Turn != Neutral
}

// DragCoefficient returns the drag coefficient for the current airbrake and
// turn configuration.
func (p *Player) DragCoefficient() float64 {
	return p.Profile.DragCoefficient(p.Airbrake, p.Turning())
}

// Thrust returns the current multiplied engine thrust.
func (p *Player) Thrust() float64 {
	return p.Profile.Thrust(p.Throttle)
}

// Acceleration returns the acceleration the next Update would apply.
func (p *Player) Acceleration() float64 {
	return p.Profile.Acceleration(p.Throttle, p.Speed, p.DragCoefficient())
}

// Update advances the flight model by one frame. Speed changes once per
// call regardless of delta; position is scaled by delta.
func (p *Player) Update(delta time.Duration) {
	acc := p.Acceleration()
	p.Speed = physics.IntegrateSpeed(p.Speed, acc, delta.Seconds())
	if p.Speed < p.Profile.StallSpeed {
		p.Speed = p.Profile.StallSpeed
	}

	p.TurnRate = p.Profile.TurnRate(p.Speed)
	switch p.Turn {
	case TurningLeft:
		p.Rotation -= p.TurnRate
	case TurningRight:
		p.Rotation += p.TurnRate
	}

	ms := float64(delta) / float64(time.Millisecond)
	step := physics.FromHeading(p.Rotation).Scale(p.Speed * ms).Mul(positionScale)
	p.Position = p.bounds().Wrap(p.Position.Add(step))
}

// TakeDamage subtracts amount from health, flooring at zero, and reports
// whether the aircraft is destroyed.
func (p *Player) TakeDamage(amount int) bool {
	if amount > 0 {
		p.Health -= amount
		if p.Health < 0 {
			p.Health = 0
		}
	}
	if p.Health == 0 {
		p.Active = false
	}
	return p.Health == 0
}

// SetViewport replaces the extent the player wraps around, for example after
// a window resize.
func (p *Player) SetViewport(v Viewport) {
	p.viewport = v
}

func (p *Player) bounds() physics.Bounds {
	b := physics.Bounds{Margin: p.margin}
	if p.viewport != nil {
		b.Width, b.Height = p.viewport.Size()
	}
	return b
}
