// Package aircraft defines the static performance data of each flyable
// aircraft: its thrust curve and the constants the flight model reads.
package aircraft

import (
	"time"

	"github.com/opd-ai/go-merlin/pkg/physics"
)

// Profile contains the performance constants for one aircraft variant.
// Profiles are values; they are never modified once resolved.
type Profile struct {
	Variant   Variant
	Name      string
	MaxHealth int

	// Turn authority: BaseTurnRate at TurnFlipPoint m/s, clamped to
	// [MinTurnRate, MaxTurnRate]. Rates are radians per tick.
	BaseTurnRate  float64
	TurnFlipPoint float64
	MinTurnRate   float64
	MaxTurnRate   float64

	StallSpeed float64 // m/s

	DragBase     float64
	TurnDrag     float64 // multiplier while turning
	AirbrakeDrag float64

	ReferenceArea    float64 // m^2
	Mass             float64 // kg
	ThrustMultiplier float64

	BulletFireRate time.Duration

	// SpritePath is the asset URL of the level-flight sprite, relative to
	// the assets root.
	SpritePath string

	curve *ThrustCurve
}

// ThrustCurve returns a copy of the profile's thrust curve.
func (p Profile) ThrustCurve() *ThrustCurve {
	return p.curve.Clone()
}

// Thrust returns multiplied engine thrust for a throttle setting. The
// throttle is truncated to a whole percent before the curve lookup.
func (p Profile) Thrust(throttlePercent float64) float64 {
	if throttlePercent < 0 {
		throttlePercent = 0
	}
	return p.curve.Thrust(uint32(throttlePercent), p.ThrustMultiplier)
}

// DragCoefficient returns the drag coefficient for the given configuration.
func (p Profile) DragCoefficient(airbrake, turning bool) float64 {
	return physics.DragCoefficient(p.DragBase, p.AirbrakeDrag, p.TurnDrag, airbrake, turning)
}

// Acceleration returns the per-tick acceleration at the given throttle,
// speed and drag coefficient.
func (p Profile) Acceleration(throttlePercent, speed, dragCoefficient float64) float64 {
	return physics.Acceleration(p.Thrust(throttlePercent), speed, dragCoefficient,
		p.ReferenceArea, p.Mass, p.ThrustMultiplier)
}

// TurnRate returns the turn rate available at speed.
func (p Profile) TurnRate(speed float64) float64 {
	return physics.TurnRate(speed, p.BaseTurnRate, p.TurnFlipPoint, p.MinTurnRate, p.MaxTurnRate)
}
