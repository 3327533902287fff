package entity

import "math"

const knotsPerMeterPerSecond = 1.94384

// Telemetry is a HUD snapshot of the player's flight state. Rates and
// coefficients are scaled by 100 and rounded for display.
type Telemetry struct {
	FPS          float64
	Aircraft     string
	Throttle     float64
	Overboost    bool
	Airbrake     bool
	Health       int
	SpeedKnots   float64
	Acceleration float64
	TurnRate     float64
	Drag         float64
	Thrust       float64
	Paused       bool
}

// Telemetry captures the current HUD values.
func (p *Player) Telemetry(fps float64) Telemetry {
	return Telemetry{
		FPS:          math.Round(fps),
		Aircraft:     p.Profile.Name,
		Throttle:     p.Throttle,
		Overboost:    p.Overboost(),
		Airbrake:     p.Airbrake,
		Health:       p.Health,
		SpeedKnots:   math.Round(p.Speed * knotsPerMeterPerSecond),
		Acceleration: math.Round(p.Acceleration() * 100),
		TurnRate:     math.Round(p.TurnRate * 100),
		Drag:         math.Round(p.DragCoefficient() * 100),
		Thrust:       math.Round(p.Thrust()),
	}
}
