package render

import (
	"strconv"

	"github.com/opd-ai/go-merlin/pkg/entity"
)

// Line is one row of HUD text. Warning rows are drawn in the alert colour.
type Line struct {
	Text    string
	Warning bool
}

// TelemetryLines lays out the HUD rows, top to bottom. Empty rows are
// spacers.
func TelemetryLines(t entity.Telemetry) []Line {
	lines := []Line{
		{Text: "FPS:      " + num(t.FPS)},
		{},
		{Text: "THROTTLE: " + num(t.Throttle) + "%", Warning: t.Overboost},
		{Text: "AIRBRAKE: " + strconv.FormatBool(t.Airbrake)},
		{Text: "HEALTH:   " + strconv.Itoa(t.Health)},
		{Text: "SPEED:    " + num(t.SpeedKnots) + "kts"},
		{},
		{Text: "ACCL:     " + num(t.Acceleration) + "m/s^2"},
		{Text: "T-RATE:   " + num(t.TurnRate) + "DEG/s"},
		{Text: "DRAG:     " + num(t.Drag) + "LBS"},
		{Text: "THRUST:   " + num(t.Thrust) + "LBS"},
	}
	if t.Paused {
		lines = append(lines, Line{}, Line{Text: "PAUSED"})
	}
	return lines
}

func num(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
