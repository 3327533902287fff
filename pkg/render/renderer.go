// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-merlin/pkg/entity"
	"github.com/opd-ai/go-merlin/pkg/logging"
)

// NullRenderer is an entity.Renderer that only logs what it is asked to
// draw. It backs headless runs.
type NullRenderer struct {
	logger *logging.Logger
	frames int
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger}
}

// Frames returns the number of presented frames.
func (d *NullRenderer) Frames() int {
	return d.frames
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.frames++
	d.logger.Debug(context.Background(), "Present called", "frame", d.frames)
}

// RenderPlayer implements entity.Renderer.
func (d *NullRenderer) RenderPlayer(player *entity.Player) {
	ctx := context.Background()
	if player == nil {
		d.logger.Debug(ctx, "RenderPlayer called with nil player")
		return
	}
	d.logger.Debug(ctx, "RenderPlayer called",
		"player_id", player.ID,
		"x", player.Position.X,
		"y", player.Position.Y,
		"rotation", player.Rotation,
	)
}

// RenderTelemetry implements entity.Renderer.
func (d *NullRenderer) RenderTelemetry(t entity.Telemetry) {
	d.logger.Debug(context.Background(), "RenderTelemetry called",
		"speed_kts", t.SpeedKnots,
		"throttle", t.Throttle,
		"paused", t.Paused,
	)
}
