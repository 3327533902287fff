package entity

// Renderer draws one frame of the flight scene
type Renderer interface {
	Clear()
	RenderPlayer(player *Player)
	RenderTelemetry(t Telemetry)
	Present()
}

// Viewport reports the visible extent of the world in pixels. Aircraft wrap
// around it when they fly off screen.
type Viewport interface {
	Size() (width, height float64)
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	Width  float64
	Height float64
}

// Size implements Viewport
func (v FixedViewport) Size() (float64, float64) {
	return v.Width, v.Height
}
