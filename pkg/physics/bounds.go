package physics

// DefaultEdgeMargin is how far past the visible edge a sprite travels before
// it reappears on the opposite side.
const DefaultEdgeMargin = 30.0

// Bounds describes the visible world extent an aircraft wraps around.
type Bounds struct {
	Width  float64
	Height float64
	Margin float64
}

// Wrap teleports pos to the opposite edge once it has moved more than Margin
// beyond either side of the extent. Each axis is handled independently.
func (b Bounds) Wrap(pos Vector2D) Vector2D {
	pos.X = wrapAxis(pos.X, b.Width, b.Margin)
	pos.Y = wrapAxis(pos.Y, b.Height, b.Margin)
	return pos
}

func wrapAxis(v, extent, margin float64) float64 {
	if v > extent+margin {
		return -margin
	} else if v < -margin {
		return extent + margin
	}
	return v
}
