package engine

import "time"

// DefaultSmoothingFrames is the FPS averaging window.
const DefaultSmoothingFrames = 30

// FPSCounter reports a moving average of the instantaneous frame rate.
type FPSCounter struct {
	samples []float64
	next    int
	filled  int
	sum     float64
}

// NewFPSCounter averages over the last frames samples. Values below one
// select DefaultSmoothingFrames.
func NewFPSCounter(frames int) *FPSCounter {
	if frames < 1 {
		frames = DefaultSmoothingFrames
	}
	return &FPSCounter{samples: make([]float64, frames)}
}

// Tick records a frame that took delta. A zero delta counts as 0 fps.
func (c *FPSCounter) Tick(delta time.Duration) {
	var fps float64
	if delta > 0 {
		fps = 1 / delta.Seconds()
	}

	c.sum -= c.samples[c.next]
	c.samples[c.next] = fps
	c.sum += fps
	c.next = (c.next + 1) % len(c.samples)
	if c.filled < len(c.samples) {
		c.filled++
	}
}

// FPS returns the average over the recorded frames.
func (c *FPSCounter) FPS() float64 {
	if c.filled == 0 {
		return 0
	}
	return c.sum / float64(c.filled)
}
