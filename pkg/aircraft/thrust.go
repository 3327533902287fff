package aircraft

import (
	"maps"
	"slices"
)

// ThrustCurve maps throttle percentage to raw engine thrust through a sparse
// set of control points. Between points the thrust is interpolated linearly;
// outside the outermost points it is held flat.
type ThrustCurve struct {
	points map[uint32]uint32
}

// NewThrustCurve creates an empty curve.
func NewThrustCurve() *ThrustCurve {
	return &ThrustCurve{points: make(map[uint32]uint32)}
}

// AddPoint inserts a control point, replacing any existing point at the same
// throttle.
func (c *ThrustCurve) AddPoint(throttle, thrust uint32) {
	if c.points == nil {
		c.points = make(map[uint32]uint32)
	}
	c.points[throttle] = thrust
}

// Len returns the number of control points.
func (c *ThrustCurve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.points)
}

// Thrust returns the thrust at throttlePercent scaled by multiplier. An
// empty curve produces no thrust.
func (c *ThrustCurve) Thrust(throttlePercent uint32, multiplier float64) float64 {
	if c.Len() == 0 {
		return 0
	}

	keys := slices.Sorted(maps.Keys(c.points))
	lower, upper := bracket(keys, throttlePercent)

	if lower == upper {
		return float64(c.points[lower]) * multiplier
	}

	lo := float64(c.points[lower])
	hi := float64(c.points[upper])
	fraction := float64(throttlePercent-lower) / float64(upper-lower)

	return (lo + fraction*(hi-lo)) * multiplier
}

// bracket finds the tightest pair of sorted keys surrounding t. Both bounds
// collapse onto the nearest end key when t falls outside the curve.
func bracket(keys []uint32, t uint32) (lower, upper uint32) {
	lower, upper = keys[0], keys[0]
	for _, k := range keys {
		if k <= t {
			lower = k
		}
		if k >= t {
			upper = k
			return lower, upper
		}
	}
	// Past the last key.
	return lower, lower
}

// Clone returns an independent copy of the curve.
func (c *ThrustCurve) Clone() *ThrustCurve {
	if c == nil {
		return NewThrustCurve()
	}
	return &ThrustCurve{points: maps.Clone(c.points)}
}
