package aircraft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiplier = 4.9090909

func TestThrustCurve_EmptyCurveProducesNoThrust(t *testing.T) {
	c := NewThrustCurve()
	for _, throttle := range []uint32{0, 50, 100, 110, 1000} {
		assert.Zero(t, c.Thrust(throttle, multiplier))
	}

	var zero ThrustCurve
	assert.Zero(t, zero.Thrust(50, 1))
}

func TestThrustCurve_ExactControlPoints(t *testing.T) {
	c := fighterCurve(6000)
	points := map[uint32]uint32{0: 0, 25: 500, 50: 1500, 75: 3000, 85: 4000, 90: 4800, 100: 5000, 110: 6000}

	for throttle, thrust := range points {
		assert.Equal(t, float64(thrust)*multiplier, c.Thrust(throttle, multiplier), "throttle %d", throttle)
	}
}

func TestThrustCurve_F16HalfThrottle(t *testing.T) {
	p, err := Resolve(F16)
	require.NoError(t, err)

	got := p.Thrust(50)
	assert.Equal(t, 1500*multiplier, got)
	assert.InDelta(t, 7363.636, got, 1e-3)
}

func TestThrustCurve_Interpolates(t *testing.T) {
	c := NewThrustCurve()
	c.AddPoint(50, 1500)
	c.AddPoint(25, 500)

	tests := []struct {
		throttle uint32
		mult     float64
		expected float64
	}{
		{30, 1, 700},
		{40, 1, 1100},
		{45, 2, 2600},
		{49, 1, 1460},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, c.Thrust(tt.throttle, tt.mult), 1e-9, "throttle %d", tt.throttle)
	}
}

func TestThrustCurve_FlatOutsideControlPoints(t *testing.T) {
	c := NewThrustCurve()
	c.AddPoint(20, 400)
	c.AddPoint(80, 3600)
	c.AddPoint(50, 1800)

	assert.Equal(t, c.Thrust(20, multiplier), c.Thrust(0, multiplier))
	assert.Equal(t, c.Thrust(20, multiplier), c.Thrust(19, multiplier))
	assert.Equal(t, c.Thrust(80, multiplier), c.Thrust(81, multiplier))
	assert.Equal(t, c.Thrust(80, multiplier), c.Thrust(500, multiplier))
}

func TestThrustCurve_SinglePoint(t *testing.T) {
	c := NewThrustCurve()
	c.AddPoint(60, 1200)

	assert.Equal(t, 1200.0, c.Thrust(0, 1))
	assert.Equal(t, 1200.0, c.Thrust(60, 1))
	assert.Equal(t, 1200.0, c.Thrust(110, 1))
}

func TestThrustCurve_AddPointOverwrites(t *testing.T) {
	c := NewThrustCurve()
	c.AddPoint(50, 1500)
	c.AddPoint(50, 2000)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2000.0, c.Thrust(50, 1))
}

func TestThrustCurve_MonotonicForCatalogCurves(t *testing.T) {
	for _, v := range []Variant{F16, GripenE} {
		p, err := Resolve(v)
		require.NoError(t, err)

		curve := p.ThrustCurve()
		prev := curve.Thrust(0, p.ThrustMultiplier)
		for throttle := uint32(1); throttle <= 110; throttle++ {
			got := curve.Thrust(throttle, p.ThrustMultiplier)
			assert.GreaterOrEqual(t, got, prev, "%s throttle %d", p.Name, throttle)
			prev = got
		}
	}
}

func TestThrustCurve_CloneIsIndependent(t *testing.T) {
	c := NewThrustCurve()
	c.AddPoint(100, 5000)

	clone := c.Clone()
	clone.AddPoint(100, 1)

	assert.Equal(t, 5000.0, c.Thrust(100, 1))
	assert.Equal(t, 1.0, clone.Thrust(100, 1))
}
