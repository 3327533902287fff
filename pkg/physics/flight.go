// Package physics holds the flight model: pure functions deriving drag,
// acceleration and turn authority from an aircraft's constants and its
// current dynamic state, plus the small vector toolkit used to move it.
package physics

// turnRateSlopeDivisor sets how quickly turn authority falls away from the
// flip point: the rate changes by base/150 per m/s of speed difference.
const turnRateSlopeDivisor = 150.0

// DragCoefficient returns the effective drag coefficient. Airbrake drag is
// added first and the turn penalty multiplies the sum, so turning with the
// airbrake out penalizes both.
func DragCoefficient(base, airbrakeDrag, turnDrag float64, airbrake, turning bool) float64 {
	cd := base
	if airbrake {
		cd += airbrakeDrag
	}
	if turning {
		cd *= turnDrag
	}
	return cd
}

// DragForce returns 0.5 * cd * area * speed^2.
func DragForce(dragCoefficient, referenceArea, speed float64) float64 {
	return 0.5 * dragCoefficient * referenceArea * speed * speed
}

// Acceleration computes (thrust - drag) / mass for an already multiplied
// thrust value. When the net result is a deceleration it is divided by the
// thrust multiplier, which makes slowing down respond more gently than
// speeding up.
func Acceleration(thrust, speed, dragCoefficient, referenceArea, mass, thrustMultiplier float64) float64 {
	drag := DragForce(dragCoefficient, referenceArea, speed)
	acc := (thrust - drag) / mass
	if acc < 0 && thrustMultiplier != 0 {
		acc /= thrustMultiplier
	}
	return acc
}

// TurnRate is a tent centred on flipPoint: authority rises above base when
// slower than the flip point, falls below it when faster, and is finally
// clamped to [minRate, maxRate].
func TurnRate(speed, base, flipPoint, minRate, maxRate float64) float64 {
	slope := base / turnRateSlopeDivisor
	var rate float64
	if speed <= flipPoint {
		rate = base + (flipPoint-speed)*slope
	} else {
		rate = base - (speed-flipPoint)*slope
	}
	return Clamp(rate, minRate, maxRate)
}

// IntegrateSpeed advances speed by one tick. The acceleration is applied as
// a per-frame delta and the frame duration is ignored, so the simulation
// runs faster at higher frame rates. Switching to a fixed timestep means
// scaling acceleration by delta here and nowhere else.
func IntegrateSpeed(speed, acceleration, delta float64) float64 {
	_ = delta
	return speed + acceleration
}
