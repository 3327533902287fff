// pkg/physics/vector.go
package physics

import "math"

// Vector2D is a screen-space position or displacement. X grows to the right,
// Y grows downwards.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Mul multiplies the vectors component by component.
func (v Vector2D) Mul(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X * other.X,
		Y: v.Y * other.Y,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// FromHeading returns the unit direction for a heading in radians, measured
// clockwise from "up" the way the aircraft sprite is drawn: heading 0 gives
// (0, 1) and heading pi/2 gives (1, 0). The Y component is flipped into
// screen space by the caller.
func FromHeading(heading float64) Vector2D {
	return Vector2D{
		X: math.Sin(heading),
		Y: math.Cos(heading),
	}
}
