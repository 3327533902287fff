package physics

import "golang.org/x/exp/constraints"

// Clamp limits x to the closed range [low, high].
func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
