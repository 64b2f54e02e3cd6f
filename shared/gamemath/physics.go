// Package gamemath holds small pure helpers shared by the physics step and
// the presentation systems.
package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// SnapSlow zeroes speeds whose magnitude is below threshold.
// The second result reports whether the speed was snapped.
func SnapSlow(speed, threshold float64) (float64, bool) {
	if math.Abs(speed) < threshold {
		return 0, true
	}
	return speed, false
}

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FallDistance is the closed-form displacement after n fixed ticks of a body
// that gains accelPerTick of per-second velocity each tick and moves
// velocity*dt each tick, starting at rest.
func FallDistance(accelPerTick, dt float64, n int) float64 {
	return accelPerTick * dt * float64(n*(n+1)) / 2
}
