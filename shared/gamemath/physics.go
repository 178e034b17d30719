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

// Decay multiplies speed by friction once per elapsed frame (k frames) and
// snaps it to exactly zero once its magnitude drops below snap.
func Decay(speed, friction, k, snap float64) float64 {
	if k == 1 {
		speed *= friction
	} else {
		speed *= math.Pow(friction, k)
	}
	if math.Abs(speed) < snap {
		return 0
	}
	return speed
}

// Approach eases current toward target by rate, the fraction of the
// remaining distance covered this frame.
func Approach(current, target, rate float64) float64 {
	return current + (target-current)*rate
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
