package gamemath

import "math"

// SlopeTravel classifies horizontal motion relative to a surface incline.
type SlopeTravel int

const (
	Level SlopeTravel = iota
	Downhill
	Uphill
)

// ClassifySlope reports whether moving with speed vx over a surface of the
// given angle goes downhill or uphill. rise is the height change across the
// sample span; positive angles descend to the right. Speeds within
// deadband count as standing still.
func ClassifySlope(angle, vx, span, deadband float64) SlopeTravel {
	rise := math.Tan(angle) * span
	movingRight := vx > deadband
	movingLeft := vx < -deadband
	switch {
	case (movingRight && rise > 0) || (movingLeft && rise < 0):
		return Downhill
	case (movingRight && rise < 0) || (movingLeft && rise > 0):
		return Uphill
	}
	return Level
}

// SlopeFactor expresses the steepness of angle as a fraction of limit.
func SlopeFactor(angle, limit float64) float64 {
	if limit == 0 {
		return 0
	}
	return math.Abs(angle) / limit
}
