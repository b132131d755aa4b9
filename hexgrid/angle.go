package hexgrid

import "math"

// atan2Degrees returns atan2(y, x) expressed in degrees.
func atan2Degrees(y, x float64) float64 {
	return math.Atan2(y, x) * 180 / math.Pi
}
