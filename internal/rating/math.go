package rating

import "math"

// truncate drops everything past the given number of decimal places
// without rounding. The published ratings depend on this being a
// truncation, not a round.
func truncate(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Trunc(v*pow) / pow
}

func round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

func clamp(v, min, max float64) float64 {
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}
