package calculator

import "math"

// roundCents rounds v to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// percent converts a percentage to a fraction.
func percent(p float64) float64 {
	return p / 100
}
