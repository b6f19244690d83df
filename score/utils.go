package score

import (
	"math"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

// Mean returns the arithmetic mean of a series' values. An empty series
// degrades to 0 rather than erroring.
func Mean(samples []schema.HealthSample) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		sum += s.Value
	}
	return sum / float64(len(samples))
}

func clamp(min, max, v float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
