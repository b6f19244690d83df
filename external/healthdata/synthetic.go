package healthdata

import (
	"context"
	"math/rand"
	"time"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

// metricProfile describes how a synthetic metric series is generated.
type metricProfile struct {
	base   float64
	spread float64
	unit   string
}

var syntheticProfiles = map[string]metricProfile{
	schema.MetricHRV:              {base: 55, spread: 15, unit: "ms"},
	schema.MetricRestingHeartRate: {base: 60, spread: 8, unit: "bpm"},
	schema.MetricActiveCalories:   {base: 450, spread: 150, unit: "kcal"},
	schema.MetricExerciseMinutes:  {base: 35, spread: 20, unit: "min"},
	schema.MetricWeight:           {base: 150, spread: 3, unit: "lbs"},
}

const (
	syntheticDevice = "Apple Watch Series 9"
	syntheticSource = "apple_health"
)

type synthetic struct {
	rng *rand.Rand
}

// GetAllHealthData generates one plausible sample per day and metric over
// the range. The device and source strings mimic a real provider so the
// anonymizer has something to generalize.
func (s synthetic) GetAllHealthData(_ context.Context, r schema.DateRange) (map[string][]schema.HealthSample, error) {
	start := r.StartDate.UTC().Truncate(24 * time.Hour)
	end := r.EndDate.UTC()

	data := make(map[string][]schema.HealthSample, len(syntheticProfiles))
	for _, metric := range schema.Metrics {
		profile := syntheticProfiles[metric]

		var samples []schema.HealthSample
		for day := start; !day.After(end); day = day.Add(24 * time.Hour) {
			value := profile.base + (s.rng.Float64()*2-1)*profile.spread
			samples = append(samples, schema.HealthSample{
				Timestamp: day.Add(8 * time.Hour).Format(time.RFC3339),
				Metric:    metric,
				Value:     value,
				Unit:      profile.unit,
				Source:    syntheticSource,
				Device:    syntheticDevice,
			})
		}
		data[metric] = samples
	}

	return data, nil
}

// NewSynthetic - deterministic demo source seeded by the given generator
func NewSynthetic(rng *rand.Rand) Source {
	return &synthetic{rng: rng}
}
