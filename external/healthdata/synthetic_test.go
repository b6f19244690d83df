package healthdata

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

func TestSyntheticCoversEveryMetric(t *testing.T) {
	source := NewSynthetic(rand.New(rand.NewSource(1)))

	data, err := source.GetAllHealthData(context.Background(), schema.DateRange{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Len(t, data, len(schema.Metrics))
	for _, metric := range schema.Metrics {
		samples := data[metric]
		assert.Len(t, samples, 7, "one sample per day for %s", metric)
		for _, s := range samples {
			assert.Equal(t, metric, s.Metric)
			assert.Equal(t, syntheticSource, s.Source)
			assert.Equal(t, syntheticDevice, s.Device)
			_, err := time.Parse(time.RFC3339, s.Timestamp)
			assert.NoError(t, err)
		}
	}
}

func TestSyntheticValuesStayWithinSpread(t *testing.T) {
	source := NewSynthetic(rand.New(rand.NewSource(2)))

	data, _ := source.GetAllHealthData(context.Background(), schema.DateRange{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	})

	for metric, profile := range syntheticProfiles {
		for _, s := range data[metric] {
			assert.GreaterOrEqual(t, s.Value, profile.base-profile.spread)
			assert.LessOrEqual(t, s.Value, profile.base+profile.spread)
		}
	}
}
