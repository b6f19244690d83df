package anonymize

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

func TestSamplesPreservesLengthAndOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	samples := []schema.HealthSample{
		{Timestamp: "2024-03-01T08:00:00Z", Metric: schema.MetricHRV, Value: 55, Unit: "ms"},
		{Timestamp: "2024-03-02T08:00:00Z", Metric: schema.MetricHRV, Value: 61, Unit: "ms"},
		{Timestamp: "2024-03-03T08:00:00Z", Metric: schema.MetricHRV, Value: 47, Unit: "ms"},
	}

	out := Samples(rng, samples)

	assert.Equal(t, len(samples), len(out))
	for i := range out {
		assert.Equal(t, samples[i].Value, out[i].Value)
		assert.Equal(t, samples[i].Metric, out[i].Metric)
	}
}

func TestSamplesGeneralizesDeviceAndSource(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	out := Samples(rng, []schema.HealthSample{
		{Device: "Apple Watch Series 9", Source: "apple_health"},
		{Device: "iPhone 15 Pro", Source: "apple_health"},
		{Device: "Withings Body+", Source: "withings"},
		{Source: "apple_health"},
	})

	assert.Equal(t, schema.DeviceSmartwatch, out[0].Device)
	assert.Equal(t, schema.DeviceSmartphone, out[1].Device)
	assert.Equal(t, schema.DeviceHealthDevice, out[2].Device)
	assert.Equal(t, "", out[3].Device, "absent device stays absent")
	for _, s := range out {
		if s.Source != "" {
			assert.Equal(t, "health_app", s.Source)
		}
	}
}

func TestJitterTimestampStaysWithinBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	origin, _ := time.Parse(time.RFC3339, "2024-03-01T08:00:00Z")

	for i := 0; i < 1000; i++ {
		jittered := JitterTimestamp(rng, "2024-03-01T08:00:00Z")
		parsed, err := time.Parse(time.RFC3339, jittered)
		assert.NoError(t, err)

		diff := parsed.Sub(origin)
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 30*time.Minute)
	}
}

func TestJitterTimestampLeavesGarbageUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, "not-a-timestamp", JitterTimestamp(rng, "not-a-timestamp"))
}

func TestRecordsDropDeniedKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	records := []map[string]interface{}{
		{
			"timestamp":    "2024-03-01T08:00:00Z",
			"value":        55.0,
			"userId":       "user-1",
			"userName":     "alice",
			"deviceId":     "dev-1",
			"serialNumber": "SN123",
			"device":       "Apple Watch Ultra",
			"source":       "apple_health",
		},
		{
			"value": 61.0,
		},
	}

	out := Records(rng, records)

	assert.Equal(t, len(records), len(out))
	for _, r := range out {
		for key := range recordDeniedKeys {
			assert.NotContains(t, r, key)
		}
	}
	assert.Equal(t, schema.DeviceSmartwatch, out[0]["device"])
	assert.Equal(t, "health_app", out[0]["source"])
	assert.Equal(t, 61.0, out[1]["value"])
}

func TestRecordsToleratesUnexpectedFieldTypes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	out := Records(rng, []map[string]interface{}{
		{
			"device":    42,
			"source":    true,
			"timestamp": 1709280000,
		},
	})

	assert.Equal(t, 42, out[0]["device"])
	assert.Equal(t, true, out[0]["source"])
	assert.Equal(t, 1709280000, out[0]["timestamp"])
}
