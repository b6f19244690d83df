package manifest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

var testClock = func() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func testMeta() schema.SessionMeta {
	return schema.SessionMeta{
		UserID:      "user-1",
		Title:       "March health bundle",
		Description: "30 days of anonymized metrics",
		TimeRange: schema.ManifestTimeRange{
			Start:    "2024-02-14T00:00:00Z",
			End:      "2024-03-15T00:00:00Z",
			Timezone: "GMT+0",
		},
		SampleCounts: map[string]int{
			schema.MetricHRV:    30,
			schema.MetricWeight: 4,
		},
	}
}

func testReceipts() map[string]schema.BlobReceipt {
	return map[string]schema.BlobReceipt{
		schema.MetricHRV: {
			ID:       "blob-hrv",
			URL:      "https://blobs.example.com/health/blob-hrv",
			Checksum: "aaaa1111",
			Size:     2048,
		},
		schema.MetricWeight: {
			ID:       "blob-weight",
			URL:      "https://blobs.example.com/health/blob-weight",
			Checksum: "bbbb2222",
			Size:     512,
		},
	}
}

func TestBuildCarriesReceiptPointers(t *testing.T) {
	b := NewBuilder(testClock, rand.New(rand.NewSource(7)))

	m := b.Build(testReceipts(), testMeta())

	assert.Len(t, m.Metrics, 2)
	for name, receipt := range testReceipts() {
		entry, ok := m.Metrics[name]
		assert.True(t, ok)
		assert.True(t, entry.Included)
		assert.Equal(t, receipt.URL, entry.BlobURL)
		assert.Equal(t, receipt.Checksum, entry.Checksum)
	}
	assert.Equal(t, 30, m.Metrics[schema.MetricHRV].Samples)
	assert.Equal(t, "continuous", m.Metrics[schema.MetricHRV].Frequency)
	assert.Equal(t, "daily", m.Metrics[schema.MetricWeight].Frequency)
}

func TestBuildFixedFields(t *testing.T) {
	b := NewBuilder(testClock, rand.New(rand.NewSource(7)))

	m := b.Build(testReceipts(), testMeta())

	assert.Equal(t, schema.ManifestSchemaVersion, m.SchemaVersion)
	assert.Equal(t, 1, m.Version)
	assert.Equal(t, []string{schema.DeviceSmartwatch, schema.DeviceSmartphone}, m.DeviceTypes)
	assert.Equal(t, "differential_privacy_with_temporal_jitter", m.Anonymization.Method)
	assert.Equal(t, 1.0, m.Anonymization.Epsilon)
	assert.Equal(t, 20, m.Anonymization.KAnonymity)
	assert.Equal(t, RemovedFields, m.Anonymization.RemovedFields)
	assert.True(t, m.Anonymization.NoiseAdded)
	assert.Equal(t, "2024-03-15T10:30:00Z", m.CreatedAt)
	assert.Equal(t, m.CreatedAt, m.UpdatedAt)
	assert.NotEmpty(t, m.DatasetID)
}

func TestPseudonymousIDNeverRepeats(t *testing.T) {
	b := NewBuilder(testClock, rand.New(rand.NewSource(7)))

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := b.PseudonymousID("user-1")
		assert.Len(t, id, 16)
		assert.False(t, seen[id], "pseudonymous id repeated")
		seen[id] = true
	}
}

func TestPseudonymousIDDoesNotLeakUserID(t *testing.T) {
	b := NewBuilder(testClock, rand.New(rand.NewSource(7)))

	m := b.Build(testReceipts(), testMeta())

	assert.NotContains(t, m.UserPseudonymousID, "user-1")
}

func TestBuildDistinctManifestsForSameUser(t *testing.T) {
	b := NewBuilder(testClock, rand.New(rand.NewSource(7)))

	first := b.Build(testReceipts(), testMeta())
	second := b.Build(testReceipts(), testMeta())

	assert.NotEqual(t, first.UserPseudonymousID, second.UserPseudonymousID)
	assert.NotEqual(t, first.DatasetID, second.DatasetID)
}
