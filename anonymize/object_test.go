package anonymize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertNoDeniedKeys walks the value and fails if any denied key survived.
func assertNoDeniedKeys(t *testing.T, v interface{}, denied map[string]struct{}) {
	t.Helper()
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			_, drop := denied[k]
			assert.False(t, drop, "denied key %q survived", k)
			assertNoDeniedKeys(t, inner, denied)
		}
	case []interface{}:
		for _, inner := range val {
			assertNoDeniedKeys(t, inner, denied)
		}
	}
}

func TestScrubObjectRemovesKeysRecursively(t *testing.T) {
	in := map[string]interface{}{
		"userId":  "user-1",
		"user_id": "user-1",
		"metrics": map[string]interface{}{
			"patient_id": "p-1",
			"hrv": []interface{}{
				map[string]interface{}{
					"value":         55.0,
					"deviceId":      "dev-1",
					"device_serial": "SN123",
				},
			},
		},
		"note": "keep me",
	}

	out := ScrubObject(in)

	assertNoDeniedKeys(t, out, nestedDeniedKeys)
	m := out.(map[string]interface{})
	assert.Equal(t, "keep me", m["note"])
	series := m["metrics"].(map[string]interface{})["hrv"].([]interface{})
	assert.Equal(t, 55.0, series[0].(map[string]interface{})["value"])
}

func TestScrubObjectLeavesInputUnmodified(t *testing.T) {
	in := map[string]interface{}{
		"userId": "user-1",
		"value":  1.0,
	}

	ScrubObject(in)

	assert.Contains(t, in, "userId", "scrub must copy, not mutate")
}

func TestScrubObjectNonObjectPassthrough(t *testing.T) {
	assert.Nil(t, ScrubObject(nil))
	assert.Equal(t, 42, ScrubObject(42))
	assert.Equal(t, "plain", ScrubObject("plain"))
	assert.Equal(t, 4.2, ScrubObject(4.2))
}

func TestScrubDatasetDropsPersonalInfoAtTopLevel(t *testing.T) {
	in := map[string]interface{}{
		"firstName":    "Alice",
		"lastName":     "Smith",
		"email":        "alice@example.com",
		"dateOfBirth":  "2002-01-01",
		"personalInfo": map[string]interface{}{"ssn": "000-00-0000"},
		"userId":       "user-1",
		"payload": map[string]interface{}{
			// only the record-level list applies below the top level
			"name":   "hrv bundle",
			"userId": "user-1",
		},
	}

	out := ScrubDataset(in).(map[string]interface{})

	for k := range personalDeniedKeys {
		assert.NotContains(t, out, k)
	}
	for k := range nestedDeniedKeys {
		assert.NotContains(t, out, k)
	}

	payload := out["payload"].(map[string]interface{})
	assert.Equal(t, "hrv bundle", payload["name"])
	assert.NotContains(t, payload, "userId")
}

func TestScrubDatasetNonObjectPassthrough(t *testing.T) {
	assert.Nil(t, ScrubDataset(nil))
	assert.Equal(t, []interface{}{1.0}, ScrubDataset([]interface{}{1.0}))
}
