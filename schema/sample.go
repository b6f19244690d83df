package schema

import "time"

// Metric keys used by the health data source and the dataset manifest.
const (
	MetricHRV              = "hrv"
	MetricRestingHeartRate = "rhr"
	MetricActiveCalories   = "active_calories"
	MetricExerciseMinutes  = "exercise_minutes"
	MetricWeight           = "weight"
)

// Generalized device classes a sample may carry after anonymization.
const (
	DeviceSmartwatch   = "smartwatch"
	DeviceSmartphone   = "smartphone"
	DeviceHealthDevice = "health_device"
)

// Metrics lists every metric key a health data source may return,
// in the order they appear in a dataset manifest.
var Metrics = []string{
	MetricHRV,
	MetricRestingHeartRate,
	MetricActiveCalories,
	MetricExerciseMinutes,
	MetricWeight,
}

// metricFrequencies describes how often each metric is sampled by
// the source device.
var metricFrequencies = map[string]string{
	MetricHRV:              "continuous",
	MetricRestingHeartRate: "continuous",
	MetricActiveCalories:   "daily",
	MetricExerciseMinutes:  "daily",
	MetricWeight:           "daily",
}

// MetricFrequency returns the sampling frequency recorded in the manifest
// for a given metric key.
func MetricFrequency(metric string) string {
	if f, ok := metricFrequencies[metric]; ok {
		return f
	}
	return "unknown"
}

// HealthSample is one observation returned by the health data source.
// Timestamp is an ISO-8601 string as delivered by the source; it is kept
// as a string so that malformed timestamps pass through untouched.
type HealthSample struct {
	Timestamp string  `json:"timestamp" bson:"timestamp"`
	Metric    string  `json:"metric" bson:"metric"`
	Value     float64 `json:"value" bson:"value"`
	Unit      string  `json:"unit" bson:"unit"`
	Source    string  `json:"source" bson:"source"`
	Device    string  `json:"device,omitempty" bson:"device,omitempty"`
}

// DateRange bounds a health data query.
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
