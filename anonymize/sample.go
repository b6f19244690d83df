package anonymize

import (
	"math/rand"
	"strings"
	"time"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

// maxJitter bounds the random offset applied to sample timestamps.
const maxJitter = 30 * time.Minute

// recordDeniedKeys are removed from every per-sample record.
var recordDeniedKeys = map[string]struct{}{
	"userId":       {},
	"userName":     {},
	"deviceId":     {},
	"serialNumber": {},
}

// Samples anonymizes a typed metric series: device and source strings are
// collapsed to generic classes and timestamps receive an independent random
// jitter per sample. Length and ordering of the input are preserved; jitter
// may reorder neighboring timestamps and that is accepted.
func Samples(rng *rand.Rand, samples []schema.HealthSample) []schema.HealthSample {
	out := make([]schema.HealthSample, len(samples))
	for i, s := range samples {
		if s.Device != "" {
			s.Device = GeneralizeDevice(s.Device)
		}
		s.Source = GeneralizeSource(s.Source)
		if s.Timestamp != "" {
			s.Timestamp = JitterTimestamp(rng, s.Timestamp)
		}
		out[i] = s
	}
	return out
}

// Records anonymizes an untyped per-sample record array: the exact keys of
// recordDeniedKeys are dropped, device/source strings are generalized and
// timestamps jittered when present. Missing or unexpectedly typed fields
// are skipped without error.
func Records(rng *rand.Rand, records []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, len(records))
	for i, r := range records {
		c := make(map[string]interface{}, len(r))
		for k, v := range r {
			if _, drop := recordDeniedKeys[k]; drop {
				continue
			}
			c[k] = v
		}
		if device, ok := c["device"].(string); ok {
			c["device"] = GeneralizeDevice(device)
		}
		if source, ok := c["source"].(string); ok {
			c["source"] = GeneralizeSource(source)
		}
		if ts, ok := c["timestamp"].(string); ok {
			c["timestamp"] = JitterTimestamp(rng, ts)
		}
		out[i] = c
	}
	return out
}

// GeneralizeDevice collapses a device name into one of three generic classes.
func GeneralizeDevice(device string) string {
	switch {
	case strings.Contains(device, "Apple Watch"):
		return schema.DeviceSmartwatch
	case strings.Contains(device, "iPhone"):
		return schema.DeviceSmartphone
	default:
		return schema.DeviceHealthDevice
	}
}

// GeneralizeSource rewrites vendor-specific source names.
func GeneralizeSource(source string) string {
	if source == "apple_health" {
		return "health_app"
	}
	return source
}

// JitterTimestamp perturbs an ISO-8601 timestamp by a uniform random offset
// in [-maxJitter, +maxJitter]. Unparseable timestamps pass through unchanged.
func JitterTimestamp(rng *rand.Rand, ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	offset := time.Duration(rng.Int63n(int64(2*maxJitter)+1)) - maxJitter
	return t.Add(offset).UTC().Format(time.RFC3339)
}
