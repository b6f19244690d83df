package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

// The anonymization block recorded in every manifest. These values document
// what the anonymizer did; the builder does not re-verify them.
const (
	anonymizationMethod = "differential_privacy_with_temporal_jitter"
	epsilon             = 1.0
	kAnonymity          = 20
	timeGranularity     = "hourly"
)

// pseudonymousIDLength is the number of hex characters kept from the hash.
const pseudonymousIDLength = 16

// RemovedFields lists the identifying keys the anonymizer strips, as
// documented in the manifest.
var RemovedFields = []string{
	"userId",
	"userName",
	"deviceId",
	"serialNumber",
	"user_id",
	"device_serial",
	"patient_id",
}

// Builder assembles dataset manifests. The clock and random source are
// injected so tests can pin both down.
type Builder struct {
	now func() time.Time
	rng *rand.Rand
}

// NewBuilder returns a Builder using the given clock and random source.
// A nil clock falls back to time.Now.
func NewBuilder(now func() time.Time, rng *rand.Rand) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{now: now, rng: rng}
}

// PseudonymousID derives a one-way session identifier from a user id.
// The wall clock and a random draw are mixed into the hash, so two calls
// never produce the same id for the same user and the original id cannot
// be recovered.
func (b *Builder) PseudonymousID(userID string) string {
	seed := fmt.Sprintf("%s_%d_%d", userID, b.now().UnixNano(), b.rng.Int63())
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:pseudonymousIDLength]
}

// Build produces the manifest for one upload session from the per-metric
// blob receipts and the session metadata. It must only be invoked once all
// receipts are available; it performs no I/O and cannot fail.
func (b *Builder) Build(receipts map[string]schema.BlobReceipt, meta schema.SessionMeta) schema.DatasetManifest {
	now := b.now().UTC().Format(time.RFC3339)

	metrics := make(map[string]schema.MetricManifest, len(receipts))
	for name, receipt := range receipts {
		metrics[name] = schema.MetricManifest{
			Included:  true,
			Samples:   meta.SampleCounts[name],
			Frequency: schema.MetricFrequency(name),
			BlobURL:   receipt.URL,
			Checksum:  receipt.Checksum,
		}
	}

	return schema.DatasetManifest{
		SchemaVersion:      schema.ManifestSchemaVersion,
		DatasetID:          uuid.New().String(),
		UserPseudonymousID: b.PseudonymousID(meta.UserID),
		Title:              meta.Title,
		Description:        meta.Description,
		Metrics:            metrics,
		TimeRange:          meta.TimeRange,
		// intentionally generic regardless of the actual input devices,
		// matching the anonymizer's device collapsing
		DeviceTypes: []string{schema.DeviceSmartwatch, schema.DeviceSmartphone},
		Anonymization: schema.AnonymizationInfo{
			Method:          anonymizationMethod,
			Epsilon:         epsilon,
			KAnonymity:      kAnonymity,
			RemovedFields:   RemovedFields,
			TimeGranularity: timeGranularity,
			NoiseAdded:      true,
		},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}
