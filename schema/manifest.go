package schema

import "time"

// ManifestSchemaVersion identifies the manifest document layout.
const ManifestSchemaVersion = "1.0"

// BlobReceipt is returned by the blob store for every uploaded payload.
type BlobReceipt struct {
	ID        string    `json:"id" bson:"id"`
	URL       string    `json:"url" bson:"url"`
	Checksum  string    `json:"checksum" bson:"checksum"`
	Size      int64     `json:"size" bson:"size"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// MetricManifest points at the blob holding one anonymized metric series.
// It never embeds sample values.
type MetricManifest struct {
	Included  bool   `json:"included" bson:"included"`
	Samples   int    `json:"samples" bson:"samples"`
	Frequency string `json:"frequency" bson:"frequency"`
	BlobURL   string `json:"blob_url" bson:"blob_url"`
	Checksum  string `json:"checksum" bson:"checksum"`
}

// ManifestTimeRange is the observation window covered by a dataset.
type ManifestTimeRange struct {
	Start    string `json:"start" bson:"start"`
	End      string `json:"end" bson:"end"`
	Timezone string `json:"timezone" bson:"timezone"`
}

// AnonymizationInfo documents what the anonymizer did to the dataset.
// It is descriptive metadata; the manifest builder does not re-verify it.
type AnonymizationInfo struct {
	Method          string   `json:"method" bson:"method"`
	Epsilon         float64  `json:"epsilon" bson:"epsilon"`
	KAnonymity      int      `json:"k_anonymity" bson:"k_anonymity"`
	RemovedFields   []string `json:"removed_fields" bson:"removed_fields"`
	TimeGranularity string   `json:"time_granularity" bson:"time_granularity"`
	NoiseAdded      bool     `json:"noise_added" bson:"noise_added"`
}

// DatasetManifest is the canonical pointer document for one upload session.
// It lists every per-metric blob plus dataset-level metadata and is itself
// uploaded, unencrypted, as the public entry point of the dataset.
// A manifest is immutable after upload.
type DatasetManifest struct {
	SchemaVersion      string                    `json:"schema_version" bson:"schema_version"`
	DatasetID          string                    `json:"dataset_id" bson:"dataset_id"`
	UserPseudonymousID string                    `json:"user_pseudonymous_id" bson:"user_pseudonymous_id"`
	Title              string                    `json:"title" bson:"title"`
	Description        string                    `json:"description" bson:"description"`
	Metrics            map[string]MetricManifest `json:"metrics" bson:"metrics"`
	TimeRange          ManifestTimeRange         `json:"time_range" bson:"time_range"`
	DeviceTypes        []string                  `json:"device_types" bson:"device_types"`
	Anonymization      AnonymizationInfo         `json:"anonymization" bson:"anonymization"`
	CreatedAt          string                    `json:"created_at" bson:"created_at"`
	UpdatedAt          string                    `json:"updated_at" bson:"updated_at"`
	Version            int                       `json:"version" bson:"version"`
}

// SessionMeta carries the caller-supplied metadata of one upload session
// into the manifest builder.
type SessionMeta struct {
	UserID       string
	Title        string
	Description  string
	TimeRange    ManifestTimeRange
	SampleCounts map[string]int
}
