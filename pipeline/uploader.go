package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tsnevan4204/health-app-sub000/anonymize"
	"github.com/tsnevan4204/health-app-sub000/external/blobstore"
	"github.com/tsnevan4204/health-app-sub000/external/healthdata"
	"github.com/tsnevan4204/health-app-sub000/manifest"
	"github.com/tsnevan4204/health-app-sub000/schema"
	"github.com/tsnevan4204/health-app-sub000/score"
)

const logPrefix = "pipeline"

// Request describes one upload session.
type Request struct {
	UserID           string
	Title            string
	Description      string
	Range            schema.DateRange
	Timezone         string
	ChronologicalAge int
}

// Result is the outcome of one completed upload session.
type Result struct {
	Manifest        schema.DatasetManifest
	ManifestReceipt schema.BlobReceipt
	AgeReceipt      schema.BlobReceipt
	Receipts        map[string]schema.BlobReceipt
	Age             schema.BiologicalAgeResult
}

// Uploader runs upload sessions: fetch, anonymize, upload per-metric blobs,
// score, build the manifest and publish it.
type Uploader struct {
	source  healthdata.Source
	blobs   blobstore.Store
	builder *manifest.Builder
	rng     *rand.Rand
}

// NewUploader - upload session orchestrator
func NewUploader(source healthdata.Source, blobs blobstore.Store, builder *manifest.Builder, rng *rand.Rand) *Uploader {
	return &Uploader{
		source:  source,
		blobs:   blobs,
		builder: builder,
		rng:     rng,
	}
}

type metricUpload struct {
	metric  string
	receipt schema.BlobReceipt
	err     error
}

// Run executes one session. Per-metric uploads run concurrently; the
// manifest is built only after every receipt has arrived and is uploaded
// last, unencrypted, as the dataset's entry point. Any upload failure
// aborts the session before the manifest builder is invoked.
func (u *Uploader) Run(ctx context.Context, req Request) (*Result, error) {
	data, err := u.source.GetAllHealthData(ctx, req.Range)
	if err != nil {
		return nil, fmt.Errorf("fetch health data: %w", err)
	}

	sampleCounts := make(map[string]int, len(data))
	anonymized := make(map[string][]schema.HealthSample, len(data))
	for metric, series := range data {
		sampleCounts[metric] = len(series)
		anonymized[metric] = anonymize.Samples(u.rng, series)
	}

	uploads := make(chan metricUpload, len(anonymized))
	for metric, series := range anonymized {
		go func(metric string, series []schema.HealthSample) {
			payload, err := json.Marshal(series)
			if err != nil {
				uploads <- metricUpload{metric: metric, err: err}
				return
			}
			receipt, err := u.blobs.Upload(ctx, payload, true)
			uploads <- metricUpload{metric: metric, receipt: receipt, err: err}
		}(metric, series)
	}

	receipts := make(map[string]schema.BlobReceipt, len(anonymized))
	for range anonymized {
		upload := <-uploads
		if upload.err != nil {
			return nil, fmt.Errorf("upload %s: %w", upload.metric, upload.err)
		}
		receipts[upload.metric] = upload.receipt
	}

	// scored from the raw, pre-anonymization values
	age := score.BiologicalAge(
		data[schema.MetricHRV],
		data[schema.MetricRestingHeartRate],
		data[schema.MetricExerciseMinutes],
		data[schema.MetricWeight],
		req.ChronologicalAge,
	)

	ageReceipt, err := u.uploadAgeResult(ctx, age)
	if err != nil {
		return nil, fmt.Errorf("upload biological age: %w", err)
	}

	m := u.builder.Build(receipts, schema.SessionMeta{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		TimeRange: schema.ManifestTimeRange{
			Start:    req.Range.StartDate.UTC().Format(time.RFC3339),
			End:      req.Range.EndDate.UTC().Format(time.RFC3339),
			Timezone: req.Timezone,
		},
		SampleCounts: sampleCounts,
	})

	manifestPayload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}

	manifestReceipt, err := u.blobs.Upload(ctx, manifestPayload, false)
	if err != nil {
		return nil, fmt.Errorf("upload manifest: %w", err)
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"dataset": m.DatasetID,
		"metrics": len(receipts),
		"blob":    manifestReceipt.ID,
	}).Info("upload session completed")

	return &Result{
		Manifest:        m,
		ManifestReceipt: manifestReceipt,
		AgeReceipt:      ageReceipt,
		Receipts:        receipts,
		Age:             age,
	}, nil
}

// uploadAgeResult scrubs the scoring result through the object anonymizer
// and stores it as its own encrypted blob, outside the manifest's metric
// map.
func (u *Uploader) uploadAgeResult(ctx context.Context, age schema.BiologicalAgeResult) (schema.BlobReceipt, error) {
	raw, err := json.Marshal(age)
	if err != nil {
		return schema.BlobReceipt{}, err
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return schema.BlobReceipt{}, err
	}

	payload, err := json.Marshal(anonymize.ScrubObject(decoded))
	if err != nil {
		return schema.BlobReceipt{}, err
	}

	return u.blobs.Upload(ctx, payload, true)
}
