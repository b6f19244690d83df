package blobstore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/encrypt"
	log "github.com/sirupsen/logrus"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

const logPrefix = "blobstore"

const contentType = "application/json"

// Store - interface to the decentralized blob store
type Store interface {
	Upload(ctx context.Context, data []byte, encrypted bool) (schema.BlobReceipt, error)
	Download(ctx context.Context, id string) ([]byte, error)
	Ping(ctx context.Context) error
}

type s3Store struct {
	client *minio.Client
	bucket string
}

// Checksum returns the hex SHA-256 digest recorded in blob receipts.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Upload stores a payload under a fresh opaque id and returns its receipt.
// The checksum is computed client-side before the payload leaves the
// service.
func (s *s3Store) Upload(ctx context.Context, data []byte, encrypted bool) (schema.BlobReceipt, error) {
	id := uuid.New().String()

	opts := minio.PutObjectOptions{
		ContentType: contentType,
	}
	if encrypted {
		opts.ServerSideEncryption = encrypt.NewSSE()
	}

	info, err := s.client.PutObject(ctx, s.bucket, id, bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		return schema.BlobReceipt{}, fmt.Errorf("blob upload: %w", err)
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"blob":   id,
		"size":   info.Size,
	}).Debug("uploaded blob")

	return schema.BlobReceipt{
		ID:        id,
		URL:       fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, id),
		Checksum:  Checksum(data),
		Size:      info.Size,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Download fetches a blob payload by id.
func (s *s3Store) Download(ctx context.Context, id string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, id, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("blob download: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("blob read: %w", err)
	}
	return data, nil
}

// Ping checks that the configured bucket is reachable.
func (s *s3Store) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %s not found", s.bucket)
	}
	return nil
}

// New - blob store backed by an S3-compatible endpoint
func New(endpoint, accessKey, secretKey, bucket string, secure bool) (Store, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create blob store client: %w", err)
	}

	return &s3Store{
		client: client,
		bucket: bucket,
	}, nil
}
