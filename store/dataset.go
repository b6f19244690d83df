package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tsnevan4204/health-app-sub000/schema"
)

// ErrDatasetNotFound - no dataset record for the given id
var ErrDatasetNotFound = fmt.Errorf("dataset not found")

// DatasetOperator - operations over recorded upload sessions
type DatasetOperator interface {
	CreateDataset(record schema.DatasetRecord) error
	GetDataset(id string) (*schema.DatasetRecord, error)
	ListDatasets(owner string, limit int64) ([]schema.DatasetRecord, error)
}

// CreateDataset stores the record of one completed upload session.
func (m mongoDB) CreateDataset(record schema.DatasetRecord) error {
	c := m.client.Database(m.database).Collection(schema.DatasetCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.InsertOne(ctx, record); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"id":     record.ID,
			"error":  err,
		}).Error("insert dataset record")
		return err
	}

	return nil
}

// GetDataset fetches one recorded session by id.
func (m mongoDB) GetDataset(id string) (*schema.DatasetRecord, error) {
	c := m.client.Database(m.database).Collection(schema.DatasetCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var record schema.DatasetRecord
	err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDatasetNotFound
		}
		return nil, err
	}

	return &record, nil
}

// ListDatasets returns the most recent sessions of a pseudonymous owner,
// newest first.
func (m mongoDB) ListDatasets(owner string, limit int64) ([]schema.DatasetRecord, error) {
	c := m.client.Database(m.database).Collection(schema.DatasetCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)

	cursor, err := c.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]schema.DatasetRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
