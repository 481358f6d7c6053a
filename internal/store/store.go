// Package store wraps the document database behind the small capability set
// the aggregation and ingestion code actually uses: find-one, find-many,
// insert, update-with-upsert and delete, all keyed by collection name.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// UpdateResult reports the outcome of an UpdateOne call.
type UpdateResult struct {
	MatchedCount int64
	UpsertedID   interface{}
}

type findConfig struct {
	skip  int64
	limit int64
}

// FindOption adjusts a FindAll call.
type FindOption func(*findConfig)

// WithPage applies skip/limit paging to a FindAll call. A limit of zero
// means no limit.
func WithPage(skip, limit int64) FindOption {
	return func(cfg *findConfig) {
		cfg.skip = skip
		cfg.limit = limit
	}
}

// Store is the document-store capability consumed by the aggregators and the
// ingestion pipeline. Filters are plain equality maps plus $or.
type Store interface {
	FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error
	FindAll(ctx context.Context, collection string, filter bson.M, out interface{}, opts ...FindOption) error
	InsertOne(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error)
	UpdateOne(ctx context.Context, collection string, filter bson.M, update bson.M, upsert bool) (UpdateResult, error)
	DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error)
}
