package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on top of a *mongo.Database.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("findOne %s: %w", collection, err)
	}
	return nil
}

func (m *Mongo) FindAll(ctx context.Context, collection string, filter bson.M, out interface{}, opts ...FindOption) error {
	cfg := findConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	findOptions := options.Find()
	if cfg.skip > 0 {
		findOptions.SetSkip(cfg.skip)
	}
	if cfg.limit > 0 {
		findOptions.SetLimit(cfg.limit)
	}

	cursor, err := m.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func (m *Mongo) InsertOne(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	result, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insertOne %s: %w", collection, err)
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (m *Mongo) UpdateOne(ctx context.Context, collection string, filter bson.M, update bson.M, upsert bool) (UpdateResult, error) {
	result, err := m.db.Collection(collection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return UpdateResult{}, fmt.Errorf("updateOne %s: %w", collection, err)
	}
	return UpdateResult{MatchedCount: result.MatchedCount, UpsertedID: result.UpsertedID}, nil
}

func (m *Mongo) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	result, err := m.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("deleteOne %s: %w", collection, err)
	}
	return result.DeletedCount, nil
}
