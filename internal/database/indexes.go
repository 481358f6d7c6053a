package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureCatalogIndexes creates the lookup indexes the aggregators depend on:
// shoeId joins on the related collections and a unique tagAddress for the
// in-store tag lookup.
func EnsureCatalogIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	shoeIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "shoeId", Value: 1}},
	}
	for _, collection := range []string{"images", "suggestion", "tag", "store", "datasheet"} {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, shoeIDIndex); err != nil {
			logrus.WithField("collection", collection).WithError(err).Error("shoeId index error")
			return err
		}
	}

	// The ingestion upsert targets pinterest.shoeId; uniqueness keeps re-runs
	// from racing into duplicate documents. Partial, because legacy documents
	// keyed by the old Shoe field have no shoeId at all.
	pinterestIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "shoeId", Value: 1}},
		Options: options.Index().
			SetName("shoeId_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"shoeId": bson.M{
					"$exists": true,
				},
			}),
	}
	if _, err := db.Collection("pinterest").Indexes().CreateOne(ctx, pinterestIndex); err != nil {
		logrus.WithError(err).Error("pinterest shoeId index error")
		return err
	}

	tagAddressIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "tagAddress", Value: 1}},
		Options: options.Index().
			SetName("tagAddress_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"tagAddress": bson.M{
					"$exists": true,
				},
			}),
	}
	if _, err := db.Collection("tag").Indexes().CreateOne(ctx, tagAddressIndex); err != nil {
		logrus.WithError(err).Error("tagAddress index error")
		return err
	}

	logrus.Info("catalog indexes ensured")
	return nil
}
