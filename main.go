package main

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"backend/internal/catalog"
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/ingest"
	"backend/internal/objectstore"
	"backend/internal/pinterest"
	"backend/internal/store"
)

// collections served by the generic document CRUD routes.
var collections = []string{"shoes", "images", "suggestion", "pinterest", "tag", "store", "datasheet"}

func main() {
	config.Load()
	cfg := config.AppEnv

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		logrus.WithError(err).Fatal("mongodb connection failed")
	}
	db := client.Database(cfg.DBName)
	logrus.WithField("db", db.Name()).Info("mongodb connected")

	if err := database.EnsureCatalogIndexes(db); err != nil {
		logrus.WithError(err).Warn("catalog index warning")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		logrus.WithError(err).Fatal("aws configuration failed")
	}

	st := store.NewMongo(db)
	objects := objectstore.NewS3(s3.NewFromConfig(awsCfg), cfg.S3Bucket)
	mediaHTTP := pinterest.NewSafeHTTPClient(cfg.MediaFetchTimeout)
	pins := pinterest.NewClient(mediaHTTP, cfg.PinterestAPIBase, cfg.PinterestToken, cfg.PinterestRatePerSec)

	aggregator := catalog.NewAggregator(st)
	pipeline := ingest.NewPipeline(st, objects, pins, mediaHTTP, cfg.S3KeyPrefix)

	r := gin.Default()
	r.Use(cors.Default())

	for _, collection := range collections {
		handlers.RegisterDocumentRoutes(r, st, collection)
	}

	r.GET("/shoes-with-images", handlers.GetShoesWithImages(aggregator))
	r.GET("/shoes-with-tags", handlers.GetShoesWithTags(aggregator))
	r.GET("/shoe-details", handlers.GetShoeDetails(aggregator))
	r.GET("/shoe-with-pinterest", handlers.GetShoeWithPinterest(aggregator))
	r.GET("/tag-by-address", handlers.GetShoeByTag(aggregator))
	r.POST("/add-pinterest-data", handlers.AddPinterestData(pipeline))

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
