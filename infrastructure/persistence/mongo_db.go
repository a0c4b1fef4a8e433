package persistence

import (
	"context"
	"fmt"
	"time"

	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	TokenCollection            = "token"
	MissingReportCollection    = "missing_bangumi"
	MissingStatisticCollection = "statistics_missing_bangumi"
)

// NewMongoDb connects to MongoDB and verifies the connection with a ping.
func NewMongoDb(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// SubjectCollections resolves one catalog collection per supported website.
func SubjectCollections(db *mongo.Database) map[model.Website]*mongo.Collection {
	collections := make(map[model.Website]*mongo.Collection, len(model.Websites()))
	// nested catalog documents decode as maps so they render as JSON objects
	opts := options.Collection().SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	for _, w := range model.Websites() {
		collections[w] = db.Collection(w.String(), opts)
	}
	return collections
}

// EnsureIndexes creates the indexes the repositories rely on. Safe to call
// at every startup; existing indexes are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	checks := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{
			collection: MissingStatisticCollection,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "website", Value: 1}, {Key: "bangumi_id", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
				{
					Keys: bson.D{{Key: "times", Value: -1}, {Key: "subject_id", Value: 1}},
				},
			},
		},
		{
			collection: MissingReportCollection,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "created_at", Value: -1}}},
			},
		},
	}

	for _, c := range checks {
		names, err := db.Collection(c.collection).Indexes().CreateMany(ctx, c.models)
		if err != nil {
			return fmt.Errorf("creating indexes on %s failed: %w", c.collection, err)
		}
		logger.GetLogger().WithField("collection", c.collection).WithField("indexes", names).Debug("Indexes ensured")
	}
	return nil
}
