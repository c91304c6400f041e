package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/musasahinkundakci/firebase-backend-recipe/config"
)

// Collection names.
const (
	CollRecipes      = "recipes"
	CollRecipeCounts = "recipeCounts"
	CollUsers        = "user"
	CollAccounts     = "accounts"
)

// Connect opens a Mongo client, verifies the connection and ensures indexes.
// The returned database handle is passed into repositories explicitly; there
// is no package-level client.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(cfg.MongoDBName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	return db, nil
}

// Disconnect closes the underlying client of a database handle.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	// recipes: listing filters on category and publish state
	recipeIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_category"),
		},
		{
			Keys:    bson.D{{Key: "isPublished", Value: 1}, {Key: "publishDate", Value: 1}},
			Options: options.Index().SetName("idx_published_publish_date"),
		},
	}
	if _, err := db.Collection(CollRecipes).Indexes().CreateMany(ctx, recipeIndexes); err != nil {
		return err
	}

	// accounts: unique email
	_, err := db.Collection(CollAccounts).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	})
	return err
}
