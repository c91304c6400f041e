package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/database"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

type CounterRepository struct {
	col *mongo.Collection
}

func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{col: db.Collection(database.CollRecipeCounts)}
}

// Adjust applies a signed delta to a counter document in a single atomic
// upsert: count = max(0, ifNull(count, 0) + delta). The clamp covers every
// initialization branch (first create lands at 1, a decrement against a
// missing or zero counter lands at 0) without a read-then-write window.
func (r *CounterRepository) Adjust(ctx context.Context, name string, delta int64) error {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{{Key: "count", Value: bson.D{
			{Key: "$max", Value: bson.A{
				int64(0),
				bson.D{{Key: "$add", Value: bson.A{
					bson.D{{Key: "$ifNull", Value: bson.A{"$count", int64(0)}}},
					delta,
				}}},
			}},
		}}}}},
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": name}, update, options.Update().SetUpsert(true))
	return err
}

// Get reads a counter value; a missing document reads as zero.
func (r *CounterRepository) Get(ctx context.Context, name string) (int64, error) {
	var doc models.RecipeCount
	err := r.col.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.Count, nil
}
