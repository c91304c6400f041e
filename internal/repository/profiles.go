package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/database"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(database.CollUsers)}
}

// Insert creates the profile document keyed by identity id. A replayed
// signup fails on the duplicate key rather than overwriting.
func (r *ProfileRepository) Insert(ctx context.Context, profile *models.UserProfile) error {
	_, err := r.col.InsertOne(ctx, profile)
	return err
}

// FindByID returns a profile, or mongo.ErrNoDocuments when absent.
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
