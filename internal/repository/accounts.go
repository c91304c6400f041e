package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/database"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(database.CollAccounts)}
}

func (r *AccountRepository) Insert(ctx context.Context, account *models.Account) error {
	_, err := r.col.InsertOne(ctx, account)
	return err
}

// FindByEmail returns an account, or mongo.ErrNoDocuments when absent.
// Emails are unique by index.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}
