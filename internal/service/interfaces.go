package service

import (
	"context"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/repository"
)

// RecipeStore is the persistence contract for recipe documents.
type RecipeStore interface {
	Insert(ctx context.Context, recipe *models.Recipe) (string, error)
	FindByID(ctx context.Context, id string) (*models.Recipe, error)
	Replace(ctx context.Context, id string, recipe *models.Recipe) error
	Delete(ctx context.Context, id string) (*models.Recipe, error)
	List(ctx context.Context, q repository.ListQuery) ([]models.Recipe, error)
	FindUnpublished(ctx context.Context) ([]models.Recipe, error)
	SetPublished(ctx context.Context, id string, published bool) error
}

// CounterStore is the persistence contract for the cardinality cache.
type CounterStore interface {
	Adjust(ctx context.Context, name string, delta int64) error
	Get(ctx context.Context, name string) (int64, error)
}

// ProfileStore is the persistence contract for user profiles.
type ProfileStore interface {
	Insert(ctx context.Context, profile *models.UserProfile) error
	FindByID(ctx context.Context, id string) (*models.UserProfile, error)
}

// AccountStore is the persistence contract for identity accounts.
type AccountStore interface {
	Insert(ctx context.Context, account *models.Account) error
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
}

// ObjectStore abstracts the image bucket; paths address stored objects.
type ObjectStore interface {
	DeleteObject(ctx context.Context, path string) error
}
