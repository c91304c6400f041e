package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/database"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

// ListQuery describes a filtered, ordered, paginated listing of recipes.
// PageNumber is 1-based and only takes effect together with PerPage.
type ListQuery struct {
	PublishedOnly    bool
	Category         string
	OrderByField     string
	OrderByDirection string
	PerPage          int64
	PageNumber       int64
}

type RecipeRepository struct {
	col *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{col: db.Collection(database.CollRecipes)}
}

// Insert stores a new recipe under a server-assigned id and returns it.
func (r *RecipeRepository) Insert(ctx context.Context, recipe *models.Recipe) (string, error) {
	recipe.ID = uuid.NewString()
	if _, err := r.col.InsertOne(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ID, nil
}

// FindByID returns a recipe, or mongo.ErrNoDocuments when absent.
func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Replace fully replaces the document at id, creating it when absent. All
// seven fields come from the caller; this is not a partial merge.
func (r *RecipeRepository) Replace(ctx context.Context, id string, recipe *models.Recipe) error {
	recipe.ID = id
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, recipe, options.Replace().SetUpsert(true))
	return err
}

// Delete removes the document at id and returns the removed record. A
// missing id is not an error; it returns (nil, nil) so callers can treat
// deletion as idempotent.
func (r *RecipeRepository) Delete(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&recipe)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List runs a filtered, ordered, paginated find.
func (r *RecipeRepository) List(ctx context.Context, q ListQuery) ([]models.Recipe, error) {
	filter := bson.M{}
	if q.PublishedOnly {
		filter["isPublished"] = true
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}

	findOpts := options.Find()
	if q.OrderByField != "" {
		direction := 1
		if strings.EqualFold(q.OrderByDirection, "desc") {
			direction = -1
		}
		findOpts.SetSort(bson.D{{Key: q.OrderByField, Value: direction}})
	}
	if q.PerPage > 0 {
		findOpts.SetLimit(q.PerPage)
		if q.PageNumber > 0 {
			findOpts.SetSkip((q.PageNumber - 1) * q.PerPage)
		}
	}

	cursor, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recipes := []models.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindUnpublished returns every recipe with isPublished == false.
func (r *RecipeRepository) FindUnpublished(ctx context.Context) ([]models.Recipe, error) {
	cursor, err := r.col.Find(ctx, bson.M{"isPublished": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recipes := []models.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// SetPublished flips only the isPublished flag, preserving all other fields.
func (r *RecipeRepository) SetPublished(ctx context.Context, id string, published bool) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"isPublished": published}})
	return err
}
