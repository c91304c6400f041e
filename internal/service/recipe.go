package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/events"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/logger"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/repository"
)

// ListOptions are the caller-facing listing parameters. Authenticated
// toggles between the unrestricted view and the published-only view.
type ListOptions struct {
	Authenticated    bool
	Category         string
	OrderByField     string
	OrderByDirection string
	PerPage          int64
	PageNumber       int64
}

// ListResult pairs the matching documents with the cached counter value.
// The count is read from the counter cache, not computed from the query, so
// it can lag behind the documents.
type ListResult struct {
	RecipeCount int64
	Recipes     []models.Recipe
}

// RecipeService implements recipe CRUD over the document store and emits a
// change event after every successful write. Events are published after the
// write commits; the HTTP response never waits on the reactions they fan
// out to.
type RecipeService struct {
	recipes  RecipeStore
	counters CounterStore
	bus      events.Bus
}

func NewRecipeService(recipes RecipeStore, counters CounterStore, bus events.Bus) *RecipeService {
	return &RecipeService{recipes: recipes, counters: counters, bus: bus}
}

// Create validates, sanitizes and inserts a new recipe, returning the
// server-assigned id.
func (s *RecipeService) Create(ctx context.Context, raw map[string]any) (string, error) {
	if missing := ValidateRecipe(raw); len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	recipe := SanitizeRecipe(raw)
	id, err := s.recipes.Insert(ctx, &recipe)
	if err != nil {
		return "", fmt.Errorf("failed to insert recipe: %w", err)
	}

	s.publish(ctx, events.RecipeCreated, events.RecipeCreatedPayload{RecipeID: id, Recipe: recipe})
	return id, nil
}

// List returns the recipes matching opts together with the cached counter.
// Unauthenticated callers are forced to the published-only view and the
// published counter; authenticated callers see everything and the all
// counter.
func (s *RecipeService) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	counterName := models.CounterAll
	if !opts.Authenticated {
		counterName = models.CounterPublished
	}
	count, err := s.counters.Get(ctx, counterName)
	if err != nil {
		// The counter is a best-effort cache; a failed read degrades to zero.
		logger.Log.Errorf("failed to read %s counter: %v", counterName, err)
		count = 0
	}

	recipes, err := s.recipes.List(ctx, repository.ListQuery{
		PublishedOnly:    !opts.Authenticated,
		Category:         opts.Category,
		OrderByField:     opts.OrderByField,
		OrderByDirection: opts.OrderByDirection,
		PerPage:          opts.PerPage,
		PageNumber:       opts.PageNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return &ListResult{RecipeCount: count, Recipes: recipes}, nil
}

// Update validates, sanitizes and fully replaces the recipe at id. The
// replace is an upsert: updating an id that never existed creates the
// document and takes the create event path, mirroring document-store set
// semantics.
func (s *RecipeService) Update(ctx context.Context, id string, raw map[string]any) error {
	if missing := ValidateRecipe(raw); len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	before, err := s.recipes.FindByID(ctx, id)
	if err != nil && err != mongo.ErrNoDocuments {
		return fmt.Errorf("failed to load recipe %s: %w", id, err)
	}

	recipe := SanitizeRecipe(raw)
	if err := s.recipes.Replace(ctx, id, &recipe); err != nil {
		return fmt.Errorf("failed to replace recipe %s: %w", id, err)
	}

	if before == nil {
		s.publish(ctx, events.RecipeCreated, events.RecipeCreatedPayload{RecipeID: id, Recipe: recipe})
	} else {
		s.publish(ctx, events.RecipeUpdated, events.RecipeUpdatedPayload{RecipeID: id, Before: *before, After: recipe})
	}
	return nil
}

// Delete removes the recipe at id. Deleting a nonexistent id succeeds
// silently and publishes nothing.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	deleted, err := s.recipes.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe %s: %w", id, err)
	}
	if deleted == nil {
		return nil
	}

	s.publish(ctx, events.RecipeDeleted, events.RecipeDeletedPayload{RecipeID: id, Recipe: *deleted})
	return nil
}

func (s *RecipeService) publish(ctx context.Context, t events.Type, payload any) {
	evt, err := events.New(t, payload)
	if err != nil {
		logger.Log.Errorf("failed to build %s event: %v", t, err)
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.Log.Errorf("failed to publish %s event: %v", t, err)
	}
}
