package service

import (
	"context"
	"fmt"
	"time"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/events"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/logger"
)

// PublisherService flips scheduled recipes to published once their publish
// date has passed. Each record is evaluated and written independently; an
// individual failure is logged and the record is simply retried on the next
// scheduled run.
type PublisherService struct {
	recipes RecipeStore
	bus     events.Bus
	now     func() time.Time
}

func NewPublisherService(recipes RecipeStore, bus events.Bus) *PublisherService {
	return &PublisherService{recipes: recipes, bus: bus, now: time.Now}
}

// Run performs one sweep over the unpublished recipes.
func (s *PublisherService) Run(ctx context.Context) error {
	unpublished, err := s.recipes.FindUnpublished(ctx)
	if err != nil {
		return fmt.Errorf("failed to query unpublished recipes: %w", err)
	}

	now := s.now()
	published := 0
	for _, recipe := range unpublished {
		if recipe.PublishDate.After(now) {
			continue
		}

		if err := s.recipes.SetPublished(ctx, recipe.ID, true); err != nil {
			logger.Log.Errorf("failed to publish recipe %s: %v", recipe.ID, err)
			continue
		}
		logger.Log.Infof("recipe %s (%s) is now published", recipe.ID, recipe.Name)
		published++

		after := recipe
		after.IsPublished = true
		evt, err := events.New(events.RecipeUpdated, events.RecipeUpdatedPayload{
			RecipeID: recipe.ID,
			Before:   recipe,
			After:    after,
		})
		if err != nil {
			logger.Log.Errorf("failed to build update event for recipe %s: %v", recipe.ID, err)
			continue
		}
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.Log.Errorf("failed to publish update event for recipe %s: %v", recipe.ID, err)
		}
	}

	logger.Log.Infof("publish sweep finished: %d of %d unpublished recipes were due", published, len(unpublished))
	return nil
}
