package service

import (
	"context"
	"fmt"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/events"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

// CounterService keeps the recipeCounts documents in step with recipe
// lifecycle events. The adjustments run after the triggering write and are
// not transactional with it; the counters are an eventually consistent
// cache of cardinality, not a correctness guarantee.
type CounterService struct {
	counters CounterStore
}

func NewCounterService(counters CounterStore) *CounterService {
	return &CounterService{counters: counters}
}

// Register subscribes the three reactions on the bus.
func (s *CounterService) Register(bus events.Bus) {
	bus.Subscribe(events.RecipeCreated, s.HandleCreated)
	bus.Subscribe(events.RecipeUpdated, s.HandleUpdated)
	bus.Subscribe(events.RecipeDeleted, s.HandleDeleted)
}

// HandleCreated increments all, and published when the new record is
// published.
func (s *CounterService) HandleCreated(ctx context.Context, evt events.Event) error {
	var payload events.RecipeCreatedPayload
	if err := events.Decode(evt, &payload); err != nil {
		return err
	}

	if err := s.counters.Adjust(ctx, models.CounterAll, 1); err != nil {
		return fmt.Errorf("failed to increment %s counter: %w", models.CounterAll, err)
	}
	if payload.Recipe.IsPublished {
		if err := s.counters.Adjust(ctx, models.CounterPublished, 1); err != nil {
			return fmt.Errorf("failed to increment %s counter: %w", models.CounterPublished, err)
		}
	}
	return nil
}

// HandleUpdated adjusts published by the delta of the isPublished
// transition: +1 became published, -1 became unpublished, 0 otherwise.
func (s *CounterService) HandleUpdated(ctx context.Context, evt events.Event) error {
	var payload events.RecipeUpdatedPayload
	if err := events.Decode(evt, &payload); err != nil {
		return err
	}

	var delta int64
	switch {
	case !payload.Before.IsPublished && payload.After.IsPublished:
		delta = 1
	case payload.Before.IsPublished && !payload.After.IsPublished:
		delta = -1
	}
	if delta == 0 {
		return nil
	}

	if err := s.counters.Adjust(ctx, models.CounterPublished, delta); err != nil {
		return fmt.Errorf("failed to adjust %s counter: %w", models.CounterPublished, err)
	}
	return nil
}

// HandleDeleted decrements all, and published when the removed record was
// published. The store clamps at zero, so a decrement against a counter
// that never existed initializes it to zero instead of drifting negative.
func (s *CounterService) HandleDeleted(ctx context.Context, evt events.Event) error {
	var payload events.RecipeDeletedPayload
	if err := events.Decode(evt, &payload); err != nil {
		return err
	}

	if err := s.counters.Adjust(ctx, models.CounterAll, -1); err != nil {
		return fmt.Errorf("failed to decrement %s counter: %w", models.CounterAll, err)
	}
	if payload.Recipe.IsPublished {
		if err := s.counters.Adjust(ctx, models.CounterPublished, -1); err != nil {
			return fmt.Errorf("failed to decrement %s counter: %w", models.CounterPublished, err)
		}
	}
	return nil
}
