package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/events"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/mocks"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

func mustEvent(t *testing.T, typ events.Type, payload any) events.Event {
	t.Helper()
	evt, err := events.New(typ, payload)
	require.NoError(t, err)
	return evt
}

func counterValue(t *testing.T, store *mocks.MemCounterStore, name string) int64 {
	t.Helper()
	v, err := store.Get(context.Background(), name)
	require.NoError(t, err)
	return v
}

func TestCounterCreateIncrementsAll(t *testing.T) {
	store := mocks.NewMemCounterStore()
	svc := NewCounterService(store)

	evt := mustEvent(t, events.RecipeCreated, events.RecipeCreatedPayload{
		RecipeID: "r1",
		Recipe:   models.Recipe{IsPublished: false},
	})
	require.NoError(t, svc.HandleCreated(context.Background(), evt))

	assert.EqualValues(t, 1, counterValue(t, store, models.CounterAll))
	assert.EqualValues(t, 0, counterValue(t, store, models.CounterPublished))
}

func TestCounterCreatePublishedIncrementsBoth(t *testing.T) {
	store := mocks.NewMemCounterStore()
	svc := NewCounterService(store)

	evt := mustEvent(t, events.RecipeCreated, events.RecipeCreatedPayload{
		RecipeID: "r1",
		Recipe:   models.Recipe{IsPublished: true},
	})
	require.NoError(t, svc.HandleCreated(context.Background(), evt))

	assert.EqualValues(t, 1, counterValue(t, store, models.CounterAll))
	assert.EqualValues(t, 1, counterValue(t, store, models.CounterPublished))
}

func TestCounterSequentialCreatesAndDeletes(t *testing.T) {
	store := mocks.NewMemCounterStore()
	svc := NewCounterService(store)
	ctx := context.Background()

	const n = 7
	for i := 0; i < n; i++ {
		published := i%2 == 0 // 4 published, 3 not
		evt := mustEvent(t, events.RecipeCreated, events.RecipeCreatedPayload{
			Recipe: models.Recipe{IsPublished: published},
		})
		require.NoError(t, svc.HandleCreated(ctx, evt))
	}
	assert.EqualValues(t, 7, counterValue(t, store, models.CounterAll))
	assert.EqualValues(t, 4, counterValue(t, store, models.CounterPublished))

	const m = 3
	for i := 0; i < m; i++ {
		evt := mustEvent(t, events.RecipeDeleted, events.RecipeDeletedPayload{
			Recipe: models.Recipe{IsPublished: i == 0}, // one published delete
		})
		require.NoError(t, svc.HandleDeleted(ctx, evt))
	}
	assert.EqualValues(t, 4, counterValue(t, store, models.CounterAll))
	assert.EqualValues(t, 3, counterValue(t, store, models.CounterPublished))
}

func TestCounterDeleteClampsAtZero(t *testing.T) {
	store := mocks.NewMemCounterStore()
	svc := NewCounterService(store)

	// Counters were never initialized; a delete must not drift negative.
	evt := mustEvent(t, events.RecipeDeleted, events.RecipeDeletedPayload{
		Recipe: models.Recipe{IsPublished: true},
	})
	require.NoError(t, svc.HandleDeleted(context.Background(), evt))

	assert.EqualValues(t, 0, counterValue(t, store, models.CounterAll))
	assert.EqualValues(t, 0, counterValue(t, store, models.CounterPublished))
}

func TestCounterUpdateDeltas(t *testing.T) {
	tests := []struct {
		name   string
		before bool
		after  bool
		want   int64
	}{
		{"became published", false, true, 3},
		{"became unpublished", true, false, 1},
		{"stayed published", true, true, 2},
		{"stayed unpublished", false, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMemCounterStore()
			require.NoError(t, store.Adjust(context.Background(), models.CounterPublished, 2))
			svc := NewCounterService(store)

			evt := mustEvent(t, events.RecipeUpdated, events.RecipeUpdatedPayload{
				Before: models.Recipe{IsPublished: tt.before},
				After:  models.Recipe{IsPublished: tt.after},
			})
			require.NoError(t, svc.HandleUpdated(context.Background(), evt))
			assert.EqualValues(t, tt.want, counterValue(t, store, models.CounterPublished))
		})
	}
}

func TestCounterUpdateUninitializedNeverNegative(t *testing.T) {
	store := mocks.NewMemCounterStore()
	svc := NewCounterService(store)

	evt := mustEvent(t, events.RecipeUpdated, events.RecipeUpdatedPayload{
		Before: models.Recipe{IsPublished: true},
		After:  models.Recipe{IsPublished: false},
	})
	require.NoError(t, svc.HandleUpdated(context.Background(), evt))
	assert.EqualValues(t, 0, counterValue(t, store, models.CounterPublished))
}
