package events

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewInMemoryBus(8)

	var mu sync.Mutex
	received := make(map[string]int)
	handler := func(name string) Handler {
		return func(ctx context.Context, evt Event) error {
			mu.Lock()
			received[name]++
			mu.Unlock()
			return nil
		}
	}
	bus.Subscribe(RecipeCreated, handler("first"))
	bus.Subscribe(RecipeCreated, handler("second"))
	bus.Subscribe(RecipeDeleted, handler("deleted"))

	evt, err := New(RecipeCreated, RecipeCreatedPayload{RecipeID: "r-1"})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(context.Background(), evt))

	bus.Close()

	assert.Equal(t, 1, received["first"])
	assert.Equal(t, 1, received["second"])
	assert.Zero(t, received["deleted"])
}

func TestInMemoryBusCloseDrainsQueue(t *testing.T) {
	bus := NewInMemoryBus(16)

	var count atomic.Int64
	bus.Subscribe(RecipeCreated, func(ctx context.Context, evt Event) error {
		count.Add(1)
		return nil
	})

	for i := 0; i < 10; i++ {
		evt, err := New(RecipeCreated, RecipeCreatedPayload{RecipeID: "r"})
		require.NoError(t, err)
		require.NoError(t, bus.Publish(context.Background(), evt))
	}

	bus.Close()
	assert.Equal(t, int64(10), count.Load())
}

func TestInMemoryBusPublishAfterClose(t *testing.T) {
	bus := NewInMemoryBus(1)
	bus.Close()
	bus.Close() // second close is a no-op

	evt, err := New(RecipeCreated, RecipeCreatedPayload{RecipeID: "r"})
	require.NoError(t, err)
	assert.ErrorIs(t, bus.Publish(context.Background(), evt), ErrBusClosed)
}

func TestInMemoryBusHandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewInMemoryBus(4)

	var count atomic.Int64
	bus.Subscribe(RecipeCreated, func(ctx context.Context, evt Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(RecipeCreated, func(ctx context.Context, evt Event) error {
		count.Add(1)
		return nil
	})

	evt, err := New(RecipeCreated, RecipeCreatedPayload{RecipeID: "r"})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(context.Background(), evt))

	bus.Close()
	assert.Equal(t, int64(1), count.Load())
}

func TestInMemoryBusPublishHonorsContext(t *testing.T) {
	bus := NewInMemoryBus(1)
	defer bus.Close()

	// With the context already cancelled, Publish must be able to return
	// ctx.Err even when the queue would accept the event. Both select
	// branches are ready, so repeat until the cancelled branch is taken.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 1000; i++ {
		evt, err := New(RecipeCreated, RecipeCreatedPayload{RecipeID: "r"})
		require.NoError(t, err)
		if err := bus.Publish(ctx, evt); err != nil {
			assert.ErrorIs(t, err, context.Canceled)
			return
		}
	}
	t.Fatal("publish never observed the cancelled context")
}

func TestEventRoundTrip(t *testing.T) {
	evt, err := New(UserSignedUp, UserSignedUpPayload{UserID: "uid-1", Email: "musa@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, UserSignedUp, evt.Type)
	assert.False(t, evt.Timestamp.IsZero())

	var payload UserSignedUpPayload
	require.NoError(t, Decode(evt, &payload))
	assert.Equal(t, "uid-1", payload.UserID)
	assert.Equal(t, "musa@example.com", payload.Email)
}
