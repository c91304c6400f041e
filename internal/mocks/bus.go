package mocks

import (
	"context"
	"sync"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/events"
)

// SyncBus is an events.Bus that delivers to subscribers inline with
// Publish, so tests observe reactions deterministically. It also records
// every published event.
type SyncBus struct {
	mu        sync.Mutex
	handlers  map[events.Type][]events.Handler
	Published []events.Event
	// Errors collects handler failures, which the real bus would log.
	Errors []error
}

func NewSyncBus() *SyncBus {
	return &SyncBus{handlers: make(map[events.Type][]events.Handler)}
}

func (b *SyncBus) Subscribe(t events.Type, h events.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

func (b *SyncBus) Publish(ctx context.Context, evt events.Event) error {
	b.mu.Lock()
	b.Published = append(b.Published, evt)
	handlers := b.handlers[evt.Type]
	b.mu.Unlock()

	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			b.mu.Lock()
			b.Errors = append(b.Errors, err)
			b.mu.Unlock()
		}
	}
	return nil
}

func (b *SyncBus) Close() {}

// ByType returns the published events of one type.
func (b *SyncBus) ByType(t events.Type) []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []events.Event
	for _, evt := range b.Published {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}
