package events

import (
	"context"
	"errors"
	"sync"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/logger"
)

// ErrBusClosed is returned by Publish after Close.
var ErrBusClosed = errors.New("event bus is closed")

// InMemoryBus delivers events asynchronously inside the process. Publish
// never blocks the caller on handler execution; each subscriber runs on its
// own goroutine, detached from the publishing request. Handler failures are
// logged and dropped, matching the fire-and-forget contract of the
// background reactions.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler

	queue  chan Event
	done   chan struct{}
	closed bool
	wg     sync.WaitGroup
}

// NewInMemoryBus starts the dispatch loop. bufferSize bounds the number of
// undelivered events held before Publish blocks.
func NewInMemoryBus(bufferSize int) *InMemoryBus {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	b := &InMemoryBus{
		handlers: make(map[Type][]Handler),
		queue:    make(chan Event, bufferSize),
		done:     make(chan struct{}),
	}
	go b.dispatch()
	return b
}

// Subscribe registers a handler for an event type. Registration is expected
// to happen during startup, before events flow.
func (b *InMemoryBus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish enqueues an event for asynchronous delivery.
func (b *InMemoryBus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return ErrBusClosed
	}

	select {
	case b.queue <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting events and waits for in-flight handlers to finish.
func (b *InMemoryBus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	close(b.queue)
	<-b.done
	b.wg.Wait()
}

func (b *InMemoryBus) dispatch() {
	defer close(b.done)
	for evt := range b.queue {
		b.mu.RLock()
		handlers := b.handlers[evt.Type]
		b.mu.RUnlock()

		for _, h := range handlers {
			b.wg.Add(1)
			go func(h Handler, evt Event) {
				defer b.wg.Done()
				if err := h(context.Background(), evt); err != nil {
					logger.Log.Errorf("event %s (%s): handler failed: %v", evt.ID, evt.Type, err)
				}
			}(h, evt)
		}
	}
}
