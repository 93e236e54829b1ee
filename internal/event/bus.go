// Package event dispatches domain events after the transaction that produced
// them has committed. Delivery is synchronous and in-process.
package event

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/heartmarshall/debate-backend/internal/domain"
)

// Handler reacts to one event. It must not block for long: it runs on the
// request goroutine that published the event.
type Handler func(ctx context.Context, e domain.Event)

const wildcard domain.EventType = "*"

type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous pub-sub event bus.
type Bus struct {
	log *slog.Logger

	mu            sync.RWMutex
	subscriptions map[domain.EventType][]subscription
	nextID        atomic.Uint64
}

// NewBus creates a new event bus.
func NewBus(log *slog.Logger) *Bus {
	return &Bus{
		log:           log.With("component", "event_bus"),
		subscriptions: make(map[domain.EventType][]subscription),
	}
}

// Subscribe registers a handler for one event type and returns its id.
func (b *Bus) Subscribe(t domain.EventType, h Handler) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID.Add(1)
	b.subscriptions[t] = append(b.subscriptions[t], subscription{id: id, handler: h})
	return id
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(h Handler) uint64 {
	return b.Subscribe(wildcard, h)
}

// Unsubscribe removes a subscription. It reports whether it existed.
func (b *Bus) Unsubscribe(id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for t, subs := range b.subscriptions {
		for i, sub := range subs {
			if sub.id == id {
				b.subscriptions[t] = append(subs[:i:i], subs[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Publish delivers events in order. For each event, handlers of its type run
// first, then wildcard handlers, each group in registration order. A panicking
// handler is logged and skipped.
func (b *Bus) Publish(ctx context.Context, events ...domain.Event) {
	for _, e := range events {
		b.mu.RLock()
		specific := append([]subscription(nil), b.subscriptions[e.Type]...)
		all := append([]subscription(nil), b.subscriptions[wildcard]...)
		b.mu.RUnlock()

		for _, sub := range specific {
			b.safeCall(ctx, sub.handler, e)
		}
		for _, sub := range all {
			b.safeCall(ctx, sub.handler, e)
		}
	}
}

func (b *Bus) safeCall(ctx context.Context, h Handler, e domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.ErrorContext(ctx, "event handler panicked",
				slog.String("event", e.Type.String()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()
	h(ctx, e)
}

// SubscriptionCount returns the number of active subscriptions.
func (b *Bus) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, subs := range b.subscriptions {
		n += len(subs)
	}
	return n
}
