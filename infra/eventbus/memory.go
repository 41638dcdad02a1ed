// Package eventbus provides the in-memory notification channel used by the
// demo services. Events are delivered synchronously, inline with the
// publisher's control flow: there is no queue and no background worker, so
// a slow subscriber blocks the publisher. That trade-off is deliberate for
// these demos.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/archlab/patterns/pkg/eventbus"
)

// Memory is an insertion-ordered, in-process implementation of the Bus
// contract. It is a constructed object, not package-level state: each
// service (and each test) wires its own instance.
type Memory struct {
	mu          sync.RWMutex
	subscribers []eventbus.HandlerFunc
	published   []eventbus.Event
	logger      *slog.Logger
}

// NewMemory creates an empty bus reporting subscriber failures to logger.
func NewMemory(logger *slog.Logger) *Memory {
	return &Memory{logger: logger.With("bus", "memory")}
}

// Subscribe appends handler to the delivery list. Subscribers are never
// removed; every subscriber sees every event published after registration.
func (b *Memory) Subscribe(handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, handler)
}

// Publish delivers event to all current subscribers in subscription order.
// Each invocation is isolated: an error or panic is logged and the
// remaining subscribers still run. Publish itself never fails.
func (b *Memory) Publish(ctx context.Context, event eventbus.Event) {
	b.mu.RLock()
	subscribers := append([]eventbus.HandlerFunc{}, b.subscribers...)
	b.mu.RUnlock()

	b.mu.Lock()
	b.published = append(b.published, event)
	b.mu.Unlock()

	for _, handler := range subscribers {
		b.dispatch(ctx, handler, event)
	}
}

func (b *Memory) dispatch(ctx context.Context, handler eventbus.HandlerFunc, event eventbus.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic recovered in event subscriber",
				"type", event.Type(), "event", fmt.Sprintf("%+v", event), "panic", r)
		}
	}()
	if err := handler(ctx, event); err != nil {
		b.logger.Error("event subscriber failed",
			"type", event.Type(), "event", fmt.Sprintf("%+v", event), "error", err)
	}
}

// Published returns every event published so far. Test hook.
func (b *Memory) Published() []eventbus.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]eventbus.Event{}, b.published...)
}

// ClearPublished resets the published-event record. Test hook.
func (b *Memory) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = nil
}

var _ eventbus.Bus = (*Memory)(nil)
