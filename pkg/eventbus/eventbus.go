// Package eventbus defines the contract for the in-process notification
// channel that connects write-model mutations to read-model projections.
package eventbus

import "context"

// Event is implemented by anything that can travel over the bus.
type Event interface {
	// Type identifies the kind of event, e.g. "bank.account.changed".
	Type() string
}

// HandlerFunc consumes a published event. A returned error is recorded by
// the bus but never reaches the publisher.
type HandlerFunc func(ctx context.Context, event Event) error

// Bus delivers every published event to every subscriber, in subscription
// order. Publish never fails: subscriber errors and panics are isolated and
// reported through the bus's own logger, so a broken projection cannot
// crash the writer.
type Bus interface {
	Subscribe(handler HandlerFunc)
	Publish(ctx context.Context, event Event)
}
