package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"logistics/internal/core/domain/model/kernel"
)

// Handler consumes a domain event after the transaction that raised it
// has committed.
type Handler interface {
	Handle(ctx context.Context, event kernel.DomainEvent) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, event kernel.DomainEvent) error

// Handle calls f(ctx, event).
func (f HandlerFunc) Handle(ctx context.Context, event kernel.DomainEvent) error {
	return f(ctx, event)
}

// Dispatcher routes domain events to subscribed handlers, synchronously
// and in subscription order. Handlers run in their own transactions, after
// the publishing command has committed its own; a failing handler does not
// stop the remaining ones.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		logger:   logger.With("component", "event_dispatcher"),
	}
}

// Subscribe registers a handler for the given event name.
func (d *Dispatcher) Subscribe(eventName string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Publish delivers each event to every handler subscribed to its name.
// Handler errors are logged and joined into the returned error; delivery
// continues past failures. Events without subscribers are dropped.
func (d *Dispatcher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	var errList []error
	for _, event := range events {
		d.mu.RLock()
		handlers := d.handlers[event.EventName()]
		d.mu.RUnlock()

		for _, handler := range handlers {
			if err := handler.Handle(ctx, event); err != nil {
				d.logger.ErrorContext(ctx, "Event handler failed",
					"event", event.EventName(), "error", err)
				errList = append(errList, err)
			}
		}
	}
	return errors.Join(errList...)
}
