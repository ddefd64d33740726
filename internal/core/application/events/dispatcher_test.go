package events_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"logistics/internal/core/application/events"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_Publish(t *testing.T) {
	logger := slog.Default()

	t.Run("should deliver event to subscribed handler", func(t *testing.T) {
		dispatcher := events.NewDispatcher(logger)
		shipmentID := kernel.NewUUID()

		var received []kernel.DomainEvent
		dispatcher.Subscribe(shipment.DeliveredEventName, events.HandlerFunc(
			func(_ context.Context, event kernel.DomainEvent) error {
				received = append(received, event)
				return nil
			}))

		event := shipment.DeliveredEvent{ShipmentID: shipmentID}
		err := dispatcher.Publish(t.Context(), event)

		require.NoError(t, err)
		require.Len(t, received, 1)
		assert.Equal(t, event, received[0])
	})

	t.Run("should deliver to handlers in subscription order", func(t *testing.T) {
		dispatcher := events.NewDispatcher(logger)

		var order []int
		for i := 1; i <= 3; i++ {
			i := i
			dispatcher.Subscribe(shipment.DeliveredEventName, events.HandlerFunc(
				func(_ context.Context, _ kernel.DomainEvent) error {
					order = append(order, i)
					return nil
				}))
		}

		err := dispatcher.Publish(t.Context(), shipment.DeliveredEvent{ShipmentID: kernel.NewUUID()})

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("should drop events without subscribers", func(t *testing.T) {
		dispatcher := events.NewDispatcher(logger)

		err := dispatcher.Publish(t.Context(), shipment.DeliveredEvent{ShipmentID: kernel.NewUUID()})

		require.NoError(t, err)
	})

	t.Run("should continue past a failing handler and join errors", func(t *testing.T) {
		dispatcher := events.NewDispatcher(logger)
		handlerErr := errors.New("route closure failed")

		var secondCalled bool
		dispatcher.Subscribe(shipment.DeliveredEventName, events.HandlerFunc(
			func(_ context.Context, _ kernel.DomainEvent) error {
				return handlerErr
			}))
		dispatcher.Subscribe(shipment.DeliveredEventName, events.HandlerFunc(
			func(_ context.Context, _ kernel.DomainEvent) error {
				secondCalled = true
				return nil
			}))

		err := dispatcher.Publish(t.Context(), shipment.DeliveredEvent{ShipmentID: kernel.NewUUID()})

		require.ErrorIs(t, err, handlerErr)
		assert.True(t, secondCalled)
	})

	t.Run("should route events by name", func(t *testing.T) {
		dispatcher := events.NewDispatcher(logger)

		var deliveredCount int
		dispatcher.Subscribe(shipment.DeliveredEventName, events.HandlerFunc(
			func(_ context.Context, _ kernel.DomainEvent) error {
				deliveredCount++
				return nil
			}))

		err := dispatcher.Publish(t.Context(),
			shipment.DeliveredEvent{ShipmentID: kernel.NewUUID()},
			shipment.DeliveredEvent{ShipmentID: kernel.NewUUID()},
		)

		require.NoError(t, err)
		assert.Equal(t, 2, deliveredCount)
	})
}
