package route_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var routeDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func TestNewRoute(t *testing.T) {
	t.Run("should create active route with shipments", func(t *testing.T) {
		shipmentIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), shipmentIDs)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, route.StatusActive, r.Status())
		assert.True(t, r.IsActive())
		assert.Len(t, r.ShipmentIDs(), 2)
		assert.True(t, r.ContainsShipment(shipmentIDs[0]))
	})

	t.Run("should create route with empty shipment set", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)

		require.NoError(t, err)
		assert.False(t, r.HasShipments())
	})

	t.Run("should reject duplicate shipments", func(t *testing.T) {
		shipmentID := kernel.NewUUID()

		r, err := route.NewRoute(
			kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(),
			[]kernel.UUID{shipmentID, shipmentID},
		)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should fail with zero date", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), time.Time{}, kernel.NewUUID(), kernel.NewUUID(), nil)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRoute_AttachShipment(t *testing.T) {
	t.Run("should attach new shipment", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)

		shipmentID := kernel.NewUUID()
		err = r.AttachShipment(shipmentID)

		require.NoError(t, err)
		assert.True(t, r.ContainsShipment(shipmentID))
	})

	t.Run("should reject already attached shipment", func(t *testing.T) {
		shipmentID := kernel.NewUUID()
		r, err := route.NewRoute(
			kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(),
			[]kernel.UUID{shipmentID},
		)
		require.NoError(t, err)

		err = r.AttachShipment(shipmentID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should reject attachment to closed route", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)
		require.NoError(t, r.Close())

		err = r.AttachShipment(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, route.ErrRouteIsClosed)
	})
}

func TestRoute_DetachShipment(t *testing.T) {
	t.Run("should detach attached shipment", func(t *testing.T) {
		shipmentID := kernel.NewUUID()
		r, err := route.NewRoute(
			kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(),
			[]kernel.UUID{shipmentID},
		)
		require.NoError(t, err)

		err = r.DetachShipment(shipmentID)

		require.NoError(t, err)
		assert.False(t, r.HasShipments())
	})

	t.Run("should fail for unattached shipment", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)

		err = r.DetachShipment(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRoute_Lifecycle(t *testing.T) {
	t.Run("should flag incident and stay open", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)

		err = r.ReportIncident()

		require.NoError(t, err)
		assert.Equal(t, route.StatusIncident, r.Status())
		assert.True(t, r.IsActive(), "Disrupted route should keep holding its driver")
	})

	t.Run("should close disrupted route", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)
		require.NoError(t, r.ReportIncident())

		err = r.Close()

		require.NoError(t, err)
		assert.Equal(t, route.StatusClosed, r.Status())
		assert.False(t, r.IsActive())
	})

	t.Run("should reject closing twice", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)
		require.NoError(t, r.Close())

		err = r.Close()

		require.Error(t, err)
		assert.ErrorIs(t, err, route.ErrRouteIsClosed)
	})

	t.Run("should reject reschedule of closed route", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)
		require.NoError(t, r.Close())

		err = r.Reschedule(routeDate.AddDate(0, 0, 1))

		require.Error(t, err)
		assert.ErrorIs(t, err, route.ErrRouteIsClosed)
	})
}

func TestRoute_Reschedule(t *testing.T) {
	t.Run("should change the date", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)

		next := routeDate.AddDate(0, 0, 2)
		err = r.Reschedule(next)

		require.NoError(t, err)
		assert.True(t, r.Date().Equal(next))
	})

	t.Run("should reject zero date", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)

		err = r.Reschedule(time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, route.ErrDateIsRequired)
	})
}

func TestRoute_ChangeVehicle(t *testing.T) {
	t.Run("should swap vehicle on open route", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.NoError(t, err)

		next := kernel.NewUUID()
		err = r.ChangeVehicle(next)

		require.NoError(t, err)
		assert.True(t, r.VehicleID().IsEqual(next))
	})
}

func TestRestoreRoute(t *testing.T) {
	t.Run("should rehydrate persisted status and shipments", func(t *testing.T) {
		shipmentIDs := []kernel.UUID{kernel.NewUUID()}

		r, err := route.RestoreRoute(
			kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(),
			route.StatusIncident, shipmentIDs,
		)

		require.NoError(t, err)
		assert.Equal(t, route.StatusIncident, r.Status())
		assert.True(t, r.ContainsShipment(shipmentIDs[0]))
	})

	t.Run("should reject invalid persisted status", func(t *testing.T) {
		r, err := route.RestoreRoute(
			kernel.NewUUID(), routeDate, kernel.NewUUID(), kernel.NewUUID(),
			route.StatusUnknown, nil,
		)

		require.Error(t, err)
		assert.Nil(t, r)
	})
}
