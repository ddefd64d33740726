package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/incident"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tariff"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testTariff(t *testing.T, zone kernel.Zone, base, perWeight, perVolume string) *tariff.Tariff {
	t.Helper()
	destination, err := tariff.NewDestination(kernel.NewUUID(), "Alger", "DZ", zone)
	require.NoError(t, err)
	tr, err := tariff.NewTariff(
		kernel.NewUUID(),
		tariff.ServiceClassStandard,
		decimal.RequireFromString(base),
		decimal.RequireFromString(perWeight),
		decimal.RequireFromString(perVolume),
		destination,
	)
	require.NoError(t, err)
	return tr
}

func testShipment(t *testing.T, weight, volume string, priceTariff *tariff.Tariff) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		decimal.RequireFromString(weight),
		decimal.RequireFromString(volume),
		priceTariff,
		nil,
	)
	require.NoError(t, err)
	return s
}

func restoredShipment(t *testing.T, status shipment.Status, tariffID *kernel.UUID, estimate *decimal.Decimal) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(
		kernel.NewUUID(),
		decimal.RequireFromString("3"),
		decimal.RequireFromString("2"),
		status,
		tariffID,
		nil,
		estimate,
	)
	require.NoError(t, err)
	return s
}

func testDriver(t *testing.T, category driver.LicenseCategory, available bool) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(kernel.NewUUID(), "Karim", "1234567890", category, available)
	require.NoError(t, err)
	return d
}

func testVehicle(t *testing.T, class vehicle.Class, capacityWeight, capacityVolume string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		"123456",
		class,
		decimal.RequireFromString(capacityWeight),
		decimal.RequireFromString(capacityVolume),
		"EN_SERVICE",
	)
	require.NoError(t, err)
	return v
}

func testRoute(t *testing.T, driverID, vehicleID kernel.UUID, shipmentIDs []kernel.UUID) *route.Route {
	t.Helper()
	r, err := route.NewRoute(
		kernel.NewUUID(),
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		vehicleID,
		driverID,
		shipmentIDs,
	)
	require.NoError(t, err)
	return r
}

func testIncident(t *testing.T, shipmentID kernel.UUID, kind incident.Kind) *incident.Incident {
	t.Helper()
	i, err := incident.NewIncident(kernel.NewUUID(), shipmentID, kind, "colis introuvable", "Alger", "Bab El Oued")
	require.NoError(t, err)
	return i
}

func testInvoice(t *testing.T) *billing.Invoice {
	t.Helper()
	inv, err := billing.NewInvoice(
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"",
	)
	require.NoError(t, err)
	return inv
}

func testPayment(t *testing.T, invoiceID kernel.UUID, amount string) *billing.Payment {
	t.Helper()
	p, err := billing.NewPayment(
		kernel.NewUUID(),
		invoiceID,
		decimal.RequireFromString(amount),
		billing.MethodCash,
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		"",
	)
	require.NoError(t, err)
	return p
}

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}
