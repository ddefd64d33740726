package tariff_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tariff"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func northDestination(t *testing.T) *tariff.Destination {
	t.Helper()

	destination, err := tariff.NewDestination(kernel.NewUUID(), "Alger", "DZ", kernel.ZoneNorth)
	require.NoError(t, err)
	return destination
}

func TestNewDestination(t *testing.T) {
	t.Run("should create valid destination", func(t *testing.T) {
		destination, err := tariff.NewDestination(kernel.NewUUID(), "Oran", "DZ", kernel.ZoneWest)

		require.NoError(t, err)
		require.NoError(t, destination.Validate())
		assert.Equal(t, "Oran", destination.City())
		assert.Equal(t, "DZ", destination.Country())
		assert.Equal(t, kernel.ZoneWest, destination.Zone())
	})

	t.Run("should fail with empty city", func(t *testing.T) {
		destination, err := tariff.NewDestination(kernel.NewUUID(), "", "DZ", kernel.ZoneWest)

		require.Error(t, err)
		assert.Nil(t, destination)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid zone", func(t *testing.T) {
		destination, err := tariff.NewDestination(kernel.NewUUID(), "Oran", "DZ", kernel.ZoneUnknown)

		require.Error(t, err)
		assert.Nil(t, destination)
	})
}

func TestNewTariff(t *testing.T) {
	t.Run("should create tariff bound to destination zone", func(t *testing.T) {
		destination := northDestination(t)

		priceTariff, err := tariff.NewTariff(
			kernel.NewUUID(), tariff.ServiceClassExpress,
			decimal.RequireFromString("800"),
			decimal.RequireFromString("30"),
			decimal.RequireFromString("15"),
			destination,
		)

		require.NoError(t, err)
		require.NoError(t, priceTariff.Validate())
		assert.Equal(t, tariff.ServiceClassExpress, priceTariff.ServiceClass())
		assert.True(t, priceTariff.DestinationID().IsEqual(destination.ID()))
		assert.Equal(t, kernel.ZoneNorth, priceTariff.Zone())
	})

	t.Run("should fail without destination", func(t *testing.T) {
		priceTariff, err := tariff.NewTariff(
			kernel.NewUUID(), tariff.ServiceClassStandard,
			decimal.RequireFromString("500"),
			decimal.RequireFromString("20"),
			decimal.RequireFromString("10"),
			nil,
		)

		require.Error(t, err)
		assert.Nil(t, priceTariff)
		assert.ErrorIs(t, err, tariff.ErrDestinationIsRequired)
	})

	t.Run("should reject negative rates", func(t *testing.T) {
		priceTariff, err := tariff.NewTariff(
			kernel.NewUUID(), tariff.ServiceClassStandard,
			decimal.RequireFromString("-500"),
			decimal.RequireFromString("20"),
			decimal.RequireFromString("10"),
			northDestination(t),
		)

		require.Error(t, err)
		assert.Nil(t, priceTariff)
	})

	t.Run("should allow zero rates", func(t *testing.T) {
		priceTariff, err := tariff.NewTariff(
			kernel.NewUUID(), tariff.ServiceClassStandard,
			decimal.Zero, decimal.Zero, decimal.Zero,
			northDestination(t),
		)

		require.NoError(t, err)
		assert.NotNil(t, priceTariff)
	})
}

func TestTariff_PriceFor(t *testing.T) {
	t.Run("should derive price from base and rates", func(t *testing.T) {
		priceTariff, err := tariff.NewTariff(
			kernel.NewUUID(), tariff.ServiceClassStandard,
			decimal.RequireFromString("500"),
			decimal.RequireFromString("20"),
			decimal.RequireFromString("10"),
			northDestination(t),
		)
		require.NoError(t, err)

		price := priceTariff.PriceFor(
			decimal.RequireFromString("3"), decimal.RequireFromString("2"),
		)

		// 500 + 3*20 + 2*10
		assert.True(t, price.Equal(decimal.RequireFromString("580")))
	})

	t.Run("should price fractional dimensions exactly", func(t *testing.T) {
		priceTariff, err := tariff.NewTariff(
			kernel.NewUUID(), tariff.ServiceClassStandard,
			decimal.RequireFromString("100"),
			decimal.RequireFromString("7.5"),
			decimal.RequireFromString("2.5"),
			northDestination(t),
		)
		require.NoError(t, err)

		price := priceTariff.PriceFor(
			decimal.RequireFromString("0.4"), decimal.RequireFromString("1.2"),
		)

		// 100 + 0.4*7.5 + 1.2*2.5
		assert.True(t, price.Equal(decimal.RequireFromString("106")))
	})
}

func TestServiceClassFromString(t *testing.T) {
	t.Run("should round trip every service class", func(t *testing.T) {
		for _, serviceClass := range []tariff.ServiceClass{
			tariff.ServiceClassStandard,
			tariff.ServiceClassExpress,
			tariff.ServiceClassInternational,
		} {
			parsed, err := tariff.ServiceClassFromString(serviceClass.String())
			require.NoError(t, err)
			assert.Equal(t, serviceClass, parsed)
		}
	})

	t.Run("should reject unknown code", func(t *testing.T) {
		_, err := tariff.ServiceClassFromString("PIGEON")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
