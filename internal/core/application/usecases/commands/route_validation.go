package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// loadRouteShipments loads the shipments attached to a route together
// with the planner loads derived from them. The planner load carries the
// tariff's destination zone when the shipment is priced.
func loadRouteShipments(
	ctx context.Context,
	uow RouteUoW,
	shipmentIDs []kernel.UUID,
) ([]*shipment.Shipment, []services.ShipmentLoad, error) {
	if len(shipmentIDs) == 0 {
		return nil, nil, nil
	}

	shipments, err := uow.ShipmentRepository().GetByIDs(ctx, shipmentIDs)
	if err != nil {
		return nil, nil, err
	}

	loads := make([]services.ShipmentLoad, 0, len(shipments))
	for _, s := range shipments {
		load := services.ShipmentLoad{
			ShipmentID: s.ID(),
			Weight:     s.Weight(),
			Volume:     s.Volume(),
		}
		if s.TariffID() != nil {
			priceTariff, tariffErr := uow.TariffRepository().Get(ctx, *s.TariffID())
			if tariffErr != nil {
				return nil, nil, tariffErr
			}
			load.Zone = priceTariff.Zone()
			load.HasZone = true
		}
		loads = append(loads, load)
	}

	return shipments, loads, nil
}

// allDelivered reports whether every shipment has reached the delivered
// status. False for an empty set: a route with no shipments never
// auto-closes.
func allDelivered(shipments []*shipment.Shipment) bool {
	if len(shipments) == 0 {
		return false
	}
	for _, s := range shipments {
		if s.Status() != shipment.StatusDelivered {
			return false
		}
	}
	return true
}
