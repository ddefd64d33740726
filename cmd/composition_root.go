package cmd

import (
	"context"
	"log/slog"
	"os"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/events"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher *events.Dispatcher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: events.NewDispatcher(slog.New(slog.NewJSONHandler(os.Stdout, nil))),
	}
	root.subscribeDeliveredCascade()
	return root
}

// subscribeDeliveredCascade routes delivered-shipment events into the
// route auto-closure handler. The cascade runs in its own transaction
// after the delivering transaction commits.
func (c *CompositionRoot) subscribeDeliveredCascade() {
	handler := c.CreateCloseDeliveredRoutesCommandHandler()
	c.dispatcher.Subscribe(shipment.DeliveredEventName, events.HandlerFunc(
		func(ctx context.Context, event kernel.DomainEvent) error {
			delivered, ok := event.(shipment.DeliveredEvent)
			if !ok {
				return nil
			}
			cmd, err := commands.NewCloseDeliveredRoutesCommand(delivered.ShipmentID)
			if err != nil {
				return err
			}
			return handler.Handle(ctx, cmd)
		},
	))
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) incidentUoWFactory() commands.IncidentUoWFactory {
	return FuncIncidentUoWFactory(func() commands.IncidentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(c.shipmentUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() commands.RegisterVehicleCommandHandler {
	return commands.NewRegisterVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRouteCommandHandler() commands.UpdateRouteCommandHandler {
	return commands.NewUpdateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCloseRouteCommandHandler() commands.CloseRouteCommandHandler {
	return commands.NewCloseRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCloseDeliveredRoutesCommandHandler() commands.CloseDeliveredRoutesCommandHandler {
	return commands.NewCloseDeliveredRoutesCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCreateIncidentCommandHandler() commands.CreateIncidentCommandHandler {
	return commands.NewCreateIncidentCommandHandler(c.incidentUoWFactory())
}

func (c *CompositionRoot) CreateResolveIncidentCommandHandler() commands.ResolveIncidentCommandHandler {
	return commands.NewResolveIncidentCommandHandler(c.incidentUoWFactory())
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateDeleteInvoiceCommandHandler() commands.DeleteInvoiceCommandHandler {
	return commands.NewDeleteInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateLinkShipmentCommandHandler() commands.LinkShipmentCommandHandler {
	return commands.NewLinkShipmentCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateUnlinkShipmentCommandHandler() commands.UnlinkShipmentCommandHandler {
	return commands.NewUnlinkShipmentCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateDeletePaymentCommandHandler() commands.DeletePaymentCommandHandler {
	return commands.NewDeletePaymentCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateGetShipmentEstimateQueryHandler() queries.GetShipmentEstimateQueryHandler {
	return queries.NewGetShipmentEstimateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnpaidInvoicesQueryHandler() queries.GetUnpaidInvoicesQueryHandler {
	return queries.NewGetUnpaidInvoicesQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncIncidentUoWFactory func() commands.IncidentUoW

func (f FuncIncidentUoWFactory) Create() commands.IncidentUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}
