package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// RegisterDriverRequest is the body of POST /api/v1/drivers.
type RegisterDriverRequest struct {
	Name            string `json:"name"`
	LicenseNumber   string `json:"license_number"`
	LicenseCategory string `json:"license_category"`
}

// RegisterDriverResponse returns the identifier of the registered driver.
type RegisterDriverResponse struct {
	ID string `json:"id"`
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req RegisterDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	category, err := driver.LicenseCategoryFromString(req.LicenseCategory)
	if err != nil {
		return respondError(ctx, err)
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(driverID, req.Name, req.LicenseNumber, category)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterDriverResponse{ID: driverID.String()})
}

// RegisterVehicleRequest is the body of POST /api/v1/vehicles.
type RegisterVehicleRequest struct {
	Registration   string          `json:"registration"`
	Class          string          `json:"class"`
	CapacityWeight decimal.Decimal `json:"capacity_weight"`
	CapacityVolume decimal.Decimal `json:"capacity_volume"`
	State          string          `json:"state"`
}

// RegisterVehicleResponse returns the identifier of the registered vehicle.
type RegisterVehicleResponse struct {
	ID string `json:"id"`
}

// RegisterVehicle handles POST /api/v1/vehicles.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var req RegisterVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	class, err := vehicle.ClassFromString(req.Class)
	if err != nil {
		return respondError(ctx, err)
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewRegisterVehicleCommand(
		vehicleID, req.Registration, class, req.CapacityWeight, req.CapacityVolume, req.State,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterVehicleResponse{ID: vehicleID.String()})
}
