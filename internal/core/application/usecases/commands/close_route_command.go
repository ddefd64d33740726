package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCloseRouteCommandIsNotConstructed = errors.New(
	"CloseRouteCommand must be created via NewCloseRouteCommand constructor",
)

// CloseRouteCommand represents a request to manually close a route.
type CloseRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseRouteCommand creates a command to close a route.
func NewCloseRouteCommand(routeID kernel.UUID) (CloseRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return CloseRouteCommand{}, err
	}

	return CloseRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseRouteCommand) Validate() error {
	return c.guard.Validate(ErrCloseRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to close.
func (c CloseRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}
