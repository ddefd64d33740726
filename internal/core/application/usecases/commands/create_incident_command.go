package commands

import (
	"errors"

	"logistics/internal/core/domain/model/incident"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCreateIncidentCommandIsNotConstructed = errors.New(
	"CreateIncidentCommand must be created via NewCreateIncidentCommand constructor",
)

// CreateIncidentCommand represents a request to report an incident
// against a shipment: a kind, a description and the location where it
// happened.
type CreateIncidentCommand struct { //nolint:recvcheck //using for validation
	incidentID  kernel.UUID
	shipmentID  kernel.UUID
	kind        incident.Kind
	description string
	wilaya      string
	commune     string

	guard guard.ConstructorGuard
}

// NewCreateIncidentCommand creates a command to report an incident.
func NewCreateIncidentCommand(
	incidentID, shipmentID kernel.UUID,
	kind incident.Kind,
	description, wilaya, commune string,
) (CreateIncidentCommand, error) {
	if err := errors.Join(
		incidentID.Validate(),
		shipmentID.Validate(),
		kind.Validate(),
	); err != nil {
		return CreateIncidentCommand{}, err
	}

	return CreateIncidentCommand{
		incidentID:  incidentID,
		shipmentID:  shipmentID,
		kind:        kind,
		description: description,
		wilaya:      wilaya,
		commune:     commune,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateIncidentCommand) Validate() error {
	return c.guard.Validate(ErrCreateIncidentCommandIsNotConstructed)
}

// IncidentID returns the unique identifier for the incident.
func (c CreateIncidentCommand) IncidentID() kernel.UUID {
	return c.incidentID
}

// ShipmentID returns the affected shipment's identifier.
func (c CreateIncidentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Kind returns the incident kind.
func (c CreateIncidentCommand) Kind() incident.Kind {
	return c.kind
}

// Description returns the incident description.
func (c CreateIncidentCommand) Description() string {
	return c.description
}

// Wilaya returns the wilaya where the incident happened.
func (c CreateIncidentCommand) Wilaya() string {
	return c.wilaya
}

// Commune returns the commune where the incident happened.
func (c CreateIncidentCommand) Commune() string {
	return c.commune
}
