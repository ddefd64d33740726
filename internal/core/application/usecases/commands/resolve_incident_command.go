package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrResolveIncidentCommandIsNotConstructed = errors.New(
	"ResolveIncidentCommand must be created via NewResolveIncidentCommand constructor",
)

// ResolveIncidentCommand represents a request to resolve an incident with
// a resolution note.
type ResolveIncidentCommand struct { //nolint:recvcheck //using for validation
	incidentID kernel.UUID
	resolution string

	guard guard.ConstructorGuard
}

// NewResolveIncidentCommand creates a command to resolve an incident.
// The resolution note is required.
func NewResolveIncidentCommand(incidentID kernel.UUID, resolution string) (ResolveIncidentCommand, error) {
	if err := incidentID.Validate(); err != nil {
		return ResolveIncidentCommand{}, err
	}
	if resolution == "" {
		return ResolveIncidentCommand{}, errs.NewValueIsRequiredError("resolution")
	}

	return ResolveIncidentCommand{
		incidentID: incidentID,
		resolution: resolution,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveIncidentCommand) Validate() error {
	return c.guard.Validate(ErrResolveIncidentCommandIsNotConstructed)
}

// IncidentID returns the identifier of the incident to resolve.
func (c ResolveIncidentCommand) IncidentID() kernel.UUID {
	return c.incidentID
}

// Resolution returns the resolution note.
func (c ResolveIncidentCommand) Resolution() string {
	return c.resolution
}
