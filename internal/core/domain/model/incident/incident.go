// Package incident provides the Incident aggregate of the logistics
// system: problems reported against a shipment, with a severity
// classification and a handling lifecycle. Resolving a severe incident
// escalates the associated shipment into a failed delivery.
package incident

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrDescriptionIsRequired is returned when reporting an incident without a description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrIncidentIsNotConstructed is returned when using an improperly initialized Incident.
	ErrIncidentIsNotConstructed = errors.New("Incident must be created via NewIncident constructor")
)

// Incident represents a reported problem against a shipment.
//
// Invariants:
//   - the shipment reference is required; incidents are cascade-deleted
//     with their shipment
//   - the resolution timestamp is set exactly once, the first time the
//     state enters Resolved or Closed; later re-entries never overwrite it
//   - a severe incident entering Resolved raises EscalationRequiredEvent
type Incident struct {
	id          kernel.UUID
	kind        Kind
	description string
	state       State
	resolution  *string
	resolvedAt  *time.Time
	wilaya      string
	commune     string
	shipmentID  kernel.UUID

	events []kernel.DomainEvent
	guard  guard.ConstructorGuard
}

// NewIncident reports a new Incident in the Open state.
// Wilaya and commune locate where the incident happened; both are optional.
func NewIncident(id kernel.UUID, shipmentID kernel.UUID, kind Kind, description, wilaya, commune string) (*Incident, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		kind.Validate(),
		validateDescription(description),
	); err != nil {
		return nil, err
	}

	return &Incident{
		id:          id,
		kind:        kind,
		description: description,
		state:       StateOpen,
		wilaya:      wilaya,
		commune:     commune,
		shipmentID:  shipmentID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreIncident rehydrates an Incident from persistence.
func RestoreIncident(
	id, shipmentID kernel.UUID,
	kind Kind,
	description string,
	state State,
	resolution *string,
	resolvedAt *time.Time,
	wilaya, commune string,
) (*Incident, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		kind.Validate(),
		validateDescription(description),
		state.Validate(),
	); err != nil {
		return nil, err
	}

	return &Incident{
		id:          id,
		kind:        kind,
		description: description,
		state:       state,
		resolution:  resolution,
		resolvedAt:  resolvedAt,
		wilaya:      wilaya,
		commune:     commune,
		shipmentID:  shipmentID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Incident was created via its constructor.
func (i *Incident) Validate() error {
	if i == nil {
		return ErrIncidentIsNotConstructed
	}
	return i.guard.Validate(ErrIncidentIsNotConstructed)
}

// ID returns the incident's unique identifier.
func (i *Incident) ID() kernel.UUID {
	return i.id
}

// Kind returns the incident's severity classification.
func (i *Incident) Kind() Kind {
	return i.kind
}

// Description returns the reporter's free-text description.
func (i *Incident) Description() string {
	return i.description
}

// State returns the handling lifecycle state.
func (i *Incident) State() State {
	return i.state
}

// Resolution returns the resolution text, nil while unresolved.
func (i *Incident) Resolution() *string {
	return i.resolution
}

// ResolvedAt returns the timestamp of the first entry into a settling
// state, nil while unsettled.
func (i *Incident) ResolvedAt() *time.Time {
	return i.resolvedAt
}

// Wilaya returns the wilaya where the incident happened.
func (i *Incident) Wilaya() string {
	return i.wilaya
}

// Commune returns the commune where the incident happened.
func (i *Incident) Commune() string {
	return i.commune
}

// ShipmentID returns the identifier of the affected shipment.
func (i *Incident) ShipmentID() kernel.UUID {
	return i.shipmentID
}

// Events returns the domain events raised since the last ClearEvents.
func (i *Incident) Events() []kernel.DomainEvent {
	return i.events
}

// ClearEvents drops all collected domain events.
func (i *Incident) ClearEvents() {
	i.events = nil
}

// Resolve transitions the incident into Resolved with the given
// resolution text, stamping the resolution timestamp on first settling.
// A severe incident raises EscalationRequiredEvent; the consumer must
// apply the shipment escalation in the same transaction.
func (i *Incident) Resolve(resolution string, now time.Time) error {
	if resolution != "" {
		i.resolution = &resolution
	}
	return i.ChangeState(StateResolved, now)
}

// ChangeState moves the incident to next.
//
// Side effects:
//   - first entry into Resolved or Closed stamps the resolution
//     timestamp; re-entries never overwrite it
//   - entry into Resolved with a severe kind raises
//     EscalationRequiredEvent
func (i *Incident) ChangeState(next State, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}

	i.state = next
	if next.IsSettling() && i.resolvedAt == nil {
		stamp := now
		i.resolvedAt = &stamp
	}
	if next == StateResolved && i.kind.IsSevere() {
		i.events = append(i.events, EscalationRequiredEvent{
			IncidentID: i.id,
			ShipmentID: i.shipmentID,
		})
	}
	return nil
}

func validateDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	return nil
}
