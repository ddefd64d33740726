package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
//
// Driver availability is the one contended resource in the system: two
// route creations may race for the same driver. TryAcquire is therefore a
// storage-level compare-and-set rather than a read-modify-write on the
// aggregate.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// TryAcquire atomically flips the driver's availability from free to
	// busy within the current transaction. Returns ConflictError when the
	// driver is already assigned, ObjectNotFoundError when the driver does
	// not exist.
	//
	// The operation must be a single conditional UPDATE so that of two
	// concurrent route creations exactly one succeeds.
	TryAcquire(ctx context.Context, id kernel.UUID) error
}
